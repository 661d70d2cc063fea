// Package node is the fake EVM JSON-RPC node for the tests.
//
// The node replies to the methods registered by Handle.
// Unregistered methods return the "method not found" error.
package node

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Error is the JSON-RPC error returned by the handler
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handler of the method. The result is encoded as JSON.
type Handler func(params []json.RawMessage) (interface{}, *Error)

type request struct {
	Version string            `json:"jsonrpc"`
	Id      json.RawMessage   `json:"id"`
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
}

type response struct {
	Version string          `json:"jsonrpc"`
	Id      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result"`
	Error   *Error          `json:"error,omitempty"`
}

// Node is the fake node served over http
type Node struct {
	server   *httptest.Server
	mu       sync.Mutex
	handlers map[string]Handler
	calls    map[string]int
}

// New fake node, that replies to web3_clientVersion.
// Close it at the end of the test.
func New() *Node {
	node := &Node{
		handlers: map[string]Handler{},
		calls:    map[string]int{},
	}
	node.Handle("web3_clientVersion", Result("Geth/v1.10.25-stable/linux-amd64/go1.19"))
	node.server = httptest.NewServer(http.HandlerFunc(node.serve))

	return node
}

// Result handler always returns the same result
func Result(result interface{}) Handler {
	return func([]json.RawMessage) (interface{}, *Error) {
		return result, nil
	}
}

// Fail handler always returns the error
func Fail(code int, message string) Handler {
	return func([]json.RawMessage) (interface{}, *Error) {
		return nil, &Error{Code: code, Message: message}
	}
}

// Url of the node
func (n *Node) Url() string {
	return n.server.URL
}

// Handle sets the method handler, replacing the previous one
func (n *Node) Handle(method string, handler Handler) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.handlers[method] = handler
}

// Calls returns how many times the method was requested
func (n *Node) Calls(method string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.calls[method]
}

// Close the http server
func (n *Node) Close() {
	n.server.Close()
}

func (n *Node) serve(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls[req.Method]++
	handler, ok := n.handlers[req.Method]
	n.mu.Unlock()

	reply := response{Version: "2.0", Id: req.Id}
	if !ok {
		reply.Error = &Error{Code: -32601, Message: "the method " + req.Method + " does not exist/is not available"}
	} else {
		reply.Result, reply.Error = handler(req.Params)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reply)
}
