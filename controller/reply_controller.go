package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/forwardswap/transactor/communication/command"
	"github.com/forwardswap/transactor/log"

	zmq "github.com/pebbe/zmq4"
)

// POLL_INTERVAL is how often the controller checks the context cancellation
const POLL_INTERVAL = 100 * time.Millisecond

// NewReply creates a new synchronous Reply controller.
func NewReply(port uint64, logger *log.Logger) (*Controller, error) {
	// Socket to talk to clients
	socket, err := zmq.NewSocket(zmq.REP)
	if err != nil {
		return nil, fmt.Errorf("zmq.NewSocket: %w", err)
	}
	if err := socket.SetLinger(0); err != nil {
		_ = socket.Close()
		return nil, fmt.Errorf("socket.SetLinger: %w", err)
	}

	return &Controller{
		port:   port,
		socket: socket,
		logger: logger.Child("controller", "type", "reply", "port", port),
	}, nil
}

// Run the controller until the context is cancelled.
//
// It will bind itself to the socket endpoint and waits for the message.Request.
// If message.Request.Command is defined in the handlers, then executes it.
//
// Valid call:
//
//	reply, _ := controller.NewReply(port, logger)
//	go reply.Run(ctx, handlers, transactor)
//
// The parameters are the list of parameters that are passed to the command handlers
func (c *Controller) Run(ctx context.Context, handlers command.Handlers, parameters ...interface{}) error {
	url := Url("transactor", c.port)
	if err := c.socket.Bind(url); err != nil {
		return fmt.Errorf("socket.Bind(%s): %w", url, err)
	}
	c.logger.Info("waiting for the requests", "url", url, "commands", handlers.CommandNames())

	poller := zmq.NewPoller()
	poller.Add(c.socket, zmq.POLLIN)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("stopped", "reason", ctx.Err())
			return nil
		default:
		}

		polled, err := poller.Poll(POLL_INTERVAL)
		if err != nil {
			return fmt.Errorf("poller.Poll: %w", err)
		}
		if len(polled) == 0 {
			continue
		}

		raw, err := c.socket.RecvMessage(0)
		if err != nil {
			return fmt.Errorf("socket.RecvMessage: %w", err)
		}

		reply := c.Handle(ctx, raw, handlers, parameters...)
		if err := c.reply(reply); err != nil {
			return err
		}
	}
}
