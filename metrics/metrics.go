// Package metrics counts the submissions and the reads of the transactor.
//
// The metrics are kept in their own registry, so that the transactors
// created in the tests don't collide in the global prometheus registry.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/forwardswap/transactor/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	NAMESPACE = "transactor"

	// submission results
	SUBMISSION_SUCCESS  = "success"
	SUBMISSION_REVERTED = "reverted"
	SUBMISSION_FAILED   = "failed"

	// read results
	READ_SUCCESS = "success"
	READ_FAILED  = "failed"
)

type Metrics struct {
	Submissions *prometheus.CounterVec
	Reads       *prometheus.CounterVec
	ReceiptWait prometheus.Histogram
	registry    *prometheus.Registry
}

func New() *Metrics {
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "submissions_total",
		Help:      "Number of submitted transactions by the result and the failed stage.",
	}, []string{"result", "stage"})
	reads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: NAMESPACE,
		Name:      "reads_total",
		Help:      "Number of the smartcontract variable reads by the result.",
	}, []string{"result"})
	receipt_wait := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: NAMESPACE,
		Name:      "receipt_wait_seconds",
		Help:      "Time between the broadcast and the receipt of the transaction.",
		Buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30, 60, 120},
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(submissions, reads, receipt_wait)

	return &Metrics{
		Submissions: submissions,
		Reads:       reads,
		ReceiptWait: receipt_wait,
		registry:    registry,
	}
}

// ObserveSubmission counts the transaction submission.
// The stage is empty unless the submission failed.
// Does nothing on the nil metrics.
func (m *Metrics) ObserveSubmission(result string, stage string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(result, stage).Inc()
}

// ObserveRead counts the variable read. Does nothing on the nil metrics.
func (m *Metrics) ObserveRead(result string) {
	if m == nil {
		return
	}
	m.Reads.WithLabelValues(result).Inc()
}

// ObserveReceiptWait records the receipt waiting time. Does nothing on the nil metrics.
func (m *Metrics) ObserveReceiptWait(duration time.Duration) {
	if m == nil {
		return
	}
	m.ReceiptWait.Observe(duration.Seconds())
}

// Registry of the transactor metrics
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve the metrics on the address at /metrics until the context is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown_ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdown_ctx); err != nil {
			logger.Warn("metrics server shutdown", "error", err)
		}
	}()

	logger.Info("serving metrics", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.ListenAndServe: %w", err)
	}

	return nil
}
