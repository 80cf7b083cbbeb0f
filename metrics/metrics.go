// Package metrics exposes Prometheus-format counters for the directory
// authority and serves them on a dedicated listener.
package metrics

import (
	"context"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
)

var (
	advertisementsStored = metrics.NewCounter("protover_advertisements_stored_total")
	parseErrors          = metrics.NewCounter("protover_parse_errors_total")
	votesComputed        = metrics.NewCounter("protover_votes_computed_total")
	consensusComputed    = metrics.NewCounter("protover_consensus_documents_total")
)

// IncAdvertisementStored counts one stored relay advertisement.
func IncAdvertisementStored() { advertisementsStored.Inc() }

// IncParseError counts one rejected protocol list.
func IncParseError() { parseErrors.Inc() }

// IncVoteComputed counts one ad-hoc vote computation.
func IncVoteComputed() { votesComputed.Inc() }

// IncConsensusComputed counts one signed consensus document.
func IncConsensusComputed() { consensusComputed.Inc() }

// MetricsServer serves the metrics endpoint on its own address, separate
// from the public API listener.
type MetricsServer struct {
	srv *http.Server
}

// New creates a metrics server for the given package on listenAddr. An
// empty listenAddr yields an inert server whose start is skipped by the
// caller.
func New(pkg, listenAddr string) (*MetricsServer, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Package", pkg)
		metrics.WritePrometheus(w, true)
	})

	return &MetricsServer{
		srv: &http.Server{
			Addr:    listenAddr,
			Handler: mux,
		},
	}, nil
}

// ListenAndServe starts serving metrics; it blocks like http.Server.
func (s *MetricsServer) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

// Shutdown gracefully stops the metrics server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
