// Package httpserver provides the reusable HTTP server shell for the
// directory-authority binaries.
//
// BaseServer wraps the registry's route handlers with the operational
// endpoints every deployment needs: liveness and readiness checks, drain
// control for load balancers, an optional Prometheus-compatible metrics
// listener, optional pprof, request logging, CORS for status dashboards,
// and graceful shutdown. Handlers plug in through the RouteRegistrar
// interface.
//
//	// Implement the RouteRegistrar interface for your handler
//	func (h *Handler) RegisterRoutes(r chi.Router) {
//	    r.Get("/consensus", h.consensus)
//	}
//
//	srv, err := httpserver.New(cfg, handler)
//	srv.RunInBackground()
//	defer srv.Shutdown()
package httpserver
