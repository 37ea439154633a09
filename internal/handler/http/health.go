// Package http provides the HTTP handlers and middleware for the API:
// user-data CRUD endpoints, the health probe, the metrics endpoint, and
// the logging, recovery, request-limit, and metrics middleware.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"datapulse/internal/handler/http/respond"
	"datapulse/internal/infra/db"
)

// HealthResponse is the JSON body returned by the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`   // "ok" or "error"
	Database string `json:"database"` // "reachable" or "unreachable"
}

// HealthHandler reports service health. It probes database
// connectivity with a bounded-timeout query and returns 200 when
// everything responds, 500 otherwise. Giving it the instrumented
// querier keeps the probe visible in the query metrics.
type HealthHandler struct {
	DB db.Querier
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "ok", Database: "reachable"}
	code := http.StatusOK

	if err := h.probe(ctx); err != nil {
		resp.Status = "error"
		resp.Database = "unreachable"
		code = http.StatusInternalServerError
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, resp)
}

// probe runs a trivial query rather than a bare ping so a wedged
// connection pool also shows up as unhealthy.
func (h *HealthHandler) probe(ctx context.Context) error {
	if h.DB == nil {
		return errors.New("database not configured")
	}
	var one int
	return h.DB.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}
