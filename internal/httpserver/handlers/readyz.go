package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/startpage/internal/logger"
)

const readyzTimeout = 2 * time.Second

type readyzResponse struct {
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// Readyz answers 503 while the storage backend cannot be reached.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
		defer cancel()

		if err := d.Backend.Ping(ctx); err != nil {
			d.Logger.Warn("readiness check failed", logger.Error(err))
			d.Response.WriteJSON(w, http.StatusServiceUnavailable, readyzResponse{
				Ready: false,
				Error: "storage unavailable",
			})
			return
		}

		d.Response.WriteJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}
