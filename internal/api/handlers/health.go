package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sereno-app/sereno/pkg/httpext"
	"github.com/sereno-app/sereno/pkg/logger"
)

// Pinger is anything that can report whether its backend answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

// HandleHealth reports ok while the store answers a ping.
func HandleHealth(store Pinger, w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		logger.Warn(logger.HANDLER, "Health check failed: %v", err)
		httpext.JsonErrorWithDetails(w, http.StatusServiceUnavailable, httpext.ErrorResponse{
			Error:   msgUnavailable,
			Details: err.Error(),
		})
		return
	}

	httpext.Json(w, http.StatusOK, map[string]string{"status": "ok"})
}
