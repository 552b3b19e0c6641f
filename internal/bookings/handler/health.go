package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "tably/pkg/http"
	"tably/pkg/logger"
)

type HealthResponse struct {
	Status   string `json:"status"`
	Bookings int    `json:"bookings,omitempty"`
}

// BookingCounter is the slice of the repository the health handler needs.
type BookingCounter interface {
	Count(ctx context.Context) int
}

type HealthHandler struct {
	counter BookingCounter
	log     *logger.Logger
}

func NewHealthHandler(counter BookingCounter, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		counter: counter,
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

// Ready reports readiness. Storage is process-local so readiness follows
// liveness; the booking count is included for operators.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Bookings: h.counter.Count(r.Context()),
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
