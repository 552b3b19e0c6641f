package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"tably/internal/bookings/service"
	apperrors "tably/pkg/errors"
	httputil "tably/pkg/http"
	"tably/pkg/logger"
	"tably/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

// BookingsResponse is the GET /bookings body. Bookings is always present,
// empty rather than null when nothing matches.
type BookingsResponse struct {
	Bookings []*model.Booking `json:"bookings"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.MalformedRequest(apperrors.MsgInvalidBooking)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if _, err := h.service.Create(r.Context(), &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteText(w, http.StatusOK, "Booking created successfully"); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		if writeErr := httputil.WriteError(w, apperrors.MalformedRequest(apperrors.MsgInvalidDate)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	date, err := time.Parse(model.LayoutDate, dateStr)
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.MalformedRequest(apperrors.MsgInvalidDate)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	bookings := h.service.ListByDate(r.Context(), date)
	if bookings == nil {
		bookings = []*model.Booking{}
	}

	if err := httputil.WriteJSON(w, http.StatusOK, BookingsResponse{Bookings: bookings}); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/booking", h.Create)
	router.GET("/bookings", h.List)
}
