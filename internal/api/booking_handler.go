package api

import (
	"log/slog"
	"net/http"

	"github.com/pacificaway/pacificaway-api/internal/api/shared"
	"github.com/pacificaway/pacificaway-api/internal/domain"
	"github.com/pacificaway/pacificaway-api/internal/service"
)

// BookingHandler serves /bookings.
type BookingHandler struct {
	bookings service.BookingService
	logger   *slog.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookings service.BookingService, logger *slog.Logger) *BookingHandler {
	if logger == nil {
		panic("logger cannot be nil for BookingHandler")
	}
	return &BookingHandler{bookings: bookings, logger: logger.With("component", "booking_handler")}
}

// Create handles POST /bookings. The customer is always the caller.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req BookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, service.ErrBookingFieldsMissing, ResourceBooking, "")
		return
	}

	booking, err := h.bookings.Create(r.Context(), customerID, req.ServiceID, req.Date, req.Notes)
	if err != nil {
		HandleAPIError(w, r, err, ResourceBooking, "Failed to create booking")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, shared.Envelope{"booking": booking})
}

// ListMine handles GET /bookings/me.
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	bookings, err := h.bookings.ListMine(r.Context(), customerID)
	if err != nil {
		HandleAPIError(w, r, err, ResourceBooking, "Failed to list bookings")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"bookings": bookings})
}

// UpdateStatus handles PATCH /bookings/{id}/status.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req BookingStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		HandleAPIError(w, r, domain.ErrInvalidStatus, ResourceBooking, "")
		return
	}
	id, ok := pathID(w, r, ResourceBooking)
	if !ok {
		return
	}

	booking, err := h.bookings.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		HandleAPIError(w, r, err, ResourceBooking, "Failed to update booking")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.Envelope{"booking": booking})
}
