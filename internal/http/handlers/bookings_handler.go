package handlers

import (
	"errors"
	"net/http"

	"github.com/diagnosis/movezy-backend/internal/domain"
	"github.com/diagnosis/movezy-backend/internal/http/response"
	"github.com/diagnosis/movezy-backend/internal/service"
	"github.com/diagnosis/movezy-backend/pkg/logger"
)

type BookingsHandler struct {
	Bookings service.BookingService
}

func NewBookingsHandler(bookings service.BookingService) *BookingsHandler {
	return &BookingsHandler{Bookings: bookings}
}

func (h *BookingsHandler) create(w http.ResponseWriter, r *http.Request) {
	rec, err := decodeObject(w, r)
	if err != nil {
		response.BadRequest(w, "Request body must be a JSON object")
		return
	}

	res, err := h.Bookings.Create(r.Context(), rec)
	if errors.Is(err, domain.ErrInvalidDate) {
		response.WriteErrorWithDetails(w, http.StatusBadRequest, "Invalid requestedDeliveryDate", response.CodeInvalidDate, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to create booking", "error", err)
		response.WriteErrorWithDetails(w, http.StatusInternalServerError, "Error creating booking", response.CodeInternalError, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, res)
}

// query serves a single booking when id is given and a filtered list otherwise.
func (h *BookingsHandler) query(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := BookingsQuery{
		ID:    qs.Get("id"),
		Email: qs.Get("email"),
		From:  qs.Get("from"),
		To:    qs.Get("to"),
	}
	if err := validate.Struct(q); err != nil {
		response.WriteError(w, http.StatusBadRequest, "Invalid booking id", response.CodeInvalidID)
		return
	}

	if q.ID != "" {
		h.getByID(w, r, q.ID)
		return
	}

	filter, err := q.Filter()
	if err != nil {
		response.WriteErrorWithDetails(w, http.StatusBadRequest, "Invalid date range", response.CodeInvalidDate, err.Error())
		return
	}

	bookings, err := h.Bookings.Query(r.Context(), filter)
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to fetch bookings", "error", err)
		response.InternalError(w, "Error fetching bookings")
		return
	}
	if bookings == nil {
		bookings = []domain.Document{}
	}
	response.JSON(w, http.StatusOK, bookings)
}

func (h *BookingsHandler) getByID(w http.ResponseWriter, r *http.Request, id string) {
	booking, err := h.Bookings.Get(r.Context(), id)
	if errors.Is(err, domain.ErrInvalidID) {
		response.WriteError(w, http.StatusBadRequest, "Invalid booking id", response.CodeInvalidID)
		return
	}
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to fetch booking", "error", err, "booking_id", id)
		response.InternalError(w, "Error fetching bookings")
		return
	}
	if booking == nil {
		response.NotFound(w, "Booking not found")
		return
	}
	response.JSON(w, http.StatusOK, booking)
}
