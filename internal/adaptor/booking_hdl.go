package adaptor

import (
	"encoding/json"
	"net/http"
	"sync"

	"movie-ticket-booking/internal/dto/request"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.InventoryService
	mu      *sync.Mutex
	log     *zap.Logger
}

func NewBookingHandler(service usecase.InventoryService, mu *sync.Mutex, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		mu:      mu,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookTicket handles POST /api/movies/{title}/bookings
func (h *BookingHandler) BookTicket(w http.ResponseWriter, r *http.Request) {
	var req request.BookTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.Title = chi.URLParam(r, "title")

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	h.mu.Lock()
	booking, err := h.service.BookTicket(&req)
	h.mu.Unlock()

	if err != nil {
		handleServiceError(w, h.log, err, "book ticket")
		return
	}

	utils.ResponseCreated(w, "Booking confirmed", booking)
}

// CancelTicket handles POST /api/movies/{title}/cancellations
func (h *BookingHandler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	var req request.CancelTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.Title = chi.URLParam(r, "title")

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	h.mu.Lock()
	cancellation, err := h.service.CancelTicket(&req)
	h.mu.Unlock()

	if err != nil {
		handleServiceError(w, h.log, err, "cancel ticket")
		return
	}

	utils.ResponseSuccess(w, "Ticket canceled", cancellation)
}
