package wire

import (
	"movie-ticket-booking/internal/adaptor"
	"movie-ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	log.Debug("Wiring booking routes", zap.String("app", config.App.Name))

	// POST /api/movies/{title}/bookings - book the first N available seats
	r.Post("/api/movies/{title}/bookings", bookingHandler.BookTicket)

	// POST /api/movies/{title}/cancellations - release booked seats
	r.Post("/api/movies/{title}/cancellations", bookingHandler.CancelTicket)
}
