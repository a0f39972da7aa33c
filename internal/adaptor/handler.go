package adaptor

import (
	"errors"
	"net/http"
	"sync"

	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Booking *BookingHandler
}

// NewHandler builds the HTTP handlers. The inventory is not safe for
// concurrent use, so every handler shares one lock around it.
func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	mu := &sync.Mutex{}
	return &Handler{
		Movie:   NewMovieHandler(service.Inventory, mu, log),
		Booking: NewBookingHandler(service.Inventory, mu, log),
	}
}

// handleServiceError maps inventory errors to responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidShowTiming),
		errors.Is(err, usecase.ErrInsufficientSeats),
		errors.Is(err, usecase.ErrInvalidSeatNumbers):
		log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), err)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
