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

type MovieHandler struct {
	service usecase.InventoryService
	mu      *sync.Mutex
	log     *zap.Logger
}

func NewMovieHandler(service usecase.InventoryService, mu *sync.Mutex, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		mu:      mu,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// AddMovie handles POST /api/movies
func (h *MovieHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req request.AddMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	h.mu.Lock()
	movie := h.service.AddMovie(&req)
	h.mu.Unlock()

	utils.ResponseCreated(w, "Movie added successfully", movie)
}

// ListMovies handles GET /api/movies
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	movies := h.service.ListMovies()
	h.mu.Unlock()

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieStatus handles GET /api/movies/{title}
func (h *MovieHandler) GetMovieStatus(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	h.mu.Lock()
	status, err := h.service.MovieStatus(title)
	h.mu.Unlock()

	if err != nil {
		handleServiceError(w, h.log, err, "get movie status")
		return
	}

	utils.ResponseSuccess(w, "success", status)
}
