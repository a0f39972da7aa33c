package wire

import (
	"movie-ticket-booking/internal/adaptor"
	"movie-ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	log.Debug("Wiring movie routes", zap.String("app", config.App.Name))

	// POST /api/movies - add or replace a movie
	r.Post("/api/movies", movieHandler.AddMovie)

	// GET /api/movies - list movies in insertion order
	r.Get("/api/movies", movieHandler.ListMovies)

	// GET /api/movies/{title} - seat status per show timing
	r.Get("/api/movies/{title}", movieHandler.GetMovieStatus)
}
