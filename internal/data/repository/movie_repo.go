package repository

import (
	"movie-ticket-booking/internal/data/entity"

	"go.uber.org/zap"
)

// MovieRepository stores movies in memory, keyed by normalized title.
// It is not safe for concurrent use.
type MovieRepository interface {
	// Save stores movie, replacing any movie with the same title. A replaced
	// movie keeps its place in FindAll order.
	Save(movie *entity.Movie)
	FindByTitle(title string) *entity.Movie
	FindAll() []*entity.Movie
	Count() int
}

type movieRepository struct {
	movies map[string]*entity.Movie
	order  []string
	log    *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		movies: make(map[string]*entity.Movie),
		log:    log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Save(movie *entity.Movie) {
	_, replaced := r.movies[movie.Title]
	if !replaced {
		r.order = append(r.order, movie.Title)
	}
	r.movies[movie.Title] = movie

	r.log.Debug("Movie saved",
		zap.String("title", movie.Title),
		zap.Bool("replaced", replaced),
		zap.Int("total_movies", len(r.order)),
	)
}

// FindByTitle returns nil when no movie has the title.
func (r *movieRepository) FindByTitle(title string) *entity.Movie {
	return r.movies[entity.NormalizeTitle(title)]
}

func (r *movieRepository) FindAll() []*entity.Movie {
	movies := make([]*entity.Movie, 0, len(r.order))
	for _, title := range r.order {
		movies = append(movies, r.movies[title])
	}
	return movies
}

func (r *movieRepository) Count() int {
	return len(r.order)
}
