package usecase

import (
	"movie-ticket-booking/internal/data/entity"
	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/dto/request"
	"movie-ticket-booking/internal/dto/response"
	"movie-ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

// InventoryService manages movies and their per-timing seat pools.
//
// Inputs are taken as given: empty genres, zero or negative seat totals and
// duplicate timings are all accepted. Failed operations never mutate state.
//
// An InventoryService is not safe for concurrent use. Booking and cancelling
// check the pool and then mutate it, so callers sharing one instance across
// goroutines must serialize every call.
type InventoryService interface {
	// AddMovie creates the movie, replacing any movie with the same title
	// together with all of its bookings.
	AddMovie(req *request.AddMovieRequest) *response.MovieResponse
	ListMovies() []response.MovieResponse
	// BookTicket books the first SeatCount available seats, in pool order.
	BookTicket(req *request.BookTicketRequest) (*response.BookingResponse, error)
	// CancelTicket releases booked seats, all or none. Released seats are
	// appended to the available list in request order.
	CancelTicket(req *request.CancelTicketRequest) (*response.CancellationResponse, error)
	MovieStatus(title string) (*response.MovieStatusResponse, error)
}

type inventoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInventoryService(repo *repository.Repository, log *zap.Logger) InventoryService {
	return &inventoryService{
		repo: repo,
		log:  log.With(zap.String("service", "inventory")),
	}
}

func (s *inventoryService) AddMovie(req *request.AddMovieRequest) *response.MovieResponse {
	movie := entity.NewMovie(req.Title, req.Genre, req.ShowTimings, req.TotalSeats)

	replaced := s.repo.Movie.FindByTitle(movie.Title) != nil
	s.repo.Movie.Save(movie)

	s.log.Info("Movie added",
		zap.String("title", movie.Title),
		zap.String("genre", movie.Genre),
		zap.Strings("show_timings", movie.ShowTimings),
		zap.Int("total_seats", movie.TotalSeats),
		zap.Bool("replaced", replaced),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp
}

func (s *inventoryService) ListMovies() []response.MovieResponse {
	movies := s.repo.Movie.FindAll()

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	s.log.Debug("Movies listed", zap.Int("count", len(movies)))
	return movieResponses
}

func (s *inventoryService) BookTicket(req *request.BookTicketRequest) (*response.BookingResponse, error) {
	movie, err := s.findMovie(req.Title)
	if err != nil {
		return nil, err
	}

	pool := movie.Pool(req.Timing)
	if pool == nil {
		s.log.Warn("Booking rejected - invalid show timing",
			zap.String("title", movie.Title),
			zap.String("timing", req.Timing),
		)
		return nil, &InvalidShowTimingError{Title: movie.DisplayTitle(), Timing: req.Timing}
	}

	seats, ok := pool.Take(req.SeatCount)
	if !ok {
		s.log.Warn("Booking rejected - not enough seats",
			zap.String("title", movie.Title),
			zap.String("timing", req.Timing),
			zap.Int("requested", req.SeatCount),
			zap.Int("available", len(pool.Available)),
		)
		return nil, &InsufficientSeatsError{
			Title:     movie.DisplayTitle(),
			Timing:    req.Timing,
			Requested: req.SeatCount,
			Available: len(pool.Available),
		}
	}

	booking := &response.BookingResponse{
		Reference: utils.GenerateReference(),
		Title:     movie.DisplayTitle(),
		Timing:    req.Timing,
		Seats:     seats,
	}

	s.log.Info("Booking confirmed",
		zap.String("reference", booking.Reference),
		zap.String("title", movie.Title),
		zap.String("timing", req.Timing),
		zap.Ints("seats", seats),
		zap.Int("available", len(pool.Available)),
	)

	return booking, nil
}

func (s *inventoryService) CancelTicket(req *request.CancelTicketRequest) (*response.CancellationResponse, error) {
	movie, err := s.findMovie(req.Title)
	if err != nil {
		return nil, err
	}

	invalid := &InvalidSeatNumbersError{
		Title:  movie.DisplayTitle(),
		Timing: req.Timing,
		Seats:  append([]int{}, req.SeatNumbers...),
	}

	// An unknown timing has no booked seats, so any non-empty request is invalid.
	var released []int
	if pool := movie.Pool(req.Timing); pool != nil {
		var ok bool
		if released, ok = pool.Release(req.SeatNumbers); !ok {
			s.logInvalidSeats(movie, req)
			return nil, invalid
		}
	} else if len(req.SeatNumbers) > 0 {
		s.logInvalidSeats(movie, req)
		return nil, invalid
	} else {
		released = []int{}
	}

	cancellation := &response.CancellationResponse{
		Reference: utils.GenerateReference(),
		Title:     movie.DisplayTitle(),
		Timing:    req.Timing,
		Seats:     released,
	}

	s.log.Info("Ticket canceled",
		zap.String("reference", cancellation.Reference),
		zap.String("title", movie.Title),
		zap.String("timing", req.Timing),
		zap.Ints("seats", released),
	)

	return cancellation, nil
}

func (s *inventoryService) MovieStatus(title string) (*response.MovieStatusResponse, error) {
	movie, err := s.findMovie(title)
	if err != nil {
		return nil, err
	}

	status := response.MovieToStatusResponse(movie)
	return &status, nil
}

// ==================== HELPER METHODS ====================

func (s *inventoryService) findMovie(title string) (*entity.Movie, error) {
	movie := s.repo.Movie.FindByTitle(title)
	if movie == nil {
		s.log.Warn("Movie not found", zap.String("title", title))
		return nil, &MovieNotFoundError{Title: utils.Capitalize(entity.NormalizeTitle(title))}
	}
	return movie, nil
}

func (s *inventoryService) logInvalidSeats(movie *entity.Movie, req *request.CancelTicketRequest) {
	s.log.Warn("Cancellation rejected - invalid seat numbers",
		zap.String("title", movie.Title),
		zap.String("timing", req.Timing),
		zap.Ints("seats", req.SeatNumbers),
	)
}
