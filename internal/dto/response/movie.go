package response

import (
	"movie-ticket-booking/internal/data/entity"
)

type MovieResponse struct {
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ShowTimings []string `json:"show_timings"`
	TotalSeats  int      `json:"total_seats"`
}

type TimingSeats struct {
	Timing    string `json:"timing"`
	Available []int  `json:"available"`
}

// MovieStatusResponse is a snapshot of a movie's seat pools. Available seats
// are listed in pool order, which is not necessarily ascending.
type MovieStatusResponse struct {
	Title       string        `json:"title"`
	Genre       string        `json:"genre"`
	ShowTimings []string      `json:"show_timings"`
	Seats       []TimingSeats `json:"seats"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		Title:       movie.DisplayTitle(),
		Genre:       movie.DisplayGenre(),
		ShowTimings: append([]string{}, movie.ShowTimings...),
		TotalSeats:  movie.TotalSeats,
	}
}

func MovieToStatusResponse(movie *entity.Movie) MovieStatusResponse {
	timings := movie.PoolTimings()
	seats := make([]TimingSeats, len(timings))
	for i, timing := range timings {
		seats[i] = TimingSeats{
			Timing:    timing,
			Available: movie.Pool(timing).AvailableSeats(),
		}
	}

	return MovieStatusResponse{
		Title:       movie.DisplayTitle(),
		Genre:       movie.DisplayGenre(),
		ShowTimings: append([]string{}, movie.ShowTimings...),
		Seats:       seats,
	}
}
