package entity

import (
	"strings"

	"movie-ticket-booking/pkg/utils"
)

type Movie struct {
	Title       string // normalized, see NormalizeTitle
	Genre       string
	ShowTimings []string
	TotalSeats  int

	pools     map[string]*SeatPool
	poolOrder []string
}

// NewMovie builds a movie with a fresh seat pool per distinct timing.
// Duplicate timings stay in ShowTimings but share one pool, positioned
// where the timing first appeared.
func NewMovie(title, genre string, showTimings []string, totalSeats int) *Movie {
	movie := &Movie{
		Title:       NormalizeTitle(title),
		Genre:       strings.ToLower(genre),
		ShowTimings: append([]string{}, showTimings...),
		TotalSeats:  totalSeats,
		pools:       make(map[string]*SeatPool, len(showTimings)),
	}

	for _, timing := range showTimings {
		if _, exists := movie.pools[timing]; !exists {
			movie.poolOrder = append(movie.poolOrder, timing)
		}
		movie.pools[timing] = NewSeatPool(totalSeats)
	}

	return movie
}

func NormalizeTitle(title string) string {
	return strings.ToLower(title)
}

func (m *Movie) DisplayTitle() string {
	return utils.Capitalize(m.Title)
}

func (m *Movie) DisplayGenre() string {
	return utils.Capitalize(m.Genre)
}

// Pool returns the seat pool for timing, or nil if the movie does not screen then.
func (m *Movie) Pool(timing string) *SeatPool {
	return m.pools[timing]
}

// PoolTimings lists the distinct timings in pool order.
func (m *Movie) PoolTimings() []string {
	return append([]string{}, m.poolOrder...)
}
