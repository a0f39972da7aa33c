package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrMovieNotFound      = errors.New("movie not found")
	ErrInvalidShowTiming  = errors.New("invalid show timing")
	ErrInsufficientSeats  = errors.New("not enough available seats")
	ErrInvalidSeatNumbers = errors.New("invalid seat numbers")
)

// Rejected operations return one of the error types below. Each unwraps to
// the matching sentinel above, so callers can use errors.Is for the kind and
// errors.As for the details.

type MovieNotFoundError struct {
	Title string `json:"title"`
}

func (e *MovieNotFoundError) Error() string {
	return fmt.Sprintf("movie %s not found", e.Title)
}

func (e *MovieNotFoundError) Unwrap() error { return ErrMovieNotFound }

type InvalidShowTimingError struct {
	Title  string `json:"title"`
	Timing string `json:"timing"`
}

func (e *InvalidShowTimingError) Error() string {
	return fmt.Sprintf("invalid show timing %s for %s", e.Timing, e.Title)
}

func (e *InvalidShowTimingError) Unwrap() error { return ErrInvalidShowTiming }

type InsufficientSeatsError struct {
	Title     string `json:"title"`
	Timing    string `json:"timing"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("not enough available seats for %s at %s: requested %d, available %d",
		e.Title, e.Timing, e.Requested, e.Available)
}

func (e *InsufficientSeatsError) Unwrap() error { return ErrInsufficientSeats }

type InvalidSeatNumbersError struct {
	Title  string `json:"title"`
	Timing string `json:"timing"`
	Seats  []int  `json:"seats"`
}

func (e *InvalidSeatNumbersError) Error() string {
	return fmt.Sprintf("invalid seat numbers %v for %s at %s", e.Seats, e.Title, e.Timing)
}

func (e *InvalidSeatNumbersError) Unwrap() error { return ErrInvalidSeatNumbers }
