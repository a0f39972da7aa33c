package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"movie-ticket-booking/internal/dto/request"
	"movie-ticket-booking/internal/usecase"
	"movie-ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	choiceAddMovie = iota + 1
	choiceDisplayMovies
	choiceBookTicket
	choiceCancelTicket
	choiceMovieStatus
	choiceExit
)

// Console is the interactive menu front-end of the inventory.
type Console struct {
	service usecase.InventoryService
	in      *bufio.Scanner
	out     io.Writer
	log     *zap.Logger
}

func NewConsole(service usecase.InventoryService, in io.Reader, out io.Writer, log *zap.Logger) *Console {
	return &Console{
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log.With(zap.String("handler", "console")),
	}
}

// Run shows the menu until the user exits or input ends.
func (c *Console) Run() error {
	for {
		c.printMenu()

		line, ok := c.prompt("Enter your choice (1-6): ")
		if !ok {
			return c.in.Err()
		}

		switch utils.ParseInt(line) {
		case choiceAddMovie:
			ok = c.addMovie()
		case choiceDisplayMovies:
			c.displayMovies()
		case choiceBookTicket:
			ok = c.bookTicket()
		case choiceCancelTicket:
			ok = c.cancelTicket()
		case choiceMovieStatus:
			ok = c.movieStatus()
		case choiceExit:
			c.println("Exiting. Thank you!")
			return nil
		default:
			c.println("Invalid choice. Please enter a number between 1 and 6.")
		}

		if !ok {
			return c.in.Err()
		}
	}
}

func (c *Console) printMenu() {
	c.println("\nMovie Ticket Booking System Menu:")
	c.println("1. Add Movie")
	c.println("2. Display Movies")
	c.println("3. Book Ticket")
	c.println("4. Cancel Ticket")
	c.println("5. Display Movie Status")
	c.println("6. Exit")
}

func (c *Console) addMovie() bool {
	var req request.AddMovieRequest
	var line string
	ok := c.prompts(
		field{"Enter movie title: ", func(s string) { req.Title = s }},
		field{"Enter genre: ", func(s string) { req.Genre = s }},
		field{"Enter show timings (comma-separated): ", func(s string) { req.ShowTimings = utils.SplitList(s) }},
		field{"Enter total seats: ", func(s string) { line = s }},
	)
	if !ok {
		return false
	}
	req.TotalSeats = utils.ParseInt(line)

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		c.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		c.println("Validation failed: " + utils.FormatValidationErrors(errs))
		return true
	}

	c.service.AddMovie(&req)
	c.println("Movie added successfully!")
	return true
}

func (c *Console) displayMovies() {
	c.println("Available Movies:")
	for _, movie := range c.service.ListMovies() {
		c.println(fmt.Sprintf("Title: %s, Genre: %s, Show Timings: %s",
			movie.Title, movie.Genre, strings.Join(movie.ShowTimings, ", ")))
	}
}

func (c *Console) bookTicket() bool {
	var req request.BookTicketRequest
	ok := c.prompts(
		field{"Enter movie title: ", func(s string) { req.Title = s }},
		field{"Enter show timing: ", func(s string) { req.Timing = s }},
		field{"Enter number of seats to book: ", func(s string) { req.SeatCount = utils.ParseInt(s) }},
	)
	if !ok {
		return false
	}

	booking, err := c.service.BookTicket(&req)
	if err != nil {
		c.printError(err)
		return true
	}

	c.println(fmt.Sprintf("Booking confirmed! Movie: %s, Timing: %s, Seats: %s",
		booking.Title, booking.Timing, utils.JoinInts(booking.Seats, ", ")))
	return true
}

func (c *Console) cancelTicket() bool {
	var req request.CancelTicketRequest
	ok := c.prompts(
		field{"Enter movie title: ", func(s string) { req.Title = s }},
		field{"Enter show timing: ", func(s string) { req.Timing = s }},
		field{"Enter comma-separated seat numbers to cancel: ", func(s string) { req.SeatNumbers = utils.ParseIntList(s) }},
	)
	if !ok {
		return false
	}

	cancellation, err := c.service.CancelTicket(&req)
	if err != nil {
		c.printError(err)
		return true
	}

	c.println(fmt.Sprintf("Ticket canceled for Movie: %s, Timing: %s, Seat: %s",
		cancellation.Title, cancellation.Timing, utils.JoinInts(cancellation.Seats, ", ")))
	return true
}

func (c *Console) movieStatus() bool {
	title, ok := c.prompt("Enter movie title: ")
	if !ok {
		return false
	}

	status, err := c.service.MovieStatus(title)
	if err != nil {
		c.printError(err)
		return true
	}

	c.println(fmt.Sprintf("\nMovie: %s, Genre: %s", status.Title, status.Genre))
	c.println("Show Timings: " + strings.Join(status.ShowTimings, ", "))
	c.println("Available Seats:")
	for _, seats := range status.Seats {
		c.println(fmt.Sprintf("%s: %s", seats.Timing, utils.JoinInts(seats.Available, ", ")))
	}
	return true
}

func (c *Console) printError(err error) {
	var insufficient *usecase.InsufficientSeatsError

	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		c.println("Movie not found.")
	case errors.Is(err, usecase.ErrInvalidShowTiming):
		c.println("Invalid Show Timing!")
	case errors.As(err, &insufficient):
		c.println(fmt.Sprintf("Not enough available seats for %s at %s.", insufficient.Title, insufficient.Timing))
	case errors.Is(err, usecase.ErrInvalidSeatNumbers):
		c.println("Invalid Seat Numbers!")
	default:
		c.log.Error("Unexpected inventory error", zap.Error(err))
		c.println("Something went wrong: " + err.Error())
	}
}

type field struct {
	label string
	set   func(string)
}

// prompts asks for each field in order and stops at the first missing line.
func (c *Console) prompts(fields ...field) bool {
	for _, f := range fields {
		line, ok := c.prompt(f.label)
		if !ok {
			return false
		}
		f.set(line)
	}
	return true
}

func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) println(line string) {
	fmt.Fprintln(c.out, line)
}
