package cmd

import (
	"bytes"
	"strings"
	"testing"

	"movie-ticket-booking/internal/data/repository"
	"movie-ticket-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func runConsole(t *testing.T, seed bool, lines ...string) string {
	t.Helper()

	log := zaptest.NewLogger(t)
	service := usecase.NewService(repository.NewRepository(log), log)
	if seed {
		usecase.Seed(service.Inventory, usecase.DefaultCatalog)
	}

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	require.NoError(t, NewConsole(service.Inventory, input, &out, log).Run())
	return out.String()
}

func TestConsoleExit(t *testing.T) {
	out := runConsole(t, false, "6")

	assert.Contains(t, out, "Movie Ticket Booking System Menu:")
	assert.Contains(t, out, "Enter your choice (1-6): ")
	assert.True(t, strings.HasSuffix(out, "Exiting. Thank you!\n"))
}

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	out := runConsole(t, false, "3", "jawan")

	assert.Contains(t, out, "Enter show timing: ")
	assert.NotContains(t, out, "Booking confirmed")
}

func TestConsoleInvalidChoice(t *testing.T) {
	out := runConsole(t, false, "9", "abc", "6")

	assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please enter a number between 1 and 6."))
}

func TestConsoleDisplayMovies(t *testing.T) {
	out := runConsole(t, true, "2", "6")

	assert.Contains(t, out, "Available Movies:\n"+
		"Title: Jawan, Genre: Action, Show Timings: 9AM, 12PM, 3PM, 6PM\n"+
		"Title: Tiger3, Genre: Action, Show Timings: 9AM, 12PM, 3PM, 6PM\n"+
		"Title: Dunki, Genre: Drama, Show Timings: 9AM, 12PM, 3PM, 6PM\n"+
		"Title: Animal, Genre: Drama, Show Timings: 9AM, 12PM, 3PM, 6PM\n")
}

func TestConsoleAddBookCancelStatus(t *testing.T) {
	out := runConsole(t, false,
		"1", "Jawan", "ACTION", "9AM, 12PM", "3",
		"3", "JAWAN", "9AM", "2",
		"4", "jawan", "9AM", "1",
		"5", "jawan",
		"6",
	)

	assert.Contains(t, out, "Movie added successfully!")
	assert.Contains(t, out, "Booking confirmed! Movie: Jawan, Timing: 9AM, Seats: 1, 2\n")
	assert.Contains(t, out, "Ticket canceled for Movie: Jawan, Timing: 9AM, Seat: 1\n")
	assert.Contains(t, out, "\nMovie: Jawan, Genre: Action\n"+
		"Show Timings: 9AM, 12PM\n"+
		"Available Seats:\n"+
		"9AM: 3, 1\n"+
		"12PM: 1, 2, 3\n")
}

func TestConsoleRejections(t *testing.T) {
	out := runConsole(t, true,
		"3", "pathaan", "9AM", "1",
		"3", "jawan", "1AM", "1",
		"3", "jawan", "9AM", "11",
		"4", "jawan", "9AM", "1, 2",
		"5", "pathaan",
		"6",
	)

	assert.Equal(t, 2, strings.Count(out, "Movie not found.\n"))
	assert.Contains(t, out, "Invalid Show Timing!\n")
	assert.Contains(t, out, "Not enough available seats for Jawan at 9AM.\n")
	assert.Contains(t, out, "Invalid Seat Numbers!\n")
}

func TestConsoleAddMovieRequiresTitle(t *testing.T) {
	out := runConsole(t, false, "1", "", "drama", "9AM", "5", "2", "6")

	assert.Contains(t, out, "Validation failed: Title: This field is required")
	assert.NotContains(t, out, "Movie added successfully!")
	assert.NotContains(t, out, "Title: , Genre")
}
