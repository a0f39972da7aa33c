package usecase

import (
	"movie-ticket-booking/internal/dto/request"
)

var defaultShowTimings = []string{"9AM", "12PM", "3PM", "6PM"}

// DefaultCatalog is the catalog loaded at startup when seeding is enabled.
var DefaultCatalog = []request.AddMovieRequest{
	{Title: "jawan", Genre: "action", ShowTimings: defaultShowTimings, TotalSeats: 10},
	{Title: "tiger3", Genre: "action", ShowTimings: defaultShowTimings, TotalSeats: 10},
	{Title: "dunki", Genre: "drama", ShowTimings: defaultShowTimings, TotalSeats: 10},
	{Title: "animal", Genre: "drama", ShowTimings: defaultShowTimings, TotalSeats: 10},
}

// Seed adds every movie of catalog and returns how many were added.
func Seed(inventory InventoryService, catalog []request.AddMovieRequest) int {
	for i := range catalog {
		inventory.AddMovie(&catalog[i])
	}
	return len(catalog)
}
