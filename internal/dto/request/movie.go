package request

// AddMovieRequest carries a new movie. Only the title is checked for shape;
// the inventory itself accepts any values.
type AddMovieRequest struct {
	Title       string   `json:"title" validate:"required"`
	Genre       string   `json:"genre"`
	ShowTimings []string `json:"show_timings"`
	TotalSeats  int      `json:"total_seats"`
}
