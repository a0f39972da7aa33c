package request

type BookTicketRequest struct {
	Title     string `json:"title" validate:"required"`
	Timing    string `json:"timing" validate:"required"`
	SeatCount int    `json:"seat_count"`
}

type CancelTicketRequest struct {
	Title       string `json:"title" validate:"required"`
	Timing      string `json:"timing" validate:"required"`
	SeatNumbers []int  `json:"seat_numbers"`
}
