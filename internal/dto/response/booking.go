package response

type BookingResponse struct {
	Reference string `json:"reference"`
	Title     string `json:"title"`
	Timing    string `json:"timing"`
	Seats     []int  `json:"seats"`
}

type CancellationResponse struct {
	Reference string `json:"reference"`
	Title     string `json:"title"`
	Timing    string `json:"timing"`
	Seats     []int  `json:"seats"`
}
