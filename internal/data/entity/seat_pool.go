package entity

// SeatPool tracks the seats of one show timing. Available and Booked are
// disjoint and together always hold exactly 1..TotalSeats.
//
// Available starts sorted but is not kept sorted: released seats go to the
// back in the order they were released, and Take always serves from the front.
type SeatPool struct {
	Available []int
	Booked    []int
}

func NewSeatPool(totalSeats int) *SeatPool {
	pool := &SeatPool{
		Available: []int{},
		Booked:    []int{},
	}
	for seat := 1; seat <= totalSeats; seat++ {
		pool.Available = append(pool.Available, seat)
	}
	return pool
}

// Take books the first count available seats. It reports false and changes
// nothing when fewer than count seats are available. A count of zero or less
// books nothing.
func (p *SeatPool) Take(count int) ([]int, bool) {
	if count <= 0 {
		return []int{}, true
	}
	if count > len(p.Available) {
		return nil, false
	}

	seats := append([]int{}, p.Available[:count]...)
	p.Available = append([]int{}, p.Available[count:]...)
	p.Booked = append(p.Booked, seats...)

	return seats, true
}

// Release returns booked seats to the pool. Either every seat is currently
// booked and all of them are released, or nothing changes. Repeated seat
// numbers are released once.
func (p *SeatPool) Release(seats []int) ([]int, bool) {
	released := uniqueSeats(seats)
	if !p.IsBooked(released...) {
		return nil, false
	}

	releasing := make(map[int]struct{}, len(released))
	for _, seat := range released {
		releasing[seat] = struct{}{}
	}

	booked := make([]int, 0, len(p.Booked))
	for _, seat := range p.Booked {
		if _, ok := releasing[seat]; !ok {
			booked = append(booked, seat)
		}
	}

	p.Booked = booked
	p.Available = append(p.Available, released...)

	return released, true
}

// IsBooked reports whether every given seat is currently booked.
func (p *SeatPool) IsBooked(seats ...int) bool {
	booked := make(map[int]struct{}, len(p.Booked))
	for _, seat := range p.Booked {
		booked[seat] = struct{}{}
	}

	for _, seat := range seats {
		if _, ok := booked[seat]; !ok {
			return false
		}
	}
	return true
}

func (p *SeatPool) AvailableSeats() []int {
	return append([]int{}, p.Available...)
}

func (p *SeatPool) BookedSeats() []int {
	return append([]int{}, p.Booked...)
}

func uniqueSeats(seats []int) []int {
	seen := make(map[int]struct{}, len(seats))
	unique := make([]int, 0, len(seats))
	for _, seat := range seats {
		if _, dup := seen[seat]; dup {
			continue
		}
		seen[seat] = struct{}{}
		unique = append(unique, seat)
	}
	return unique
}
