package entity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPartition(t *testing.T, pool *SeatPool, totalSeats int) {
	t.Helper()

	all := append(pool.AvailableSeats(), pool.BookedSeats()...)
	sort.Ints(all)

	want := []int{}
	for seat := 1; seat <= totalSeats; seat++ {
		want = append(want, seat)
	}
	assert.Equal(t, want, all, "available and booked must partition 1..%d", totalSeats)
}

func TestNewSeatPool(t *testing.T) {
	pool := NewSeatPool(3)
	assert.Equal(t, []int{1, 2, 3}, pool.Available)
	assert.Empty(t, pool.Booked)

	assert.Empty(t, NewSeatPool(0).Available)
	assert.Empty(t, NewSeatPool(-2).Available)
}

func TestSeatPoolTake(t *testing.T) {
	pool := NewSeatPool(5)

	seats, ok := pool.Take(2)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, seats)
	assert.Equal(t, []int{3, 4, 5}, pool.Available)
	assert.Equal(t, []int{1, 2}, pool.Booked)
	assertPartition(t, pool, 5)

	seats, ok = pool.Take(4)
	assert.False(t, ok)
	assert.Nil(t, seats)
	assert.Equal(t, []int{3, 4, 5}, pool.Available, "failed take must not mutate")
	assert.Equal(t, []int{1, 2}, pool.Booked)

	for _, count := range []int{0, -1} {
		seats, ok = pool.Take(count)
		assert.True(t, ok)
		assert.Empty(t, seats)
		assert.Equal(t, []int{3, 4, 5}, pool.Available)
	}
}

func TestSeatPoolTakeDoesNotAliasReturnedSeats(t *testing.T) {
	pool := NewSeatPool(3)

	seats, ok := pool.Take(1)
	require.True(t, ok)
	seats[0] = 99

	assert.Equal(t, []int{1}, pool.Booked)
}

func TestSeatPoolRelease(t *testing.T) {
	pool := NewSeatPool(4)
	_, ok := pool.Take(3)
	require.True(t, ok)

	released, ok := pool.Release([]int{2})
	require.True(t, ok)
	assert.Equal(t, []int{2}, released)
	assert.Equal(t, []int{4, 2}, pool.Available, "released seats go to the back unsorted")
	assert.Equal(t, []int{1, 3}, pool.Booked)
	assertPartition(t, pool, 4)

	seats, ok := pool.Take(2)
	require.True(t, ok)
	assert.Equal(t, []int{4, 2}, seats)
}

func TestSeatPoolReleaseAllOrNothing(t *testing.T) {
	pool := NewSeatPool(4)
	_, ok := pool.Take(2)
	require.True(t, ok)

	released, ok := pool.Release([]int{1, 3})
	assert.False(t, ok)
	assert.Nil(t, released)
	assert.Equal(t, []int{3, 4}, pool.Available)
	assert.Equal(t, []int{1, 2}, pool.Booked)
}

func TestSeatPoolReleaseRepeatedSeat(t *testing.T) {
	pool := NewSeatPool(3)
	_, ok := pool.Take(2)
	require.True(t, ok)

	released, ok := pool.Release([]int{1, 1})
	require.True(t, ok)
	assert.Equal(t, []int{1}, released)
	assert.Equal(t, []int{3, 1}, pool.Available)
	assertPartition(t, pool, 3)
}

func TestSeatPoolReleaseNothing(t *testing.T) {
	pool := NewSeatPool(2)

	released, ok := pool.Release(nil)
	assert.True(t, ok)
	assert.Empty(t, released)
	assert.Equal(t, []int{1, 2}, pool.Available)
}

func TestNewMovie(t *testing.T) {
	movie := NewMovie("JaWaN", "ACTION", []string{"9AM", "12PM", "9AM"}, 2)

	assert.Equal(t, "jawan", movie.Title)
	assert.Equal(t, "action", movie.Genre)
	assert.Equal(t, "Jawan", movie.DisplayTitle())
	assert.Equal(t, "Action", movie.DisplayGenre())
	assert.Equal(t, []string{"9AM", "12PM", "9AM"}, movie.ShowTimings)
	assert.Equal(t, []string{"9AM", "12PM"}, movie.PoolTimings())

	require.NotNil(t, movie.Pool("9AM"))
	assert.Equal(t, []int{1, 2}, movie.Pool("9AM").Available)
	assert.Nil(t, movie.Pool("3PM"))
}

func TestNewMovieCopiesTimings(t *testing.T) {
	timings := []string{"9AM"}
	movie := NewMovie("dunki", "drama", timings, 1)
	timings[0] = "6PM"

	assert.Equal(t, []string{"9AM"}, movie.ShowTimings)
}
