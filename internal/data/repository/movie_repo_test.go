package repository

import (
	"testing"

	"movie-ticket-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func titles(movies []*entity.Movie) []string {
	out := make([]string, len(movies))
	for i, movie := range movies {
		out[i] = movie.Title
	}
	return out
}

func TestMovieRepositoryFindByTitleIgnoresCase(t *testing.T) {
	repo := NewMovieRepository(zaptest.NewLogger(t))
	repo.Save(entity.NewMovie("Jawan", "action", []string{"9AM"}, 3))

	for _, title := range []string{"jawan", "JAWAN", "JaWaN"} {
		movie := repo.FindByTitle(title)
		require.NotNil(t, movie, title)
		assert.Equal(t, "jawan", movie.Title)
	}

	assert.Nil(t, repo.FindByTitle("dunki"))
}

func TestMovieRepositoryKeepsInsertionOrder(t *testing.T) {
	repo := NewMovieRepository(zaptest.NewLogger(t))
	for _, title := range []string{"jawan", "tiger3", "dunki", "animal"} {
		repo.Save(entity.NewMovie(title, "drama", []string{"9AM"}, 1))
	}

	assert.Equal(t, []string{"jawan", "tiger3", "dunki", "animal"}, titles(repo.FindAll()))
	assert.Equal(t, 4, repo.Count())
}

func TestMovieRepositorySaveReplacesInPlace(t *testing.T) {
	repo := NewMovieRepository(zaptest.NewLogger(t))
	repo.Save(entity.NewMovie("jawan", "action", []string{"9AM"}, 3))
	repo.Save(entity.NewMovie("dunki", "drama", []string{"9AM"}, 3))

	_, ok := repo.FindByTitle("jawan").Pool("9AM").Take(2)
	require.True(t, ok)

	repo.Save(entity.NewMovie("JAWAN", "thriller", []string{"6PM"}, 5))

	assert.Equal(t, []string{"jawan", "dunki"}, titles(repo.FindAll()))
	assert.Equal(t, 2, repo.Count())

	movie := repo.FindByTitle("jawan")
	assert.Equal(t, "thriller", movie.Genre)
	assert.Nil(t, movie.Pool("9AM"))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, movie.Pool("6PM").Available)
}

func TestNewRepository(t *testing.T) {
	repos := NewRepository(zaptest.NewLogger(t))
	require.NotNil(t, repos.Movie)
	assert.Zero(t, repos.Movie.Count())
}
