package repository

import (
	"testing"

	"cineverse/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestGenreSummaries(t *testing.T) {
	repo := NewMovieRepository(loadShipped(t))

	assert.Equal(t, []models.Genre{
		{Name: "Sci-Fi", Count: 3},
		{Name: "Action", Count: 3},
		{Name: "Thriller", Count: 3},
		{Name: "Crime", Count: 3},
		{Name: "Drama", Count: 8},
		{Name: "Adventure", Count: 1},
		{Name: "Romance", Count: 1},
		{Name: "Comedy", Count: 1},
	}, repo.GenreSummaries())
}

func TestGenreSummaries_MatchGetByGenre(t *testing.T) {
	repo := NewMovieRepository(loadShipped(t))

	for _, g := range repo.GenreSummaries() {
		assert.Len(t, repo.GetByGenre(g.Name), g.Count, g.Name)
	}
}

func TestGenreSummaries_SpellingVariantsStaySeparate(t *testing.T) {
	repo := NewMovieRepository([]models.Movie{
		{ID: 1, Slug: "a", Genre: []string{"Action"}},
		{ID: 2, Slug: "b", Genre: []string{"action"}},
	})

	assert.Equal(t, []models.Genre{{Name: "Action", Count: 1}, {Name: "action", Count: 1}}, repo.GenreSummaries())
	assert.Len(t, repo.GetByGenre("ACTION"), 2)
}
