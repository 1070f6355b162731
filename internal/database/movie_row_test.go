package database

import (
	"testing"

	"cineverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoviesToRows_KeepsDatasetOrder(t *testing.T) {
	movies := []models.Movie{
		{ID: 7, Slug: "the-matrix", Genre: []string{"Sci-Fi"}, Cast: []string{"Keanu Reeves"}},
		{ID: 2, Slug: "the-dark-knight", Genre: []string{"Action"}, Cast: []string{"Christian Bale"}},
	}

	rows := MoviesToRows(movies)

	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Position)
	assert.Equal(t, 7, rows[0].ID)
	assert.Equal(t, 1, rows[1].Position)
	assert.Equal(t, "the-dark-knight", rows[1].Slug)

	assert.Equal(t, movies, RowsToMovies(rows))
}

func TestRowsToMovies_Empty(t *testing.T) {
	movies := RowsToMovies(nil)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestMovieRowTableName(t *testing.T) {
	assert.Equal(t, "catalogue_movies", MovieRow{}.TableName())
}

func TestPlanSeed_AppendsNewRowsAfterStoredPositions(t *testing.T) {
	existing := []MovieRow{{ID: 1, Position: 0}, {ID: 2, Position: 1}, {ID: 3, Position: 2}}
	movies := []models.Movie{
		{ID: 1, Slug: "inception"},
		{ID: 11, Slug: "oppenheimer"},
		{ID: 2, Slug: "the-dark-knight"},
		{ID: 3, Slug: "the-shawshank-redemption"},
		{ID: 12, Slug: "dune"},
	}

	rows := PlanSeed(movies, existing)

	require.Len(t, rows, 2)
	assert.Equal(t, 11, rows[0].ID)
	assert.Equal(t, 3, rows[0].Position)
	assert.Equal(t, 12, rows[1].ID)
	assert.Equal(t, 4, rows[1].Position)
}

func TestPlanSeed_EmptyTable(t *testing.T) {
	movies := []models.Movie{{ID: 5, Slug: "a"}, {ID: 6, Slug: "b"}}

	rows := PlanSeed(movies, nil)

	assert.Equal(t, MoviesToRows(movies), rows)
}

func TestPlanSeed_NothingNew(t *testing.T) {
	rows := PlanSeed([]models.Movie{{ID: 1}}, []MovieRow{{ID: 1, Position: 7}})

	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
