package services

import (
	"testing"

	"cineverse/internal/models"
	"cineverse/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) MovieService {
	t.Helper()
	movies, err := repository.LoadCatalogueFile("")
	require.NoError(t, err)
	return NewMovieService(repository.NewMovieRepository(movies), NewMetadataBuilder(testSite()), quietLogger())
}

func TestHomePage(t *testing.T) {
	svc := newTestService(t)

	page := svc.HomePage()

	assert.Len(t, page.Movies, 10)
	require.Len(t, page.Featured, repository.DefaultFeaturedCount)
	assert.Equal(t, "the-shawshank-redemption", page.Featured[0].Slug)
	assert.Equal(t, "CineVerse", page.Meta.Title)
	assert.Equal(t, "Discover top-rated movies.", page.Meta.Description)
	assert.Equal(t, "https://cineverse.test/", page.Meta.CanonicalURL)
	assert.NotEmpty(t, page.Genres)
}

func TestMoviePage(t *testing.T) {
	svc := newTestService(t)

	page, ok := svc.MoviePage("inception")
	require.True(t, ok)

	assert.Equal(t, "Inception", page.Movie.Title)
	assert.Equal(t, "Inception (2010) - Review & Rating", page.Meta.Title)
	assert.Equal(t, "https://cineverse.test/movies/inception", page.Meta.CanonicalURL)
	require.Len(t, page.Related, 3)
	for _, r := range page.Related {
		assert.NotEqual(t, page.Movie.ID, r.ID)
	}

	_, ok = svc.MoviePage("nonexistent")
	assert.False(t, ok)
}

func TestMoviePage_CanonicalDoesNotLeakIntoBuilder(t *testing.T) {
	svc := newTestService(t)
	b := NewMetadataBuilder(testSite())

	page, ok := svc.MoviePage("inception")
	require.True(t, ok)

	plain := b.BuildMovieMetadata(page.Movie)
	assert.Empty(t, plain.CanonicalURL)
	assert.Equal(t, plain, page.Meta.WithCanonical(""))
}

func TestGenrePage_UsesDatasetSpelling(t *testing.T) {
	svc := newTestService(t)

	page := svc.GenrePage("sci-fi")

	assert.Equal(t, "Sci-Fi", page.Genre)
	assert.Equal(t, "Sci-Fi Movies", page.Meta.Title)
	assert.Equal(t, "https://cineverse.test/genres/Sci-Fi", page.Meta.CanonicalURL)
	assert.Len(t, page.Movies, 3)

	empty := svc.GenrePage("Western")
	assert.Equal(t, "Western", empty.Genre)
	assert.Empty(t, empty.Movies)
}

func TestGetMovieMetadata(t *testing.T) {
	svc := newTestService(t)

	meta, ok := svc.GetMovieMetadata("the-shawshank-redemption")
	require.True(t, ok)
	sd := meta.StructuredData.(models.MovieSchema)
	assert.Equal(t, "PT142M", sd.Duration)
	assert.Equal(t, "9.3", sd.AggregateRating.RatingValue)

	_, ok = svc.GetMovieMetadata("nope")
	assert.False(t, ok)
}
