package services

import (
	"encoding/json"
	"strings"
	"testing"

	"cineverse/internal/config"
	"cineverse/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		Name:           "CineVerse",
		BaseURL:        "https://cineverse.test",
		Tagline:        "Your ultimate destination for movie reviews, ratings, and recommendations",
		Description:    "Discover top-rated movies.",
		HomeOGImage:    "/images/og-home.svg",
		DefaultOGImage: "/images/og-default.svg",
	}
}

func inception() models.Movie {
	return models.Movie{
		ID:          1,
		Slug:        "inception",
		Title:       "Inception",
		ReleaseYear: 2010,
		Genre:       []string{"Sci-Fi", "Action"},
		Rating:      8.8,
		Runtime:     148,
		Director:    "Christopher Nolan",
		Cast:        []string{"Leonardo DiCaprio"},
		Description: "A thief who steals corporate secrets through dream-sharing technology.",
		Plot:        "Dom Cobb is a skilled thief.",
		PosterURL:   "/images/posters/inception.jpg",
	}
}

func TestBuildMovieMetadata_Inception(t *testing.T) {
	b := NewMetadataBuilder(testSite())

	meta := b.BuildMovieMetadata(inception())

	assert.Equal(t, "Inception (2010) - Review & Rating", meta.Title)
	assert.Equal(t,
		"Inception (2010) - A thief who steals corporate secrets through dream-sharing technology. "+
			"Directed by Christopher Nolan. Rating: 8.8/10. Watch now and discover why it's a must-see film.",
		meta.Description,
	)
	assert.Equal(t, "/images/posters/inception.jpg", meta.OGImage)
	assert.Equal(t, "video.movie", meta.OGType)
	assert.Empty(t, meta.CanonicalURL)

	sd, ok := meta.StructuredData.(models.MovieSchema)
	require.True(t, ok)
	assert.Equal(t, "https://schema.org", sd.Context)
	assert.Equal(t, "Movie", sd.Type)
	assert.Equal(t, "Inception", sd.Name)
	assert.Equal(t, "2010", sd.DatePublished)
	assert.Equal(t, "PT148M", sd.Duration)
	assert.Equal(t, []string{"Sci-Fi", "Action"}, sd.Genre)
	assert.Equal(t, models.PersonSchema{Type: "Person", Name: "Christopher Nolan"}, sd.Director)
	assert.Equal(t, []models.PersonSchema{{Type: "Person", Name: "Leonardo DiCaprio"}}, sd.Actor)
	assert.Equal(t, models.AggregateRatingSchema{
		Type:        "AggregateRating",
		RatingValue: "8.8",
		BestRating:  "10",
		WorstRating: "1",
		RatingCount: "1000",
	}, sd.AggregateRating)
	assert.Equal(t, "Review", sd.Review.Type)
	assert.Equal(t, models.RatingSchema{Type: "Rating", RatingValue: "8.8", BestRating: "10"}, sd.Review.ReviewRating)
	assert.Equal(t, models.OrganizationSchema{Type: "Organization", Name: "CineVerse"}, sd.Review.Author)
}

func TestBuildMovieMetadata_Deterministic(t *testing.T) {
	b := NewMetadataBuilder(testSite())
	m := inception()

	first := b.BuildMovieMetadata(m)
	second := b.BuildMovieMetadata(m)
	assert.Equal(t, first, second)

	firstLD, err := first.JSONLD()
	require.NoError(t, err)
	secondLD, err := second.JSONLD()
	require.NoError(t, err)
	assert.Equal(t, firstLD, secondLD)
}

func TestBuildMovieMetadata_DurationAndActors(t *testing.T) {
	b := NewMetadataBuilder(testSite())
	m := inception()
	m.Runtime = 142
	m.Cast = []string{"Tim Robbins", "Morgan Freeman", "Bob Gunton"}

	sd := b.BuildMovieMetadata(m).StructuredData.(models.MovieSchema)

	assert.Equal(t, "PT142M", sd.Duration)
	require.Len(t, sd.Actor, len(m.Cast))
	for i, name := range m.Cast {
		assert.Equal(t, name, sd.Actor[i].Name)
		assert.Equal(t, "Person", sd.Actor[i].Type)
	}
}

func TestBuildMovieMetadata_EmptyCastEncodesAsList(t *testing.T) {
	b := NewMetadataBuilder(testSite())
	m := inception()
	m.Cast = nil

	ld, err := b.BuildMovieMetadata(m).JSONLD()
	require.NoError(t, err)
	assert.Contains(t, string(ld), `"actor":[]`)
}

func TestBuildMovieMetadata_JSONLDShape(t *testing.T) {
	b := NewMetadataBuilder(testSite())

	ld, err := b.BuildMovieMetadata(inception()).JSONLD()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(ld), &doc))

	assert.Equal(t, "Movie", doc["@type"])
	assert.Equal(t, "https://schema.org", doc["@context"])
	director := doc["director"].(map[string]any)
	assert.Equal(t, "Person", director["@type"])
	assert.Equal(t, "Christopher Nolan", director["name"])
	review := doc["review"].(map[string]any)
	assert.Equal(t, "Organization", review["author"].(map[string]any)["@type"])
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "8.8", FormatRating(8.8))
	assert.Equal(t, "9", FormatRating(9))
	assert.Equal(t, "9.25", FormatRating(9.25))
	assert.Equal(t, "0", FormatRating(0))
}

func TestBuildSiteMetadata(t *testing.T) {
	b := NewMetadataBuilder(testSite())

	meta := b.BuildSiteMetadata()

	assert.Equal(t, "CineVerse", meta.Title)
	assert.Equal(t, testSite().Tagline, meta.Description)
	assert.Equal(t, "website", meta.OGType)
	assert.Equal(t, "/images/og-home.svg", meta.OGImage)

	sd, ok := meta.StructuredData.(models.WebSiteSchema)
	require.True(t, ok)
	assert.Equal(t, "WebSite", sd.Type)
	assert.Equal(t, "CineVerse", sd.Name)
	assert.Equal(t, "https://cineverse.test", sd.URL)
	assert.Equal(t, "SearchAction", sd.PotentialAction.Type)
	assert.True(t, strings.Contains(sd.PotentialAction.Target, "{search_term_string}"))
	assert.Equal(t, "https://cineverse.test/search?q={search_term_string}", sd.PotentialAction.Target)
	assert.Equal(t, "required name=search_term_string", sd.PotentialAction.QueryInput)

	assert.Equal(t, meta, b.BuildSiteMetadata())
}

func TestBuildHomeMetadata(t *testing.T) {
	b := NewMetadataBuilder(testSite())

	meta := b.BuildHomeMetadata()

	assert.Equal(t, "Discover top-rated movies.", meta.Description)
	assert.Equal(t, testSite().Tagline, meta.StructuredData.(models.WebSiteSchema).Description)
	assert.Equal(t, "CineVerse", meta.Title)

	site := testSite()
	site.Description = ""
	assert.Equal(t, site.Tagline, NewMetadataBuilder(site).BuildHomeMetadata().Description)
}

func TestBuildGenreMetadata(t *testing.T) {
	b := NewMetadataBuilder(testSite())

	meta := b.BuildGenreMetadata("Drama", []models.Movie{inception(), inception()})

	assert.Equal(t, "Drama Movies", meta.Title)
	assert.Contains(t, meta.Description, "2 Drama movies")
	assert.Nil(t, meta.StructuredData)
	assert.Equal(t, "/images/og-default.svg", meta.OGImage)
}

func TestCanonicalURL(t *testing.T) {
	b := NewMetadataBuilder(testSite())

	assert.Equal(t, "https://cineverse.test/movies/inception", b.CanonicalURL(MoviePath("inception")))
	assert.Equal(t, "https://cineverse.test/genres/Sci-Fi", b.CanonicalURL(GenrePath("Sci-Fi")))
}
