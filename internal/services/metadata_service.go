package services

import (
	"fmt"
	"strconv"

	"cineverse/internal/config"
	"cineverse/internal/models"
)

const (
	ogTypeWebsite = "website"
	ogTypeMovie   = "video.movie"

	bestRating  = "10"
	worstRating = "1"
	// Placeholder: the catalogue has no vote counts of its own.
	ratingCountPlaceholder = "1000"
)

// MetadataBuilder turns catalogue data into page head metadata. It holds
// only site settings, so every method is a pure function of its input.
type MetadataBuilder struct {
	site config.SiteConfig
}

func NewMetadataBuilder(site config.SiteConfig) *MetadataBuilder {
	return &MetadataBuilder{site: site}
}

// BuildSiteMetadata describes the home page.
func (b *MetadataBuilder) BuildSiteMetadata() models.SeoMetadata {
	return models.SeoMetadata{
		Title:       b.site.Name,
		Description: b.site.Tagline,
		OGImage:     b.site.HomeOGImage,
		OGType:      ogTypeWebsite,
		StructuredData: models.WebSiteSchema{
			Context:     models.SchemaContext,
			Type:        "WebSite",
			Name:        b.site.Name,
			Description: b.site.Tagline,
			URL:         b.site.BaseURL,
			PotentialAction: models.SearchActionSchema{
				Type:       "SearchAction",
				Target:     b.site.BaseURL + "/search?q={search_term_string}",
				QueryInput: "required name=search_term_string",
			},
		},
	}
}

// BuildHomeMetadata is the site metadata with the longer site description
// in the head tags. The WebSite record keeps the tagline.
func (b *MetadataBuilder) BuildHomeMetadata() models.SeoMetadata {
	meta := b.BuildSiteMetadata()
	if b.site.Description != "" {
		meta.Description = b.site.Description
	}
	return meta
}

// BuildMovieMetadata describes a movie detail page.
func (b *MetadataBuilder) BuildMovieMetadata(movie models.Movie) models.SeoMetadata {
	rating := FormatRating(movie.Rating)

	return models.SeoMetadata{
		Title: fmt.Sprintf("%s (%d) - Review & Rating", movie.Title, movie.ReleaseYear),
		Description: fmt.Sprintf(
			"%s (%d) - %s Directed by %s. Rating: %s/10. Watch now and discover why it's a must-see film.",
			movie.Title, movie.ReleaseYear, movie.Description, movie.Director, rating,
		),
		OGImage:        movie.PosterURL,
		OGType:         ogTypeMovie,
		StructuredData: b.movieSchema(movie, rating),
	}
}

// BuildGenreMetadata describes a genre listing page. Genre pages carry no
// linked-data record.
func (b *MetadataBuilder) BuildGenreMetadata(genre string, movies []models.Movie) models.SeoMetadata {
	return models.SeoMetadata{
		Title:       genre + " Movies",
		Description: fmt.Sprintf("Browse %d %s movies on %s with ratings, cast and plot summaries.", len(movies), genre, b.site.Name),
		OGImage:     b.site.DefaultOGImage,
		OGType:      ogTypeWebsite,
	}
}

// BuildNotFoundMetadata describes the page served for an unknown slug.
func (b *MetadataBuilder) BuildNotFoundMetadata() models.SeoMetadata {
	return models.SeoMetadata{
		Title:       "Movie Not Found",
		Description: "Sorry, we couldn't find the movie you're looking for.",
		OGImage:     b.site.DefaultOGImage,
		OGType:      ogTypeWebsite,
	}
}

// CanonicalURL joins path onto the site base URL.
func (b *MetadataBuilder) CanonicalURL(path string) string {
	return b.site.BaseURL + path
}

func (b *MetadataBuilder) movieSchema(movie models.Movie, rating string) models.MovieSchema {
	actors := make([]models.PersonSchema, 0, len(movie.Cast))
	for _, name := range movie.Cast {
		actors = append(actors, models.PersonSchema{Type: "Person", Name: name})
	}

	genre := movie.Genre
	if genre == nil {
		genre = []string{}
	}

	return models.MovieSchema{
		Context:       models.SchemaContext,
		Type:          "Movie",
		Name:          movie.Title,
		Description:   movie.Description,
		Image:         movie.PosterURL,
		DatePublished: strconv.Itoa(movie.ReleaseYear),
		Genre:         genre,
		Duration:      fmt.Sprintf("PT%dM", movie.Runtime),
		Director:      models.PersonSchema{Type: "Person", Name: movie.Director},
		Actor:         actors,
		AggregateRating: models.AggregateRatingSchema{
			Type:        "AggregateRating",
			RatingValue: rating,
			BestRating:  bestRating,
			WorstRating: worstRating,
			RatingCount: ratingCountPlaceholder,
		},
		Review: models.ReviewSchema{
			Type: "Review",
			ReviewRating: models.RatingSchema{
				Type:        "Rating",
				RatingValue: rating,
				BestRating:  bestRating,
			},
			Author: models.OrganizationSchema{
				Type: "Organization",
				Name: b.site.Name,
			},
		},
	}
}

// FormatRating renders a score with the fewest digits needed: 8.8, 9.
func FormatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}
