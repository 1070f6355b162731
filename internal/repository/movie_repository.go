package repository

import (
	"cmp"
	"slices"

	"cineverse/internal/models"
)

const (
	// DefaultFeaturedCount is used when a caller does not ask for a specific number.
	DefaultFeaturedCount = 3
	// DefaultRelatedLimit is the number of related movies shown on a detail page.
	DefaultRelatedLimit = 3
)

type MovieRepository interface {
	// Lookups
	GetAll() []models.Movie
	GetBySlug(slug string) (models.Movie, bool)
	GetByGenre(genre string) []models.Movie

	// Derived listings
	GetFeatured(count int) []models.Movie
	GetRelated(movie models.Movie, limit int) []models.Movie

	// Catalogue facts
	Slugs() []string
	Genres() []string
	GenreSummaries() []models.Genre
	Count() int
}

// movieRepository serves reads over an immutable snapshot. Nothing here
// writes after construction, so concurrent readers need no locking.
type movieRepository struct {
	movies []models.Movie
	bySlug map[string]int
}

func NewMovieRepository(movies []models.Movie) MovieRepository {
	r := &movieRepository{
		movies: cloneMovies(movies),
		bySlug: make(map[string]int, len(movies)),
	}
	for i, m := range r.movies {
		// First record wins when a slug repeats.
		if _, ok := r.bySlug[m.Slug]; !ok {
			r.bySlug[m.Slug] = i
		}
	}
	return r
}

// cloneMovies deep-copies movies into a non-nil slice. Records handed to
// callers never share backing arrays with the snapshot.
func cloneMovies(movies []models.Movie) []models.Movie {
	out := make([]models.Movie, 0, len(movies))
	for _, m := range movies {
		out = append(out, m.Clone())
	}
	return out
}

func (r *movieRepository) GetAll() []models.Movie {
	return cloneMovies(r.movies)
}

func (r *movieRepository) GetBySlug(slug string) (models.Movie, bool) {
	i, ok := r.bySlug[slug]
	if !ok {
		return models.Movie{}, false
	}
	return r.movies[i].Clone(), true
}

func (r *movieRepository) GetFeatured(count int) []models.Movie {
	if count <= 0 {
		return []models.Movie{}
	}

	sorted := slices.Clone(r.movies)
	slices.SortStableFunc(sorted, func(a, b models.Movie) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	if count > len(sorted) {
		count = len(sorted)
	}
	return cloneMovies(sorted[:count])
}

func (r *movieRepository) GetRelated(movie models.Movie, limit int) []models.Movie {
	result := []models.Movie{}
	if limit <= 0 {
		return result
	}

	for _, m := range r.movies {
		if m.ID == movie.ID || !movie.SharesGenre(m) {
			continue
		}
		result = append(result, m.Clone())
		if len(result) == limit {
			break
		}
	}
	return result
}

func (r *movieRepository) Slugs() []string {
	slugs := make([]string, 0, len(r.movies))
	for _, m := range r.movies {
		slugs = append(slugs, m.Slug)
	}
	return slugs
}

func (r *movieRepository) Count() int {
	return len(r.movies)
}
