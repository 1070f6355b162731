package repository

import (
	"strings"

	"cineverse/internal/models"
)

// GetByGenre matches genre labels case-insensitively and keeps dataset order.
func (r *movieRepository) GetByGenre(genre string) []models.Movie {
	result := []models.Movie{}
	for _, m := range r.movies {
		for _, g := range m.Genre {
			if strings.EqualFold(g, genre) {
				result = append(result, m.Clone())
				break
			}
		}
	}
	return result
}

// Genres returns the distinct genre labels in the order they first appear.
func (r *movieRepository) Genres() []string {
	summaries := r.GenreSummaries()
	genres := make([]string, 0, len(summaries))
	for _, g := range summaries {
		genres = append(genres, g.Name)
	}
	return genres
}

// GenreSummaries counts the movies per genre label. Labels that differ only
// in case are counted separately, the way they are spelled in the dataset.
func (r *movieRepository) GenreSummaries() []models.Genre {
	index := make(map[string]int)
	genres := []models.Genre{}
	for _, m := range r.movies {
		for _, g := range m.Genre {
			i, ok := index[g]
			if !ok {
				i = len(genres)
				index[g] = i
				genres = append(genres, models.Genre{Name: g})
			}
			genres[i].Count++
		}
	}
	return genres
}
