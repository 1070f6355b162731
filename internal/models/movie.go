package models

import "slices"

// Movie is one catalogue record. Records are loaded once at startup and
// never modified afterwards.
type Movie struct {
	ID          int      `json:"id" validate:"gt=0" example:"1"`
	Slug        string   `json:"slug" validate:"required" example:"inception"`
	Title       string   `json:"title" validate:"required" example:"Inception"`
	ReleaseYear int      `json:"releaseYear" validate:"gt=0" example:"2010"`
	Genre       []string `json:"genre" validate:"min=1,dive,required"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10" example:"8.8"`
	Runtime     int      `json:"runtime" validate:"gt=0" example:"148"`
	Director    string   `json:"director" validate:"required" example:"Christopher Nolan"`
	Cast        []string `json:"cast" validate:"dive,required"`
	Description string   `json:"description" validate:"required"`
	Plot        string   `json:"plot" validate:"required"`
	PosterURL   string   `json:"posterUrl" validate:"required" example:"/images/posters/inception.jpg"`
}

// Clone returns a copy of m that shares no slices with it.
func (m Movie) Clone() Movie {
	m.Genre = slices.Clone(m.Genre)
	m.Cast = slices.Clone(m.Cast)
	return m
}

// HasGenre reports whether label is one of the movie's genres (case-sensitive).
func (m Movie) HasGenre(label string) bool {
	for _, g := range m.Genre {
		if g == label {
			return true
		}
	}
	return false
}

// SharesGenre reports whether the two movies have at least one genre label in common.
func (m Movie) SharesGenre(other Movie) bool {
	for _, g := range other.Genre {
		if m.HasGenre(g) {
			return true
		}
	}
	return false
}
