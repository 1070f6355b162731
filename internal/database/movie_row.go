package database

import (
	"time"

	"cineverse/internal/models"
)

// MovieRow is the persisted form of a catalogue record. Position keeps the
// dataset order, which every listing depends on.
type MovieRow struct {
	ID          int       `gorm:"primaryKey;autoIncrement:false"`
	Position    int       `gorm:"not null;index"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Title       string    `gorm:"not null"`
	ReleaseYear int       `gorm:"not null"`
	Genre       []string  `gorm:"serializer:json;type:jsonb;not null"`
	Rating      float64   `gorm:"not null"`
	Runtime     int       `gorm:"not null"`
	Director    string    `gorm:"not null"`
	Cast        []string  `gorm:"serializer:json;type:jsonb;not null"`
	Description string    `gorm:"type:text;not null"`
	Plot        string    `gorm:"type:text;not null"`
	PosterURL   string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
}

func (MovieRow) TableName() string {
	return "catalogue_movies"
}

// MoviesToRows numbers the movies by their position in the slice.
func MoviesToRows(movies []models.Movie) []MovieRow {
	rows := make([]MovieRow, 0, len(movies))
	for i, m := range movies {
		rows = append(rows, MovieRow{
			ID:          m.ID,
			Position:    i,
			Slug:        m.Slug,
			Title:       m.Title,
			ReleaseYear: m.ReleaseYear,
			Genre:       m.Genre,
			Rating:      m.Rating,
			Runtime:     m.Runtime,
			Director:    m.Director,
			Cast:        m.Cast,
			Description: m.Description,
			Plot:        m.Plot,
			PosterURL:   m.PosterURL,
		})
	}
	return rows
}

// PlanSeed returns the rows to insert for movies not yet stored. New rows
// are appended after the highest stored position, in dataset order, so a
// record added mid-file never shares a position with an existing row.
func PlanSeed(movies []models.Movie, existing []MovieRow) []MovieRow {
	stored := make(map[int]struct{}, len(existing))
	next := 0
	for _, r := range existing {
		stored[r.ID] = struct{}{}
		if r.Position >= next {
			next = r.Position + 1
		}
	}

	rows := []MovieRow{}
	for _, r := range MoviesToRows(movies) {
		if _, ok := stored[r.ID]; ok {
			continue
		}
		r.Position = next
		next++
		rows = append(rows, r)
	}
	return rows
}

// RowsToMovies expects rows already ordered by position.
func RowsToMovies(rows []MovieRow) []models.Movie {
	movies := make([]models.Movie, 0, len(rows))
	for _, r := range rows {
		movies = append(movies, models.Movie{
			ID:          r.ID,
			Slug:        r.Slug,
			Title:       r.Title,
			ReleaseYear: r.ReleaseYear,
			Genre:       r.Genre,
			Rating:      r.Rating,
			Runtime:     r.Runtime,
			Director:    r.Director,
			Cast:        r.Cast,
			Description: r.Description,
			Plot:        r.Plot,
			PosterURL:   r.PosterURL,
		})
	}
	return movies
}
