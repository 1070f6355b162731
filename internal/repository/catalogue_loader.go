package repository

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"cineverse/data"
	"cineverse/internal/models"

	"github.com/go-playground/validator/v10"
)

// ErrDataIntegrity marks a dataset that is malformed or incomplete. It is a
// build-time defect and is never recovered from at request time.
var ErrDataIntegrity = errors.New("catalogue data integrity")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// rawMovie mirrors models.Movie with pointer numerics so that an absent
// field can be told apart from a zero value.
type rawMovie struct {
	ID          *int     `json:"id" validate:"required"`
	Slug        *string  `json:"slug" validate:"required"`
	Title       *string  `json:"title" validate:"required"`
	ReleaseYear *int     `json:"releaseYear" validate:"required"`
	Genre       []string `json:"genre" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
	Runtime     *int     `json:"runtime" validate:"required"`
	Director    *string  `json:"director" validate:"required"`
	Cast        []string `json:"cast" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Plot        *string  `json:"plot" validate:"required"`
	PosterURL   *string  `json:"posterUrl" validate:"required"`
}

func (r rawMovie) toModel() models.Movie {
	return models.Movie{
		ID:          *r.ID,
		Slug:        *r.Slug,
		Title:       *r.Title,
		ReleaseYear: *r.ReleaseYear,
		Genre:       r.Genre,
		Rating:      *r.Rating,
		Runtime:     *r.Runtime,
		Director:    *r.Director,
		Cast:        r.Cast,
		Description: *r.Description,
		Plot:        *r.Plot,
		PosterURL:   *r.PosterURL,
	}
}

// LoadCatalogueFile reads the dataset at path, or the embedded dataset when
// path is empty.
func LoadCatalogueFile(path string) ([]models.Movie, error) {
	if path == "" {
		return DecodeCatalogue(bytes.NewReader(data.Movies))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue %s: %w", path, err)
	}
	defer f.Close()

	movies, err := DecodeCatalogue(f)
	if err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return movies, nil
}

// DecodeCatalogue decodes a JSON array of movie records and validates it.
// Unknown or missing fields are reported as ErrDataIntegrity.
func DecodeCatalogue(r io.Reader) ([]models.Movie, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var raw []rawMovie
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after the movie list", ErrDataIntegrity)
	}

	movies := make([]models.Movie, 0, len(raw))
	for i, rm := range raw {
		if err := validate.Struct(rm); err != nil {
			return nil, integrityError(i, "", err)
		}
		movies = append(movies, rm.toModel())
	}

	if err := ValidateCatalogue(movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// ValidateCatalogue checks field ranges and the uniqueness of ids and slugs.
func ValidateCatalogue(movies []models.Movie) error {
	ids := make(map[int]int, len(movies))
	slugs := make(map[string]int, len(movies))

	for i, m := range movies {
		if err := validate.Struct(m); err != nil {
			return integrityError(i, m.Slug, err)
		}
		if prev, ok := ids[m.ID]; ok {
			return fmt.Errorf("%w: record %d reuses id %d of record %d", ErrDataIntegrity, i, m.ID, prev)
		}
		if prev, ok := slugs[m.Slug]; ok {
			return fmt.Errorf("%w: record %d reuses slug %q of record %d", ErrDataIntegrity, i, m.Slug, prev)
		}
		ids[m.ID] = i
		slugs[m.Slug] = i
	}
	return nil
}

func integrityError(index int, slug string, err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: record %d: %v", ErrDataIntegrity, index, err)
	}

	fe := verrs[0]
	if slug != "" {
		return fmt.Errorf("%w: record %d (%s): field %s failed %q", ErrDataIntegrity, index, slug, fe.Field(), fe.Tag())
	}
	return fmt.Errorf("%w: record %d: field %s failed %q", ErrDataIntegrity, index, fe.Field(), fe.Tag())
}
