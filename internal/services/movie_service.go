package services

import (
	"net/url"
	"strings"

	"cineverse/internal/models"
	"cineverse/internal/repository"

	"github.com/sirupsen/logrus"
)

// HomePage is everything the home template needs.
type HomePage struct {
	Meta     models.SeoMetadata
	Featured []models.Movie
	Movies   []models.Movie
	Genres   []string
}

// MoviePage is everything the movie detail template needs.
type MoviePage struct {
	Meta    models.SeoMetadata
	Movie   models.Movie
	Related []models.Movie
}

// GenrePage is everything the genre listing template needs.
type GenrePage struct {
	Meta   models.SeoMetadata
	Genre  string
	Movies []models.Movie
}

type MovieService interface {
	// Page assembly
	HomePage() HomePage
	MoviePage(slug string) (MoviePage, bool)
	GenrePage(genre string) GenrePage

	// Catalogue reads
	GetAllMovies() []models.Movie
	GetMovieBySlug(slug string) (models.Movie, bool)
	GetMoviesByGenre(genre string) []models.Movie
	GetFeaturedMovies(count int) []models.Movie
	GetRelatedMovies(movie models.Movie, limit int) []models.Movie
	GetSlugs() []string
	GetGenres() []string
	GetGenreSummaries() []models.Genre
	Count() int

	// Metadata
	GetMovieMetadata(slug string) (models.SeoMetadata, bool)
	GetSiteMetadata() models.SeoMetadata
	GetNotFoundMetadata() models.SeoMetadata
	CanonicalURL(path string) string
}

type movieService struct {
	repo     repository.MovieRepository
	metadata *MetadataBuilder
	logger   *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, metadata *MetadataBuilder, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:     repo,
		metadata: metadata,
		logger:   logger,
	}
}

func (s *movieService) HomePage() HomePage {
	return HomePage{
		Meta:     s.metadata.BuildHomeMetadata().WithCanonical(s.metadata.CanonicalURL("/")),
		Featured: s.repo.GetFeatured(repository.DefaultFeaturedCount),
		Movies:   s.repo.GetAll(),
		Genres:   s.repo.Genres(),
	}
}

func (s *movieService) MoviePage(slug string) (MoviePage, bool) {
	movie, ok := s.repo.GetBySlug(slug)
	if !ok {
		s.logger.WithField("slug", slug).Debug("Movie not found")
		return MoviePage{}, false
	}

	return MoviePage{
		Meta:    s.metadata.BuildMovieMetadata(movie).WithCanonical(s.metadata.CanonicalURL(MoviePath(movie.Slug))),
		Movie:   movie,
		Related: s.repo.GetRelated(movie, repository.DefaultRelatedLimit),
	}, true
}

func (s *movieService) GenrePage(genre string) GenrePage {
	movies := s.repo.GetByGenre(genre)

	// Prefer the dataset's spelling of the label for display.
	label := genre
	if len(movies) > 0 {
		for _, g := range movies[0].Genre {
			if strings.EqualFold(g, genre) {
				label = g
				break
			}
		}
	}

	return GenrePage{
		Meta:   s.metadata.BuildGenreMetadata(label, movies).WithCanonical(s.metadata.CanonicalURL(GenrePath(label))),
		Genre:  label,
		Movies: movies,
	}
}

func (s *movieService) GetAllMovies() []models.Movie {
	return s.repo.GetAll()
}

func (s *movieService) GetMovieBySlug(slug string) (models.Movie, bool) {
	return s.repo.GetBySlug(slug)
}

func (s *movieService) GetMoviesByGenre(genre string) []models.Movie {
	return s.repo.GetByGenre(genre)
}

func (s *movieService) GetFeaturedMovies(count int) []models.Movie {
	return s.repo.GetFeatured(count)
}

func (s *movieService) GetRelatedMovies(movie models.Movie, limit int) []models.Movie {
	return s.repo.GetRelated(movie, limit)
}

func (s *movieService) GetSlugs() []string {
	return s.repo.Slugs()
}

func (s *movieService) GetGenres() []string {
	return s.repo.Genres()
}

func (s *movieService) GetGenreSummaries() []models.Genre {
	return s.repo.GenreSummaries()
}

func (s *movieService) Count() int {
	return s.repo.Count()
}

func (s *movieService) GetMovieMetadata(slug string) (models.SeoMetadata, bool) {
	movie, ok := s.repo.GetBySlug(slug)
	if !ok {
		return models.SeoMetadata{}, false
	}
	return s.metadata.BuildMovieMetadata(movie).WithCanonical(s.metadata.CanonicalURL(MoviePath(movie.Slug))), true
}

func (s *movieService) GetSiteMetadata() models.SeoMetadata {
	return s.metadata.BuildSiteMetadata().WithCanonical(s.metadata.CanonicalURL("/"))
}

func (s *movieService) GetNotFoundMetadata() models.SeoMetadata {
	return s.metadata.BuildNotFoundMetadata()
}

func (s *movieService) CanonicalURL(path string) string {
	return s.metadata.CanonicalURL(path)
}

// MoviePath is the site path of a movie detail page.
func MoviePath(slug string) string {
	return "/movies/" + url.PathEscape(slug)
}

// GenrePath is the site path of a genre listing page.
func GenrePath(genre string) string {
	return "/genres/" + url.PathEscape(genre)
}
