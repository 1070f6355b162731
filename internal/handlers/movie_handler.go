package handlers

import (
	"net/url"
	"strconv"

	"cineverse/internal/repository"
	"cineverse/internal/services"
	"cineverse/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary List movies
// @Description List the catalogue in dataset order, optionally filtered by genre (case-insensitive)
// @Tags movies
// @Produce json
// @Param genre query string false "Genre label"
// @Success 200 {object} utils.StandardResponse "List of movies"
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	if genre := c.Query("genre"); genre != "" {
		return utils.ListResponse(c, "Movies retrieved successfully", h.service.GetMoviesByGenre(genre))
	}
	return utils.ListResponse(c, "Movies retrieved successfully", h.service.GetAllMovies())
}

// GetFeaturedMovies godoc
// @Summary List featured movies
// @Description Top rated movies, highest rating first; ties keep dataset order
// @Tags movies
// @Produce json
// @Param count query int false "Number of movies" default(3)
// @Success 200 {object} utils.StandardResponse "Featured movies"
// @Failure 400 {object} utils.StandardResponse "Invalid count"
// @Router /movies/featured [get]
func (h *MovieHandler) GetFeaturedMovies(c *fiber.Ctx) error {
	count, err := queryInt(c, "count", repository.DefaultFeaturedCount)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid count")
	}
	return utils.ListResponse(c, "Featured movies retrieved successfully", h.service.GetFeaturedMovies(count))
}

// GetMovieBySlug godoc
// @Summary Get movie by slug
// @Description Get a single movie by its URL slug (case-sensitive)
// @Tags movies
// @Produce json
// @Param slug path string true "Movie slug"
// @Success 200 {object} utils.StandardResponse "Movie details"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{slug} [get]
func (h *MovieHandler) GetMovieBySlug(c *fiber.Ctx) error {
	slug := pathParam(c, "slug")

	movie, ok := h.service.GetMovieBySlug(slug)
	if !ok {
		h.logger.WithField("slug", slug).Debug("Movie not found")
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// GetRelatedMovies godoc
// @Summary List related movies
// @Description Movies sharing at least one genre with the given movie, excluding itself
// @Tags movies
// @Produce json
// @Param slug path string true "Movie slug"
// @Param limit query int false "Maximum number of movies" default(3)
// @Success 200 {object} utils.StandardResponse "Related movies"
// @Failure 400 {object} utils.StandardResponse "Invalid limit"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{slug}/related [get]
func (h *MovieHandler) GetRelatedMovies(c *fiber.Ctx) error {
	slug := pathParam(c, "slug")

	limit, err := queryInt(c, "limit", repository.DefaultRelatedLimit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid limit")
	}

	movie, ok := h.service.GetMovieBySlug(slug)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.ListResponse(c, "Related movies retrieved successfully", h.service.GetRelatedMovies(movie, limit))
}

// GetMovieMetadata godoc
// @Summary Get movie SEO metadata
// @Description Head tags and schema.org Movie record for a movie page
// @Tags metadata
// @Produce json
// @Param slug path string true "Movie slug"
// @Success 200 {object} utils.StandardResponse "Movie metadata"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Router /movies/{slug}/metadata [get]
func (h *MovieHandler) GetMovieMetadata(c *fiber.Ctx) error {
	slug := pathParam(c, "slug")

	meta, ok := h.service.GetMovieMetadata(slug)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie metadata retrieved successfully", meta)
}

// GetSiteMetadata godoc
// @Summary Get site SEO metadata
// @Description Head tags and schema.org WebSite record for the home page
// @Tags metadata
// @Produce json
// @Success 200 {object} utils.StandardResponse "Site metadata"
// @Router /site/metadata [get]
func (h *MovieHandler) GetSiteMetadata(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, fiber.StatusOK, "Site metadata retrieved successfully", h.service.GetSiteMetadata())
}

// GetGenres godoc
// @Summary List genres
// @Description Distinct genre labels with their movie counts, in the order they first appear in the catalogue
// @Tags movies
// @Produce json
// @Success 200 {object} utils.StandardResponse "Genres"
// @Router /genres [get]
func (h *MovieHandler) GetGenres(c *fiber.Ctx) error {
	return utils.ListResponse(c, "Genres retrieved successfully", h.service.GetGenreSummaries())
}

func pathParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func queryInt(c *fiber.Ctx, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
