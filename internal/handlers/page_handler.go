package handlers

import (
	"time"

	"cineverse/internal/config"
	"cineverse/internal/metrics"
	"cineverse/internal/services"
	"cineverse/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// PageHandler renders the server-side HTML pages.
type PageHandler struct {
	service services.MovieService
	site    config.SiteConfig
	metrics *metrics.Metrics
	logger  *logrus.Logger
	now     func() time.Time
}

func NewPageHandler(service services.MovieService, site config.SiteConfig, m *metrics.Metrics, logger *logrus.Logger) *PageHandler {
	return &PageHandler{
		service: service,
		site:    site,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

func (h *PageHandler) siteData() views.Site {
	return views.Site{
		Name:           h.site.Name,
		Tagline:        h.site.Tagline,
		DefaultOGImage: h.site.DefaultOGImage,
		Year:           h.now().Year(),
		Genres:         h.service.GetGenres(),
	}
}

// Home renders the landing page with featured and all movies.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	page := h.service.HomePage()

	data, err := views.NewPage(h.siteData(), page.Meta, page)
	if err != nil {
		return err
	}

	h.metrics.PageView(views.PageHome)
	return c.Render(views.PageHome, data, views.Layout)
}

// Movie renders a movie detail page, or the not-found page for an unknown slug.
func (h *PageHandler) Movie(c *fiber.Ctx) error {
	slug := pathParam(c, "slug")

	page, ok := h.service.MoviePage(slug)
	h.metrics.SlugLookup(ok)
	if !ok {
		return h.NotFound(c)
	}

	data, err := views.NewPage(h.siteData(), page.Meta, page)
	if err != nil {
		h.logger.WithError(err).WithField("slug", slug).Error("Failed to build movie page")
		return err
	}

	h.metrics.PageView(views.PageMovie)
	return c.Render(views.PageMovie, data, views.Layout)
}

// Genre renders the movies of one genre. An unknown genre is an empty list.
func (h *PageHandler) Genre(c *fiber.Ctx) error {
	genre := pathParam(c, "genre")

	page := h.service.GenrePage(genre)

	data, err := views.NewPage(h.siteData(), page.Meta, page)
	if err != nil {
		return err
	}

	h.metrics.PageView(views.PageGenre)
	return c.Render(views.PageGenre, data, views.Layout)
}

// NotFound renders the 404 page.
func (h *PageHandler) NotFound(c *fiber.Ctx) error {
	meta := h.service.GetNotFoundMetadata()

	data, err := views.NewPage(h.siteData(), meta, nil)
	if err != nil {
		return err
	}

	h.metrics.PageView(views.PageNotFound)
	return c.Status(fiber.StatusNotFound).Render(views.PageNotFound, data, views.Layout)
}

// Error renders the generic error page with the given status.
func (h *PageHandler) Error(c *fiber.Ctx, code int, message string) error {
	meta := h.service.GetNotFoundMetadata()
	meta.Title = "Error"
	if code == fiber.StatusNotFound {
		meta.Title = "Page Not Found"
	}
	meta.Description = message

	data, err := views.NewPage(h.siteData(), meta, message)
	if err != nil {
		return err
	}
	return c.Status(code).Render(views.PageError, data, views.Layout)
}
