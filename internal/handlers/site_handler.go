package handlers

import (
	"encoding/xml"
	"fmt"
	"time"

	"cineverse/internal/services"

	"github.com/gofiber/fiber/v2"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// HealthChecker reports whether a backing store is reachable.
type HealthChecker interface {
	HealthCheck() error
}

// SiteHandler serves the crawler-facing documents and the health check.
type SiteHandler struct {
	service services.MovieService
	db      HealthChecker
}

// NewSiteHandler builds the handler. db is nil when the catalogue does not
// come from a database.
func NewSiteHandler(service services.MovieService, db HealthChecker) *SiteHandler {
	return &SiteHandler{service: service, db: db}
}

// Sitemap lists the home page, every movie and every genre page.
func (h *SiteHandler) Sitemap(c *fiber.Ctx) error {
	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, sitemapURL{
		Loc:        h.service.CanonicalURL("/"),
		ChangeFreq: "daily",
		Priority:   "1.0",
	})
	for _, slug := range h.service.GetSlugs() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.service.CanonicalURL(services.MoviePath(slug)),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}
	for _, genre := range h.service.GetGenres() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.service.CanonicalURL(services.GenrePath(genre)),
			ChangeFreq: "weekly",
			Priority:   "0.5",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sitemap: %w", err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(append([]byte(xml.Header), body...))
}

// Robots allows every crawler and points at the sitemap.
func (h *SiteHandler) Robots(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", h.service.CanonicalURL("/sitemap.xml")))
}

// Health reports the process status and the size of the loaded catalogue.
// With a database source it also pings the database.
func (h *SiteHandler) Health(c *fiber.Ctx) error {
	body := fiber.Map{
		"status":    "ok",
		"service":   "cineverse",
		"version":   "1.0.0",
		"movies":    h.service.Count(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	if h.db != nil {
		dbStatus := "healthy"
		if err := h.db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}
		body["database"] = dbStatus
	}

	return c.JSON(body)
}
