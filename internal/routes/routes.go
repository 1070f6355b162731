package routes

import (
	"cineverse/internal/handlers"
	"cineverse/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, pageHandler *handlers.PageHandler, movieHandler *handlers.MovieHandler, siteHandler *handlers.SiteHandler, m *metrics.Metrics) {
	// Operational endpoints
	app.Get("/health", siteHandler.Health)
	app.Get("/metrics", m.Handler())

	// Crawler documents
	app.Get("/sitemap.xml", siteHandler.Sitemap)
	app.Get("/robots.txt", siteHandler.Robots)

	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1")

	movies := v1.Group("/movies")
	{
		movies.Get("/", movieHandler.GetAllMovies)
		movies.Get("/featured", movieHandler.GetFeaturedMovies)
		movies.Get("/:slug", movieHandler.GetMovieBySlug)
		movies.Get("/:slug/related", movieHandler.GetRelatedMovies)
		movies.Get("/:slug/metadata", movieHandler.GetMovieMetadata)
	}

	v1.Get("/genres", movieHandler.GetGenres)
	v1.Get("/site/metadata", movieHandler.GetSiteMetadata)

	// Server-rendered pages
	app.Get("/", pageHandler.Home)
	app.Get("/movies/:slug", pageHandler.Movie)
	app.Get("/genres/:genre", pageHandler.Genre)
}
