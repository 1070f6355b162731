// Package views holds the site's HTML templates and the fiber view engine
// that renders them.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"cineverse/internal/models"
	"cineverse/internal/services"
	"cineverse/internal/utils"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templateFS embed.FS

// Layout wraps every page.
const Layout = "layouts/main"

// Page names accepted by c.Render.
const (
	PageHome     = "home"
	PageMovie    = "movie"
	PageGenre    = "genre"
	PageNotFound = "notfound"
	PageError    = "error"
)

// Site holds the site-wide values every template reads.
type Site struct {
	Name           string
	Tagline        string
	DefaultOGImage string
	Year           int
	Genres         []string
}

// Page is the binding passed to every template.
type Page struct {
	Site   Site
	Meta   models.SeoMetadata
	JSONLD template.JS
	Body   any
}

// NewPage fills in the JSON-LD block from meta.
func NewPage(site Site, meta models.SeoMetadata, body any) (Page, error) {
	jsonLD, err := meta.JSONLD()
	if err != nil {
		return Page{}, fmt.Errorf("failed to encode structured data: %w", err)
	}
	return Page{Site: site, Meta: meta, JSONLD: jsonLD, Body: body}, nil
}

// New returns the page engine over the embedded templates. Pages are
// rendered inside Layout, which pulls the page in with {{embed}}.
func New() *html.Engine {
	root, err := fs.Sub(templateFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("views: embedded templates missing: %v", err))
	}

	engine := html.NewFileSystem(http.FS(root), ".html")
	engine.AddFuncMap(funcMap())
	return engine
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"truncate":  utils.TruncateSummary,
		"runtime":   utils.FormatRuntime,
		"rating":    services.FormatRating,
		"moviePath": services.MoviePath,
		"genrePath": services.GenrePath,
		"headTitle": func(meta models.SeoMetadata, siteName string) string {
			return meta.HeadTitle(siteName)
		},
		"ogImage": func(meta models.SeoMetadata, fallback string) string {
			if meta.OGImage == "" {
				return fallback
			}
			return meta.OGImage
		},
		"firstGenres": func(genres []string) []string {
			if len(genres) > 2 {
				return genres[:2]
			}
			return genres
		},
	}
}
