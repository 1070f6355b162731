// Package docs holds the Swagger 2.0 document served at /swagger, in the
// layout swag init writes. Regenerate with `swag init -g cmd/main.go` after
// changing handler annotations; routes_test.go checks it against the router.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/genres": {
            "get": {
                "description": "Distinct genre labels with their movie counts, in the order they first appear in the catalogue",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List genres",
                "responses": {
                    "200": {
                        "description": "Genres",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        },
        "/movies": {
            "get": {
                "description": "List the catalogue in dataset order, optionally filtered by genre (case-insensitive)",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List movies",
                "parameters": [
                    {"type": "string", "description": "Genre label", "name": "genre", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "List of movies",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        },
        "/movies/featured": {
            "get": {
                "description": "Top rated movies, highest rating first; ties keep dataset order",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List featured movies",
                "parameters": [
                    {"type": "integer", "default": 3, "description": "Number of movies", "name": "count", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Featured movies",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    },
                    "400": {
                        "description": "Invalid count",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        },
        "/movies/{slug}": {
            "get": {
                "description": "Get a single movie by its URL slug (case-sensitive)",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "Get movie by slug",
                "parameters": [
                    {"type": "string", "description": "Movie slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Movie details",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    },
                    "404": {
                        "description": "Movie not found",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        },
        "/movies/{slug}/metadata": {
            "get": {
                "description": "Head tags and schema.org Movie record for a movie page",
                "produces": ["application/json"],
                "tags": ["metadata"],
                "summary": "Get movie SEO metadata",
                "parameters": [
                    {"type": "string", "description": "Movie slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Movie metadata",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    },
                    "404": {
                        "description": "Movie not found",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        },
        "/movies/{slug}/related": {
            "get": {
                "description": "Movies sharing at least one genre with the given movie, excluding itself",
                "produces": ["application/json"],
                "tags": ["movies"],
                "summary": "List related movies",
                "parameters": [
                    {"type": "string", "description": "Movie slug", "name": "slug", "in": "path", "required": true},
                    {"type": "integer", "default": 3, "description": "Maximum number of movies", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Related movies",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    },
                    "400": {
                        "description": "Invalid limit",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    },
                    "404": {
                        "description": "Movie not found",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        },
        "/site/metadata": {
            "get": {
                "description": "Head tags and schema.org WebSite record for the home page",
                "produces": ["application/json"],
                "tags": ["metadata"],
                "summary": "Get site SEO metadata",
                "responses": {
                    "200": {
                        "description": "Site metadata",
                        "schema": {"$ref": "#/definitions/utils.StandardResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "utils.ListMeta": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            }
        },
        "utils.StandardResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "meta": {"$ref": "#/definitions/utils.ListMeta"},
                "status": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8010",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "CineVerse API",
	Description:      "Read-only access to the CineVerse movie catalogue and its search-engine metadata",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
