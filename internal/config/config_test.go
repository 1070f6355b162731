package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SITE_NAME", "SITE_BASE_URL", "CATALOGUE_SOURCE", "CATALOGUE_PATH", "POSTERS_MINIO_ENABLED", "SERVER_PORT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, "CineVerse", cfg.Site.Name)
	assert.Equal(t, "https://cineverse.vercel.app", cfg.Site.BaseURL)
	assert.Equal(t, "/images/og-home.svg", cfg.Site.HomeOGImage)
	assert.Equal(t, SourceFile, cfg.Catalogue.Source)
	assert.Empty(t, cfg.Catalogue.Path)
	assert.False(t, cfg.MinIO.Enabled)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SITE_BASE_URL", "https://movies.example.com/")
	t.Setenv("CATALOGUE_SOURCE", "Postgres")
	t.Setenv("DB_QUERY_TIMEOUT", "3s")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "https://movies.example.com", cfg.Site.BaseURL)
	assert.Equal(t, SourcePostgres, cfg.Catalogue.Source)
	assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Site:      SiteConfig{Name: "CineVerse", BaseURL: "https://cineverse.test"},
			Catalogue: CatalogueConfig{Source: SourceFile},
			Database:  DatabaseConfig{Host: "localhost"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"missing name", func(c *Config) { c.Site.Name = "" }, "SITE_NAME"},
		{"relative base url", func(c *Config) { c.Site.BaseURL = "/movies" }, "SITE_BASE_URL"},
		{"unknown source", func(c *Config) { c.Catalogue.Source = "s3" }, "CATALOGUE_SOURCE"},
		{"postgres without host", func(c *Config) {
			c.Catalogue.Source = SourcePostgres
			c.Database.Host = ""
		}, "DB_HOST"},
		{"minio without keys", func(c *Config) {
			c.MinIO = MinIOConfig{Enabled: true, Endpoint: "localhost:9000"}
		}, "AWS_ACCESS_KEY_ID"},
		{"minio disabled ignores keys", func(c *Config) {
			c.MinIO = MinIOConfig{Enabled: false}
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDSN(t *testing.T) {
	db := DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "cineverse", SSLMode: "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=cineverse sslmode=disable TimeZone=UTC connect_timeout=10", db.GetDSN())
}
