package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Site      SiteConfig
	Catalogue CatalogueConfig
	Database  DatabaseConfig
	MinIO     MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	StaticDir    string
}

type SiteConfig struct {
	Name           string
	BaseURL        string
	Tagline        string
	Description    string
	HomeOGImage    string
	DefaultOGImage string
}

type CatalogueConfig struct {
	// Source is either "file" or "postgres".
	Source      string
	Path        string
	LoadTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type MinIOConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8010"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
			StaticDir:    getEnvOrDefault("STATIC_DIR", "./public"),
		},
		Site: SiteConfig{
			Name:           getEnvOrDefault("SITE_NAME", "CineVerse"),
			BaseURL:        strings.TrimRight(getEnvOrDefault("SITE_BASE_URL", "https://cineverse.vercel.app"), "/"),
			Tagline:        getEnvOrDefault("SITE_TAGLINE", "Your ultimate destination for movie reviews, ratings, and recommendations"),
			Description:    getEnvOrDefault("SITE_DESCRIPTION", "Discover top-rated movies with CineVerse. Browse our collection of the best movies to watch, including classic films, award winners, and must-see cinema. Find your next favorite movie today!"),
			HomeOGImage:    getEnvOrDefault("SITE_HOME_OG_IMAGE", "/images/og-home.svg"),
			DefaultOGImage: getEnvOrDefault("SITE_DEFAULT_OG_IMAGE", "/images/og-default.svg"),
		},
		Catalogue: CatalogueConfig{
			Source:      strings.ToLower(getEnvOrDefault("CATALOGUE_SOURCE", SourceFile)),
			Path:        os.Getenv("CATALOGUE_PATH"),
			LoadTimeout: getDurationOrDefault("CATALOGUE_LOAD_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "cineverse"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 5),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		MinIO: MinIOConfig{
			Enabled:         getBoolOrDefault("POSTERS_MINIO_ENABLED", false),
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "posters"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
			PublicURL:       strings.TrimRight(getEnvOrDefault("AWS_URL", "http://localhost:9000/posters"), "/"),
		},
	}
}

// GetDSN returns PostgreSQL connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC connect_timeout=10",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// Validate reports the first setting that prevents the site from starting
// the way it is configured.
func (c *Config) Validate() error {
	if c.Site.Name == "" {
		return fmt.Errorf("SITE_NAME is required")
	}
	u, err := url.Parse(c.Site.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SITE_BASE_URL must be an absolute URL, got %q", c.Site.BaseURL)
	}

	switch c.Catalogue.Source {
	case SourceFile:
	case SourcePostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required when CATALOGUE_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("CATALOGUE_SOURCE must be %q or %q, got %q", SourceFile, SourcePostgres, c.Catalogue.Source)
	}

	if c.MinIO.Enabled {
		if c.MinIO.AccessKeyID == "" {
			return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
		}
		if c.MinIO.SecretAccessKey == "" {
			return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
		}
		if c.MinIO.Endpoint == "" {
			return fmt.Errorf("AWS_ENDPOINT is required for MinIO")
		}
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
