package services

import (
	"context"
	"fmt"
	"strings"

	"cineverse/internal/config"
	"cineverse/internal/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// objectStatter is the part of *minio.Client the poster audit needs.
type objectStatter interface {
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

// PosterService maps poster paths from the dataset onto the public poster
// bucket and checks that the objects exist.
type PosterService struct {
	client    objectStatter
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

func NewPosterService(cfg *config.MinIOConfig, logger *logrus.Logger) (*PosterService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("Poster storage client initialized")

	return newPosterService(minioClient, cfg.BucketName, cfg.PublicURL, logger), nil
}

func newPosterService(client objectStatter, bucket, publicURL string, logger *logrus.Logger) *PosterService {
	return &PosterService{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		logger:    logger,
	}
}

// ObjectName extracts the bucket object key from a dataset poster path:
// "/images/posters/inception.jpg" -> "inception.jpg".
func (s *PosterService) ObjectName(posterURL string) string {
	path := posterURL
	if idx := strings.Index(path, "?"); idx != -1 {
		path = path[:idx]
	}
	if idx := strings.LastIndex(path, "/"); idx != -1 {
		path = path[idx+1:]
	}
	return path
}

// ResolveURL returns the public bucket URL for a relative poster path.
// Absolute URLs are left alone.
func (s *PosterService) ResolveURL(posterURL string) string {
	if strings.HasPrefix(posterURL, "http://") || strings.HasPrefix(posterURL, "https://") {
		return posterURL
	}
	name := s.ObjectName(posterURL)
	if name == "" {
		return posterURL
	}
	return s.publicURL + "/" + name
}

// Resolve returns a copy of movies with every poster pointing at the bucket.
// It runs before the catalogue snapshot is built.
func (s *PosterService) Resolve(movies []models.Movie) []models.Movie {
	resolved := make([]models.Movie, len(movies))
	for i, m := range movies {
		m.PosterURL = s.ResolveURL(m.PosterURL)
		resolved[i] = m
	}
	return resolved
}

// Audit stats every poster object and returns the slugs whose poster is
// missing. Pages render a fallback for those, so a miss is only logged.
func (s *PosterService) Audit(ctx context.Context, movies []models.Movie) ([]string, error) {
	missing := []string{}
	for _, m := range movies {
		object := s.ObjectName(m.PosterURL)
		_, err := s.client.StatObject(ctx, s.bucket, object, minio.StatObjectOptions{})
		if err == nil {
			continue
		}

		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			s.logger.WithFields(logrus.Fields{
				"slug":   m.Slug,
				"object": object,
			}).Warn("Poster object missing, fallback artwork will be shown")
			missing = append(missing, m.Slug)
			continue
		}

		return missing, fmt.Errorf("failed to stat poster %s: %w", object, err)
	}

	s.logger.WithFields(logrus.Fields{
		"bucket":  s.bucket,
		"posters": len(movies),
		"missing": len(missing),
	}).Info("Poster audit completed")
	return missing, nil
}
