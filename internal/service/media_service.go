package service

import (
	"context"
	"time"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/storage"
)

// MediaService turns an exercise's media reference into a download URL.
type MediaService interface {
	ResolveURL(ctx context.Context, exercise domain.Exercise) (string, bool)
}

type mediaService struct {
	rt      Runtime
	files   storage.FileStorage
	prefix  string
	expires time.Duration
}

// NewMediaService returns a MediaService. A nil files disables URLs.
func NewMediaService(rt Runtime, files storage.FileStorage, prefix string, expires time.Duration) MediaService {
	return &mediaService{rt: rt, files: files, prefix: prefix, expires: expires}
}

// ResolveURL reports false when the exercise has no media, no storage is
// configured, or presigning fails. Missing media never fails a request.
func (s *mediaService) ResolveURL(ctx context.Context, exercise domain.Exercise) (string, bool) {
	if s.files == nil || exercise.MediaRef == nil || *exercise.MediaRef == "" {
		return "", false
	}
	key := s.prefix + *exercise.MediaRef + ".gif"
	url, err := s.files.GeneratePresignedDownloadURL(ctx, key, s.expires)
	if err != nil {
		s.rt.Log.Warn("media url unavailable", "key", key, "error", err)
		return "", false
	}
	return url, true
}
