package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"pathly/run-planner/internal/domain"
)

func TestResolveURL(t *testing.T) {
	ref := "leg_swings"
	exercise := domain.Exercise{Name: "Leg Swings", DurationSeconds: 60, MediaRef: &ref}

	t.Run("presigned", func(t *testing.T) {
		files := &fakeFileStorage{}
		media := NewMediaService(testRuntime(), files, "media/exercises/", 5*time.Minute)

		url, ok := media.ResolveURL(context.Background(), exercise)
		if !ok {
			t.Fatal("ResolveURL reported no media")
		}
		if want := "https://media.example.com/media/exercises/leg_swings.gif?sig=1"; url != want {
			t.Errorf("url = %q, want %q", url, want)
		}
	})

	t.Run("no storage", func(t *testing.T) {
		media := NewMediaService(testRuntime(), nil, "media/exercises/", 5*time.Minute)
		if _, ok := media.ResolveURL(context.Background(), exercise); ok {
			t.Error("ResolveURL without storage reported media")
		}
	})

	t.Run("no media ref", func(t *testing.T) {
		files := &fakeFileStorage{}
		media := NewMediaService(testRuntime(), files, "media/exercises/", 5*time.Minute)
		bare := exercise
		bare.MediaRef = nil
		if _, ok := media.ResolveURL(context.Background(), bare); ok {
			t.Error("ResolveURL without media ref reported media")
		}
		if len(files.keys) != 0 {
			t.Errorf("storage called with %v", files.keys)
		}
	})

	t.Run("presign failure", func(t *testing.T) {
		files := &fakeFileStorage{err: errors.New("no credentials")}
		media := NewMediaService(testRuntime(), files, "media/exercises/", 5*time.Minute)
		if url, ok := media.ResolveURL(context.Background(), exercise); ok || url != "" {
			t.Errorf("ResolveURL = %q, %v; want empty, false", url, ok)
		}
	})
}
