package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"pathly/run-planner/internal/config"
	"pathly/run-planner/internal/logger"
)

func TestGeneratePresignedDownloadURL(t *testing.T) {
	ctx := context.Background()
	fs, err := NewS3Storage(ctx, config.S3Config{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		AccessKeyID:     "test-access",
		SecretAccessKey: "test-secret",
		BucketName:      "media",
	}, logger.NewNop())
	if err != nil {
		t.Fatalf("NewS3Storage: %v", err)
	}

	raw, err := fs.GeneratePresignedDownloadURL(ctx, "exercises/leg_swings.gif", 5*time.Minute)
	if err != nil {
		t.Fatalf("GeneratePresignedDownloadURL: %v", err)
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	if u.Host != "localhost:9000" {
		t.Errorf("host = %q, want localhost:9000", u.Host)
	}
	if u.Path != "/media/exercises/leg_swings.gif" {
		t.Errorf("path = %q, want path-style bucket/key", u.Path)
	}
	q := u.Query()
	if q.Get("X-Amz-Expires") != "300" {
		t.Errorf("X-Amz-Expires = %q, want 300", q.Get("X-Amz-Expires"))
	}
	if !strings.HasPrefix(q.Get("X-Amz-Credential"), "test-access/") {
		t.Errorf("X-Amz-Credential = %q", q.Get("X-Amz-Credential"))
	}
	if q.Get("X-Amz-Signature") == "" {
		t.Error("missing X-Amz-Signature")
	}
}
