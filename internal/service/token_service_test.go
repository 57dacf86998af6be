package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/logger"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService(NewRuntime(logger.NewNop()), "test-secret", time.Hour)
	profile := &domain.UserProfile{ID: uuid.New()}

	token, err := tokens.Issue(profile)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	owner, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if owner != profile.ID {
		t.Errorf("owner = %s, want %s", owner, profile.ID)
	}
}

func TestTokenVerifyRejects(t *testing.T) {
	profile := &domain.UserProfile{ID: uuid.New()}
	rt := NewRuntime(logger.NewNop())

	other, err := NewTokenService(rt, "other-secret", time.Hour).Issue(profile)
	if err != nil {
		t.Fatal(err)
	}
	past := rt
	past.Now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	expired, err := NewTokenService(past, "test-secret", time.Hour).Issue(profile)
	if err != nil {
		t.Fatal(err)
	}

	tokens := NewTokenService(rt, "test-secret", time.Hour)
	tests := map[string]string{
		"wrong secret": other,
		"expired":      expired,
		"malformed":    "not-a-token",
		"empty":        "",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := tokens.Verify(token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Verify error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestNewTokenServicePanicsWithoutSecret(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTokenService with empty secret did not panic")
		}
	}()
	NewTokenService(testRuntime(), "", time.Hour)
}
