package mongo

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"pathly/run-planner/internal/domain"
	"pathly/run-planner/internal/repository"
)

func testDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("PATHLY_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("PATHLY_TEST_MONGO_URI not set")
	}
	client, err := ConnectDB(uri)
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	db := client.Database("pathly_test_" + uuid.NewString()[:8])
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = DisconnectDB(client)
	})
	if err = EnsureIndexes(context.Background(), db); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	return db
}

func samplePlan(owner uuid.UUID) *domain.Plan {
	media := "leg_swings"
	created := time.Date(2025, 1, 1, 9, 30, 0, 0, time.UTC)
	return &domain.Plan{
		ID:          uuid.New(),
		OwnerUserID: owner,
		CreatedAt:   created,
		Weeks: []domain.Week{{
			ID:         uuid.New(),
			WeekNumber: 1,
			Workouts: []domain.Workout{{
				ID:       uuid.New(),
				Date:     created.AddDate(0, 0, 1),
				WarmUp:   []domain.Exercise{{Name: "Leg Swings", Description: "swing", DurationSeconds: 60, MediaRef: &media}},
				Run:      domain.RunSegment{Intervals: []domain.Interval{{DurationSeconds: 120, Kind: domain.IntervalWalk}, {DurationSeconds: 72.5, Kind: domain.IntervalRun}, {DurationSeconds: 120, Kind: domain.IntervalWalk}}},
				CoolDown: []domain.Exercise{{Name: "Calf Stretch", Description: "stretch", DurationSeconds: 60}},
			}},
		}},
	}
}

func TestPlanRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoPlanRepository(testDatabase(t))
	owner := uuid.New()

	first := samplePlan(owner)
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second := samplePlan(owner)
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save overwrite: %v", err)
	}

	got, err := repo.GetByOwner(ctx, owner)
	if err != nil {
		t.Fatalf("GetByOwner: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if _, err = repo.GetByOwner(ctx, uuid.New()); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByOwner(other) error = %v, want ErrNotFound", err)
	}

	if err = repo.DeleteByOwner(ctx, owner); err != nil {
		t.Fatalf("DeleteByOwner: %v", err)
	}
	if _, err = repo.GetByOwner(ctx, owner); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetByOwner after delete error = %v, want ErrNotFound", err)
	}
}

func TestProfileRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMongoProfileRepository(testDatabase(t))

	if _, err := repo.GetCurrent(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("GetCurrent on empty store error = %v, want ErrNotFound", err)
	}

	profile := &domain.UserProfile{
		ID:         uuid.New(),
		Goal:       domain.GoalHalfMarathon,
		Frequency:  domain.FrequencyFourDays,
		Experience: domain.ExperienceIntermediate,
		CreatedAt:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(ctx, profile); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetCurrent(ctx)
	if err != nil {
		t.Fatalf("GetCurrent: %v", err)
	}
	if diff := cmp.Diff(profile, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if err = repo.Delete(ctx); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err = repo.GetCurrent(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetCurrent after delete error = %v, want ErrNotFound", err)
	}
}
