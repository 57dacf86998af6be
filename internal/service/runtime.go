package service

import (
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"pathly/run-planner/internal/logger"
)

var tracer = otel.Tracer("pathly/run-planner/internal/service")

// Runtime carries the process-wide collaborators that Profile Intake and the
// Plan Builder need. It replaces any global app state: callers construct one
// at startup and pass it explicitly.
type Runtime struct {
	Now   func() time.Time
	NewID func() uuid.UUID
	Log   *logger.Logger
}

// NewRuntime returns a Runtime backed by the wall clock and random UUIDs.
func NewRuntime(log *logger.Logger) Runtime {
	return Runtime{
		Now:   time.Now,
		NewID: uuid.New,
		Log:   log,
	}
}

// timestamp returns the current time in UTC at millisecond precision, the
// finest resolution every storage backend preserves.
func (rt Runtime) timestamp() time.Time {
	return rt.Now().UTC().Truncate(time.Millisecond)
}
