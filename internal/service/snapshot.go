package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/repository"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Clock returns the current instant. Services take one so tests can pin "today".
type Clock func() time.Time

// Repositories groups the stores the engine services read from.
type Repositories struct {
	Users         repository.UserRepository
	Habits        repository.HabitRepository
	Progress      repository.ProgressRepository
	ResearchViews repository.ResearchViewRepository
}

// snapshot is everything one engine computation reads, loaded once.
type snapshot struct {
	user     *domain.User
	habits   []domain.Habit
	progress []domain.Progress
	viewed   []uuid.UUID
	now      time.Time
}

// today is the snapshot instant in the user's home timezone.
func (s *snapshot) today() time.Time {
	return s.now.In(s.user.Location())
}

type snapshotLoader struct {
	repos Repositories
	now   Clock
}

func newSnapshotLoader(repos Repositories, now Clock) snapshotLoader {
	if now == nil {
		now = time.Now
	}
	return snapshotLoader{repos: repos, now: now}
}

// load reads the user first so unknown users fail fast with ErrNotFound, then
// fetches habits, progress and optionally research views concurrently.
func (l snapshotLoader) load(ctx context.Context, userID uuid.UUID, withViews bool) (*snapshot, error) {
	user, err := l.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{user: user, now: l.now()}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		habits, err := l.repos.Habits.ListAll(gctx, userID)
		snap.habits = habits
		return err
	})
	g.Go(func() error {
		progress, err := l.repos.Progress.ListByUser(gctx, userID)
		snap.progress = progress
		return err
	})
	if withViews {
		g.Go(func() error {
			viewed, err := l.repos.ResearchViews.ViewedHabitIDs(gctx, userID)
			snap.viewed = viewed
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

// observe attaches a JSON payload to the span for Langfuse.
func observe(span trace.Span, key string, v any) {
	if data, err := json.Marshal(v); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation."+key, string(data)))
	}
}
