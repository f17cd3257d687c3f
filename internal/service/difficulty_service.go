package service

import (
	"context"
	"errors"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DifficultyService recommends difficulty adjustments. Recommendations are
// proposals only; nothing here writes to the habit.
type DifficultyService interface {
	Analyze(ctx context.Context, userID, habitID uuid.UUID) (*domain.DifficultyAdjustment, error)
	AnalyzeAll(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyAdjustment, error)
}

type difficultyService struct {
	engine *analytics.Engine
	repos  Repositories
	loader snapshotLoader
}

func NewDifficultyService(engine *analytics.Engine, repos Repositories, now Clock) DifficultyService {
	return &difficultyService{
		engine: engine,
		repos:  repos,
		loader: newSnapshotLoader(repos, now),
	}
}

func (s *difficultyService) Analyze(ctx context.Context, userID, habitID uuid.UUID) (*domain.DifficultyAdjustment, error) {
	tracer := telemetry.Tracer("difficulty")
	ctx, span := tracer.Start(ctx, "DifficultyService.Analyze",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.String("habit.id", habitID.String()),
		),
	)
	defer span.End()

	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	habit, err := s.repos.Habits.GetByID(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	progress, err := s.repos.Progress.GetByHabit(ctx, userID, habitID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := s.loader.now().In(user.Location())
	adj := s.engine.AnalyzeDifficulty(*habit, progress, *user, now)

	span.SetAttributes(
		attribute.String("adjustment.direction", string(adj.Direction)),
		attribute.Float64("adjustment.confidence", adj.Confidence),
	)
	observe(span, "output", adj)

	return &adj, nil
}

func (s *difficultyService) AnalyzeAll(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyAdjustment, error) {
	snap, err := s.loader.load(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	return s.analyzeSnapshot(ctx, snap), nil
}

func (s *difficultyService) analyzeSnapshot(ctx context.Context, snap *snapshot) []domain.DifficultyAdjustment {
	tracer := telemetry.Tracer("difficulty")
	_, span := tracer.Start(ctx, "DifficultyService.AnalyzeAll",
		trace.WithAttributes(
			attribute.String("user.id", snap.user.ID.String()),
			attribute.Int("habits.count", len(snap.habits)),
		),
	)
	defer span.End()

	byHabit := make(map[uuid.UUID]*domain.Progress, len(snap.progress))
	for i := range snap.progress {
		if _, ok := byHabit[snap.progress[i].HabitID]; !ok {
			byHabit[snap.progress[i].HabitID] = &snap.progress[i]
		}
	}

	today := snap.today()
	adjustments := make([]domain.DifficultyAdjustment, 0, len(snap.habits))
	for _, h := range snap.habits {
		adjustments = append(adjustments, s.engine.AnalyzeDifficulty(h, byHabit[h.ID], *snap.user, today))
	}

	observe(span, "output", adjustments)
	return adjustments
}
