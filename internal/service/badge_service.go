package service

import (
	"context"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// BadgeCatalog supplies the static badge definitions.
type BadgeCatalog interface {
	Badges() []domain.Badge
}

// BadgeService evaluates the badge catalog against a user's history.
type BadgeService interface {
	Evaluate(ctx context.Context, userID uuid.UUID) ([]domain.BadgeDisplay, error)
}

type badgeService struct {
	engine  *analytics.Engine
	catalog BadgeCatalog
	loader  snapshotLoader
}

func NewBadgeService(engine *analytics.Engine, catalog BadgeCatalog, repos Repositories, now Clock) BadgeService {
	return &badgeService{
		engine:  engine,
		catalog: catalog,
		loader:  newSnapshotLoader(repos, now),
	}
}

func (s *badgeService) Evaluate(ctx context.Context, userID uuid.UUID) ([]domain.BadgeDisplay, error) {
	snap, err := s.loader.load(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	return s.evaluateSnapshot(ctx, snap), nil
}

func (s *badgeService) evaluateSnapshot(ctx context.Context, snap *snapshot) []domain.BadgeDisplay {
	badges := s.catalog.Badges()

	tracer := telemetry.Tracer("badges")
	_, span := tracer.Start(ctx, "BadgeService.Evaluate",
		trace.WithAttributes(
			attribute.String("user.id", snap.user.ID.String()),
			attribute.Int("catalog.size", len(badges)),
		),
	)
	defer span.End()

	metrics := s.engine.BadgeMetrics(snap.habits, snap.progress, snap.viewed, badges, snap.today())
	displays := s.engine.EvaluateBadges(badges, metrics)

	earned := 0
	for _, d := range displays {
		if d.IsEarned {
			earned++
		}
	}
	span.SetAttributes(attribute.Int("badges.earned", earned))
	observe(span, "output", displays)

	return displays
}
