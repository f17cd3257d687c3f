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

// RecoveryService detects lapses and builds a recovery plan.
type RecoveryService interface {
	Assess(ctx context.Context, userID uuid.UUID) (*domain.RecoveryReport, error)
}

type recoveryService struct {
	engine *analytics.Engine
	loader snapshotLoader
}

func NewRecoveryService(engine *analytics.Engine, repos Repositories, now Clock) RecoveryService {
	return &recoveryService{
		engine: engine,
		loader: newSnapshotLoader(repos, now),
	}
}

func (s *recoveryService) Assess(ctx context.Context, userID uuid.UUID) (*domain.RecoveryReport, error) {
	snap, err := s.loader.load(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	report := s.assessSnapshot(ctx, snap)
	return &report, nil
}

func (s *recoveryService) assessSnapshot(ctx context.Context, snap *snapshot) domain.RecoveryReport {
	tracer := telemetry.Tracer("recovery")
	_, span := tracer.Start(ctx, "RecoveryService.Assess",
		trace.WithAttributes(
			attribute.String("user.id", snap.user.ID.String()),
			attribute.Int("habits.count", len(snap.habits)),
		),
	)
	defer span.End()

	report := s.engine.DetectRecovery(snap.habits, snap.progress, snap.today())

	span.SetAttributes(
		attribute.Bool("recovery.needed", report.NeedsRecovery),
		attribute.Int("recovery.triggers", len(report.Triggers)),
	)
	if report.Plan != nil {
		span.SetAttributes(attribute.String("recovery.strategy", string(report.Plan.Strategy)))
	}
	observe(span, "output", report)

	return report
}
