package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultWindowDays is the default window for analytics reports.
	DefaultWindowDays = 30
	// MaxWindowDays caps window_days so a report never walks years of days.
	MaxWindowDays = 366
)

// AnalyticsService computes completion analytics from stored progress.
type AnalyticsService interface {
	// Compute reports on the windowDays calendar days ending today in the user's timezone.
	Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsReport, error)
	// ComputeWindow reports on [from, to) as calendar days.
	ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.AnalyticsReport, error)
}

type analyticsService struct {
	engine *analytics.Engine
	loader snapshotLoader
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(engine *analytics.Engine, repos Repositories, now Clock) AnalyticsService {
	return &analyticsService{
		engine: engine,
		loader: newSnapshotLoader(repos, now),
	}
}

func (s *analyticsService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsReport, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays > MaxWindowDays {
		windowDays = MaxWindowDays
	}

	snap, err := s.loader.load(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	report := s.compute(ctx, snap, trailingWindow(snap.today(), windowDays))
	return &report, nil
}

func (s *analyticsService) ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.AnalyticsReport, error) {
	if to.Sub(from) > MaxWindowDays*24*time.Hour {
		return nil, fmt.Errorf("%w: window longer than %d days", domain.ErrInvalidWindow, MaxWindowDays)
	}

	snap, err := s.loader.load(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	report := s.compute(ctx, snap, domain.DateWindow{Start: from, End: to})
	return &report, nil
}

func (s *analyticsService) compute(ctx context.Context, snap *snapshot, window domain.DateWindow) domain.AnalyticsReport {
	tracer := telemetry.Tracer("analytics")
	_, span := tracer.Start(ctx, "AnalyticsService.ComputeWindow",
		trace.WithAttributes(
			attribute.String("user.id", snap.user.ID.String()),
			attribute.String("window.from", window.Start.Format(time.RFC3339)),
			attribute.String("window.to", window.End.Format(time.RFC3339)),
			attribute.Int("habits.count", len(snap.habits)),
		),
	)
	defer span.End()

	observe(span, "input", map[string]any{
		"user_id":  snap.user.ID.String(),
		"from":     window.Start.Format(time.RFC3339),
		"to":       window.End.Format(time.RFC3339),
		"habits":   len(snap.habits),
		"progress": len(snap.progress),
	})

	report := s.engine.Calculate(snap.habits, snap.progress, window)
	logDataQuality(snap.user.ID, report)

	span.SetAttributes(
		attribute.Int("window.days", report.WindowDays),
		attribute.Float64("report.completion_rate", report.OverallCompletionRate),
	)
	observe(span, "output", report)

	return report
}

// trailingWindow covers the n calendar days ending with today's date.
func trailingWindow(today time.Time, n int) domain.DateWindow {
	y, m, d := today.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return domain.DateWindow{Start: end.AddDate(0, 0, -n), End: end}
}

func logDataQuality(userID uuid.UUID, report domain.AnalyticsReport) {
	if report.SkippedEntries == 0 && report.DuplicateEntries == 0 {
		return
	}
	log.Printf("[analytics] user %s: ignored %d malformed and %d duplicate completion entries",
		userID, report.SkippedEntries, report.DuplicateEntries)
}
