package service

import (
	"context"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// DashboardService computes every engine output from a single snapshot so the
// parts of the response agree with each other.
type DashboardService interface {
	Build(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error)
}

type dashboardService struct {
	analytics  *analyticsService
	difficulty *difficultyService
	recovery   *recoveryService
	badges     *badgeService
	loader     snapshotLoader
	windowDays int
}

func NewDashboardService(engine *analytics.Engine, catalog BadgeCatalog, repos Repositories, windowDays int, now Clock) DashboardService {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	loader := newSnapshotLoader(repos, now)
	return &dashboardService{
		analytics:  &analyticsService{engine: engine, loader: loader},
		difficulty: &difficultyService{engine: engine, repos: repos, loader: loader},
		recovery:   &recoveryService{engine: engine, loader: loader},
		badges:     &badgeService{engine: engine, catalog: catalog, loader: loader},
		loader:     loader,
		windowDays: windowDays,
	}
}

func (s *dashboardService) Build(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	tracer := telemetry.Tracer("dashboard")
	ctx, span := tracer.Start(ctx, "DashboardService.Build",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	snap, err := s.loader.load(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	// snap is read-only from here on.
	var resp domain.DashboardResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp.Analytics = s.analytics.compute(gctx, snap, trailingWindow(snap.today(), s.windowDays))
		return nil
	})
	g.Go(func() error {
		resp.Adjustments = s.difficulty.analyzeSnapshot(gctx, snap)
		return nil
	})
	g.Go(func() error {
		resp.Recovery = s.recovery.assessSnapshot(gctx, snap)
		return nil
	})
	g.Go(func() error {
		resp.Badges = s.badges.evaluateSnapshot(gctx, snap)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("dashboard.habits", len(snap.habits)),
		attribute.Bool("dashboard.needs_recovery", resp.Recovery.NeedsRecovery),
	)
	return &resp, nil
}
