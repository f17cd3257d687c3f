package service

import (
	"context"
	"log"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/langfuse"
	"github.com/blaisecz/habit-tracker/internal/llm"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// CoachingTraceName names the Langfuse trace coaching generations are filed under.
const CoachingTraceName = "recovery-coaching"

// CoachingService turns the current recovery plan into a motivational message.
type CoachingService interface {
	Generate(ctx context.Context, userID uuid.UUID) (*domain.CoachingResponse, error)
}

type coachingService struct {
	analytics  *analyticsService
	recovery   *recoveryService
	loader     snapshotLoader
	llmClient  llm.CoachLLM
	lf         langfuse.Client
	windowDays int
}

// NewCoachingService creates a new CoachingService.
func NewCoachingService(
	engine *analytics.Engine,
	repos Repositories,
	llmClient llm.CoachLLM,
	lf langfuse.Client,
	windowDays int,
	now Clock,
) CoachingService {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	loader := newSnapshotLoader(repos, now)
	return &coachingService{
		analytics:  &analyticsService{engine: engine, loader: loader},
		recovery:   &recoveryService{engine: engine, loader: loader},
		loader:     loader,
		llmClient:  llmClient,
		lf:         lf,
		windowDays: windowDays,
	}
}

func (s *coachingService) Generate(ctx context.Context, userID uuid.UUID) (*domain.CoachingResponse, error) {
	snap, err := s.loader.load(ctx, userID, false)
	if err != nil {
		return nil, err
	}

	report := s.recovery.assessSnapshot(ctx, snap)
	response := &domain.CoachingResponse{Recovery: report}
	if !report.NeedsRecovery {
		return response, nil
	}

	goals := []string(snap.user.Goals)
	if goals == nil {
		goals = []string{}
	}
	coachingCtx := &domain.CoachingContext{
		Recovery:  report,
		Analytics: s.analytics.compute(ctx, snap, trailingWindow(snap.today(), s.windowDays)),
		Goals:     goals,
	}

	message, err := s.llmClient.GenerateCoaching(ctx, coachingCtx)
	if err != nil {
		return nil, err
	}
	response.Message = message

	s.recordTrace(ctx, userID, coachingCtx, message)
	return response, nil
}

// recordTrace names the request's trace and attaches the generation so that
// feedback scores land next to what the user saw.
func (s *coachingService) recordTrace(ctx context.Context, userID uuid.UUID, in *domain.CoachingContext, out *domain.CoachingMessage) {
	if s.lf == nil || !s.lf.IsEnabled() {
		return
	}
	spanCtx := trace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return
	}
	_, err := s.lf.CreateTrace(ctx, langfuse.TraceInput{
		ID:     spanCtx.TraceID().String(),
		UserID: userID.String(),
		Name:   CoachingTraceName,
		Input:  in,
		Output: out,
		Tags:   []string{string(in.Recovery.Plan.Strategy)},
		Metadata: map[string]any{
			"triggers": len(in.Recovery.Triggers),
		},
	})
	if err != nil {
		log.Printf("[langfuse] coaching trace failed: %v", err)
	}
}
