package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/langfuse"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// withURLParams attaches chi URL params given as name/value pairs.
func withURLParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockHabitService is a mock implementation of HabitService
type MockHabitService struct {
	createFunc   func(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error)
	listFunc     func(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) (*domain.HabitListResponse, error)
	startFunc    func(ctx context.Context, userID, habitID uuid.UUID, req *domain.StartHabitRequest) (*domain.Progress, bool, error)
	completeFunc func(ctx context.Context, userID, habitID uuid.UUID, req *domain.LogCompletionRequest) (*domain.Progress, error)
	err          error
}

func (m *MockHabitService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return &domain.Habit{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Category:    req.Category,
		TimeMinutes: req.TimeMinutes,
		Frequency:   req.Frequency,
		Difficulty:  req.Difficulty,
		CreatedAt:   time.Now(),
	}, nil
}

func (m *MockHabitService) Get(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Habit{ID: habitID, UserID: userID, Name: "Walk"}, nil
}

func (m *MockHabitService) List(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) (*domain.HabitListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.HabitListResponse{
		Data:       []domain.HabitResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockHabitService) Start(ctx context.Context, userID, habitID uuid.UUID, req *domain.StartHabitRequest) (*domain.Progress, bool, error) {
	if m.startFunc != nil {
		return m.startFunc(ctx, userID, habitID, req)
	}
	return &domain.Progress{ID: uuid.New(), UserID: userID, HabitID: habitID, Version: 1}, false, nil
}

func (m *MockHabitService) GetProgress(ctx context.Context, userID, habitID uuid.UUID) (*domain.Progress, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Progress{ID: uuid.New(), UserID: userID, HabitID: habitID, Version: 1}, nil
}

func (m *MockHabitService) LogCompletion(ctx context.Context, userID, habitID uuid.UUID, req *domain.LogCompletionRequest) (*domain.Progress, error) {
	if m.completeFunc != nil {
		return m.completeFunc(ctx, userID, habitID, req)
	}
	return &domain.Progress{ID: uuid.New(), UserID: userID, HabitID: habitID, Version: 2}, nil
}

func (m *MockHabitService) RecordResearchView(ctx context.Context, userID, habitID uuid.UUID) error {
	return m.err
}

// MockAnalyticsService is a mock implementation of AnalyticsService
type MockAnalyticsService struct {
	computeFunc       func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsReport, error)
	computeWindowFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.AnalyticsReport, error)
}

func (m *MockAnalyticsService) Compute(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.AnalyticsReport, error) {
	if m.computeFunc != nil {
		return m.computeFunc(ctx, userID, windowDays)
	}
	return &domain.AnalyticsReport{WindowDays: windowDays, BestDay: domain.NoBestDay}, nil
}

func (m *MockAnalyticsService) ComputeWindow(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.AnalyticsReport, error) {
	if m.computeWindowFunc != nil {
		return m.computeWindowFunc(ctx, userID, from, to)
	}
	return &domain.AnalyticsReport{Window: domain.DateWindow{Start: from, End: to}, BestDay: domain.NoBestDay}, nil
}

// MockEngineServices implements the difficulty, recovery, badge and dashboard services.
type MockEngineServices struct {
	err      error
	recovery domain.RecoveryReport
}

func (m *MockEngineServices) Analyze(ctx context.Context, userID, habitID uuid.UUID) (*domain.DifficultyAdjustment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.DifficultyAdjustment{HabitID: habitID, Direction: domain.AdjustMaintain, Changes: []domain.FieldChange{}}, nil
}

func (m *MockEngineServices) AnalyzeAll(ctx context.Context, userID uuid.UUID) ([]domain.DifficultyAdjustment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.DifficultyAdjustment{}, nil
}

func (m *MockEngineServices) Assess(ctx context.Context, userID uuid.UUID) (*domain.RecoveryReport, error) {
	if m.err != nil {
		return nil, m.err
	}
	report := m.recovery
	if report.Triggers == nil {
		report.Triggers = []domain.RecoveryTrigger{}
	}
	return &report, nil
}

func (m *MockEngineServices) Evaluate(ctx context.Context, userID uuid.UUID) ([]domain.BadgeDisplay, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []domain.BadgeDisplay{{BadgeID: "first_step", BadgeProgress: domain.BadgeProgress{CurrentValue: 1, Progress: 100, IsEarned: true}}}, nil
}

func (m *MockEngineServices) Build(ctx context.Context, userID uuid.UUID) (*domain.DashboardResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &domain.DashboardResponse{
		Adjustments: []domain.DifficultyAdjustment{},
		Recovery:    domain.RecoveryReport{Triggers: []domain.RecoveryTrigger{}},
		Badges:      []domain.BadgeDisplay{},
	}, nil
}

// MockCoachingService is a mock implementation of CoachingService
type MockCoachingService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.CoachingResponse, error)
}

func (m *MockCoachingService) Generate(ctx context.Context, userID uuid.UUID) (*domain.CoachingResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.CoachingResponse{}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	return in.ID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }
