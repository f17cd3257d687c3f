package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/langfuse"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

func (m *MockUserRepository) SetError(err error) {
	m.err = err
}

// MockHabitRepository is a mock implementation of HabitRepository
type MockHabitRepository struct {
	mu     sync.Mutex
	habits []*domain.Habit
	err    error
}

func NewMockHabitRepository() *MockHabitRepository {
	return &MockHabitRepository{}
}

func (m *MockHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(len(m.habits)) * time.Minute)
	}
	m.habits = append(m.habits, habit)
	return nil
}

func (m *MockHabitRepository) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, h := range m.habits {
		if h.ID == habitID && h.UserID == userID {
			return h, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List mimics the store: newest first, limit+1 rows.
func (m *MockHabitRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) ([]domain.Habit, error) {
	all, err := m.ListAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	var result []domain.Habit
	for _, h := range all {
		if filter.Category != "" && h.Category != filter.Category {
			continue
		}
		result = append(result, h)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if len(result) > limit+1 {
		result = result[:limit+1]
	}
	return result, nil
}

func (m *MockHabitRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Habit
	for _, h := range m.habits {
		if h.UserID == userID {
			result = append(result, *h)
		}
	}
	return result, nil
}

// MockProgressRepository is a mock implementation of ProgressRepository
type MockProgressRepository struct {
	mu        sync.Mutex
	records   map[uuid.UUID]*domain.Progress
	err       error
	conflicts int // Update fails with ErrConflict this many times
	updates   int
	extra     []domain.Progress // trailing rows ListByUser returns after the stored records
}

func NewMockProgressRepository() *MockProgressRepository {
	return &MockProgressRepository{
		records: make(map[uuid.UUID]*domain.Progress),
	}
}

func (m *MockProgressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.records[progress.HabitID]; ok {
		return domain.ErrConflict
	}
	if progress.ID == uuid.Nil {
		progress.ID = uuid.New()
	}
	stored := *progress
	m.records[progress.HabitID] = &stored
	return nil
}

func (m *MockProgressRepository) GetByHabit(ctx context.Context, userID, habitID uuid.UUID) (*domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.records[habitID]
	if !ok || p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	clone := *p
	clone.Completions = append(datatypes.JSONSlice[string]{}, p.Completions...)
	return &clone, nil
}

func (m *MockProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Progress
	for _, p := range m.records {
		if p.UserID == userID {
			result = append(result, *p)
		}
	}
	for _, p := range m.extra {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *MockProgressRepository) Update(ctx context.Context, progress *domain.Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates++
	if m.err != nil {
		return m.err
	}
	if m.conflicts > 0 {
		m.conflicts--
		return domain.ErrConflict
	}
	stored, ok := m.records[progress.HabitID]
	if !ok || stored.Version != progress.Version {
		return domain.ErrConflict
	}
	progress.Version++
	clone := *progress
	m.records[progress.HabitID] = &clone
	return nil
}

// put stores a progress record directly, bypassing Create.
func (m *MockProgressRepository) put(p domain.Progress) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Version == 0 {
		p.Version = 1
	}
	m.records[p.HabitID] = &p
}

// MockResearchViewRepository is a mock implementation of ResearchViewRepository
type MockResearchViewRepository struct {
	mu    sync.Mutex
	views []domain.ResearchView
	err   error
}

func (m *MockResearchViewRepository) Create(ctx context.Context, view *domain.ResearchView) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.views = append(m.views, *view)
	return nil
}

func (m *MockResearchViewRepository) ViewedHabitIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, v := range m.views {
		if v.UserID == userID && !seen[v.HabitID] {
			seen[v.HabitID] = true
			ids = append(ids, v.HabitID)
		}
	}
	return ids, nil
}

// MockCoachLLM is a mock implementation of llm.CoachLLM
type MockCoachLLM struct {
	calls   int
	lastCtx *domain.CoachingContext
	err     error
}

func (m *MockCoachLLM) GenerateCoaching(ctx context.Context, coachingCtx *domain.CoachingContext) (*domain.CoachingMessage, error) {
	m.calls++
	m.lastCtx = coachingCtx
	if m.err != nil {
		return nil, m.err
	}
	return &domain.CoachingMessage{
		Headline:  "A pause, not a stop",
		Message:   "You built a real streak. Start small today.",
		NextSteps: []string{"Do two minutes today"},
	}, nil
}

// MockLangfuseClient is a mock implementation of langfuse.Client
type MockLangfuseClient struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuseClient) IsEnabled() bool { return m.enabled }

func (m *MockLangfuseClient) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	m.traces = append(m.traces, in)
	return in.ID, nil
}

func (m *MockLangfuseClient) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuseClient) Flush(ctx context.Context) error { return nil }

// fixture wires mock repositories around one user.
type fixture struct {
	users    *MockUserRepository
	habits   *MockHabitRepository
	progress *MockProgressRepository
	views    *MockResearchViewRepository
	user     *domain.User
	now      time.Time
}

func newFixture(timezone string, now time.Time) *fixture {
	f := &fixture{
		users:    NewMockUserRepository(),
		habits:   NewMockHabitRepository(),
		progress: NewMockProgressRepository(),
		views:    &MockResearchViewRepository{},
		user: &domain.User{
			ID:                 uuid.New(),
			Timezone:           timezone,
			PreferredIntensity: domain.IntensityMedium,
			Goals:              datatypes.JSONSlice[string]{"Feel rested"},
		},
		now: now,
	}
	f.users.users[f.user.ID] = f.user
	return f
}

func (f *fixture) repos() Repositories {
	return Repositories{
		Users:         f.users,
		Habits:        f.habits,
		Progress:      f.progress,
		ResearchViews: f.views,
	}
}

func (f *fixture) clock() time.Time { return f.now }

// addHabit creates a habit and, when started is non-empty, its progress record.
func (f *fixture) addHabit(name, started string, completions ...string) *domain.Habit {
	h := &domain.Habit{
		ID:          uuid.New(),
		UserID:      f.user.ID,
		Name:        name,
		Category:    "health",
		TimeMinutes: 15,
		Frequency:   "daily",
		Difficulty:  domain.DifficultyModerate,
	}
	_ = f.habits.Create(context.Background(), h)
	if started != "" {
		f.progress.put(domain.Progress{
			UserID:      f.user.ID,
			HabitID:     h.ID,
			DateStarted: &started,
			Completions: datatypes.JSONSlice[string](completions),
		})
	}
	return h
}

// days returns n consecutive dates ending on last (YYYY-MM-DD).
func days(last string, n int) []string {
	end, _ := time.Parse(domain.DateLayout, last)
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, end.AddDate(0, 0, -i).Format(domain.DateLayout))
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
