package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// maxUpdateAttempts bounds the optimistic-locking retry loop on progress writes.
const maxUpdateAttempts = 3

type HabitService interface {
	Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error)
	Get(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) (*domain.HabitListResponse, error)
	// Start begins tracking a habit. Returns (progress, isExisting, error); isExisting
	// is true when the habit was already started and the stored record is returned.
	Start(ctx context.Context, userID, habitID uuid.UUID, req *domain.StartHabitRequest) (*domain.Progress, bool, error)
	GetProgress(ctx context.Context, userID, habitID uuid.UUID) (*domain.Progress, error)
	LogCompletion(ctx context.Context, userID, habitID uuid.UUID, req *domain.LogCompletionRequest) (*domain.Progress, error)
	RecordResearchView(ctx context.Context, userID, habitID uuid.UUID) error
}

type habitService struct {
	repos Repositories
	now   Clock
}

func NewHabitService(repos Repositories, now Clock) HabitService {
	if now == nil {
		now = time.Now
	}
	return &habitService{repos: repos, now: now}
}

func (s *habitService) Create(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error) {
	exists, err := s.repos.Users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	habit := &domain.Habit{
		ID:              uuid.New(),
		UserID:          userID,
		Name:            req.Name,
		Category:        req.Category,
		TimeMinutes:     req.TimeMinutes,
		Frequency:       req.Frequency,
		Difficulty:      req.Difficulty,
		ResearchSummary: req.ResearchSummary,
	}

	if err := s.repos.Habits.Create(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *habitService) Get(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	return s.repos.Habits.GetByID(ctx, userID, habitID)
}

func (s *habitService) List(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) (*domain.HabitListResponse, error) {
	exists, err := s.repos.Users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	habits, err := s.repos.Habits.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	habits, next, hasMore := pagination.Page(habits, filter.Limit, func(h domain.Habit) pagination.Cursor {
		return pagination.Cursor{ID: h.ID, CreatedAt: h.CreatedAt}
	})

	response := &domain.HabitListResponse{
		Data: make([]domain.HabitResponse, len(habits)),
		Pagination: domain.PaginationResponse{
			NextCursor: next,
			HasMore:    hasMore,
		},
	}
	for i := range habits {
		response.Data[i] = habits[i].ToResponse()
	}
	return response, nil
}

func (s *habitService) Start(ctx context.Context, userID, habitID uuid.UUID, req *domain.StartHabitRequest) (*domain.Progress, bool, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if _, err := s.repos.Habits.GetByID(ctx, userID, habitID); err != nil {
		return nil, false, err
	}

	existing, err := s.repos.Progress.GetByHabit(ctx, userID, habitID)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, err
	}

	started := s.today(user)
	if req != nil && req.DateStarted != nil && *req.DateStarted != "" {
		started = *req.DateStarted
	}

	progress := &domain.Progress{
		ID:          uuid.New(),
		UserID:      userID,
		HabitID:     habitID,
		DateStarted: &started,
		Completions: datatypes.JSONSlice[string]{},
		Version:     1,
	}

	if err := s.repos.Progress.Create(ctx, progress); err != nil {
		// A concurrent start won the unique index; hand back its record.
		if errors.Is(err, domain.ErrConflict) {
			existing, getErr := s.repos.Progress.GetByHabit(ctx, userID, habitID)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, true, nil
		}
		return nil, false, err
	}
	return progress, false, nil
}

func (s *habitService) GetProgress(ctx context.Context, userID, habitID uuid.UUID) (*domain.Progress, error) {
	if _, err := s.repos.Habits.GetByID(ctx, userID, habitID); err != nil {
		return nil, err
	}
	progress, err := s.repos.Progress.GetByHabit(ctx, userID, habitID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrHabitNotStarted
	}
	return progress, err
}

// LogCompletion appends a completion day and refreshes the cached streak hints.
// Logging the same day twice is a no-op on the stored log.
func (s *habitService) LogCompletion(ctx context.Context, userID, habitID uuid.UUID, req *domain.LogCompletionRequest) (*domain.Progress, error) {
	user, err := s.repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repos.Habits.GetByID(ctx, userID, habitID); err != nil {
		return nil, err
	}

	now := s.now().In(user.Location())
	today := now.Format(domain.DateLayout)
	day := today
	if req != nil && req.Date != nil && *req.Date != "" {
		day = *req.Date
	}
	parsed, err := time.Parse(domain.DateLayout, day)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	if day > today {
		return nil, fmt.Errorf("%w: cannot log a completion in the future", domain.ErrInvalidInput)
	}

	for attempt := 1; ; attempt++ {
		progress, err := s.repos.Progress.GetByHabit(ctx, userID, habitID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.ErrHabitNotStarted
			}
			return nil, err
		}

		clean, skipped, duplicates := analytics.CleanCompletions(progress.Completions)
		if skipped > 0 || duplicates > 0 {
			log.Printf("[progress] habit %s: dropped %d malformed and %d duplicate stored completions", habitID, skipped, duplicates)
		}
		clean, _, _ = analytics.CleanCompletions(append(clean, parsed.Format(domain.DateLayout)))

		summary := analytics.Streaks(clean, now)
		progress.Completions = datatypes.JSONSlice[string](clean)
		progress.CurrentStreak = summary.CurrentStreak
		progress.LongestStreak = summary.LongestStreak
		progress.TotalDays = summary.TotalDays

		err = s.repos.Progress.Update(ctx, progress)
		if err == nil {
			return progress, nil
		}
		if !errors.Is(err, domain.ErrConflict) || attempt == maxUpdateAttempts {
			return nil, err
		}
	}
}

func (s *habitService) RecordResearchView(ctx context.Context, userID, habitID uuid.UUID) error {
	if _, err := s.repos.Habits.GetByID(ctx, userID, habitID); err != nil {
		return err
	}
	return s.repos.ResearchViews.Create(ctx, &domain.ResearchView{
		ID:      uuid.New(),
		UserID:  userID,
		HabitID: habitID,
	})
}

func (s *habitService) today(user *domain.User) string {
	return s.now().In(user.Location()).Format(domain.DateLayout)
}
