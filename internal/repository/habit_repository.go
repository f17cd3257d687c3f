package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HabitRepository interface {
	Create(ctx context.Context, habit *domain.Habit) error
	GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) ([]domain.Habit, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error)
}

type habitRepository struct {
	db *gorm.DB
}

func NewHabitRepository(db *gorm.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	return r.db.WithContext(ctx).Create(habit).Error
}

// GetByID returns the habit only when it belongs to userID.
func (r *habitRepository) GetByID(ctx context.Context, userID, habitID uuid.UUID) (*domain.Habit, error) {
	var habit domain.Habit
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", habitID, userID).
		First(&habit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &habit, nil
}

// List returns up to limit+1 habits, newest first, so the caller can tell
// whether another page exists.
func (r *habitRepository) List(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) ([]domain.Habit, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				cursor.CreatedAt, cursor.CreatedAt, cursor.ID,
			)
		}
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var habits []domain.Habit
	if err := query.Find(&habits).Error; err != nil {
		return nil, err
	}
	return habits, nil
}

// ListAll returns every habit of the user in creation order; analytics
// snapshots use this so report ordering is stable.
func (r *habitRepository) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Habit, error) {
	var habits []domain.Habit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&habits).Error
	return habits, err
}
