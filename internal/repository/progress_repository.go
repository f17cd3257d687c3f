package repository

import (
	"context"
	"errors"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository interface {
	Create(ctx context.Context, progress *domain.Progress) error
	GetByHabit(ctx context.Context, userID, habitID uuid.UUID) (*domain.Progress, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error)
	Update(ctx context.Context, progress *domain.Progress) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) Create(ctx context.Context, progress *domain.Progress) error {
	err := r.db.WithContext(ctx).Create(progress).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	return err
}

func (r *progressRepository) GetByHabit(ctx context.Context, userID, habitID uuid.UUID) (*domain.Progress, error) {
	var progress domain.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND habit_id = ?", userID, habitID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &progress, nil
}

func (r *progressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Progress, error) {
	var progress []domain.Progress
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&progress).Error
	return progress, err
}

// Update writes the completion log and cached hints, bumping Version. It fails
// with ErrConflict when the stored version no longer matches progress.Version.
func (r *progressRepository) Update(ctx context.Context, progress *domain.Progress) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Progress{}).
		Where("id = ? AND version = ?", progress.ID, progress.Version).
		Updates(map[string]any{
			"completions":    progress.Completions,
			"current_streak": progress.CurrentStreak,
			"longest_streak": progress.LongestStreak,
			"total_days":     progress.TotalDays,
			"version":        gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrConflict
	}
	progress.Version++
	return nil
}
