package repository

import (
	"context"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResearchViewRepository interface {
	Create(ctx context.Context, view *domain.ResearchView) error
	ViewedHabitIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type researchViewRepository struct {
	db *gorm.DB
}

func NewResearchViewRepository(db *gorm.DB) ResearchViewRepository {
	return &researchViewRepository{db: db}
}

func (r *researchViewRepository) Create(ctx context.Context, view *domain.ResearchView) error {
	return r.db.WithContext(ctx).Create(view).Error
}

// ViewedHabitIDs returns the distinct habits whose research the user opened.
func (r *researchViewRepository) ViewedHabitIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.ResearchView{}).
		Where("user_id = ?", userID).
		Distinct("habit_id").
		Order("habit_id").
		Pluck("habit_id", &ids).Error
	return ids, err
}
