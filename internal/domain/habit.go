package domain

import (
	"time"

	"github.com/google/uuid"
)

// Habit is a recurring self-improvement action owned by a user.
// The analytics engine treats it as immutable within one computation.
type Habit struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index:idx_habits_user_created" json:"user_id"`
	Name            string         `gorm:"type:varchar(120);not null" json:"name"`
	Category        string         `gorm:"type:varchar(64);not null" json:"category"`
	TimeMinutes     int            `gorm:"not null" json:"time_minutes"`
	Frequency       string         `gorm:"type:varchar(20);not null" json:"frequency"`
	Difficulty      DifficultyName `gorm:"type:varchar(20);not null" json:"difficulty"`
	ResearchSummary string         `gorm:"type:text" json:"research_summary,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime;index:idx_habits_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Habit) TableName() string {
	return "habits"
}

// CreateHabitRequest is the request body for creating a habit.
// @Description Request payload for declaring a new habit.
type CreateHabitRequest struct {
	// Display name
	Name string `json:"name" validate:"required,max=120" example:"Morning stretch"`
	// Free-form category used for grouping
	Category string `json:"category" validate:"required,max=64" example:"movement"`
	// Declared time cost per occurrence in minutes
	TimeMinutes int `json:"time_minutes" validate:"required,min=1,max=480" example:"10"`
	// Declared frequency pattern
	Frequency string `json:"frequency" validate:"required,oneof=3x_weekly 5x_weekly daily twice_daily" example:"daily" enums:"3x_weekly,5x_weekly,daily,twice_daily"`
	// Declared difficulty rung
	Difficulty DifficultyName `json:"difficulty" validate:"required,oneof=trivial easy moderate challenging intense" example:"easy" enums:"trivial,easy,moderate,challenging,intense"`
	// Optional research background shown to the user
	ResearchSummary string `json:"research_summary,omitempty" validate:"omitempty,max=4000"`
}

// HabitResponse is the response body for habit endpoints.
// @Description Habit definition.
type HabitResponse struct {
	ID              uuid.UUID      `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	UserID          uuid.UUID      `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	Name            string         `json:"name" example:"Morning stretch"`
	Category        string         `json:"category" example:"movement"`
	TimeMinutes     int            `json:"time_minutes" example:"10"`
	Frequency       string         `json:"frequency" example:"daily"`
	Difficulty      DifficultyName `json:"difficulty" example:"easy"`
	ResearchSummary string         `json:"research_summary,omitempty"`
	CreatedAt       time.Time      `json:"created_at" example:"2024-01-16T07:05:00Z"`
}

func (h *Habit) ToResponse() HabitResponse {
	return HabitResponse{
		ID:              h.ID,
		UserID:          h.UserID,
		Name:            h.Name,
		Category:        h.Category,
		TimeMinutes:     h.TimeMinutes,
		Frequency:       h.Frequency,
		Difficulty:      h.Difficulty,
		ResearchSummary: h.ResearchSummary,
		CreatedAt:       h.CreatedAt,
	}
}

// HabitListResponse is the response body for listing habits.
// @Description Paginated list of habits.
type HabitListResponse struct {
	// Array of habit records
	Data []HabitResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// HabitFilter contains filter parameters for listing habits
type HabitFilter struct {
	Category string
	Limit    int
	Cursor   string
}
