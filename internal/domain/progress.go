package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DateLayout is the calendar-day format used for completion logs.
const DateLayout = "2006-01-02"

// Progress is the per (user, habit) record kept by the store.
//
// Completions is the raw completion log and may contain duplicates or malformed
// entries written by older clients. CurrentStreak, LongestStreak and TotalDays
// are cached hints refreshed on write; analytics always recomputes them.
type Progress struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID        uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_habit" json:"user_id"`
	HabitID       uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_habit" json:"habit_id"`
	DateStarted   *string                     `gorm:"type:varchar(32)" json:"date_started,omitempty"`
	Completions   datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"completions"`
	CurrentStreak int                         `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak int                         `gorm:"not null;default:0" json:"longest_streak"`
	TotalDays     int                         `gorm:"not null;default:0" json:"total_days"`
	Version       int                         `gorm:"not null;default:1" json:"version"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Habit Habit `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Progress) TableName() string {
	return "habit_progress"
}

// StartHabitRequest is the request body for starting to track a habit.
// @Description Start tracking a habit. date_started defaults to today in the user's timezone.
type StartHabitRequest struct {
	DateStarted *string `json:"date_started,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-01"`
}

// LogCompletionRequest is the request body for recording a completion.
// @Description Record that a habit was performed on a calendar day (defaults to today in the user's timezone).
type LogCompletionRequest struct {
	Date *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2024-01-05"`
}

// ProgressResponse is the response body for progress endpoints.
// @Description Progress record for a habit. Streak fields are refreshed on every write.
type ProgressResponse struct {
	ID            uuid.UUID `json:"id"`
	HabitID       uuid.UUID `json:"habit_id"`
	DateStarted   *string   `json:"date_started,omitempty" example:"2024-01-01"`
	Completions   []string  `json:"completions"`
	CurrentStreak int       `json:"current_streak" example:"4"`
	LongestStreak int       `json:"longest_streak" example:"12"`
	TotalDays     int       `json:"total_days" example:"31"`
	Version       int       `json:"version" example:"7"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (p *Progress) ToResponse() ProgressResponse {
	completions := []string(p.Completions)
	if completions == nil {
		completions = []string{}
	}
	return ProgressResponse{
		ID:            p.ID,
		HabitID:       p.HabitID,
		DateStarted:   p.DateStarted,
		Completions:   completions,
		CurrentStreak: p.CurrentStreak,
		LongestStreak: p.LongestStreak,
		TotalDays:     p.TotalDays,
		Version:       p.Version,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ResearchView records that a user opened the research background of a habit.
type ResearchView struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index:idx_research_views_user" json:"user_id"`
	HabitID  uuid.UUID `gorm:"type:uuid;not null" json:"habit_id"`
	ViewedAt time.Time `gorm:"autoCreateTime" json:"viewed_at"`
}

func (ResearchView) TableName() string {
	return "research_views"
}
