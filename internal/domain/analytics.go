package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoBestDay is reported when no completion falls inside the window.
const NoBestDay = "None"

// DateWindow is the caller-supplied analysis range. An inverted window
// (Start after End) is valid input and yields an empty, zero-valued report.
type DateWindow struct {
	Start time.Time `json:"start" example:"2024-01-01T00:00:00Z"`
	End   time.Time `json:"end" example:"2024-01-31T00:00:00Z"`
}

// TrendDirection classifies a change between two windows.
// @Description Trend direction: up, down or stable.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Trend compares a window's completion rate with the equal-length window right before it.
// @Description Completion rate trend against the preceding window.
type Trend struct {
	// Direction of change
	Direction TrendDirection `json:"direction" example:"up"`
	// Absolute change in percentage points
	Magnitude float64 `json:"magnitude" example:"12.5"`
	// Completion rate of the current window (0-100)
	CurrentRate float64 `json:"current_rate" example:"80"`
	// Completion rate of the preceding window (0-100)
	PreviousRate float64 `json:"previous_rate" example:"67.5"`
}

// HabitMetrics is the per-habit breakdown of an analytics report.
// @Description Per-habit metrics recomputed from raw completions.
type HabitMetrics struct {
	HabitID  uuid.UUID `json:"habit_id"`
	Name     string    `json:"name" example:"Morning stretch"`
	Category string    `json:"category" example:"movement"`
	// Whether a progress record exists for the habit
	Tracked bool `json:"tracked" example:"true"`
	// Effective start: declared date_started, or the earliest completion
	EffectiveStart string `json:"effective_start,omitempty" example:"2024-01-01"`
	// Completions inside the window divided by window length, integer percent (0-100)
	CompletionRate int `json:"completion_rate" example:"86"`
	// Distinct completion days inside the window
	CompletionsInWindow int `json:"completions_in_window" example:"6"`
	// Eligible (habit, day) slots inside the window
	PossibleSlots int `json:"possible_slots" example:"7"`
	// Recomputed current streak as of the window end
	CurrentStreak int `json:"current_streak" example:"3"`
	// Recomputed longest streak up to the window end
	LongestStreak int `json:"longest_streak" example:"12"`
	// Entries that could not be parsed as calendar dates
	SkippedEntries int `json:"skipped_entries" example:"0"`
	// Entries repeating an already-seen date
	DuplicateEntries int `json:"duplicate_entries" example:"1"`
	// Per-habit trend against the preceding window
	Trend Trend `json:"trend"`
}

// AnalyticsReport is the Metrics Calculator output.
// @Description Bounded, NaN-free completion analytics over a date window.
type AnalyticsReport struct {
	Window DateWindow `json:"window"`
	// Number of calendar days covered by the window
	WindowDays int `json:"window_days" example:"30"`
	// Completed slots / possible slots x 100 (0-100)
	OverallCompletionRate float64 `json:"overall_completion_rate" example:"72.5"`
	TotalPossibleSlots    int     `json:"total_possible_slots" example:"120"`
	TotalCompletedSlots   int     `json:"total_completed_slots" example:"87"`
	// Distinct completion days across habits inside the window
	TotalCompletions int `json:"total_completions" example:"87"`
	// Habits with a progress record and a resolvable start date
	ActiveHabitsCount int `json:"active_habits_count" example:"4"`
	// Evenness of daily completion fractions (0-100)
	ConsistencyScore float64 `json:"consistency_score" example:"81.3"`
	// Date with most cross-habit completions, or "None"
	BestDay            string `json:"best_day" example:"2024-01-12"`
	BestDayCompletions int    `json:"best_day_completions" example:"4"`
	// Longest and current streak across all habits
	LongestStreak int   `json:"longest_streak" example:"21"`
	CurrentStreak int   `json:"current_streak" example:"5"`
	Trend         Trend `json:"trend"`
	// Malformed and duplicate completion entries ignored across habits
	SkippedEntries   int            `json:"skipped_entries" example:"0"`
	DuplicateEntries int            `json:"duplicate_entries" example:"2"`
	Habits           []HabitMetrics `json:"habits"`
}
