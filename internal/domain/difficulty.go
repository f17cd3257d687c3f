package domain

import "github.com/google/uuid"

// DifficultyName names a rung of the difficulty ladder.
// @Description Difficulty rung: trivial < easy < moderate < challenging < intense.
type DifficultyName string

const (
	DifficultyTrivial     DifficultyName = "trivial"
	DifficultyEasy        DifficultyName = "easy"
	DifficultyModerate    DifficultyName = "moderate"
	DifficultyChallenging DifficultyName = "challenging"
	DifficultyIntense     DifficultyName = "intense"
)

// DifficultyLevel is one rung of the fixed ladder.
// @Description Difficulty rung parameters.
type DifficultyLevel struct {
	Name        DifficultyName `json:"name" example:"moderate"`
	TimeMinutes int            `json:"time_minutes" example:"15"`
	Frequency   string         `json:"frequency" example:"daily"`
	// 1-5
	Complexity int `json:"complexity" example:"3"`
	// 1-5
	Intensity int `json:"intensity" example:"3"`
}

// AdaptiveMetrics are the normalized signals the analyzer derives from history.
// @Description Adaptive metrics, each in [0,1] except progress_trend in [-1,1].
type AdaptiveMetrics struct {
	CompletionRate       float64 `json:"completion_rate" example:"0.83"`
	ConsistencyScore     float64 `json:"consistency_score" example:"0.64"`
	ProgressTrend        float64 `json:"progress_trend" example:"0.14"`
	EngagementLevel      float64 `json:"engagement_level" example:"0.87"`
	DifficultyMatchScore float64 `json:"difficulty_match_score" example:"0.75"`
	// Days in the sampled series
	SampleSize int `json:"sample_size" example:"30"`
}

// AdjustmentDirection says which way a recommendation moves a habit.
type AdjustmentDirection string

const (
	AdjustIncrease AdjustmentDirection = "increase"
	AdjustDecrease AdjustmentDirection = "decrease"
	AdjustMaintain AdjustmentDirection = "maintain"
)

// FieldChange is a concrete delta for one habit field.
// @Description Proposed change to a single habit field.
type FieldChange struct {
	Field     string `json:"field" example:"time_minutes"`
	From      string `json:"from" example:"5"`
	To        string `json:"to" example:"15"`
	Rationale string `json:"rationale" example:"Consistent completions show room for longer sessions"`
}

// DifficultyAdjustment is the Difficulty Analyzer output. It is a proposal only;
// applying it to the habit is a separate, user-confirmed step.
// @Description Difficulty recommendation for a habit.
type DifficultyAdjustment struct {
	HabitID          uuid.UUID           `json:"habit_id"`
	CurrentLevel     DifficultyLevel     `json:"current_level"`
	RecommendedLevel DifficultyLevel     `json:"recommended_level"`
	Direction        AdjustmentDirection `json:"direction" example:"increase"`
	// Presence-of-signal score in [0,1]
	Confidence float64         `json:"confidence" example:"0.75"`
	Reasoning  string          `json:"reasoning"`
	Changes    []FieldChange   `json:"changes"`
	Metrics    AdaptiveMetrics `json:"metrics"`
}
