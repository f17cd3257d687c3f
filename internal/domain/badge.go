package domain

import "github.com/google/uuid"

// RequirementType is the kind of predicate a badge requirement checks.
type RequirementType string

const (
	RequirementStreak             RequirementType = "streak"
	RequirementTotalCompletions   RequirementType = "total_completions"
	RequirementConsistencyRate    RequirementType = "consistency_rate"
	RequirementRecoverySuccess    RequirementType = "recovery_success"
	RequirementResearchEngagement RequirementType = "research_engagement"
)

// BadgeRequirement is a catalog predicate. Exactly one of HabitSpecific and
// GlobalAchievement is set.
type BadgeRequirement struct {
	Type      RequirementType `yaml:"type" json:"type"`
	Threshold float64         `yaml:"threshold" json:"threshold"`
	// streak: compare the longest instead of the current streak
	UseLongest bool `yaml:"use_longest,omitempty" json:"use_longest,omitempty"`
	// consistency_rate: look-back in days
	TimeframeDays int `yaml:"timeframe_days,omitempty" json:"timeframe_days,omitempty"`
	// recovery_success: days allowed between a trigger and the next completion
	WithinDays        int  `yaml:"within_days,omitempty" json:"within_days,omitempty"`
	HabitSpecific     bool `yaml:"habit_specific,omitempty" json:"habit_specific,omitempty"`
	GlobalAchievement bool `yaml:"global_achievement,omitempty" json:"global_achievement,omitempty"`
}

// Badge is a static catalog entry supplied by content provisioning.
type Badge struct {
	ID          string           `yaml:"id" json:"id"`
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Icon        string           `yaml:"icon" json:"icon"`
	Category    string           `yaml:"category" json:"category"`
	Requirement BadgeRequirement `yaml:"requirement" json:"requirement"`
}

// BadgeProgress is the result of evaluating one requirement.
type BadgeProgress struct {
	CurrentValue float64 `json:"current_value" example:"3"`
	// 0-100
	Progress float64 `json:"progress" example:"43"`
	IsEarned bool    `json:"is_earned" example:"false"`
}

// BadgeDisplay is a badge with its evaluated state, for the achievement UI.
// @Description Badge with evaluated progress.
type BadgeDisplay struct {
	BadgeID     string `json:"badge_id" example:"streak_week"`
	Name        string `json:"name" example:"Week Warrior"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category" example:"streaks"`
	// Set for habit-specific badges
	HabitID   *uuid.UUID `json:"habit_id,omitempty"`
	Threshold float64    `json:"threshold" example:"7"`
	BadgeProgress
}

// HabitBadgeMetrics are the per-habit aggregates badge requirements read.
type HabitBadgeMetrics struct {
	HabitID          uuid.UUID
	CurrentStreak    int
	LongestStreak    int
	TotalCompletions int
	// Completion rate percentage keyed by timeframe in days
	ConsistencyRates  map[int]float64
	RecoverySuccesses map[int]int
	ResearchViewed    bool
}

// UserBadgeMetrics aggregates everything badge evaluation needs for one user.
type UserBadgeMetrics struct {
	Habits            []HabitBadgeMetrics
	CurrentStreak     int
	LongestStreak     int
	TotalCompletions  int
	ConsistencyRates  map[int]float64
	RecoverySuccesses map[int]int
	ResearchViewed    int
}
