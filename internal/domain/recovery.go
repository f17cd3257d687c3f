package domain

import "github.com/google/uuid"

// TriggerType identifies a detected behavioral anomaly.
// @Description Recovery trigger type.
type TriggerType string

const (
	TriggerStreakBroken      TriggerType = "streak_broken"
	TriggerCompletionDecline TriggerType = "completion_decline"
	TriggerLifeDisruption    TriggerType = "life_disruption"
	TriggerOvercommitment    TriggerType = "overcommitment"
)

// Severity grades a trigger. Ordered low to critical.
type Severity string

const (
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities for sorting; unknown values rank lowest.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// RecoveryTrigger is one detected anomaly. Triggers are not deduplicated across habits.
// @Description Detected recovery trigger.
type RecoveryTrigger struct {
	Type     TriggerType `json:"type" example:"streak_broken"`
	Severity Severity    `json:"severity" example:"high"`
	// Fixed per trigger type, reflects heuristic certainty
	Confidence float64 `json:"confidence" example:"0.9"`
	// Habit the trigger belongs to; nil for cross-habit triggers
	HabitID  *uuid.UUID     `json:"habit_id,omitempty"`
	Metadata map[string]any `json:"metadata"`
}

// RecoveryStrategy is the overall remediation approach.
type RecoveryStrategy string

const (
	StrategyGradualRebuild     RecoveryStrategy = "gradual_rebuild"
	StrategyAdjustExpectations RecoveryStrategy = "adjust_expectations"
	StrategyTemporaryPause     RecoveryStrategy = "temporary_pause"
	StrategyResetAndRestart    RecoveryStrategy = "reset_and_restart"
)

// RecommendationKind names a remediation template.
type RecommendationKind string

const (
	RecommendMicroCommitment    RecommendationKind = "micro_commitment"
	RecommendReduceDifficulty   RecommendationKind = "reduce_difficulty"
	RecommendPauseAndPrioritize RecommendationKind = "pause_and_prioritize"
	RecommendFreshRestart       RecommendationKind = "fresh_restart"
)

// RecoveryRecommendation is a remediation template instantiated for one trigger type.
// @Description Remediation recommendation.
type RecoveryRecommendation struct {
	Kind        RecommendationKind `json:"kind" example:"micro_commitment"`
	TriggerType TriggerType        `json:"trigger_type" example:"streak_broken"`
	Priority    int                `json:"priority" example:"1"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	ActionSteps []string           `json:"action_steps"`
	// Placeholder reference filled in by the content collaborator
	ResearchCitation string      `json:"research_citation"`
	HabitIDs         []uuid.UUID `json:"habit_ids"`
}

// RecoveryPlan aggregates triggers into one remediation plan.
// @Description Prioritized recovery plan.
type RecoveryPlan struct {
	Strategy              RecoveryStrategy         `json:"strategy" example:"gradual_rebuild"`
	EmotionalTone         string                   `json:"emotional_tone" example:"encouraging"`
	EstimatedRecoveryDays int                      `json:"estimated_recovery_days" example:"7"`
	Recommendations       []RecoveryRecommendation `json:"recommendations"`
}

// RecoveryReport is the Recovery Trigger Detector output. Plan is nil when no
// trigger fired; callers treat that as a positive signal.
// @Description Recovery triggers and plan (plan is null when no recovery is needed).
type RecoveryReport struct {
	NeedsRecovery bool              `json:"needs_recovery" example:"true"`
	Triggers      []RecoveryTrigger `json:"triggers"`
	Plan          *RecoveryPlan     `json:"plan"`
}
