// Package analytics turns raw completion logs into bounded metrics, difficulty
// recommendations, recovery plans and badge progress.
//
// Everything in this package is a pure function of its inputs: no I/O, no clock
// reads, no randomness and no shared mutable state. An Engine may be used from
// any number of goroutines at once.
package analytics

import "github.com/blaisecz/habit-tracker/internal/domain"

// Config holds the static tables and thresholds the engine runs on.
// It is a value type; copies are independent.
type Config struct {
	// Ladder is ordered from easiest to hardest.
	Ladder [5]domain.DifficultyLevel

	// Metrics Calculator
	TrendThreshold float64 // percentage points

	// Difficulty Analyzer
	HistoryWindowDays   int
	MinTrendSamples     int
	EngagementDecayDays int
	FlatTrendEpsilon    float64

	// Recovery Trigger Detector
	StreakBreakMinLongest    int
	StreakBreakWindowDays    int
	StreakBreakHighLongest   int
	DeclineWindowDays        int
	DeclineMinSamples        int
	DeclineThreshold         float64
	DeclineHighThreshold     float64
	DisruptionDays           int
	DisruptionHighDays       int
	DisruptionCriticalDays   int
	OvercommitMinHabits      int
	OvercommitRatio          float64
	OvercommitHighHabits     int
	OvercommitCriticalHabits int
	WeeklyRateFloor          float64
	Confidence               TriggerConfidence
	BaseRecoveryDays         BaseRecoveryDays
	CriticalMultiplier       float64
	MultiHighMultiplier      float64

	// Badge Evaluator
	DefaultTimeframeDays  int
	DefaultRecoveryWithin int
}

// TriggerConfidence is the fixed confidence attached to each trigger type.
type TriggerConfidence struct {
	StreakBroken      float64
	CompletionDecline float64
	LifeDisruption    float64
	Overcommitment    float64
}

func (c TriggerConfidence) of(t domain.TriggerType) float64 {
	switch t {
	case domain.TriggerStreakBroken:
		return c.StreakBroken
	case domain.TriggerCompletionDecline:
		return c.CompletionDecline
	case domain.TriggerLifeDisruption:
		return c.LifeDisruption
	case domain.TriggerOvercommitment:
		return c.Overcommitment
	default:
		return 0
	}
}

// BaseRecoveryDays is the starting recovery estimate per strategy.
type BaseRecoveryDays struct {
	GradualRebuild     int
	AdjustExpectations int
	TemporaryPause     int
	ResetAndRestart    int
}

func (b BaseRecoveryDays) of(s domain.RecoveryStrategy) int {
	switch s {
	case domain.StrategyAdjustExpectations:
		return b.AdjustExpectations
	case domain.StrategyTemporaryPause:
		return b.TemporaryPause
	case domain.StrategyResetAndRestart:
		return b.ResetAndRestart
	default:
		return b.GradualRebuild
	}
}

// DefaultLadder is the five-rung difficulty ladder.
var DefaultLadder = [5]domain.DifficultyLevel{
	{Name: domain.DifficultyTrivial, TimeMinutes: 2, Frequency: "3x_weekly", Complexity: 1, Intensity: 1},
	{Name: domain.DifficultyEasy, TimeMinutes: 5, Frequency: "5x_weekly", Complexity: 2, Intensity: 2},
	{Name: domain.DifficultyModerate, TimeMinutes: 15, Frequency: "daily", Complexity: 3, Intensity: 3},
	{Name: domain.DifficultyChallenging, TimeMinutes: 30, Frequency: "daily", Complexity: 4, Intensity: 4},
	{Name: domain.DifficultyIntense, TimeMinutes: 60, Frequency: "twice_daily", Complexity: 5, Intensity: 5},
}

// DefaultConfig returns the production tables.
func DefaultConfig() Config {
	return Config{
		Ladder: DefaultLadder,

		TrendThreshold: 5,

		HistoryWindowDays:   30,
		MinTrendSamples:     14,
		EngagementDecayDays: 7,
		FlatTrendEpsilon:    0.05,

		StreakBreakMinLongest:    3,
		StreakBreakWindowDays:    5,
		StreakBreakHighLongest:   14,
		DeclineWindowDays:        30,
		DeclineMinSamples:        10,
		DeclineThreshold:         0.3,
		DeclineHighThreshold:     0.5,
		DisruptionDays:           7,
		DisruptionHighDays:       14,
		DisruptionCriticalDays:   30,
		OvercommitMinHabits:      5,
		OvercommitRatio:          0.6,
		OvercommitHighHabits:     7,
		OvercommitCriticalHabits: 10,
		WeeklyRateFloor:          0.5,
		Confidence: TriggerConfidence{
			StreakBroken:      0.9,
			CompletionDecline: 0.8,
			LifeDisruption:    0.85,
			Overcommitment:    0.7,
		},
		BaseRecoveryDays: BaseRecoveryDays{
			GradualRebuild:     7,
			AdjustExpectations: 14,
			TemporaryPause:     21,
			ResetAndRestart:    30,
		},
		CriticalMultiplier:  1.5,
		MultiHighMultiplier: 1.2,

		DefaultTimeframeDays:  30,
		DefaultRecoveryWithin: 7,
	}
}

// Engine evaluates the analytics components against one Config.
type Engine struct {
	cfg Config
}

// New creates an Engine.
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
