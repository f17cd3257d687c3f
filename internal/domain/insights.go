package domain

// DashboardResponse bundles every engine output computed from one snapshot.
// @Description Analytics, difficulty, recovery and badge state for a user.
type DashboardResponse struct {
	Analytics   AnalyticsReport        `json:"analytics"`
	Adjustments []DifficultyAdjustment `json:"adjustments"`
	Recovery    RecoveryReport         `json:"recovery"`
	Badges      []BadgeDisplay         `json:"badges"`
}

// CoachingMessage contains the structured output from the LLM.
// @Description LLM-written motivational message for a recovery plan.
type CoachingMessage struct {
	// Short headline (one sentence)
	Headline string `json:"headline" example:"A two-day gap is just a pause"`
	// Supportive message (2-4 sentences)
	Message string `json:"message"`
	// First small actions (2-4 items)
	NextSteps []string `json:"next_steps"`
}

// CoachingContext is the context object sent to the LLM.
type CoachingContext struct {
	Recovery  RecoveryReport  `json:"recovery"`
	Analytics AnalyticsReport `json:"analytics"`
	Goals     []string        `json:"goals"`
}

// CoachingResponse is the response for the coaching endpoint. Message is nil when no
// recovery plan is needed.
// @Description Coaching message for the user's current recovery plan.
type CoachingResponse struct {
	Recovery RecoveryReport   `json:"recovery"`
	Message  *CoachingMessage `json:"message"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
