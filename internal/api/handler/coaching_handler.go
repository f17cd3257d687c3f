package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/blaisecz/habit-tracker/internal/langfuse"
	"github.com/blaisecz/habit-tracker/internal/service"
	"github.com/blaisecz/habit-tracker/pkg/problem"
	"go.opentelemetry.io/otel/trace"
)

// CoachingHandler handles recovery coaching endpoints.
type CoachingHandler struct {
	coachingService service.CoachingService
	langfuseClient  langfuse.Client
}

// NewCoachingHandler creates a new CoachingHandler.
func NewCoachingHandler(coachingService service.CoachingService, langfuseClient langfuse.Client) *CoachingHandler {
	return &CoachingHandler{
		coachingService: coachingService,
		langfuseClient:  langfuseClient,
	}
}

// GetCoaching handles GET /v1/users/{userId}/recovery/coaching
// @Summary Get LLM-written recovery coaching
// @Description Turn the current recovery plan into a short motivational message. message is null, and no LLM call is made, when no recovery is needed.
// @Tags coaching
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Success 200 {object} domain.CoachingResponse "Recovery report with coaching message"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /users/{userId}/recovery/coaching [get]
func (h *CoachingHandler) GetCoaching(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	result, err := h.coachingService.Generate(r.Context(), ids[0])
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to generate coaching")
		return
	}

	// Attach OTEL trace ID (if present) to response for feedback linking
	span := trace.SpanFromContext(r.Context())
	if result.Message != nil && span.SpanContext().IsValid() {
		result.TraceID = span.SpanContext().TraceID().String()
	}

	writeJSON(w, http.StatusOK, result)
}

// FeedbackRequest is the request body for coaching feedback.
// @Description Request body for rating a coaching message.
type FeedbackRequest struct {
	// Trace ID from the coaching response
	TraceID string `json:"trace_id" example:"4bf92f3577b34da6a3ce929d0e0e4736"`
	// Rating score (1-5)
	Score int `json:"score" example:"4" minimum:"1" maximum:"5"`
	// Whether the suggested first step was useful (optional)
	Helpful *bool `json:"helpful,omitempty" example:"true"`
	// Optional comment
	Comment string `json:"comment,omitempty" example:"The two-minute version got me going again"`
}

// PostFeedback handles POST /v1/users/{userId}/recovery/coaching/feedback
// @Summary Submit feedback on coaching
// @Description Rate a previous coaching message. Scores are attached to its Langfuse trace.
// @Tags coaching
// @Accept json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param body body FeedbackRequest true "Feedback request"
// @Success 204 "Feedback submitted"
// @Failure 400 {object} problem.Problem "Invalid request"
// @Router /users/{userId}/recovery/coaching/feedback [post]
func (h *CoachingHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}

	if req.TraceID == "" {
		problem.BadRequest("trace_id is required").Write(w)
		return
	}
	if req.Score < 1 || req.Score > 5 {
		problem.BadRequest("score must be between 1 and 5").Write(w)
		return
	}

	// Scoring is best-effort; feedback is accepted even with Langfuse disabled.
	if err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    langfuse.ScoreUserRating,
		Value:   float64(req.Score),
		Comment: req.Comment,
	}); err != nil {
		log.Printf("[langfuse] rating for user %s failed: %v", ids[0], err)
	}
	if req.Helpful != nil {
		value := 0.0
		if *req.Helpful {
			value = 1
		}
		if err := h.langfuseClient.CreateScore(r.Context(), langfuse.ScoreInput{
			TraceID: req.TraceID,
			Name:    langfuse.ScoreHelpful,
			Value:   value,
		}); err != nil {
			log.Printf("[langfuse] helpful score for user %s failed: %v", ids[0], err)
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
