package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/blaisecz/habit-tracker/internal/api/validation"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/service"
	"github.com/blaisecz/habit-tracker/pkg/problem"
)

type HabitHandler struct {
	service service.HabitService
}

func NewHabitHandler(service service.HabitService) *HabitHandler {
	return &HabitHandler{service: service}
}

// Create handles POST /v1/users/{userId}/habits
// @Summary Declare a habit
// @Description Create a habit definition. Tracking starts with the start endpoint.
// @Tags habits
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.CreateHabitRequest true "Habit definition"
// @Success 201 {object} domain.HabitResponse
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/habits [post]
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	var req domain.CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	habit, err := h.service.Create(r.Context(), ids[0], &req)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to create habit")
		return
	}

	writeJSON(w, http.StatusCreated, habit.ToResponse())
}

// List handles GET /v1/users/{userId}/habits
// @Summary List habits
// @Description Fetch the user's habits, newest first, with cursor pagination.
// @Tags habits
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param category query string false "Only habits in this category"
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.HabitListResponse "Habits with pagination"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/habits [get]
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	filter := domain.HabitFilter{
		Category: r.URL.Query().Get("category"),
		Cursor:   r.URL.Query().Get("cursor"),
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			problem.ValidationError("Invalid query parameters", []problem.FieldError{
				{Field: "limit", Message: "must be a positive integer"},
			}).Write(w)
			return
		}
		filter.Limit = limit
	}

	response, err := h.service.List(r.Context(), ids[0], filter)
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to list habits")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// Get handles GET /v1/users/{userId}/habits/{habitId}
// @Summary Get a habit
// @Tags habits
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Habit UUID" format(uuid)
// @Success 200 {object} domain.HabitResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Habit not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/habits/{habitId} [get]
func (h *HabitHandler) Get(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId", "habitId")
	if !ok {
		return
	}

	habit, err := h.service.Get(r.Context(), ids[0], ids[1])
	if err != nil {
		writeServiceError(w, r, err, "Habit not found", "Failed to get habit")
		return
	}

	writeJSON(w, http.StatusOK, habit.ToResponse())
}

// Start handles POST /v1/users/{userId}/habits/{habitId}/start
// @Summary Start tracking a habit
// @Description Create the progress record. Idempotent: returns 200 with the existing record if already started, 201 if new.
// @Tags habits
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Habit UUID" format(uuid)
// @Param request body domain.StartHabitRequest false "Optional start date"
// @Success 201 {object} domain.ProgressResponse "Tracking started"
// @Success 200 {object} domain.ProgressResponse "Already started"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or habit not found"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/habits/{habitId}/start [post]
func (h *HabitHandler) Start(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId", "habitId")
	if !ok {
		return
	}

	var req domain.StartHabitRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	progress, isExisting, err := h.service.Start(r.Context(), ids[0], ids[1], &req)
	if err != nil {
		writeServiceError(w, r, err, "Habit not found", "Failed to start habit")
		return
	}

	status := http.StatusCreated
	if isExisting {
		status = http.StatusOK
	}
	writeJSON(w, status, progress.ToResponse())
}

// GetProgress handles GET /v1/users/{userId}/habits/{habitId}/progress
// @Summary Get habit progress
// @Tags habits
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Habit UUID" format(uuid)
// @Success 200 {object} domain.ProgressResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Habit not found"
// @Failure 409 {object} problem.Problem "Habit not started"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/habits/{habitId}/progress [get]
func (h *HabitHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId", "habitId")
	if !ok {
		return
	}

	progress, err := h.service.GetProgress(r.Context(), ids[0], ids[1])
	if err != nil {
		writeServiceError(w, r, err, "Habit not found", "Failed to get progress")
		return
	}

	writeJSON(w, http.StatusOK, progress.ToResponse())
}

// LogCompletion handles POST /v1/users/{userId}/habits/{habitId}/completions
// @Summary Log a completion
// @Description Record that the habit was performed on a day (default: today in the user's timezone). Logging a day twice is a no-op.
// @Tags habits
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Habit UUID" format(uuid)
// @Param request body domain.LogCompletionRequest false "Optional completion date"
// @Success 200 {object} domain.ProgressResponse "Updated progress"
// @Failure 400 {object} problem.Problem "Invalid or future date"
// @Failure 404 {object} problem.Problem "User or habit not found"
// @Failure 409 {object} problem.Problem "Habit not started or concurrent update"
// @Failure 422 {object} problem.Problem "Validation failed"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/habits/{habitId}/completions [post]
func (h *HabitHandler) LogCompletion(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId", "habitId")
	if !ok {
		return
	}

	var req domain.LogCompletionRequest
	if !decodeOptionalBody(w, r, &req) {
		return
	}

	progress, err := h.service.LogCompletion(r.Context(), ids[0], ids[1], &req)
	if err != nil {
		writeServiceError(w, r, err, "Habit not found", "Failed to log completion")
		return
	}

	writeJSON(w, http.StatusOK, progress.ToResponse())
}

// RecordResearchView handles POST /v1/users/{userId}/habits/{habitId}/research-views
// @Summary Record a research view
// @Description Note that the user opened the research background of a habit. Feeds research badges.
// @Tags habits
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Habit UUID" format(uuid)
// @Success 204 "View recorded"
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "Habit not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/habits/{habitId}/research-views [post]
func (h *HabitHandler) RecordResearchView(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId", "habitId")
	if !ok {
		return
	}

	if err := h.service.RecordResearchView(r.Context(), ids[0], ids[1]); err != nil {
		writeServiceError(w, r, err, "Habit not found", "Failed to record research view")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeOptionalBody decodes and validates a JSON body that may be empty.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		problem.BadRequest("Invalid JSON body").Write(w)
		return false
	}
	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return false
	}
	return true
}
