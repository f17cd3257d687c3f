package handler

import (
	"net/http"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/service"
	"github.com/blaisecz/habit-tracker/pkg/problem"
)

// AnalyticsHandler serves the engine outputs: analytics, difficulty,
// recovery, badges and the combined dashboard.
type AnalyticsHandler struct {
	analyticsService  service.AnalyticsService
	difficultyService service.DifficultyService
	recoveryService   service.RecoveryService
	badgeService      service.BadgeService
	dashboardService  service.DashboardService
	defaultWindowDays int
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(
	analyticsService service.AnalyticsService,
	difficultyService service.DifficultyService,
	recoveryService service.RecoveryService,
	badgeService service.BadgeService,
	dashboardService service.DashboardService,
	defaultWindowDays int,
) *AnalyticsHandler {
	if defaultWindowDays <= 0 {
		defaultWindowDays = service.DefaultWindowDays
	}
	return &AnalyticsHandler{
		analyticsService:  analyticsService,
		difficultyService: difficultyService,
		recoveryService:   recoveryService,
		badgeService:      badgeService,
		dashboardService:  dashboardService,
		defaultWindowDays: defaultWindowDays,
	}
}

// GetAnalytics handles GET /v1/users/{userId}/analytics
// @Summary Get completion analytics
// @Description Completion rate, consistency, streaks, best day and trend over a window. Either window_days (ending today in the user's timezone) or from/to dates; to is inclusive. An inverted from/to range returns a zero report.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(30) minimum(1) maximum(366)
// @Param from query string false "First day of the window" format(date) example(2024-01-01)
// @Param to query string false "Last day of the window (inclusive)" format(date) example(2024-01-31)
// @Success 200 {object} domain.AnalyticsReport
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/analytics [get]
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	q := r.URL.Query()
	fromStr, toStr := q.Get("from"), q.Get("to")

	var report *domain.AnalyticsReport
	var err error
	switch {
	case fromStr != "" || toStr != "":
		if fromStr == "" || toStr == "" {
			problem.BadRequest("from and to must be given together").Write(w)
			return
		}
		from, fromErr := time.Parse(domain.DateLayout, fromStr)
		to, toErr := time.Parse(domain.DateLayout, toStr)
		if fromErr != nil || toErr != nil {
			problem.BadRequest("from and to must be dates in YYYY-MM-DD format").Write(w)
			return
		}
		report, err = h.analyticsService.ComputeWindow(r.Context(), ids[0], from, to.AddDate(0, 0, 1))
	default:
		windowDays := parseIntParam(r, "window_days", h.defaultWindowDays)
		if windowDays < 1 || windowDays > service.MaxWindowDays {
			problem.BadRequest("window_days must be between 1 and 366").Write(w)
			return
		}
		report, err = h.analyticsService.Compute(r.Context(), ids[0], windowDays)
	}
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to compute analytics")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetHabitDifficulty handles GET /v1/users/{userId}/habits/{habitId}/difficulty
// @Summary Get a difficulty recommendation
// @Description Recommend a difficulty rung for the habit from the last 30 days. The recommendation is not applied.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Param habitId path string true "Habit UUID" format(uuid)
// @Success 200 {object} domain.DifficultyAdjustment
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User or habit not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/habits/{habitId}/difficulty [get]
func (h *AnalyticsHandler) GetHabitDifficulty(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId", "habitId")
	if !ok {
		return
	}

	adj, err := h.difficultyService.Analyze(r.Context(), ids[0], ids[1])
	if err != nil {
		writeServiceError(w, r, err, "Habit not found", "Failed to analyze difficulty")
		return
	}

	writeJSON(w, http.StatusOK, adj)
}

// GetDifficulty handles GET /v1/users/{userId}/difficulty
// @Summary Get difficulty recommendations for every habit
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.DifficultyAdjustment
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/difficulty [get]
func (h *AnalyticsHandler) GetDifficulty(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	adjustments, err := h.difficultyService.AnalyzeAll(r.Context(), ids[0])
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to analyze difficulty")
		return
	}

	writeJSON(w, http.StatusOK, adjustments)
}

// GetRecovery handles GET /v1/users/{userId}/recovery
// @Summary Get recovery triggers and plan
// @Description Detect streak breaks, completion declines, life disruptions and overcommitment. plan is null when no recovery is needed.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.RecoveryReport
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/recovery [get]
func (h *AnalyticsHandler) GetRecovery(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	report, err := h.recoveryService.Assess(r.Context(), ids[0])
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to assess recovery")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetBadges handles GET /v1/users/{userId}/badges
// @Summary Get badge progress
// @Description Evaluate every catalog badge. Habit-specific badges appear once per habit.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {array} domain.BadgeDisplay
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/badges [get]
func (h *AnalyticsHandler) GetBadges(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	badges, err := h.badgeService.Evaluate(r.Context(), ids[0])
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to evaluate badges")
		return
	}

	writeJSON(w, http.StatusOK, badges)
}

// GetDashboard handles GET /v1/users/{userId}/dashboard
// @Summary Get the full dashboard
// @Description Analytics, difficulty recommendations, recovery and badges computed from one consistent snapshot.
// @Tags analytics
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.DashboardResponse
// @Failure 400 {object} problem.Problem
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem
// @Router /users/{userId}/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ids, ok := pathUUIDs(w, r, "userId")
	if !ok {
		return
	}

	dashboard, err := h.dashboardService.Build(r.Context(), ids[0])
	if err != nil {
		writeServiceError(w, r, err, "User not found", "Failed to build dashboard")
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}
