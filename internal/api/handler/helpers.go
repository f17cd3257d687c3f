package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/llm"
	"github.com/blaisecz/habit-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}

// pathUUIDs parses the named chi URL params; on failure it writes a 400 and
// returns ok=false.
func pathUUIDs(w http.ResponseWriter, r *http.Request, names ...string) ([]uuid.UUID, bool) {
	ids := make([]uuid.UUID, len(names))
	for i, name := range names {
		id, err := uuid.Parse(chi.URLParam(r, name))
		if err != nil {
			label := "user"
			if name == "habitId" {
				label = "habit"
			}
			problem.BadRequest("Invalid " + label + " ID format").Write(w)
			return nil, false
		}
		ids[i] = id
	}
	return ids, true
}

// writeServiceError maps domain and LLM errors onto problem responses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound, fallback string) {
	var p *problem.Problem
	switch {
	case errors.Is(err, domain.ErrNotFound):
		p = problem.NotFound(notFound)
	case errors.Is(err, domain.ErrHabitNotStarted):
		p = problem.New(http.StatusConflict, "habit-not-started", "Habit Not Started", "Start the habit before logging completions")
	case errors.Is(err, domain.ErrConflict):
		p = problem.Conflict("The record was modified concurrently, retry the request")
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidWindow):
		p = problem.BadRequest(err.Error())
	case errors.Is(err, llm.ErrOpenAIUnavailable):
		p = problem.ServiceUnavailable("OpenAI service is not configured")
	case errors.Is(err, llm.ErrOpenAIRequest), errors.Is(err, llm.ErrOpenAIResponse):
		p = problem.BadGateway("Failed to generate coaching from LLM")
	default:
		log.Printf("[http] %s %s: %v", r.Method, r.URL.Path, err)
		p = problem.InternalError(fallback)
	}
	p.WithInstance(r.URL.Path).Write(w)
}

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultValue int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}
