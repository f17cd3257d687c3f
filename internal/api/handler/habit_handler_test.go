package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/pkg/problem"
	"github.com/google/uuid"
)

func TestHabitHandler_Create(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		userID         string
		body           string
		mockService    *MockHabitService
		wantStatusCode int
	}{
		{
			name:           "valid request",
			userID:         userID,
			body:           `{"name": "Walk", "category": "movement", "time_minutes": 10, "frequency": "daily", "difficulty": "easy"}`,
			mockService:    &MockHabitService{},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid user ID",
			userID:         "not-a-uuid",
			body:           `{}`,
			mockService:    &MockHabitService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			userID:         userID,
			body:           `{invalid}`,
			mockService:    &MockHabitService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown frequency",
			userID:         userID,
			body:           `{"name": "Walk", "category": "movement", "time_minutes": 10, "frequency": "hourly", "difficulty": "easy"}`,
			mockService:    &MockHabitService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:           "time out of range",
			userID:         userID,
			body:           `{"name": "Walk", "category": "movement", "time_minutes": 600, "frequency": "daily", "difficulty": "easy"}`,
			mockService:    &MockHabitService{},
			wantStatusCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "user not found",
			userID: userID,
			body:   `{"name": "Walk", "category": "movement", "time_minutes": 10, "frequency": "daily", "difficulty": "easy"}`,
			mockService: &MockHabitService{
				createFunc: func(ctx context.Context, userID uuid.UUID, req *domain.CreateHabitRequest) (*domain.Habit, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHabitHandler(tt.mockService)

			req := withURLParams(
				httptest.NewRequest(http.MethodPost, "/v1/users/"+tt.userID+"/habits", bytes.NewBufferString(tt.body)),
				"userId", tt.userID,
			)
			rec := httptest.NewRecorder()

			handler.Create(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Create() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestHabitHandler_List(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		query          string
		wantStatusCode int
		wantLimit      int
		wantCategory   string
	}{
		{name: "defaults", query: "", wantStatusCode: http.StatusOK},
		{name: "with filter", query: "?limit=5&category=mindfulness", wantStatusCode: http.StatusOK, wantLimit: 5, wantCategory: "mindfulness"},
		{name: "non-numeric limit", query: "?limit=abc", wantStatusCode: http.StatusUnprocessableEntity},
		{name: "zero limit", query: "?limit=0", wantStatusCode: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got domain.HabitFilter
			mock := &MockHabitService{
				listFunc: func(ctx context.Context, userID uuid.UUID, filter domain.HabitFilter) (*domain.HabitListResponse, error) {
					got = filter
					return &domain.HabitListResponse{Data: []domain.HabitResponse{}}, nil
				},
			}
			handler := NewHabitHandler(mock)

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/v1/users/"+userID+"/habits"+tt.query, nil), "userId", userID)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("List() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantStatusCode != http.StatusOK {
				return
			}
			if got.Limit != tt.wantLimit || got.Category != tt.wantCategory {
				t.Errorf("filter = %+v, want limit %d category %q", got, tt.wantLimit, tt.wantCategory)
			}
		})
	}
}

func TestHabitHandler_Start(t *testing.T) {
	userID := uuid.New().String()
	habitID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		habitID        string
		existing       bool
		err            error
		wantStatusCode int
	}{
		{name: "new progress", body: "", habitID: habitID, wantStatusCode: http.StatusCreated},
		{name: "explicit start date", body: `{"date_started": "2024-01-01"}`, habitID: habitID, wantStatusCode: http.StatusCreated},
		{name: "already started", body: "", habitID: habitID, existing: true, wantStatusCode: http.StatusOK},
		{name: "bad start date", body: `{"date_started": "01/01/2024"}`, habitID: habitID, wantStatusCode: http.StatusUnprocessableEntity},
		{name: "invalid habit ID", body: "", habitID: "nope", wantStatusCode: http.StatusBadRequest},
		{name: "habit not found", body: "", habitID: habitID, err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockHabitService{
				startFunc: func(ctx context.Context, userID, habitID uuid.UUID, req *domain.StartHabitRequest) (*domain.Progress, bool, error) {
					if tt.err != nil {
						return nil, false, tt.err
					}
					return &domain.Progress{ID: uuid.New(), UserID: userID, HabitID: habitID, Version: 1}, tt.existing, nil
				},
			}
			handler := NewHabitHandler(mock)

			req := withURLParams(
				httptest.NewRequest(http.MethodPost, "/start", strings.NewReader(tt.body)),
				"userId", userID, "habitId", tt.habitID,
			)
			rec := httptest.NewRecorder()

			handler.Start(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("Start() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}

func TestHabitHandler_LogCompletion(t *testing.T) {
	userID := uuid.New().String()
	habitID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		err            error
		wantStatusCode int
		wantType       string
	}{
		{name: "today", body: "", wantStatusCode: http.StatusOK},
		{name: "explicit date", body: `{"date": "2024-03-09"}`, wantStatusCode: http.StatusOK},
		{name: "malformed date", body: `{"date": "March 9"}`, wantStatusCode: http.StatusUnprocessableEntity, wantType: "validation-error"},
		{name: "future date", body: `{"date": "2999-01-01"}`, err: domain.ErrInvalidInput, wantStatusCode: http.StatusBadRequest, wantType: "bad-request"},
		{name: "not started", body: "", err: domain.ErrHabitNotStarted, wantStatusCode: http.StatusConflict, wantType: "habit-not-started"},
		{name: "concurrent writes", body: "", err: domain.ErrConflict, wantStatusCode: http.StatusConflict, wantType: "conflict"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotDate *string
			mock := &MockHabitService{
				completeFunc: func(ctx context.Context, userID, habitID uuid.UUID, req *domain.LogCompletionRequest) (*domain.Progress, error) {
					gotDate = req.Date
					if tt.err != nil {
						return nil, tt.err
					}
					return &domain.Progress{ID: uuid.New(), HabitID: habitID, Version: 2}, nil
				},
			}
			handler := NewHabitHandler(mock)

			req := withURLParams(
				httptest.NewRequest(http.MethodPost, "/completions", strings.NewReader(tt.body)),
				"userId", userID, "habitId", habitID,
			)
			rec := httptest.NewRecorder()

			handler.LogCompletion(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("LogCompletion() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
			if tt.wantType != "" {
				var p problem.Problem
				if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
					t.Fatalf("failed to decode problem: %v", err)
				}
				if !strings.HasSuffix(p.Type, tt.wantType) {
					t.Errorf("problem type = %q, want suffix %q", p.Type, tt.wantType)
				}
			}
			if tt.name == "explicit date" && (gotDate == nil || *gotDate != "2024-03-09") {
				t.Errorf("date not forwarded to service: %v", gotDate)
			}
		})
	}
}

func TestHabitHandler_GetProgress(t *testing.T) {
	userID := uuid.New().String()
	habitID := uuid.New().String()

	tests := []struct {
		name           string
		err            error
		wantStatusCode int
	}{
		{name: "found", wantStatusCode: http.StatusOK},
		{name: "not started", err: domain.ErrHabitNotStarted, wantStatusCode: http.StatusConflict},
		{name: "habit not found", err: domain.ErrNotFound, wantStatusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHabitHandler(&MockHabitService{err: tt.err})

			req := withURLParams(httptest.NewRequest(http.MethodGet, "/progress", nil), "userId", userID, "habitId", habitID)
			rec := httptest.NewRecorder()

			handler.GetProgress(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetProgress() status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
		})
	}
}

func TestHabitHandler_RecordResearchView(t *testing.T) {
	userID := uuid.New().String()
	habitID := uuid.New().String()

	handler := NewHabitHandler(&MockHabitService{})
	req := withURLParams(httptest.NewRequest(http.MethodPost, "/research-views", nil), "userId", userID, "habitId", habitID)
	rec := httptest.NewRecorder()

	handler.RecordResearchView(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("RecordResearchView() status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
