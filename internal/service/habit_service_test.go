package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
)

// 23:30 UTC on Jan 10 is already Jan 11 in Tokyo.
var lateEvening = time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)

func TestHabitService_Create(t *testing.T) {
	f := newFixture("UTC", lateEvening)
	svc := NewHabitService(f.repos(), f.clock)

	req := &domain.CreateHabitRequest{
		Name:        "Morning stretch",
		Category:    "movement",
		TimeMinutes: 10,
		Frequency:   "daily",
		Difficulty:  domain.DifficultyEasy,
	}

	habit, err := svc.Create(context.Background(), f.user.ID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if habit.UserID != f.user.ID || habit.Name != req.Name {
		t.Errorf("unexpected habit: %+v", habit)
	}

	if _, err := svc.Create(context.Background(), uuid.New(), req); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestHabitService_List_Pagination(t *testing.T) {
	f := newFixture("UTC", lateEvening)
	for i := 0; i < 5; i++ {
		f.addHabit("habit", "")
	}
	svc := NewHabitService(f.repos(), f.clock)

	page, err := svc.List(context.Background(), f.user.ID, domain.HabitFilter{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Data) != 2 {
		t.Errorf("expected 2 habits, got %d", len(page.Data))
	}
	if !page.Pagination.HasMore || page.Pagination.NextCursor == "" {
		t.Errorf("expected another page, got %+v", page.Pagination)
	}
	if !page.Data[0].CreatedAt.After(page.Data[1].CreatedAt) {
		t.Errorf("expected newest first")
	}

	all, err := svc.List(context.Background(), f.user.ID, domain.HabitFilter{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all.Data) != 5 || all.Pagination.HasMore {
		t.Errorf("expected final page of 5, got %d (has_more=%v)", len(all.Data), all.Pagination.HasMore)
	}
}

func TestHabitService_Start(t *testing.T) {
	f := newFixture("Asia/Tokyo", lateEvening)
	habit := f.addHabit("Read", "")
	svc := NewHabitService(f.repos(), f.clock)

	progress, existing, err := svc.Start(context.Background(), f.user.ID, habit.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existing {
		t.Errorf("first start should create a record")
	}
	if progress.DateStarted == nil || *progress.DateStarted != "2024-01-11" {
		t.Errorf("expected start on the user's local date 2024-01-11, got %v", progress.DateStarted)
	}
	if progress.Version != 1 || len(progress.Completions) != 0 {
		t.Errorf("unexpected initial progress: %+v", progress)
	}

	again, existing, err := svc.Start(context.Background(), f.user.ID, habit.ID, &domain.StartHabitRequest{DateStarted: strPtr("2023-12-01")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !existing || again.ID != progress.ID {
		t.Errorf("second start should return the existing record")
	}
}

func TestHabitService_Start_UnknownHabit(t *testing.T) {
	f := newFixture("UTC", lateEvening)
	svc := NewHabitService(f.repos(), f.clock)

	_, _, err := svc.Start(context.Background(), f.user.ID, uuid.New(), nil)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestHabitService_LogCompletion(t *testing.T) {
	tests := []struct {
		name        string
		stored      []string
		date        *string
		wantErr     error
		wantLog     []string
		wantCurrent int
		wantLongest int
	}{
		{
			name:        "defaults to today",
			stored:      []string{"2024-01-08", "2024-01-09"},
			wantLog:     []string{"2024-01-08", "2024-01-09", "2024-01-10"},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "backfill keeps the log sorted",
			stored:      []string{"2024-01-09", "2024-01-07"},
			date:        strPtr("2024-01-08"),
			wantLog:     []string{"2024-01-07", "2024-01-08", "2024-01-09"},
			wantCurrent: 3,
			wantLongest: 3,
		},
		{
			name:        "same day twice is idempotent",
			stored:      []string{"2024-01-10"},
			date:        strPtr("2024-01-10"),
			wantLog:     []string{"2024-01-10"},
			wantCurrent: 1,
			wantLongest: 1,
		},
		{
			name:        "stored garbage and duplicates are cleaned",
			stored:      []string{"not-a-date", "2024-01-02", "2024-01-02", "2024-01-03"},
			date:        strPtr("2024-01-04"),
			wantLog:     []string{"2024-01-02", "2024-01-03", "2024-01-04"},
			wantCurrent: 0,
			wantLongest: 3,
		},
		{
			name:    "future date is rejected",
			date:    strPtr("2024-01-11"),
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "malformed date is rejected",
			date:    strPtr("01/02/2024"),
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("UTC", lateEvening)
			habit := f.addHabit("Walk", "2024-01-01", tt.stored...)
			svc := NewHabitService(f.repos(), f.clock)

			progress, err := svc.LogCompletion(context.Background(), f.user.ID, habit.ID, &domain.LogCompletionRequest{Date: tt.date})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(progress.Completions) != len(tt.wantLog) {
				t.Fatalf("completions = %v, want %v", progress.Completions, tt.wantLog)
			}
			for i, d := range tt.wantLog {
				if progress.Completions[i] != d {
					t.Errorf("completions[%d] = %s, want %s", i, progress.Completions[i], d)
				}
			}
			if progress.CurrentStreak != tt.wantCurrent || progress.LongestStreak != tt.wantLongest {
				t.Errorf("streaks = %d/%d, want %d/%d", progress.CurrentStreak, progress.LongestStreak, tt.wantCurrent, tt.wantLongest)
			}
			if progress.TotalDays != len(tt.wantLog) {
				t.Errorf("total days = %d, want %d", progress.TotalDays, len(tt.wantLog))
			}
			if progress.Version != 2 {
				t.Errorf("version = %d, want 2", progress.Version)
			}
		})
	}
}

func TestHabitService_LogCompletion_NotStarted(t *testing.T) {
	f := newFixture("UTC", lateEvening)
	habit := f.addHabit("Walk", "")
	svc := NewHabitService(f.repos(), f.clock)

	_, err := svc.LogCompletion(context.Background(), f.user.ID, habit.ID, nil)
	if !errors.Is(err, domain.ErrHabitNotStarted) {
		t.Errorf("expected ErrHabitNotStarted, got %v", err)
	}
}

func TestHabitService_LogCompletion_RetriesConflicts(t *testing.T) {
	tests := []struct {
		name        string
		conflicts   int
		wantErr     error
		wantUpdates int
	}{
		{name: "recovers after two conflicts", conflicts: 2, wantUpdates: 3},
		{name: "gives up after three", conflicts: 3, wantErr: domain.ErrConflict, wantUpdates: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture("UTC", lateEvening)
			habit := f.addHabit("Walk", "2024-01-01")
			f.progress.conflicts = tt.conflicts
			svc := NewHabitService(f.repos(), f.clock)

			_, err := svc.LogCompletion(context.Background(), f.user.ID, habit.ID, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if f.progress.updates != tt.wantUpdates {
				t.Errorf("updates = %d, want %d", f.progress.updates, tt.wantUpdates)
			}
		})
	}
}

func TestHabitService_RecordResearchView(t *testing.T) {
	f := newFixture("UTC", lateEvening)
	habit := f.addHabit("Cold shower", "")
	svc := NewHabitService(f.repos(), f.clock)

	if err := svc.RecordResearchView(context.Background(), f.user.ID, habit.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.views.views) != 1 {
		t.Errorf("expected one research view, got %d", len(f.views.views))
	}

	other := newFixture("UTC", lateEvening)
	err := svc.RecordResearchView(context.Background(), other.user.ID, habit.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound for a habit of another user, got %v", err)
	}
}
