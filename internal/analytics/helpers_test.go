package analytics

import (
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// dailyRun returns n consecutive dates starting at from.
func dailyRun(from string, n int) []string {
	start := mustDate(from)
	out := make([]string, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i).Format(domain.DateLayout)
	}
	return out
}

func daysBefore(asOf time.Time, n int) string {
	return asOf.AddDate(0, 0, -n).Format(domain.DateLayout)
}

func strPtr(s string) *string {
	return &s
}

func newHabit(name string, difficulty domain.DifficultyName) domain.Habit {
	minutes := 0
	for _, l := range DefaultLadder {
		if l.Name == difficulty {
			minutes = l.TimeMinutes
		}
	}
	return domain.Habit{
		ID:          uuid.New(),
		Name:        name,
		Category:    "test",
		TimeMinutes: minutes,
		Frequency:   "daily",
		Difficulty:  difficulty,
	}
}

func progressFor(h domain.Habit, started *string, completions ...string) domain.Progress {
	return domain.Progress{
		ID:          uuid.New(),
		HabitID:     h.ID,
		DateStarted: started,
		Completions: datatypes.JSONSlice[string](completions),
	}
}

func window(from, to string) domain.DateWindow {
	return domain.DateWindow{Start: mustDate(from), End: mustDate(to)}
}
