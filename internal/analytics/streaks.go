package analytics

import (
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
)

// streaksAsOf recomputes the current and longest streak from unique ascending
// days, ignoring anything after asOf. The current streak stays alive through
// asOf's day when the previous day was completed.
func streaksAsOf(days []dayNum, asOf dayNum) (current, longest int) {
	run := 0
	var prev dayNum
	for i, d := range days {
		if d > asOf {
			break
		}
		if i > 0 && d == prev+1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = d
	}
	if run > 0 && asOf-prev <= 1 {
		current = run
	}
	return current, longest
}

// StreakSummary is the recomputed streak state of one completion log.
type StreakSummary struct {
	CurrentStreak int
	LongestStreak int
	TotalDays     int
}

// Streaks recomputes streak figures from a raw completion log as of the given
// day. The store writes the result back as cached hints on the progress record.
func Streaks(raw []string, asOf time.Time) StreakSummary {
	log := newCompletionLog(raw)
	day := toDay(asOf)
	current, longest := streaksAsOf(log.days, day)
	return StreakSummary{
		CurrentStreak: current,
		LongestStreak: longest,
		TotalDays:     len(log.upTo(day)),
	}
}

// habitInput is one habit joined with its progress record and cleaned log.
type habitInput struct {
	habit    domain.Habit
	progress *domain.Progress
	log      completionLog
	start    dayNum
	hasStart bool
}

// resolveStart sets the effective start: the declared start date, or the
// earliest completion when the declaration is absent or unreadable.
func (in *habitInput) resolveStart() {
	if in.progress == nil {
		return
	}
	if in.progress.DateStarted != nil {
		if d, ok := parseDay(*in.progress.DateStarted); ok {
			in.start, in.hasStart = d, true
			return
		}
		if *in.progress.DateStarted != "" {
			in.log.skipped++
		}
	}
	if len(in.log.days) > 0 {
		in.start, in.hasStart = in.log.days[0], true
	}
}

// startedBy reports whether the habit had started on or before d.
func (in habitInput) startedBy(d dayNum) bool {
	return in.hasStart && in.start <= d
}

// slots returns the eligible and completed (habit, day) slots inside s.
// Completed slots are unique days within the eligible range, so they never
// exceed the eligible count.
func (in habitInput) slots(s span) (possible, completed int) {
	if !in.hasStart || s.empty() {
		return 0, 0
	}
	from := s.first
	if in.start > from {
		from = in.start
	}
	to := s.last()
	if from > to {
		return 0, 0
	}
	return int(to-from) + 1, in.log.countBetween(from, to)
}

// prepare joins habits with their progress records. Progress records without a
// matching habit are ignored; the first record per habit wins.
func prepare(habits []domain.Habit, progress []domain.Progress) []habitInput {
	byHabit := make(map[uuid.UUID]*domain.Progress, len(progress))
	for i := range progress {
		if _, ok := byHabit[progress[i].HabitID]; !ok {
			byHabit[progress[i].HabitID] = &progress[i]
		}
	}

	inputs := make([]habitInput, len(habits))
	for i, h := range habits {
		in := habitInput{habit: h, progress: byHabit[h.ID]}
		if in.progress != nil {
			in.log = newCompletionLog(in.progress.Completions)
		}
		in.resolveStart()
		inputs[i] = in
	}
	return inputs
}
