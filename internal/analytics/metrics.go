package analytics

import (
	"math"

	"github.com/blaisecz/habit-tracker/internal/domain"
)

// maxFractionStd is the largest population standard deviation of values in [0,1].
const maxFractionStd = 0.5

// Calculate builds the analytics report for habits over a window.
//
// Habits without a progress record contribute no slots. An empty or inverted
// window yields a report whose rates are all zero.
func (e *Engine) Calculate(habits []domain.Habit, progress []domain.Progress, w domain.DateWindow) domain.AnalyticsReport {
	win := resolveWindow(w)
	prev := win.previous()
	inputs := prepare(habits, progress)

	report := domain.AnalyticsReport{
		Window:     w,
		WindowDays: win.days,
		BestDay:    domain.NoBestDay,
		Habits:     make([]domain.HabitMetrics, 0, len(inputs)),
	}

	var prevPossible, prevCompleted int
	for _, in := range inputs {
		hm := domain.HabitMetrics{
			HabitID:          in.habit.ID,
			Name:             in.habit.Name,
			Category:         in.habit.Category,
			Tracked:          in.progress != nil,
			SkippedEntries:   in.log.skipped,
			DuplicateEntries: in.log.duplicates,
		}
		report.SkippedEntries += in.log.skipped
		report.DuplicateEntries += in.log.duplicates

		if in.hasStart {
			hm.EffectiveStart = in.start.String()
			report.ActiveHabitsCount++
		}

		possible, completed := in.slots(win)
		hm.PossibleSlots = possible
		report.TotalPossibleSlots += possible
		report.TotalCompletedSlots += completed

		p, c := in.slots(prev)
		prevPossible += p
		prevCompleted += c

		if !win.empty() {
			hm.CompletionsInWindow = in.log.countBetween(win.first, win.last())
			hm.CurrentStreak, hm.LongestStreak = streaksAsOf(in.log.days, win.last())
		}
		hm.CompletionRate = percentOf(hm.CompletionsInWindow, win.days)
		prevRate := percentOf(in.log.countBetween(prev.first, prev.last()), prev.days)
		hm.Trend = e.trend(float64(hm.CompletionRate), float64(prevRate))

		report.TotalCompletions += hm.CompletionsInWindow
		if hm.CurrentStreak > report.CurrentStreak {
			report.CurrentStreak = hm.CurrentStreak
		}
		if hm.LongestStreak > report.LongestStreak {
			report.LongestStreak = hm.LongestStreak
		}
		report.Habits = append(report.Habits, hm)
	}

	report.OverallCompletionRate = slotRate(report.TotalCompletedSlots, report.TotalPossibleSlots)
	report.Trend = e.trend(report.OverallCompletionRate, slotRate(prevCompleted, prevPossible))

	completed, eligible := dailyCounts(inputs, win)
	report.BestDay, report.BestDayCompletions = bestDay(completed, win)
	report.ConsistencyScore = consistency(completed, eligible)

	return report
}

// dailyCounts returns, for each day of the window, the number of habits
// completed and the number of habits already started.
func dailyCounts(inputs []habitInput, win span) (completed, eligible []int) {
	if win.empty() {
		return nil, nil
	}
	completed = make([]int, win.days)
	eligible = make([]int, win.days)
	for _, in := range inputs {
		if !in.hasStart {
			continue
		}
		for i := 0; i < win.days; i++ {
			d := win.first + dayNum(i)
			if d < in.start {
				continue
			}
			eligible[i]++
			if in.log.has(d) {
				completed[i]++
			}
		}
	}
	return completed, eligible
}

// bestDay picks the day with the most completions; the earliest wins ties.
func bestDay(completed []int, win span) (string, int) {
	best, count := -1, 0
	for i, n := range completed {
		if n > count {
			best, count = i, n
		}
	}
	if best < 0 {
		return domain.NoBestDay, 0
	}
	return (win.first + dayNum(best)).String(), count
}

// consistency scores how evenly completions spread over the window from the
// standard deviation of daily completion fractions. Days before any habit
// started are ignored; a window with no completions at all scores zero.
func consistency(completed, eligible []int) float64 {
	var fractions []float64
	total := 0
	for i := range completed {
		if eligible[i] == 0 {
			continue
		}
		fractions = append(fractions, float64(completed[i])/float64(eligible[i]))
		total += completed[i]
	}
	if len(fractions) == 0 || total == 0 {
		return 0
	}

	mean := 0.0
	for _, f := range fractions {
		mean += f
	}
	mean /= float64(len(fractions))

	variance := 0.0
	for _, f := range fractions {
		variance += (f - mean) * (f - mean)
	}
	std := math.Sqrt(variance / float64(len(fractions)))

	return clamp(round1(100*(1-std/maxFractionStd)), 0, 100)
}

// trend classifies the change from previous to current (both 0-100).
func (e *Engine) trend(current, previous float64) domain.Trend {
	delta := current - previous
	t := domain.Trend{
		Direction:    domain.TrendStable,
		Magnitude:    round1(math.Abs(delta)),
		CurrentRate:  current,
		PreviousRate: previous,
	}
	switch {
	case delta > e.cfg.TrendThreshold:
		t.Direction = domain.TrendUp
	case delta < -e.cfg.TrendThreshold:
		t.Direction = domain.TrendDown
	}
	return t
}

// slotRate is completed/possible as a percentage with one decimal, zero when
// nothing was possible.
func slotRate(completed, possible int) float64 {
	if possible <= 0 {
		return 0
	}
	return clamp(round1(float64(completed)/float64(possible)*100), 0, 100)
}

// percentOf is n/days as a whole percentage in [0,100].
func percentOf(n, days int) int {
	if days <= 0 || n <= 0 {
		return 0
	}
	pct := int(math.Round(float64(n) / float64(days) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
