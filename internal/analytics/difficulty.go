package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
)

const (
	zeroHistoryConfidence = 0.1
	stableTrendConfidence = 0.1
	signalConfidence      = 0.25
	engagementFloor       = 0.1
	engagementPenaltyAt   = 0.5
)

// Ladder rung indexes.
const (
	rungTrivial = iota
	rungEasy
	rungModerate
	rungChallenging
	rungIntense
)

// AnalyzeDifficulty proposes a ladder rung for a habit from its recent history.
// It never mutates the habit; a habit with no usable history gets a
// low-confidence maintain recommendation.
func (e *Engine) AnalyzeDifficulty(habit domain.Habit, progress *domain.Progress, user domain.User, asOf time.Time) domain.DifficultyAdjustment {
	in := habitInput{habit: habit, progress: progress}
	if progress != nil {
		in.log = newCompletionLog(progress.Completions)
	}
	in.resolveStart()

	current := e.rungOf(habit)
	adj := domain.DifficultyAdjustment{
		HabitID:          habit.ID,
		CurrentLevel:     e.cfg.Ladder[current],
		RecommendedLevel: e.cfg.Ladder[current],
		Direction:        domain.AdjustMaintain,
		Changes:          []domain.FieldChange{},
	}

	today := toDay(asOf)
	m := e.adaptiveMetrics(in, today)
	if m.SampleSize == 0 || len(in.log.upTo(today)) == 0 {
		adj.Confidence = zeroHistoryConfidence
		adj.Metrics = m
		adj.Reasoning = "Not enough history yet; keep the current level until a few completions are logged."
		return adj
	}

	target, notes := e.targetRung(m)
	target, prefNote := e.applyPreference(target, user.PreferredIntensity)
	if prefNote != "" {
		notes = append(notes, prefNote)
	}
	if m.EngagementLevel < engagementPenaltyAt && target > rungTrivial {
		target--
		notes = append(notes, "recent engagement is low, so one rung easier")
	}

	m.DifficultyMatchScore = round2(1 - math.Abs(float64(current-target))/float64(len(e.cfg.Ladder)-1))

	from, to := e.cfg.Ladder[current], e.cfg.Ladder[target]
	adj.RecommendedLevel = to
	adj.Direction = direction(from, to)
	adj.Changes = fieldChanges(from, to, adj.Direction)
	adj.Confidence = confidence(m)
	adj.Metrics = m
	adj.Reasoning = reasoning(m, from, to, adj.Direction, notes)
	return adj
}

// adaptiveMetrics derives the normalized signals from the last
// HistoryWindowDays days up to today, starting no earlier than the habit start.
func (e *Engine) adaptiveMetrics(in habitInput, today dayNum) domain.AdaptiveMetrics {
	var m domain.AdaptiveMetrics
	if !in.hasStart || in.start > today {
		return m
	}
	win := spanEnding(today, e.cfg.HistoryWindowDays)
	if in.start > win.first {
		win = span{first: in.start, days: int(today-in.start) + 1}
	}

	series := make([]bool, win.days)
	done := 0
	for i := range series {
		if in.log.has(win.first + dayNum(i)) {
			series[i] = true
			done++
		}
	}
	n := len(series)
	m.SampleSize = n
	m.CompletionRate = round2(float64(done) / float64(n))
	m.ConsistencyScore = round2(runConsistency(series))
	if n >= e.cfg.MinTrendSamples {
		m.ProgressTrend = round2(halfTrend(series))
	}
	if last, ok := in.log.lastOnOrBefore(today); ok {
		m.EngagementLevel = round2(e.engagement(int(today - last)))
	}
	return m
}

// runConsistency rewards long unbroken runs: the average run length plus half
// the longest run, normalized so a fully completed series scores 1.
func runConsistency(series []bool) float64 {
	var runs []int
	run := 0
	for _, ok := range series {
		if ok {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, run)
		}
		run = 0
	}
	if run > 0 {
		runs = append(runs, run)
	}
	if len(runs) == 0 {
		return 0
	}

	total, longest := 0, 0
	for _, r := range runs {
		total += r
		if r > longest {
			longest = r
		}
	}
	avg := float64(total) / float64(len(runs))
	n := float64(len(series))
	return math.Min(1, (avg+0.5*float64(longest))/(1.5*n))
}

// halfTrend is the completion rate of the second half minus the first half.
func halfTrend(series []bool) float64 {
	mid := len(series) / 2
	rate := func(part []bool) float64 {
		if len(part) == 0 {
			return 0
		}
		c := 0
		for _, ok := range part {
			if ok {
				c++
			}
		}
		return float64(c) / float64(len(part))
	}
	return rate(series[mid:]) - rate(series[:mid])
}

// engagement decays linearly from 1.0 on the day of the last completion down
// to 0.1 once EngagementDecayDays have passed.
func (e *Engine) engagement(daysSince int) float64 {
	if daysSince < 0 {
		daysSince = 0
	}
	decay := e.cfg.EngagementDecayDays
	if decay <= 0 || daysSince >= decay {
		return engagementFloor
	}
	return 1 - (1-engagementFloor)*float64(daysSince)/float64(decay)
}

func (e *Engine) targetRung(m domain.AdaptiveMetrics) (int, []string) {
	switch {
	case m.CompletionRate >= 0.9 && m.ConsistencyScore >= 0.8:
		// Only a rising trend earns the step up; flat and declining stay moderate.
		if m.SampleSize < e.cfg.MinTrendSamples || m.ProgressTrend <= e.cfg.FlatTrendEpsilon {
			return rungModerate, []string{"strong completion but no sustained upward trend yet"}
		}
		return rungChallenging, nil
	case m.CompletionRate >= 0.7 && m.ConsistencyScore >= 0.6:
		return rungModerate, nil
	case m.CompletionRate >= 0.5:
		return rungEasy, nil
	default:
		return rungTrivial, nil
	}
}

func (e *Engine) applyPreference(target int, pref domain.IntensityPreference) (int, string) {
	last := len(e.cfg.Ladder) - 1
	switch pref {
	case domain.IntensityLow:
		if target > rungTrivial {
			return target - 1, "you prefer a lighter intensity"
		}
	case domain.IntensityHigh:
		if target < last {
			return target + 1, "you prefer a higher intensity"
		}
	}
	return target, ""
}

// rungOf finds the habit's current rung by name, falling back to the rung
// whose time cost is closest to the habit's.
func (e *Engine) rungOf(h domain.Habit) int {
	for i, l := range e.cfg.Ladder {
		if l.Name == h.Difficulty {
			return i
		}
	}
	best, bestDiff := rungTrivial, math.MaxInt
	for i, l := range e.cfg.Ladder {
		diff := l.TimeMinutes - h.TimeMinutes
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

func direction(from, to domain.DifficultyLevel) domain.AdjustmentDirection {
	a, b := from.Complexity+from.Intensity, to.Complexity+to.Intensity
	switch {
	case b > a:
		return domain.AdjustIncrease
	case b < a:
		return domain.AdjustDecrease
	default:
		return domain.AdjustMaintain
	}
}

func fieldChanges(from, to domain.DifficultyLevel, dir domain.AdjustmentDirection) []domain.FieldChange {
	changes := []domain.FieldChange{}
	easier := dir == domain.AdjustDecrease

	if from.TimeMinutes != to.TimeMinutes {
		why := "Consistent completions show room for longer sessions"
		if easier {
			why = "Shorter sessions make it easier to show up every day"
		}
		changes = append(changes, domain.FieldChange{
			Field: "time_minutes", From: strconv.Itoa(from.TimeMinutes), To: strconv.Itoa(to.TimeMinutes), Rationale: why,
		})
	}
	if from.Frequency != to.Frequency {
		why := "A steady rhythm supports doing this more often"
		if easier {
			why = "Fewer sessions per week keep the habit alive while momentum rebuilds"
		}
		changes = append(changes, domain.FieldChange{
			Field: "frequency", From: from.Frequency, To: to.Frequency, Rationale: why,
		})
	}
	if from.Complexity != to.Complexity {
		why := "You are ready for a more involved version of this habit"
		if easier {
			why = "A simpler version lowers the effort needed to start"
		}
		changes = append(changes, domain.FieldChange{
			Field: "complexity", From: strconv.Itoa(from.Complexity), To: strconv.Itoa(to.Complexity), Rationale: why,
		})
	}
	return changes
}

func confidence(m domain.AdaptiveMetrics) float64 {
	c := 0.0
	if m.CompletionRate > 0 {
		c += signalConfidence
	}
	if m.ConsistencyScore > 0 {
		c += signalConfidence
	}
	if m.EngagementLevel > 0 {
		c += signalConfidence
	}
	if m.ProgressTrend != 0 {
		c += signalConfidence
	} else {
		c += stableTrendConfidence
	}
	return round2(math.Min(1, c))
}

func reasoning(m domain.AdaptiveMetrics, from, to domain.DifficultyLevel, dir domain.AdjustmentDirection, notes []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Completed %d%% of the last %d days with consistency %.2f",
		int(math.Round(m.CompletionRate*100)), m.SampleSize, m.ConsistencyScore)
	if len(notes) > 0 {
		b.WriteString("; ")
		b.WriteString(strings.Join(notes, "; "))
	}
	switch dir {
	case domain.AdjustIncrease:
		fmt.Fprintf(&b, ". Step up from %s to %s.", from.Name, to.Name)
	case domain.AdjustDecrease:
		fmt.Fprintf(&b, ". Step down from %s to %s.", from.Name, to.Name)
	default:
		fmt.Fprintf(&b, ". Stay at %s.", from.Name)
	}
	return b.String()
}
