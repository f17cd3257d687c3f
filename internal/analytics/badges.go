package analytics

import (
	"math"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
)

// EvaluateRequirement compares a current value against a requirement threshold.
// Negative, NaN and infinite values count as zero. A non-positive threshold is
// always earned.
func EvaluateRequirement(req domain.BadgeRequirement, current float64) domain.BadgeProgress {
	if math.IsNaN(current) || math.IsInf(current, 0) || current < 0 {
		current = 0
	}
	if req.Threshold <= 0 {
		return domain.BadgeProgress{CurrentValue: current, Progress: 100, IsEarned: true}
	}
	earned := current >= req.Threshold
	progress := math.Min(100, math.Round(100*current/req.Threshold))
	if !earned {
		// A full bar is reserved for earned badges.
		progress = math.Min(99, progress)
	}
	return domain.BadgeProgress{
		CurrentValue: current,
		Progress:     progress,
		IsEarned:     earned,
	}
}

// BadgeMetrics aggregates the figures the catalog's requirements refer to.
// Only the consistency timeframes and recovery windows named by the catalog
// are computed.
func (e *Engine) BadgeMetrics(habits []domain.Habit, progress []domain.Progress, researchViewed []uuid.UUID, catalog []domain.Badge, asOf time.Time) domain.UserBadgeMetrics {
	today := toDay(asOf)
	inputs := prepare(habits, progress)
	timeframes, windows := e.requirementParams(catalog)

	viewed := make(map[uuid.UUID]struct{}, len(researchViewed))
	for _, id := range researchViewed {
		viewed[id] = struct{}{}
	}

	user := domain.UserBadgeMetrics{
		Habits:            make([]domain.HabitBadgeMetrics, 0, len(inputs)),
		ConsistencyRates:  make(map[int]float64, len(timeframes)),
		RecoverySuccesses: make(map[int]int, len(windows)),
		ResearchViewed:    len(viewed),
	}

	possible := make(map[int]int, len(timeframes))
	completed := make(map[int]int, len(timeframes))
	for _, in := range inputs {
		_, seen := viewed[in.habit.ID]
		hm := domain.HabitBadgeMetrics{
			HabitID:           in.habit.ID,
			TotalCompletions:  len(in.log.upTo(today)),
			ConsistencyRates:  make(map[int]float64, len(timeframes)),
			RecoverySuccesses: make(map[int]int, len(windows)),
			ResearchViewed:    seen,
		}
		hm.CurrentStreak, hm.LongestStreak = streaksAsOf(in.log.days, today)

		for _, tf := range timeframes {
			p, c := in.slots(spanEnding(today, tf))
			hm.ConsistencyRates[tf] = slotRate(c, p)
			possible[tf] += p
			completed[tf] += c
		}
		for _, w := range windows {
			n := e.recoverySuccesses(in.log.upTo(today), w)
			hm.RecoverySuccesses[w] = n
			user.RecoverySuccesses[w] += n
		}

		user.TotalCompletions += hm.TotalCompletions
		if hm.CurrentStreak > user.CurrentStreak {
			user.CurrentStreak = hm.CurrentStreak
		}
		if hm.LongestStreak > user.LongestStreak {
			user.LongestStreak = hm.LongestStreak
		}
		user.Habits = append(user.Habits, hm)
	}
	for _, tf := range timeframes {
		user.ConsistencyRates[tf] = slotRate(completed[tf], possible[tf])
	}
	for _, w := range windows {
		if _, ok := user.RecoverySuccesses[w]; !ok {
			user.RecoverySuccesses[w] = 0
		}
	}
	return user
}

// requirementParams lists the distinct consistency timeframes and recovery
// windows used by the catalog, in first-seen order.
func (e *Engine) requirementParams(catalog []domain.Badge) (timeframes, windows []int) {
	seenTF := map[int]bool{}
	seenW := map[int]bool{}
	for _, b := range catalog {
		switch b.Requirement.Type {
		case domain.RequirementConsistencyRate:
			tf := e.timeframe(b.Requirement)
			if !seenTF[tf] {
				seenTF[tf] = true
				timeframes = append(timeframes, tf)
			}
		case domain.RequirementRecoverySuccess:
			w := e.within(b.Requirement)
			if !seenW[w] {
				seenW[w] = true
				windows = append(windows, w)
			}
		}
	}
	return timeframes, windows
}

func (e *Engine) timeframe(req domain.BadgeRequirement) int {
	if req.TimeframeDays > 0 {
		return req.TimeframeDays
	}
	return e.cfg.DefaultTimeframeDays
}

func (e *Engine) within(req domain.BadgeRequirement) int {
	if req.WithinDays > 0 {
		return req.WithinDays
	}
	return e.cfg.DefaultRecoveryWithin
}

// recoverySuccesses replays the completion history and counts gaps in which a
// recovery trigger would have fired and the user came back within `within`
// days of it. A broken streak fires two days after the last completion once a
// streak of StreakBreakMinLongest has been reached; otherwise inactivity fires
// after DisruptionDays.
func (e *Engine) recoverySuccesses(days []dayNum, within int) int {
	successes := 0
	run, longest := 0, 0
	for i, d := range days {
		if i > 0 && d == days[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		if i+1 == len(days) {
			break
		}
		next := days[i+1]
		var fired dayNum
		switch {
		case longest >= e.cfg.StreakBreakMinLongest && next-d >= 3:
			fired = d + 2
		case next-d > dayNum(e.cfg.DisruptionDays):
			fired = d + dayNum(e.cfg.DisruptionDays)
		default:
			continue
		}
		if int(next-fired) <= within {
			successes++
		}
	}
	return successes
}

// EvaluateBadges evaluates every catalog entry. Habit-specific badges produce
// one display per habit; all others produce one display for the user.
func (e *Engine) EvaluateBadges(catalog []domain.Badge, m domain.UserBadgeMetrics) []domain.BadgeDisplay {
	displays := []domain.BadgeDisplay{}
	for _, b := range catalog {
		if b.Requirement.HabitSpecific {
			for i := range m.Habits {
				hm := m.Habits[i]
				id := hm.HabitID
				d := display(b, EvaluateRequirement(b.Requirement, e.habitValue(b.Requirement, hm)))
				d.HabitID = &id
				displays = append(displays, d)
			}
			continue
		}
		displays = append(displays, display(b, EvaluateRequirement(b.Requirement, e.userValue(b.Requirement, m))))
	}
	return displays
}

func display(b domain.Badge, p domain.BadgeProgress) domain.BadgeDisplay {
	return domain.BadgeDisplay{
		BadgeID:       b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Icon:          b.Icon,
		Category:      b.Category,
		Threshold:     b.Requirement.Threshold,
		BadgeProgress: p,
	}
}

func (e *Engine) habitValue(req domain.BadgeRequirement, hm domain.HabitBadgeMetrics) float64 {
	switch req.Type {
	case domain.RequirementStreak:
		if req.UseLongest {
			return float64(hm.LongestStreak)
		}
		return float64(hm.CurrentStreak)
	case domain.RequirementTotalCompletions:
		return float64(hm.TotalCompletions)
	case domain.RequirementConsistencyRate:
		return hm.ConsistencyRates[e.timeframe(req)]
	case domain.RequirementRecoverySuccess:
		return float64(hm.RecoverySuccesses[e.within(req)])
	case domain.RequirementResearchEngagement:
		if hm.ResearchViewed {
			return 1
		}
	}
	return 0
}

func (e *Engine) userValue(req domain.BadgeRequirement, m domain.UserBadgeMetrics) float64 {
	switch req.Type {
	case domain.RequirementStreak:
		if req.UseLongest {
			return float64(m.LongestStreak)
		}
		return float64(m.CurrentStreak)
	case domain.RequirementTotalCompletions:
		return float64(m.TotalCompletions)
	case domain.RequirementConsistencyRate:
		return m.ConsistencyRates[e.timeframe(req)]
	case domain.RequirementRecoverySuccess:
		return float64(m.RecoverySuccesses[e.within(req)])
	case domain.RequirementResearchEngagement:
		return float64(m.ResearchViewed)
	}
	return 0
}
