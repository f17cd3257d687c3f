package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
)

// triggerOrder breaks priority ties between recommendations of equal severity.
var triggerOrder = map[domain.TriggerType]int{
	domain.TriggerStreakBroken:      0,
	domain.TriggerCompletionDecline: 1,
	domain.TriggerLifeDisruption:    2,
	domain.TriggerOvercommitment:    3,
}

type recommendationTemplate struct {
	kind        domain.RecommendationKind
	title       string
	description string
	steps       []string
	citation    string
}

var templates = map[domain.TriggerType]recommendationTemplate{
	domain.TriggerStreakBroken: {
		kind:        domain.RecommendMicroCommitment,
		title:       "Restart with a two-minute version",
		description: "A broken streak is one missed day, not a lost habit. Shrink the habit until it is too small to skip.",
		steps: []string{
			"Pick the smallest version of the habit that still counts",
			"Attach it to something you already do every day",
			"Log it today, even if it feels trivial",
		},
		citation: "citation:micro-commitments",
	},
	domain.TriggerCompletionDecline: {
		kind:        domain.RecommendReduceDifficulty,
		title:       "Lower the bar for a while",
		description: "Completions have dropped compared to last month. Make the habit easier so success becomes likely again.",
		steps: []string{
			"Cut the session length in half",
			"Reduce how often you aim to do it this week",
			"Raise it again only after a full week of completions",
		},
		citation: "citation:difficulty-adjustment",
	},
	domain.TriggerLifeDisruption: {
		kind:        domain.RecommendFreshRestart,
		title:       "Make a fresh start",
		description: "Life got in the way for a while. Treat today as day one instead of trying to catch up.",
		steps: []string{
			"Choose a fresh-start date within the next three days",
			"Begin with one habit only",
			"Plan where and when you will do it",
		},
		citation: "citation:fresh-start-effect",
	},
	domain.TriggerOvercommitment: {
		kind:        domain.RecommendPauseAndPrioritize,
		title:       "Pause some habits and focus",
		description: "Too many habits are struggling at once. Keep the ones that matter most and pause the rest.",
		steps: []string{
			"Rank your habits by how much they matter to you",
			"Keep the top two and pause the others",
			"Revisit the paused habits in two weeks",
		},
		citation: "citation:goal-prioritization",
	},
}

var toneByStrategy = map[domain.RecoveryStrategy]string{
	domain.StrategyResetAndRestart:    "compassionate",
	domain.StrategyAdjustExpectations: "supportive",
	domain.StrategyTemporaryPause:     "reassuring",
	domain.StrategyGradualRebuild:     "encouraging",
}

// DetectRecovery classifies the user's recent history into recovery triggers
// and, when any fire, composes a recovery plan. Plan is nil when no recovery
// is needed.
func (e *Engine) DetectRecovery(habits []domain.Habit, progress []domain.Progress, asOf time.Time) domain.RecoveryReport {
	today := toDay(asOf)
	inputs := prepare(habits, progress)

	triggers := []domain.RecoveryTrigger{}
	for _, in := range inputs {
		if !in.startedBy(today) {
			continue
		}
		if t, ok := e.streakBroken(in, today); ok {
			triggers = append(triggers, t)
		}
		if t, ok := e.completionDecline(in, today); ok {
			triggers = append(triggers, t)
		}
		if t, ok := e.lifeDisruption(in, today); ok {
			triggers = append(triggers, t)
		}
	}
	if t, ok := e.overcommitment(inputs, today); ok {
		triggers = append(triggers, t)
	}

	report := domain.RecoveryReport{Triggers: triggers}
	if len(triggers) == 0 {
		return report
	}
	report.NeedsRecovery = true
	report.Plan = e.plan(triggers)
	return report
}

func (e *Engine) newTrigger(t domain.TriggerType, sev domain.Severity, habitID *uuid.UUID, meta map[string]any) domain.RecoveryTrigger {
	return domain.RecoveryTrigger{
		Type:       t,
		Severity:   sev,
		Confidence: e.cfg.Confidence.of(t),
		HabitID:    habitID,
		Metadata:   meta,
	}
}

func (e *Engine) streakBroken(in habitInput, today dayNum) (domain.RecoveryTrigger, bool) {
	current, longest := streaksAsOf(in.log.days, today)
	if longest < e.cfg.StreakBreakMinLongest || current != 0 {
		return domain.RecoveryTrigger{}, false
	}
	last, ok := in.log.lastOnOrBefore(today)
	if !ok {
		return domain.RecoveryTrigger{}, false
	}
	// The streak broke the day after the last completion.
	sinceBreak := int(today - last - 1)
	if sinceBreak > e.cfg.StreakBreakWindowDays {
		return domain.RecoveryTrigger{}, false
	}
	sev := domain.SeverityMedium
	if longest >= e.cfg.StreakBreakHighLongest {
		sev = domain.SeverityHigh
	}
	id := in.habit.ID
	return e.newTrigger(domain.TriggerStreakBroken, sev, &id, map[string]any{
		"habit_name":       in.habit.Name,
		"longest_streak":   longest,
		"last_completion":  last.String(),
		"days_since_break": sinceBreak,
	}), true
}

func (e *Engine) completionDecline(in habitInput, today dayNum) (domain.RecoveryTrigger, bool) {
	recent := spanEnding(today, e.cfg.DeclineWindowDays)
	prior := recent.previous()
	recentRate, recentN := in.observedRate(recent)
	priorRate, priorN := in.observedRate(prior)
	if recentN < e.cfg.DeclineMinSamples || priorN < e.cfg.DeclineMinSamples {
		return domain.RecoveryTrigger{}, false
	}
	decline := priorRate - recentRate
	if decline < e.cfg.DeclineThreshold {
		return domain.RecoveryTrigger{}, false
	}
	sev := domain.SeverityMedium
	if decline >= e.cfg.DeclineHighThreshold {
		sev = domain.SeverityHigh
	}
	id := in.habit.ID
	return e.newTrigger(domain.TriggerCompletionDecline, sev, &id, map[string]any{
		"habit_name":  in.habit.Name,
		"recent_rate": round2(recentRate),
		"prior_rate":  round2(priorRate),
		"decline":     round2(decline),
	}), true
}

// observedRate is the completion rate over the days of s on or after the
// habit's start, along with how many such days there were.
func (in habitInput) observedRate(s span) (float64, int) {
	possible, completed := in.slots(s)
	if possible == 0 {
		return 0, 0
	}
	return float64(completed) / float64(possible), possible
}

func (e *Engine) lifeDisruption(in habitInput, today dayNum) (domain.RecoveryTrigger, bool) {
	ref := in.start
	if last, ok := in.log.lastOnOrBefore(today); ok {
		ref = last
	}
	idle := int(today - ref)
	if idle < e.cfg.DisruptionDays {
		return domain.RecoveryTrigger{}, false
	}
	sev := domain.SeverityMedium
	switch {
	case idle >= e.cfg.DisruptionCriticalDays:
		sev = domain.SeverityCritical
	case idle >= e.cfg.DisruptionHighDays:
		sev = domain.SeverityHigh
	}
	id := in.habit.ID
	return e.newTrigger(domain.TriggerLifeDisruption, sev, &id, map[string]any{
		"habit_name":    in.habit.Name,
		"days_inactive": idle,
	}), true
}

// overcommitment fires when many active habits are struggling at once. A habit
// struggles when its current streak is zero or its last-week rate is below
// WeeklyRateFloor.
func (e *Engine) overcommitment(inputs []habitInput, today dayNum) (domain.RecoveryTrigger, bool) {
	week := spanEnding(today, 7)
	active := 0
	struggling := []uuid.UUID{}
	for _, in := range inputs {
		if !in.startedBy(today) {
			continue
		}
		active++
		current, _ := streaksAsOf(in.log.days, today)
		rate, _ := in.observedRate(week)
		if current == 0 || rate < e.cfg.WeeklyRateFloor {
			struggling = append(struggling, in.habit.ID)
		}
	}
	if active < e.cfg.OvercommitMinHabits {
		return domain.RecoveryTrigger{}, false
	}
	ratio := float64(len(struggling)) / float64(active)
	if ratio < e.cfg.OvercommitRatio {
		return domain.RecoveryTrigger{}, false
	}
	sev := domain.SeverityMedium
	switch {
	case active >= e.cfg.OvercommitCriticalHabits:
		sev = domain.SeverityCritical
	case active >= e.cfg.OvercommitHighHabits:
		sev = domain.SeverityHigh
	}
	return e.newTrigger(domain.TriggerOvercommitment, sev, nil, map[string]any{
		"active_habits":     active,
		"struggling_habits": len(struggling),
		"struggling_ratio":  round2(ratio),
		"habit_ids":         struggling,
	}), true
}

func (e *Engine) plan(triggers []domain.RecoveryTrigger) *domain.RecoveryPlan {
	var critical bool
	highCount := 0
	has := map[domain.TriggerType]bool{}
	for _, t := range triggers {
		has[t.Type] = true
		switch t.Severity {
		case domain.SeverityCritical:
			critical = true
		case domain.SeverityHigh:
			highCount++
		}
	}
	high := highCount >= 2

	var strategy domain.RecoveryStrategy
	switch {
	case critical || has[domain.TriggerLifeDisruption]:
		strategy = domain.StrategyResetAndRestart
	case has[domain.TriggerOvercommitment]:
		strategy = domain.StrategyAdjustExpectations
	case high:
		strategy = domain.StrategyTemporaryPause
	default:
		strategy = domain.StrategyGradualRebuild
	}

	days := float64(e.cfg.BaseRecoveryDays.of(strategy))
	if critical {
		days *= e.cfg.CriticalMultiplier
	}
	if high {
		days *= e.cfg.MultiHighMultiplier
	}

	return &domain.RecoveryPlan{
		Strategy:              strategy,
		EmotionalTone:         toneByStrategy[strategy],
		EstimatedRecoveryDays: int(math.Round(days)),
		Recommendations:       recommendations(triggers),
	}
}

// recommendations emits one recommendation per trigger type present, ordered
// by the highest severity seen for that type.
func recommendations(triggers []domain.RecoveryTrigger) []domain.RecoveryRecommendation {
	type group struct {
		trigger  domain.TriggerType
		severity domain.Severity
		habits   []uuid.UUID
	}
	byType := map[domain.TriggerType]*group{}
	var groups []*group
	for _, t := range triggers {
		g, ok := byType[t.Type]
		if !ok {
			g = &group{trigger: t.Type, habits: []uuid.UUID{}}
			byType[t.Type] = g
			groups = append(groups, g)
		}
		if t.Severity.Rank() > g.severity.Rank() {
			g.severity = t.Severity
		}
		if t.HabitID != nil {
			g.habits = append(g.habits, *t.HabitID)
		} else if ids, ok := t.Metadata["habit_ids"].([]uuid.UUID); ok {
			g.habits = append(g.habits, ids...)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		ri, rj := groups[i].severity.Rank(), groups[j].severity.Rank()
		if ri != rj {
			return ri > rj
		}
		return triggerOrder[groups[i].trigger] < triggerOrder[groups[j].trigger]
	})

	recs := make([]domain.RecoveryRecommendation, 0, len(groups))
	for i, g := range groups {
		tpl := templates[g.trigger]
		steps := make([]string, len(tpl.steps))
		copy(steps, tpl.steps)
		recs = append(recs, domain.RecoveryRecommendation{
			Kind:             tpl.kind,
			TriggerType:      g.trigger,
			Priority:         i + 1,
			Title:            tpl.title,
			Description:      tpl.description,
			ActionSteps:      steps,
			ResearchCitation: tpl.citation,
			HabitIDs:         g.habits,
		})
	}
	return recs
}
