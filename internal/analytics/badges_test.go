package analytics

import (
	"math"
	"testing"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRequirement(t *testing.T) {
	streak7 := domain.BadgeRequirement{Type: domain.RequirementStreak, Threshold: 7}

	tests := []struct {
		name         string
		req          domain.BadgeRequirement
		current      float64
		wantProgress float64
		wantEarned   bool
		wantValue    float64
	}{
		{name: "exactly at threshold", req: streak7, current: 7, wantProgress: 100, wantEarned: true, wantValue: 7},
		{name: "partial", req: streak7, current: 3, wantProgress: 43, wantEarned: false, wantValue: 3},
		{name: "above threshold caps at 100", req: streak7, current: 30, wantProgress: 100, wantEarned: true, wantValue: 30},
		{name: "negative treated as zero", req: streak7, current: -4, wantProgress: 0, wantEarned: false, wantValue: 0},
		{name: "NaN treated as zero", req: streak7, current: math.NaN(), wantProgress: 0, wantEarned: false, wantValue: 0},
		{name: "one short of a large threshold is not a full bar", req: domain.BadgeRequirement{Type: domain.RequirementTotalCompletions, Threshold: 300}, current: 299, wantProgress: 99, wantEarned: false, wantValue: 299},
		{name: "zero threshold is earned", req: domain.BadgeRequirement{Type: domain.RequirementStreak}, current: 0, wantProgress: 100, wantEarned: true, wantValue: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRequirement(tt.req, tt.current)
			assert.Equal(t, tt.wantProgress, got.Progress)
			assert.Equal(t, tt.wantEarned, got.IsEarned)
			assert.Equal(t, tt.wantValue, got.CurrentValue)
		})
	}
}

func testCatalog() []domain.Badge {
	return []domain.Badge{
		{ID: "week_warrior", Name: "Week Warrior", Category: "streaks",
			Requirement: domain.BadgeRequirement{Type: domain.RequirementStreak, Threshold: 7, HabitSpecific: true}},
		{ID: "dozen", Name: "Dozen", Category: "milestones",
			Requirement: domain.BadgeRequirement{Type: domain.RequirementTotalCompletions, Threshold: 10, GlobalAchievement: true}},
		{ID: "steady_week", Name: "Steady Week", Category: "consistency",
			Requirement: domain.BadgeRequirement{Type: domain.RequirementConsistencyRate, Threshold: 80, TimeframeDays: 7, GlobalAchievement: true}},
		{ID: "comeback", Name: "Comeback", Category: "recovery",
			Requirement: domain.BadgeRequirement{Type: domain.RequirementRecoverySuccess, Threshold: 1, GlobalAchievement: true}},
		{ID: "curious", Name: "Curious Mind", Category: "research",
			Requirement: domain.BadgeRequirement{Type: domain.RequirementResearchEngagement, Threshold: 2, GlobalAchievement: true}},
	}
}

func TestBadges_EndToEnd(t *testing.T) {
	e := New(DefaultConfig())
	a := newHabit("A", domain.DifficultyEasy)
	b := newHabit("B", domain.DifficultyEasy)
	start := strPtr("2024-01-01")
	progress := []domain.Progress{
		progressFor(a, start, dailyRun("2024-01-01", 7)...),
		progressFor(b, start, "2024-01-01", "2024-01-02", "2024-01-03", "2024-01-06", "2024-01-07", "2024-01-07"),
	}
	catalog := testCatalog()

	m := e.BadgeMetrics([]domain.Habit{a, b}, progress, []uuid.UUID{a.ID, a.ID}, catalog, mustDate("2024-01-07"))

	assert.Equal(t, 12, m.TotalCompletions)
	assert.Equal(t, 7, m.CurrentStreak)
	assert.Equal(t, 7, m.LongestStreak)
	assert.Equal(t, 1, m.ResearchViewed)
	assert.Equal(t, 85.7, m.ConsistencyRates[7])
	assert.Equal(t, 1, m.RecoverySuccesses[7])
	require.Len(t, m.Habits, 2)
	assert.Equal(t, 71.4, m.Habits[1].ConsistencyRates[7])
	assert.Equal(t, 2, m.Habits[1].CurrentStreak)
	assert.Equal(t, 3, m.Habits[1].LongestStreak)

	displays := e.EvaluateBadges(catalog, m)

	require.Len(t, displays, 6)
	byKey := func(i int) string { return displays[i].BadgeID }
	assert.Equal(t, "week_warrior", byKey(0))
	assert.Equal(t, "week_warrior", byKey(1))

	require.NotNil(t, displays[0].HabitID)
	assert.Equal(t, a.ID, *displays[0].HabitID)
	assert.True(t, displays[0].IsEarned)
	assert.Equal(t, 100.0, displays[0].Progress)

	assert.Equal(t, b.ID, *displays[1].HabitID)
	assert.False(t, displays[1].IsEarned)
	assert.Equal(t, 29.0, displays[1].Progress)

	assert.Equal(t, "dozen", byKey(2))
	assert.Nil(t, displays[2].HabitID)
	assert.True(t, displays[2].IsEarned)

	assert.Equal(t, "steady_week", byKey(3))
	assert.True(t, displays[3].IsEarned)

	assert.Equal(t, "comeback", byKey(4))
	assert.True(t, displays[4].IsEarned)

	assert.Equal(t, "curious", byKey(5))
	assert.False(t, displays[5].IsEarned)
	assert.Equal(t, 50.0, displays[5].Progress)
}

func TestBadges_UseLongestStreak(t *testing.T) {
	e := New(DefaultConfig())
	h := newHabit("A", domain.DifficultyEasy)
	p := progressFor(h, nil, dailyRun("2024-01-01", 10)...)
	catalog := []domain.Badge{{
		ID:          "ten",
		Requirement: domain.BadgeRequirement{Type: domain.RequirementStreak, Threshold: 10, UseLongest: true, HabitSpecific: true},
	}}

	m := e.BadgeMetrics([]domain.Habit{h}, []domain.Progress{p}, nil, catalog, mustDate("2024-02-01"))
	displays := e.EvaluateBadges(catalog, m)

	require.Len(t, displays, 1)
	assert.True(t, displays[0].IsEarned)
	assert.Equal(t, 0, m.Habits[0].CurrentStreak)
}

func TestBadges_NoHabits(t *testing.T) {
	e := New(DefaultConfig())
	catalog := testCatalog()

	m := e.BadgeMetrics(nil, nil, nil, catalog, mustDate("2024-01-07"))
	displays := e.EvaluateBadges(catalog, m)

	// Habit-specific badges have no habit to attach to.
	require.Len(t, displays, 4)
	for _, d := range displays {
		assert.False(t, d.IsEarned)
		assert.Equal(t, 0.0, d.Progress)
	}
}

func TestRecoverySuccesses(t *testing.T) {
	e := New(DefaultConfig())
	days := func(raw ...string) []dayNum {
		return newCompletionLog(raw).days
	}

	tests := []struct {
		name   string
		days   []dayNum
		within int
		want   int
	}{
		{
			name:   "broken streak and quick return",
			days:   days(append(dailyRun("2024-01-01", 5), "2024-01-09")...),
			within: 7,
			want:   1,
		},
		{
			name:   "return too late",
			days:   days(append(dailyRun("2024-01-01", 5), "2024-01-20")...),
			within: 7,
			want:   0,
		},
		{
			name:   "wider window counts the late return",
			days:   days(append(dailyRun("2024-01-01", 5), "2024-01-20")...),
			within: 14,
			want:   1,
		},
		{
			name:   "single missed day fires nothing",
			days:   days("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"),
			within: 7,
			want:   0,
		},
		{
			name:   "inactivity without a streak",
			days:   days("2024-01-01", "2024-01-10"),
			within: 7,
			want:   1,
		},
		{
			name:   "no history",
			within: 7,
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.recoverySuccesses(tt.days, tt.within))
		})
	}
}
