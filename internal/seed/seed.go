package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/habit-tracker/internal/analytics"
	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededDays = 40

// profile shapes a user's completion history so each engine output shows up
// in the sample data.
type profile int

const (
	profileSteady    profile = iota // high, even completion rate
	profileLapsed                   // good run, then nothing for the last week
	profileDeclining                // completion probability drops over time
	profileSporadic                 // low rate across many habits
)

type seedUser struct {
	user    domain.User
	profile profile
}

type seedHabit struct {
	name        string
	category    string
	timeMinutes int
	frequency   string
	difficulty  domain.DifficultyName
}

var sampleHabits = []seedHabit{
	{"Morning stretch", "movement", 10, "daily", domain.DifficultyEasy},
	{"Read 20 pages", "learning", 25, "daily", domain.DifficultyModerate},
	{"Meditate", "mindfulness", 5, "daily", domain.DifficultyTrivial},
	{"Strength training", "movement", 45, "3x_weekly", domain.DifficultyChallenging},
	{"Journal", "mindfulness", 10, "5x_weekly", domain.DifficultyEasy},
}

// Users returns the sample users Run creates.
func Users() []domain.User {
	out := make([]domain.User, 0, len(sampleUsers()))
	for _, su := range sampleUsers() {
		out = append(out, su.user)
	}
	return out
}

func sampleUsers() []seedUser {
	return []seedUser{
		{user: domain.User{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam", PreferredIntensity: domain.IntensityMedium, Goals: datatypes.JSONSlice[string]{"Move every day"}}, profile: profileSteady},
		{user: domain.User{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York", PreferredIntensity: domain.IntensityHigh, Goals: datatypes.JSONSlice[string]{"Run a half marathon"}}, profile: profileLapsed},
		{user: domain.User{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo", PreferredIntensity: domain.IntensityLow, Goals: datatypes.JSONSlice[string]{"Wind down earlier", "Less screen time"}}, profile: profileDeclining},
		{user: domain.User{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney", PreferredIntensity: domain.IntensityMedium, Goals: datatypes.JSONSlice[string]{}}, profile: profileSporadic},
	}
}

// Run seeds the database with sample users, habits and progress. Safe to call multiple times.
func Run(db *gorm.DB) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, su := range sampleUsers() {
		user := su.user
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
		if err := seedHabitsForUser(db, su, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedHabitsForUser(db *gorm.DB, su seedUser, rng *rand.Rand) error {
	today := time.Now().In(su.user.Location())
	habits := sampleHabits
	if su.profile != profileSporadic {
		habits = habits[:3]
	}

	for i, h := range habits {
		habit := domain.Habit{
			// Derived IDs keep re-runs idempotent.
			ID:          uuid.NewSHA1(su.user.ID, []byte(h.name)),
			UserID:      su.user.ID,
			Name:        h.name,
			Category:    h.category,
			TimeMinutes: h.timeMinutes,
			Frequency:   h.frequency,
			Difficulty:  h.difficulty,
			CreatedAt:   today.AddDate(0, 0, -seededDays).Add(time.Duration(i) * time.Minute),
		}
		if err := db.Where("id = ?", habit.ID).FirstOrCreate(&habit).Error; err != nil {
			return fmt.Errorf("failed to create habit %s: %w", h.name, err)
		}

		started := today.AddDate(0, 0, -seededDays+1).Format(domain.DateLayout)
		completions := completionHistory(su.profile, today, rng)
		summary := analytics.Streaks(completions, today)
		progress := domain.Progress{
			UserID:        su.user.ID,
			HabitID:       habit.ID,
			DateStarted:   &started,
			Completions:   datatypes.JSONSlice[string](completions),
			CurrentStreak: summary.CurrentStreak,
			LongestStreak: summary.LongestStreak,
			TotalDays:     summary.TotalDays,
			Version:       1,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "habit_id"}},
			DoNothing: true,
		}).Create(&progress).Error
		if err != nil {
			return fmt.Errorf("failed to create progress for %s: %w", h.name, err)
		}
	}
	return nil
}

// completionHistory returns seededDays of completions ending today, oldest first.
func completionHistory(p profile, today time.Time, rng *rand.Rand) []string {
	var out []string
	for i := seededDays - 1; i >= 0; i-- {
		var chance float64
		switch p {
		case profileSteady:
			chance = 0.9
		case profileLapsed:
			if i < 7 {
				chance = 0
			} else {
				chance = 0.85
			}
		case profileDeclining:
			chance = 0.95 - 0.8*float64(seededDays-1-i)/float64(seededDays-1)
		case profileSporadic:
			chance = 0.3
		}
		if rng.Float64() < chance {
			out = append(out, today.AddDate(0, 0, -i).Format(domain.DateLayout))
		}
	}
	return out
}
