package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IntensityPreference is the user's declared appetite for habit difficulty.
// @Description Preferred intensity: low shifts recommendations one rung down, high one rung up.
type IntensityPreference string

const (
	IntensityLow    IntensityPreference = "low"
	IntensityMedium IntensityPreference = "medium"
	IntensityHigh   IntensityPreference = "high"
)

type User struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Timezone           string                      `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	PreferredIntensity IntensityPreference         `gorm:"type:varchar(10);not null;default:'medium'" json:"preferred_intensity"`
	Goals              datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"goals"`
	CreatedAt          time.Time                   `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location returns the user's home timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u.Timezone != "" {
		if loc, err := time.LoadLocation(u.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone           string              `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
	PreferredIntensity IntensityPreference `json:"preferred_intensity,omitempty" validate:"omitempty,oneof=low medium high" example:"medium" enums:"low,medium,high"`
	Goals              []string            `json:"goals,omitempty" validate:"omitempty,max=10,dive,max=120"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID                 uuid.UUID           `json:"id"`
	Timezone           string              `json:"timezone"`
	PreferredIntensity IntensityPreference `json:"preferred_intensity"`
	Goals              []string            `json:"goals"`
	CreatedAt          time.Time           `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	goals := []string(u.Goals)
	if goals == nil {
		goals = []string{}
	}
	return UserResponse{
		ID:                 u.ID,
		Timezone:           u.Timezone,
		PreferredIntensity: u.PreferredIntensity,
		Goals:              goals,
		CreatedAt:          u.CreatedAt,
	}
}
