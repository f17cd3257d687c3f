package domain

import "errors"

var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidWindow   = errors.New("invalid date window")
	ErrHabitNotStarted = errors.New("habit has not been started")
)
