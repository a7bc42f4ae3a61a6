package model

import "time"

// User is the singleton profile record. It exists exactly while a session is
// logged in; logout clears it from storage.
type User struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	JoinDate  time.Time `json:"joinDate"`
	StudyGoal float64   `json:"studyGoal"` // hours per day
	SleepGoal float64   `json:"sleepGoal"` // hours per day
}

const (
	DefaultStudyGoal = 4
	DefaultSleepGoal = 8
)
