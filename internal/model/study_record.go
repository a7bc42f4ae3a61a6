package model

import "time"

// DateLayout is the calendar-day format study records are keyed by.
const DateLayout = "2006-01-02"

// StudyRecord logs minutes spent on a subject on one calendar day.
// Records are immutable after creation; the collection is append-only.
type StudyRecord struct {
	ID        string    `json:"id"`
	Subject   string    `json:"subject"`
	Minutes   int       `json:"minutes"`
	Date      string    `json:"date"` // YYYY-MM-DD, no time component
	CreatedAt time.Time `json:"createdAt"`
}

// Subjects is the fixed set of study subject labels.
var Subjects = []string{"Math", "English", "Science", "History", "Coding", "Other"}

// ValidSubject reports whether s is one of the known subject labels.
func ValidSubject(s string) bool {
	for _, subject := range Subjects {
		if subject == s {
			return true
		}
	}
	return false
}
