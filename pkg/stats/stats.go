// Package stats derives dashboard counters and statistics series from the
// study-record collection. Everything here is a pure function over the
// caller's snapshot: calling twice with unchanged data yields identical
// results, and nothing is persisted.
package stats

import (
	"fmt"
	"math"
	"time"

	"studyhub/internal/model"
)

// DayTotal is one point of a day-keyed series.
type DayTotal struct {
	Label string  // weekday name
	Hours float64 // rounded to two decimals
}

// DailyMinutes sums the minutes of all records logged on the given
// YYYY-MM-DD day.
func DailyMinutes(records []model.StudyRecord, date string) int {
	total := 0
	for _, record := range records {
		if record.Date == date {
			total += record.Minutes
		}
	}
	return total
}

// Hours converts minutes to hours rounded to two decimal places, half-up on
// the third decimal digit.
func Hours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}

// FormatMinutes renders a minute total as hours+minutes once it reaches a
// full hour.
func FormatMinutes(total int) string {
	if total >= 60 {
		return fmt.Sprintf("%dh %dm", total/60, total%60)
	}
	return fmt.Sprintf("%dm", total)
}

// WeeklySeries returns exactly 7 (weekday label, hours) pairs covering the
// six days before today plus today, oldest first. Days without records
// contribute zero.
func WeeklySeries(records []model.StudyRecord, today time.Time) []DayTotal {
	series := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		minutes := DailyMinutes(records, day.Format(model.DateLayout))
		series = append(series, DayTotal{
			Label: day.Weekday().String()[:3],
			Hours: Hours(minutes),
		})
	}
	return series
}

// SubjectMinutes groups records by subject and sums minutes per group. The
// key set is exactly the set of subjects present in the data.
func SubjectMinutes(records []model.StudyRecord) map[string]int {
	totals := make(map[string]int)
	for _, record := range records {
		totals[record.Subject] += record.Minutes
	}
	return totals
}

// SubjectHours is SubjectMinutes converted to rounded hours.
func SubjectHours(records []model.StudyRecord) map[string]float64 {
	totals := SubjectMinutes(records)
	hours := make(map[string]float64, len(totals))
	for subject, minutes := range totals {
		hours[subject] = Hours(minutes)
	}
	return hours
}

// CompletedTasks counts tasks with completed=true.
func CompletedTasks(tasks []model.Task) int {
	count := 0
	for _, task := range tasks {
		if task.Completed {
			count++
		}
	}
	return count
}

// OwnQuestions counts questions authored by the given email. Zero when email
// is empty (no user logged in).
func OwnQuestions(questions []model.Question, email string) int {
	if email == "" {
		return 0
	}
	count := 0
	for _, question := range questions {
		if question.AuthorEmail == email {
			count++
		}
	}
	return count
}
