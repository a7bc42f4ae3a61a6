package stats

import (
	"testing"
	"time"

	"studyhub/internal/model"
)

func record(subject string, minutes int, date string) model.StudyRecord {
	return model.StudyRecord{Subject: subject, Minutes: minutes, Date: date}
}

func TestDailyMinutes_SumsOnlyTheGivenDay(t *testing.T) {
	records := []model.StudyRecord{
		record("Math", 90, "2026-09-01"),
		record("Math", 30, "2026-09-01"),
		record("English", 45, "2026-08-31"),
	}

	if got := DailyMinutes(records, "2026-09-01"); got != 120 {
		t.Fatalf("expected 120 minutes, got %d", got)
	}
	if got := DailyMinutes(records, "2026-08-30"); got != 0 {
		t.Fatalf("expected 0 minutes for empty day, got %d", got)
	}
}

func TestDailyMinutes_MonotonicUnderAppends(t *testing.T) {
	var records []model.StudyRecord
	prev := 0
	for _, minutes := range []int{10, 25, 5} {
		records = append(records, record("Math", minutes, "2026-09-01"))
		got := DailyMinutes(records, "2026-09-01")
		if got < prev {
			t.Fatalf("daily total decreased: %d -> %d", prev, got)
		}
		prev = got
	}
	if prev != 40 {
		t.Fatalf("expected final total 40, got %d", prev)
	}
}

func TestHours_RoundsHalfUpToTwoDecimals(t *testing.T) {
	cases := []struct {
		minutes int
		want    float64
	}{
		{60, 1},
		{90, 1.5},
		{120, 2},
		{1, 0.02},  // 0.0166... rounds up
		{20, 0.33}, // 0.3333... rounds down
		{45, 0.75},
	}
	for _, tc := range cases {
		if got := Hours(tc.minutes); got != tc.want {
			t.Fatalf("Hours(%d) = %v, want %v", tc.minutes, got, tc.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := FormatMinutes(45); got != "45m" {
		t.Fatalf("expected 45m, got %q", got)
	}
	if got := FormatMinutes(120); got != "2h 0m" {
		t.Fatalf("expected 2h 0m, got %q", got)
	}
	if got := FormatMinutes(135); got != "2h 15m" {
		t.Fatalf("expected 2h 15m, got %q", got)
	}
}

func TestWeeklySeries_AlwaysSevenEntriesOldestFirst(t *testing.T) {
	today := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC) // a Tuesday
	records := []model.StudyRecord{
		record("Math", 60, "2026-09-01"),
		record("Math", 30, "2026-08-27"),
		record("Math", 30, "2020-01-01"), // outside the window
	}

	series := WeeklySeries(records, today)
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	if series[0].Label != "Wed" || series[6].Label != "Tue" {
		t.Fatalf("unexpected label order: first=%q last=%q", series[0].Label, series[6].Label)
	}
	if series[6].Hours != 1 {
		t.Fatalf("expected 1 hour today, got %v", series[6].Hours)
	}
	if series[1].Hours != 0.5 {
		t.Fatalf("expected 0.5 hours on Aug 27, got %v", series[1].Hours)
	}
	for i, point := range series[2:6] {
		if point.Hours != 0 {
			t.Fatalf("expected sparse day %d to be zero, got %v", i+2, point.Hours)
		}
	}
}

func TestWeeklySeries_EmptyDataStillSevenEntries(t *testing.T) {
	series := WeeklySeries(nil, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))
	if len(series) != 7 {
		t.Fatalf("expected 7 entries, got %d", len(series))
	}
	for _, point := range series {
		if point.Hours != 0 {
			t.Fatalf("expected zero hours, got %v", point.Hours)
		}
	}
}

func TestSubjectMinutes_PartitionsTheGrandTotal(t *testing.T) {
	records := []model.StudyRecord{
		record("Math", 90, "2026-09-01"),
		record("Math", 30, "2026-09-01"),
		record("English", 45, "2026-08-31"),
		record("Science", 15, "2026-08-30"),
	}

	totals := SubjectMinutes(records)
	if len(totals) != 3 {
		t.Fatalf("expected 3 subjects, got %d", len(totals))
	}
	if _, ok := totals["History"]; ok {
		t.Fatalf("unused subject must not be zero-filled")
	}

	grand := 0
	for _, record := range records {
		grand += record.Minutes
	}
	sum := 0
	for _, minutes := range totals {
		sum += minutes
	}
	if sum != grand {
		t.Fatalf("partition broken: subjects sum to %d, grand total %d", sum, grand)
	}
}

func TestSubjectHours(t *testing.T) {
	records := []model.StudyRecord{
		record("Math", 90, "2026-09-01"),
		record("Math", 30, "2026-09-01"),
	}
	hours := SubjectHours(records)
	if hours["Math"] != 2 {
		t.Fatalf("expected Math=2.0 hours, got %v", hours["Math"])
	}
}

func TestOwnQuestions(t *testing.T) {
	questions := []model.Question{
		{AuthorEmail: "ana@x.com"},
		{AuthorEmail: "bob@x.com"},
		{AuthorEmail: "ana@x.com"},
	}
	if got := OwnQuestions(questions, "ana@x.com"); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := OwnQuestions(questions, ""); got != 0 {
		t.Fatalf("expected 0 when logged out, got %d", got)
	}
}

func TestCompletedTasks(t *testing.T) {
	tasks := []model.Task{{Completed: true}, {Completed: false}, {Completed: true}}
	if got := CompletedTasks(tasks); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
