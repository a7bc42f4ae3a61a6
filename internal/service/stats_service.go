package service

import (
	"time"

	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/pkg/stats"
)

// StatsService exposes the dashboard counters and statistics series. All
// values are re-derived from the current in-memory collections on demand;
// nothing here is persisted.
type StatsService struct {
	records   *repository.StudyRecordRepository
	tasks     *repository.TaskRepository
	questions *repository.QuestionRepository
	users     *repository.UserRepository
}

func NewStatsService(records *repository.StudyRecordRepository, tasks *repository.TaskRepository, questions *repository.QuestionRepository, users *repository.UserRepository) *StatsService {
	return &StatsService{records: records, tasks: tasks, questions: questions, users: users}
}

// TodayStudyMinutes sums the minutes logged on the calendar day of now.
func (s *StatsService) TodayStudyMinutes(now time.Time) int {
	return stats.DailyMinutes(s.records.All(), now.Format(model.DateLayout))
}

// TodayStudyTime is TodayStudyMinutes rendered as hours+minutes.
func (s *StatsService) TodayStudyTime(now time.Time) string {
	return stats.FormatMinutes(s.TodayStudyMinutes(now))
}

// CompletedTaskCount counts tasks with completed=true.
func (s *StatsService) CompletedTaskCount() int {
	return stats.CompletedTasks(s.tasks.All())
}

// OwnQuestionCount counts questions authored by the logged-in user; zero
// when logged out.
func (s *StatsService) OwnQuestionCount() int {
	email := ""
	if user := s.users.Current(); user != nil {
		email = user.Email
	}
	return stats.OwnQuestions(s.questions.All(), email)
}

// WeeklyStudySeries returns the 7-day study series ending today, oldest first.
func (s *StatsService) WeeklyStudySeries(now time.Time) []stats.DayTotal {
	return stats.WeeklySeries(s.records.All(), now)
}

// SubjectTotals groups all study records by subject, in rounded hours.
func (s *StatsService) SubjectTotals() map[string]float64 {
	return stats.SubjectHours(s.records.All())
}

// RecentQuestions returns up to limit most recent questions.
func (s *StatsService) RecentQuestions(limit int) []model.Question {
	questions := s.questions.All()
	if len(questions) > limit {
		questions = questions[:limit]
	}
	return questions
}

// PendingTasks returns up to limit incomplete tasks in creation order.
func (s *StatsService) PendingTasks(limit int) []model.Task {
	var pending []model.Task
	for _, task := range s.tasks.All() {
		if task.Completed {
			continue
		}
		pending = append(pending, task)
		if len(pending) == limit {
			break
		}
	}
	return pending
}
