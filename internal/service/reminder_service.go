package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// ReminderService builds human-readable daily summaries and raises the
// goal-achievement notification. It runs outside the data core, driven by
// the scheduler; everything it reads comes through the repositories.
type ReminderService struct {
	stats         *StatsService
	tasks         *repository.TaskRepository
	users         *repository.UserRepository
	notifications *NotificationService
}

func NewReminderService(stats *StatsService, tasks *repository.TaskRepository, users *repository.UserRepository, notifications *NotificationService) *ReminderService {
	return &ReminderService{stats: stats, tasks: tasks, users: users, notifications: notifications}
}

// DailySummary renders today's study total against the user's goal plus the
// open tasks. ok is false when nobody is logged in.
func (s *ReminderService) DailySummary(now time.Time) (summary string, ok bool) {
	user := s.users.Current()
	if user == nil {
		return "", false
	}

	var pending []model.Task
	completedToday := 0
	for _, task := range s.tasks.All() {
		if !task.Completed {
			pending = append(pending, task)
			continue
		}
		if task.CompletedAt != nil && task.CompletedAt.Format(model.DateLayout) == now.Format(model.DateLayout) {
			completedToday++
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Daily report %s\n", now.Format(model.DateLayout)))
	builder.WriteString(fmt.Sprintf("Study today: %s (goal %gh)\n", s.stats.TodayStudyTime(now), user.StudyGoal))
	builder.WriteString(fmt.Sprintf("Tasks done today: %d\n", completedToday))

	builder.WriteString("Open tasks:\n")
	if len(pending) == 0 {
		builder.WriteString("- none\n")
	} else {
		for _, task := range pending {
			builder.WriteString(fmt.Sprintf("- %s\n", task.Content))
		}
	}

	return strings.TrimSpace(builder.String()), true
}

// Run emits the daily summary and, when today's study time has reached the
// user's goal, a goal-achievement notification. A no-op when logged out.
func (s *ReminderService) Run(now time.Time) {
	user := s.users.Current()
	if user == nil {
		return
	}

	if summary, ok := s.DailySummary(now); ok {
		s.notifications.Add(model.CategoryGeneral, summary, model.NotificationInfo)
	}

	goalMinutes := int(user.StudyGoal * 60)
	if goalMinutes > 0 && s.stats.TodayStudyMinutes(now) >= goalMinutes {
		s.notifications.Add(model.CategoryGoalAchievement,
			fmt.Sprintf("Daily study goal of %gh reached. Nice work!", user.StudyGoal),
			model.NotificationSuccess)
	}
}
