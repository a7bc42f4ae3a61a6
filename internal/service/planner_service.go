package service

import (
	"fmt"
	"strings"
	"time"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// PlannerService wraps the task list and the study-time log.
type PlannerService struct {
	tasks         *repository.TaskRepository
	records       *repository.StudyRecordRepository
	users         *repository.UserRepository
	notifications *NotificationService
}

func NewPlannerService(tasks *repository.TaskRepository, records *repository.StudyRecordRepository, users *repository.UserRepository, notifications *NotificationService) *PlannerService {
	return &PlannerService{tasks: tasks, records: records, users: users, notifications: notifications}
}

// AddTask appends a new incomplete task.
func (s *PlannerService) AddTask(content string) (model.Task, error) {
	if s.users.Current() == nil {
		return model.Task{}, ErrNotLoggedIn
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Task{}, invalid("content", "required")
	}
	return s.tasks.Add(content), nil
}

// ToggleTask flips a task's completed state; completedAt changes with it.
// Unknown ids are a silent no-op. Completing (not un-completing) a task
// raises a notification.
func (s *PlannerService) ToggleTask(id string) {
	task, ok := s.tasks.Toggle(id, time.Now())
	if ok && task.Completed {
		s.notifications.Add(model.CategoryGeneral, "Task completed! 🎉", model.NotificationSuccess)
	}
}

// DeleteTask removes a task; unknown ids are a silent no-op.
func (s *PlannerService) DeleteTask(id string) {
	s.tasks.Remove(id)
}

func (s *PlannerService) Tasks() []model.Task {
	return s.tasks.All()
}

// RecordStudy appends an immutable study record for today.
func (s *PlannerService) RecordStudy(subject string, minutes int) (model.StudyRecord, error) {
	if s.users.Current() == nil {
		return model.StudyRecord{}, ErrNotLoggedIn
	}
	if !model.ValidSubject(subject) {
		return model.StudyRecord{}, invalid("subject", fmt.Sprintf("unknown subject %q", subject))
	}
	if minutes < 1 {
		return model.StudyRecord{}, invalid("minutes", "must be at least 1")
	}

	record := s.records.Add(subject, minutes, time.Now())
	s.notifications.Add(model.CategoryGeneral,
		fmt.Sprintf("%s study logged: %d minutes.", subject, minutes), model.NotificationSuccess)
	return record, nil
}

func (s *PlannerService) StudyRecords() []model.StudyRecord {
	return s.records.All()
}

// TodayRecords returns the records logged on the current calendar day.
func (s *PlannerService) TodayRecords() []model.StudyRecord {
	return s.records.ForDate(time.Now().Format(model.DateLayout))
}
