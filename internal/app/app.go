// Package app assembles the repositories and services into the single
// coordinator the UI layer talks to. It is constructed once at startup,
// loading every persisted key (missing ones get defaults), and torn down
// only at process exit.
package app

import (
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/service"
	"studyhub/internal/store"
	"studyhub/pkg/stats"
)

// App is the application facade: it translates user actions into collection
// operations and aggregate queries. Rendering is somebody else's job.
type App struct {
	log   *logger.Logger
	store *store.Store

	account       *service.AccountService
	qna           *service.QnaService
	planner       *service.PlannerService
	community     *service.CommunityService
	notifications *service.NotificationService
	stats         *service.StatsService
	reminder      *service.ReminderService
}

// New loads all persisted state and wires the services. notifier may be nil.
func New(st *store.Store, log *logger.Logger, notifier service.Notifier) *App {
	users := repository.NewUserRepository(st, log)
	settings := repository.NewSettingsRepository(st, log)
	questions := repository.NewQuestionRepository(st, log)
	tasks := repository.NewTaskRepository(st, log)
	records := repository.NewStudyRecordRepository(st, log)
	posts := repository.NewPostRepository(st, log)
	inbox := repository.NewNotificationRepository(st, log)

	notificationSvc := service.NewNotificationService(inbox, settings, notifier, log)
	statsSvc := service.NewStatsService(records, tasks, questions, users)

	return &App{
		log:           log,
		store:         st,
		account:       service.NewAccountService(users, settings, notificationSvc),
		qna:           service.NewQnaService(questions, users, notificationSvc),
		planner:       service.NewPlannerService(tasks, records, users, notificationSvc),
		community:     service.NewCommunityService(posts, users, notificationSvc),
		notifications: notificationSvc,
		stats:         statsSvc,
		reminder:      service.NewReminderService(statsSvc, tasks, users, notificationSvc),
	}
}

// Close releases the storage handle.
func (a *App) Close() error {
	return a.store.Close()
}

// Session and profile.

func (a *App) Login(name, email string) (model.User, error) {
	return a.account.Login(name, email)
}

func (a *App) Logout() {
	a.account.Logout()
}

func (a *App) CurrentUser() *model.User {
	return a.account.CurrentUser()
}

func (a *App) SaveProfile(name, email string, studyGoal, sleepGoal float64) (model.User, error) {
	return a.account.SaveProfile(name, email, studyGoal, sleepGoal)
}

func (a *App) Settings() model.Settings {
	return a.account.Settings()
}

func (a *App) ToggleTheme() model.Theme {
	return a.account.ToggleTheme()
}

func (a *App) SetNotificationPref(category model.NotificationCategory, enabled bool) error {
	return a.account.SetNotificationPref(category, enabled)
}

// Q&A.

func (a *App) SubmitQuestion(title, content, image string) (model.Question, error) {
	return a.qna.Submit(title, content, image)
}

func (a *App) AddAnswer(questionID, content string) (*model.Answer, error) {
	return a.qna.AddAnswer(questionID, content)
}

func (a *App) Search(query string) []model.Question {
	return a.qna.Search(query)
}

func (a *App) Questions() []model.Question {
	return a.qna.All()
}

// Planner.

func (a *App) AddTask(content string) (model.Task, error) {
	return a.planner.AddTask(content)
}

func (a *App) ToggleTask(id string) {
	a.planner.ToggleTask(id)
}

func (a *App) DeleteTask(id string) {
	a.planner.DeleteTask(id)
}

func (a *App) Tasks() []model.Task {
	return a.planner.Tasks()
}

func (a *App) RecordStudy(subject string, minutes int) (model.StudyRecord, error) {
	return a.planner.RecordStudy(subject, minutes)
}

func (a *App) StudyRecords() []model.StudyRecord {
	return a.planner.StudyRecords()
}

func (a *App) TodayRecords() []model.StudyRecord {
	return a.planner.TodayRecords()
}

// Community.

func (a *App) SharePost(content string) (model.CommunityPost, error) {
	return a.community.SharePost(content)
}

func (a *App) LikePost(id string) {
	a.community.LikePost(id)
}

func (a *App) Posts() []model.CommunityPost {
	return a.community.Posts()
}

// Notifications.

func (a *App) Notifications() []model.Notification {
	return a.notifications.All()
}

func (a *App) UnreadNotifications() int {
	return a.notifications.UnreadCount()
}

// Aggregates.

func (a *App) TodayStudyMinutes(now time.Time) int {
	return a.stats.TodayStudyMinutes(now)
}

func (a *App) TodayStudyTime(now time.Time) string {
	return a.stats.TodayStudyTime(now)
}

func (a *App) CompletedTaskCount() int {
	return a.stats.CompletedTaskCount()
}

func (a *App) OwnQuestionCount() int {
	return a.stats.OwnQuestionCount()
}

func (a *App) WeeklyStudySeries(now time.Time) []stats.DayTotal {
	return a.stats.WeeklyStudySeries(now)
}

func (a *App) SubjectTotals() map[string]float64 {
	return a.stats.SubjectTotals()
}

func (a *App) RecentQuestions(limit int) []model.Question {
	return a.stats.RecentQuestions(limit)
}

func (a *App) PendingTasks(limit int) []model.Task {
	return a.stats.PendingTasks(limit)
}

// RunReminder triggers the daily summary job; wired to the scheduler in cmd.
func (a *App) RunReminder(now time.Time) {
	a.reminder.Run(now)
}
