package service

import (
	"fmt"
	"strings"
	"time"

	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// AccountService manages the two singleton records: the logged-in user
// profile and the preferences.
type AccountService struct {
	users         *repository.UserRepository
	settings      *repository.SettingsRepository
	notifications *NotificationService
}

func NewAccountService(users *repository.UserRepository, settings *repository.SettingsRepository, notifications *NotificationService) *AccountService {
	return &AccountService{users: users, settings: settings, notifications: notifications}
}

// Login creates the session's user record with default goals.
func (s *AccountService) Login(name, email string) (model.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return model.User{}, invalid("name", "required")
	}
	if email == "" {
		return model.User{}, invalid("email", "required")
	}
	if !emailPattern.MatchString(email) {
		return model.User{}, invalid("email", "malformed address")
	}

	user := model.User{
		Name:      name,
		Email:     email,
		JoinDate:  time.Now(),
		StudyGoal: model.DefaultStudyGoal,
		SleepGoal: model.DefaultSleepGoal,
	}
	s.users.Save(user)

	s.notifications.Add(model.CategoryGeneral,
		fmt.Sprintf("Welcome to StudyHub, %s!", name), model.NotificationSuccess)
	return user, nil
}

// Logout clears the user record, ending the session.
func (s *AccountService) Logout() {
	s.users.Clear()
}

// CurrentUser returns the logged-in user, or nil.
func (s *AccountService) CurrentUser() *model.User {
	return s.users.Current()
}

// SaveProfile overwrites the profile fields of the logged-in user.
func (s *AccountService) SaveProfile(name, email string, studyGoal, sleepGoal float64) (model.User, error) {
	user := s.users.Current()
	if user == nil {
		return model.User{}, ErrNotLoggedIn
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return model.User{}, invalid("name", "required")
	}
	if email == "" {
		return model.User{}, invalid("email", "required")
	}
	if !emailPattern.MatchString(email) {
		return model.User{}, invalid("email", "malformed address")
	}
	if studyGoal <= 0 {
		return model.User{}, invalid("studyGoal", "must be positive")
	}
	if sleepGoal <= 0 {
		return model.User{}, invalid("sleepGoal", "must be positive")
	}

	user.Name = name
	user.Email = email
	user.StudyGoal = studyGoal
	user.SleepGoal = sleepGoal
	s.users.Save(*user)

	s.notifications.Add(model.CategoryGeneral, "Profile saved.", model.NotificationSuccess)
	return *user, nil
}

// Settings returns the current preferences record.
func (s *AccountService) Settings() model.Settings {
	return s.settings.Current()
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *AccountService) ToggleTheme() model.Theme {
	updated := s.settings.Update(func(settings *model.Settings) {
		if settings.Theme == model.ThemeDark {
			settings.Theme = model.ThemeLight
		} else {
			settings.Theme = model.ThemeDark
		}
	})
	return updated.Theme
}

// SetNotificationPref switches one outbound-notification category on or off.
func (s *AccountService) SetNotificationPref(category model.NotificationCategory, enabled bool) error {
	switch category {
	case model.CategoryQuestionAnswers, model.CategoryGoalAchievement, model.CategoryBreakTime:
	default:
		return invalid("category", fmt.Sprintf("unknown category %q", category))
	}

	s.settings.Update(func(settings *model.Settings) {
		switch category {
		case model.CategoryQuestionAnswers:
			settings.Notifications.QuestionAnswers = enabled
		case model.CategoryGoalAchievement:
			settings.Notifications.GoalAchievement = enabled
		case model.CategoryBreakTime:
			settings.Notifications.BreakTime = enabled
		}
	})
	return nil
}
