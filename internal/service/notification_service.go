package service

import (
	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/repository"
)

// Notifier delivers a notification to an external sink (e.g. a messenger
// chat). The in-app collection never depends on it.
type Notifier interface {
	Notify(message string) error
}

// NotificationService stores in-app notifications and forwards them to the
// outbound sink when the category's settings toggle allows.
type NotificationService struct {
	notifications *repository.NotificationRepository
	settings      *repository.SettingsRepository
	notifier      Notifier
	log           *logger.Logger
}

func NewNotificationService(notifications *repository.NotificationRepository, settings *repository.SettingsRepository, notifier Notifier, log *logger.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		settings:      settings,
		notifier:      notifier,
		log:           log,
	}
}

// Add always stores the in-app notification; only outbound delivery is gated
// by the per-category toggle. Outbound failures are logged and ignored.
func (s *NotificationService) Add(category model.NotificationCategory, message string, typ model.NotificationType) model.Notification {
	notification := s.notifications.Add(message, typ)

	if s.notifier != nil && s.settings.Current().Notifications.Enabled(category) {
		if err := s.notifier.Notify(message); err != nil {
			s.log.Warn("outbound notification", "error", err)
		}
	}
	return notification
}

func (s *NotificationService) All() []model.Notification {
	return s.notifications.All()
}

func (s *NotificationService) UnreadCount() int {
	return s.notifications.UnreadCount()
}
