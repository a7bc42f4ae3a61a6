package repository

import (
	"sync"
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// NotificationRepository holds in-app notifications, most recent first.
type NotificationRepository struct {
	mu            sync.RWMutex
	store         *store.Store
	log           *logger.Logger
	ids           *idGenerator
	notifications []model.Notification
}

func NewNotificationRepository(st *store.Store, log *logger.Logger) *NotificationRepository {
	r := &NotificationRepository{store: st, log: log, ids: newIDGenerator()}
	if _, err := st.Load(store.KeyNotifications, &r.notifications); err != nil {
		log.Warn("load notifications, starting empty", "error", err)
		r.notifications = nil
	}
	return r
}

// Add prepends an unread notification and persists.
func (r *NotificationRepository) Add(message string, typ model.NotificationType) model.Notification {
	notification := model.Notification{
		ID:        r.ids.Next(),
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append([]model.Notification{notification}, r.notifications...)
	r.persist()
	return notification
}

func (r *NotificationRepository) All() []model.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// UnreadCount counts notifications with read=false.
func (r *NotificationRepository) UnreadCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, notification := range r.notifications {
		if !notification.Read {
			count++
		}
	}
	return count
}

func (r *NotificationRepository) persist() {
	if err := r.store.Save(store.KeyNotifications, r.notifications); err != nil {
		r.log.Warn("persist notifications", "error", err)
	}
}
