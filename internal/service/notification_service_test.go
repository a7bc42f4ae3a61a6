package service

import (
	"errors"
	"testing"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/repository"
	"studyhub/internal/store"
)

type recordingNotifier struct {
	sent []string
	err  error
}

func (n *recordingNotifier) Notify(message string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, message)
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestNotificationOutboundGatedByCategory(t *testing.T) {
	st := newTestStore(t)
	inbox := repository.NewNotificationRepository(st, logger.Nop())
	settings := repository.NewSettingsRepository(st, logger.Nop())
	notifier := &recordingNotifier{}
	svc := NewNotificationService(inbox, settings, notifier, logger.Nop())

	// Defaults: questionAnswers on, breakTime off.
	svc.Add(model.CategoryQuestionAnswers, "answered", model.NotificationInfo)
	svc.Add(model.CategoryBreakTime, "take a break", model.NotificationInfo)
	svc.Add(model.CategoryGeneral, "hello", model.NotificationSuccess)

	if len(svc.All()) != 3 {
		t.Fatalf("every notification must be stored in-app, got %d", len(svc.All()))
	}
	if len(notifier.sent) != 2 {
		t.Fatalf("expected 2 outbound messages, got %v", notifier.sent)
	}
	for _, message := range notifier.sent {
		if message == "take a break" {
			t.Fatalf("disabled category must not go outbound")
		}
	}
}

func TestNotificationOutboundFailureStillStores(t *testing.T) {
	st := newTestStore(t)
	inbox := repository.NewNotificationRepository(st, logger.Nop())
	settings := repository.NewSettingsRepository(st, logger.Nop())
	notifier := &recordingNotifier{err: errors.New("chat unreachable")}
	svc := NewNotificationService(inbox, settings, notifier, logger.Nop())

	svc.Add(model.CategoryGeneral, "hello", model.NotificationInfo)

	if len(svc.All()) != 1 {
		t.Fatalf("delivery failure must not lose the in-app copy")
	}
	if svc.UnreadCount() != 1 {
		t.Fatalf("expected 1 unread, got %d", svc.UnreadCount())
	}
}

func TestNotificationNilNotifier(t *testing.T) {
	st := newTestStore(t)
	inbox := repository.NewNotificationRepository(st, logger.Nop())
	settings := repository.NewSettingsRepository(st, logger.Nop())
	svc := NewNotificationService(inbox, settings, nil, logger.Nop())

	svc.Add(model.CategoryGeneral, "in-app only", model.NotificationInfo)
	if len(svc.All()) != 1 {
		t.Fatalf("expected stored notification with nil notifier")
	}
}
