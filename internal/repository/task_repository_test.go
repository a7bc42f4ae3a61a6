package repository

import (
	"testing"
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:", logger.Nop())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestTaskAddFindRemove(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t), logger.Nop())

	task := repo.Add("Read ch.3")
	if task.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if task.Completed || task.CompletedAt != nil {
		t.Fatalf("new task must be incomplete")
	}

	found, ok := repo.Find(task.ID)
	if !ok || found.Content != "Read ch.3" {
		t.Fatalf("find after add: ok=%v task=%+v", ok, found)
	}

	repo.Remove(task.ID)
	if _, ok := repo.Find(task.ID); ok {
		t.Fatalf("expected task to be gone after remove")
	}

	// Removing again is a silent no-op.
	repo.Remove(task.ID)
}

func TestTaskToggleInvolution(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t), logger.Nop())
	task := repo.Add("write summary")

	toggled, ok := repo.Toggle(task.ID, time.Now())
	if !ok {
		t.Fatalf("toggle of existing task failed")
	}
	if !toggled.Completed || toggled.CompletedAt == nil {
		t.Fatalf("completedAt must be set with the flip: %+v", toggled)
	}

	restored, ok := repo.Toggle(task.ID, time.Now())
	if !ok {
		t.Fatalf("second toggle failed")
	}
	if restored.Completed || restored.CompletedAt != nil {
		t.Fatalf("double toggle must restore both fields: %+v", restored)
	}
}

func TestTaskToggleUnknownIDIsNoOp(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t), logger.Nop())
	repo.Add("keep me")

	if _, ok := repo.Toggle("nope", time.Now()); ok {
		t.Fatalf("expected ok=false for unknown id")
	}
	if len(repo.All()) != 1 {
		t.Fatalf("collection must be unchanged")
	}
}

func TestTasksAppendInChronologicalOrder(t *testing.T) {
	repo := NewTaskRepository(newTestStore(t), logger.Nop())
	first := repo.Add("first")
	second := repo.Add("second")

	all := repo.All()
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != second.ID {
		t.Fatalf("unexpected order: %+v", all)
	}
}

func TestTasksSurviveReload(t *testing.T) {
	st := newTestStore(t)
	repo := NewTaskRepository(st, logger.Nop())
	task := repo.Add("persisted")
	repo.Toggle(task.ID, time.Now())

	reloaded := NewTaskRepository(st, logger.Nop())
	got, ok := reloaded.Find(task.ID)
	if !ok {
		t.Fatalf("task missing after reload")
	}
	if !got.Completed || got.CompletedAt == nil {
		t.Fatalf("completed state lost on reload: %+v", got)
	}
}
