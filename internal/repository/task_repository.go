package repository

import (
	"sync"
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// TaskRepository holds the ordered task collection. New tasks are appended
// (chronological order); every mutation persists the whole collection.
type TaskRepository struct {
	mu    sync.RWMutex
	store *store.Store
	log   *logger.Logger
	ids   *idGenerator
	tasks []model.Task
}

func NewTaskRepository(st *store.Store, log *logger.Logger) *TaskRepository {
	r := &TaskRepository{store: st, log: log, ids: newIDGenerator()}
	if _, err := st.Load(store.KeyTasks, &r.tasks); err != nil {
		log.Warn("load tasks, starting empty", "error", err)
		r.tasks = nil
	}
	return r
}

// Add creates a task with a fresh id and timestamp and persists the collection.
func (r *TaskRepository) Add(content string) model.Task {
	task := model.Task{
		ID:        r.ids.Next(),
		Content:   content,
		CreatedAt: time.Now(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, task)
	r.persist()
	return task
}

// Toggle flips the completed flag and sets or clears completedAt in the same
// step. Unknown ids are a silent no-op (ok=false).
func (r *TaskRepository) Toggle(id string, now time.Time) (model.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID != id {
			continue
		}
		task := &r.tasks[i]
		task.Completed = !task.Completed
		if task.Completed {
			completedAt := now
			task.CompletedAt = &completedAt
		} else {
			task.CompletedAt = nil
		}
		r.persist()
		return *task, true
	}
	return model.Task{}, false
}

// Remove deletes a task by id. Unknown ids are a silent no-op.
func (r *TaskRepository) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			r.persist()
			return
		}
	}
}

func (r *TaskRepository) Find(id string) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, task := range r.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return model.Task{}, false
}

func (r *TaskRepository) All() []model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// persist writes the collection; on failure the in-memory state stays
// authoritative for the rest of the session. Callers hold the lock.
func (r *TaskRepository) persist() {
	if err := r.store.Save(store.KeyTasks, r.tasks); err != nil {
		r.log.Warn("persist tasks", "error", err)
	}
}
