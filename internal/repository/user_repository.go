package repository

import (
	"sync"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// UserRepository holds the singleton profile record. The record exists iff a
// session is logged in; Clear writes JSON null like the original storage shape.
type UserRepository struct {
	mu    sync.RWMutex
	store *store.Store
	log   *logger.Logger
	user  *model.User
}

func NewUserRepository(st *store.Store, log *logger.Logger) *UserRepository {
	r := &UserRepository{store: st, log: log}
	var user model.User
	ok, err := st.Load(store.KeyUser, &user)
	if err != nil {
		log.Warn("load user, starting logged out", "error", err)
	} else if ok {
		r.user = &user
	}
	return r
}

// Current returns a copy of the logged-in user, or nil when logged out.
func (r *UserRepository) Current() *model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.user == nil {
		return nil
	}
	user := *r.user
	return &user
}

// Save overwrites the singleton record and persists it.
func (r *UserRepository) Save(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = &user
	if err := r.store.Save(store.KeyUser, r.user); err != nil {
		r.log.Warn("persist user", "error", err)
	}
}

// Clear removes the record, ending the session.
func (r *UserRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.user = nil
	if err := r.store.Save(store.KeyUser, nil); err != nil {
		r.log.Warn("persist user", "error", err)
	}
}
