package repository

import (
	"sync"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// SettingsRepository holds the singleton preferences record, defaulted when
// nothing is persisted yet.
type SettingsRepository struct {
	mu       sync.RWMutex
	store    *store.Store
	log      *logger.Logger
	settings model.Settings
}

func NewSettingsRepository(st *store.Store, log *logger.Logger) *SettingsRepository {
	r := &SettingsRepository{store: st, log: log, settings: model.DefaultSettings()}
	var loaded model.Settings
	ok, err := st.Load(store.KeySettings, &loaded)
	if err != nil {
		log.Warn("load settings, using defaults", "error", err)
	} else if ok {
		r.settings = loaded
	}
	return r
}

func (r *SettingsRepository) Current() model.Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Update applies a mutator to the settings record and persists the result.
func (r *SettingsRepository) Update(mutate func(*model.Settings)) model.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()
	mutate(&r.settings)
	if err := r.store.Save(store.KeySettings, r.settings); err != nil {
		r.log.Warn("persist settings", "error", err)
	}
	return r.settings
}
