package repository

import (
	"sync"
	"time"

	"studyhub/internal/logger"
	"studyhub/internal/model"
	"studyhub/internal/store"
)

// StudyRecordRepository holds the append-only study-time log. Records are
// immutable after creation.
type StudyRecordRepository struct {
	mu      sync.RWMutex
	store   *store.Store
	log     *logger.Logger
	ids     *idGenerator
	records []model.StudyRecord
}

func NewStudyRecordRepository(st *store.Store, log *logger.Logger) *StudyRecordRepository {
	r := &StudyRecordRepository{store: st, log: log, ids: newIDGenerator()}
	if _, err := st.Load(store.KeyStudyRecords, &r.records); err != nil {
		log.Warn("load study records, starting empty", "error", err)
		r.records = nil
	}
	return r
}

// Add appends a record for the calendar day of now and persists.
func (r *StudyRecordRepository) Add(subject string, minutes int, now time.Time) model.StudyRecord {
	record := model.StudyRecord{
		ID:        r.ids.Next(),
		Subject:   subject,
		Minutes:   minutes,
		Date:      now.Format(model.DateLayout),
		CreatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	r.persist()
	return record
}

func (r *StudyRecordRepository) All() []model.StudyRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.StudyRecord, len(r.records))
	copy(out, r.records)
	return out
}

// ForDate returns the records logged on the given YYYY-MM-DD day.
func (r *StudyRecordRepository) ForDate(date string) []model.StudyRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.StudyRecord
	for _, record := range r.records {
		if record.Date == date {
			out = append(out, record)
		}
	}
	return out
}

func (r *StudyRecordRepository) persist() {
	if err := r.store.Save(store.KeyStudyRecords, r.records); err != nil {
		r.log.Warn("persist study records", "error", err)
	}
}
