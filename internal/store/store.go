package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studyhub/internal/logger"
)

// Storage keys, one per collection or singleton record.
const (
	KeyUser           = "user"
	KeyQuestions      = "questions"
	KeyTasks          = "tasks"
	KeyStudyRecords   = "study-records"
	KeyCommunityPosts = "community-posts"
	KeyNotifications  = "notifications"
	KeySettings       = "settings"
)

// entry is one persisted key/value pair: a whole collection (or singleton)
// serialized as a single JSON document.
type entry struct {
	Key       string `gorm:"primaryKey"`
	Value     datatypes.JSON
	UpdatedAt time.Time
}

func (entry) TableName() string { return "entries" }

// Store is the durable key/value layer. Each Save replaces the full value for
// a key in one statement; there is no cross-key transactionality.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

// Open opens (creating if necessary) the backing SQLite file.
func Open(path string, log *logger.Logger) (*Store, error) {
	db, err := newDB(path)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Load deserializes the value stored under key into dest. It returns false
// when the key is absent or holds JSON null; callers apply their defaults.
func (s *Store) Load(key string, dest any) (bool, error) {
	var e entry
	err := s.db.Where("key = ?", key).First(&e).Error
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("load %q: %w", key, err)
	}

	raw := bytes.TrimSpace([]byte(e.Value))
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

// Save serializes value and durably overwrites whatever the key held before.
// The write is all-or-nothing for the key.
func (s *Store) Save(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	e := entry{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now()}
	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error; err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}
