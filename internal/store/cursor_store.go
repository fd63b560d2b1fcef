package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// CursorStore stores operational cursors of background jobs
type CursorStore interface {
	// GetCursor retrieves a named cursor, empty when it was never set
	GetCursor(ctx context.Context, name string) (string, error)
	// SetCursor stores a named cursor
	SetCursor(ctx context.Context, name string, value string) error
}

func cursorKey(name string) string {
	return fmt.Sprintf("cursor:%s", name)
}

// GetCursor retrieves a named cursor
func (s *pgStore) GetCursor(ctx context.Context, name string) (string, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", cursorKey(name)).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get cursor: %w", err)
	}

	return kv.Value, nil
}

// SetCursor stores a named cursor
func (s *pgStore) SetCursor(ctx context.Context, name string, value string) error {
	kv := schema.KeyValueStore{
		Key:   cursorKey(name),
		Value: value,
	}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set cursor: %w", err)
	}

	return nil
}
