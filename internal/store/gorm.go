package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fundvest-go/internal/apperr"
	"fundvest-go/internal/models"
)

// GormKV persists key-value entries in a postgres table.
type GormKV struct {
	db *gorm.DB
}

// Connect opens the postgres connection and migrates the kv_entries
// table.
func Connect(dsn string) (*GormKV, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &GormKV{db: db}, nil
}

// NewGormKV wraps an existing gorm handle.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

func (g *GormKV) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", apperr.Persistence("read %q: %v", key, err)
	}
	return entry.Value, nil
}

func (g *GormKV) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return apperr.Persistence("write %q: %v", key, err)
	}
	return nil
}

func (g *GormKV) Delete(ctx context.Context, key string) error {
	err := g.db.WithContext(ctx).Delete(&models.KVEntry{}, "key = ?", key).Error
	if err != nil {
		return apperr.Persistence("delete %q: %v", key, err)
	}
	return nil
}
