// Package store persists records through GORM.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope narrows a query, typically a filter.Predicate's Scope.
type Scope = func(*gorm.DB) *gorm.DB

// Store is a table of records of type T keyed by a string id. It reports
// storage failures as wrapped errors and leaves their interpretation to callers.
type Store[T any] struct {
	db *gorm.DB
}

// New creates a store over db.
func New[T any](db *gorm.DB) *Store[T] {
	return &Store[T]{db: db}
}

// FindAll returns every record the scopes select, oldest first.
func (s *Store[T]) FindAll(ctx context.Context, scopes ...Scope) ([]T, error) {
	records := []T{}
	if err := s.db.WithContext(ctx).Scopes(scopes...).Order("created_at, id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find all: %w", err)
	}
	return records, nil
}

// FindByID returns the record with the given id, or nil if there is none.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var record T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find by id: %w", err)
	}
	return &record, nil
}

// FindByIDs returns the records whose id is in ids, in no particular order.
func (s *Store[T]) FindByIDs(ctx context.Context, ids []string) ([]T, error) {
	records := []T{}
	if len(ids) == 0 {
		return records, nil
	}
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("find by ids: %w", err)
	}
	return records, nil
}

// Create inserts record, assigning its id and timestamps.
func (s *Store[T]) Create(ctx context.Context, record *T) error {
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(record).Error; err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// Update writes every column of the existing record with the given id and
// refreshes updatedAt. It never inserts: if the row is gone it reports false
// and leaves the table unchanged.
func (s *Store[T]) Update(ctx context.Context, id string, record *T) (bool, error) {
	db := s.db.WithContext(ctx)
	result := db.Select("*").Omit(clause.Associations).Where("id = ?", id).Updates(record)
	if result.Error != nil {
		return false, fmt.Errorf("update: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return true, nil
	}

	// MySQL counts only changed rows, so an identical write also reports 0.
	var n int64
	if err := db.Model(new(T)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("update: %w", err)
	}
	return n > 0, nil
}

// Delete removes the record with the given id. It reports whether a row was removed.
func (s *Store[T]) Delete(ctx context.Context, id string) (bool, error) {
	var record T
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&record)
	if result.Error != nil {
		return false, fmt.Errorf("delete: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
