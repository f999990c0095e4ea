// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrEmptyFilter is returned when a single-row read or a write is attempted without predicates
var ErrEmptyFilter = errors.New("filter has no conditions")

// BaseRepository provides the common statements every table supports
type BaseRepository[T any, F Filter] struct {
	DB *gorm.DB
}

// NewBaseRepository creates a new base repository instance
func NewBaseRepository[T any, F Filter](db *gorm.DB) *BaseRepository[T, F] {
	return &BaseRepository[T, F]{
		DB: db,
	}
}

func (r *BaseRepository[T, F]) getDB(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx)
}

// applyFilter adds the filter's equality predicates to the query
func (r *BaseRepository[T, F]) applyFilter(db *gorm.DB, filter F) *gorm.DB {
	if conds := filter.Conditions(); len(conds) > 0 {
		return db.Where(conds)
	}
	return db
}

// ByFilter retrieves entities based on filter criteria
func (r *BaseRepository[T, F]) ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error) {
	var entities []*T
	query := r.applyFilter(r.getDB(ctx).Model(new(T)), filter)

	if orderBy != "" {
		query = query.Order(orderBy)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("failed to find entities by filter: %w", err)
	}

	return entities, nil
}

// First returns the single entity matching every predicate of the filter.
// A nil entity with a nil error means no row matched.
func (r *BaseRepository[T, F]) First(ctx context.Context, filter F) (*T, error) {
	conds := filter.Conditions()
	if len(conds) == 0 {
		return nil, ErrEmptyFilter
	}

	var entity T
	err := r.getDB(ctx).Where(conds).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find entity: %w", err)
	}

	return &entity, nil
}

// Count returns the number of entities matching the filter
func (r *BaseRepository[T, F]) Count(ctx context.Context, filter F) (int64, error) {
	var count int64
	err := r.applyFilter(r.getDB(ctx).Model(new(T)), filter).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count entities: %w", err)
	}
	return count, nil
}

// Save inserts a new entity
func (r *BaseRepository[T, F]) Save(ctx context.Context, entity *T) error {
	if err := r.getDB(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}
	return nil
}

// UpdateReturning applies set to the rows matching the filter in one statement
// and returns the updated row. A nil entity with a nil error means no row matched.
func (r *BaseRepository[T, F]) UpdateReturning(ctx context.Context, filter F, set map[string]any) (*T, error) {
	conds := filter.Conditions()
	if len(conds) == 0 {
		return nil, ErrEmptyFilter
	}

	var entity T
	result := r.getDB(ctx).
		Model(&entity).
		Clauses(clause.Returning{}).
		Where(conds).
		Updates(set)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update entity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return &entity, nil
}

// DeleteWhere removes the rows matching the filter and reports how many were removed
func (r *BaseRepository[T, F]) DeleteWhere(ctx context.Context, filter F) (int64, error) {
	conds := filter.Conditions()
	if len(conds) == 0 {
		return 0, ErrEmptyFilter
	}

	result := r.getDB(ctx).Where(conds).Delete(new(T))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete entity: %w", result.Error)
	}

	return result.RowsAffected, nil
}
