package database

import (
	"context"

	"gorm.io/gorm"
)

// QueryOption customizes a query (filters, ordering, preloads, limits).
type QueryOption func(*gorm.DB) *gorm.DB

// Where adds an equality/expression filter.
func Where(query interface{}, args ...interface{}) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(query, args...)
	}
}

// Order adds an ORDER BY clause. Chain multiple options for compound sorts.
func Order(expr string) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(expr)
	}
}

// Preload eager-loads an association.
func Preload(name string, args ...interface{}) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Preload(name, args...)
	}
}

// Limit caps the result set.
func Limit(n int) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Limit(n)
	}
}

// Offset skips rows for pagination.
func Offset(n int) QueryOption {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Offset(n)
	}
}

// Repository is the generic CRUD surface shared by the content managers.
// One parameterized implementation replaces six near-identical ones.
type Repository[T any] struct {
	db *gorm.DB
}

// NewRepository creates a repository for model T.
func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) apply(ctx context.Context, opts []QueryOption) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(T))
	for _, opt := range opts {
		tx = opt(tx)
	}
	return tx
}

// List returns all rows matching the options.
func (r *Repository[T]) List(ctx context.Context, opts ...QueryOption) ([]T, error) {
	var rows []T
	if err := r.apply(ctx, opts).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Get returns a single row by primary key, gorm.ErrRecordNotFound when absent.
func (r *Repository[T]) Get(ctx context.Context, id uint, opts ...QueryOption) (*T, error) {
	var row T
	if err := r.apply(ctx, opts).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// First returns the first row matching the options, gorm.ErrRecordNotFound
// when nothing matches.
func (r *Repository[T]) First(ctx context.Context, opts ...QueryOption) (*T, error) {
	var row T
	if err := r.apply(ctx, opts).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new row.
func (r *Repository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Save persists all fields of an existing row.
func (r *Repository[T]) Save(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Save(row).Error
}

// Delete removes a row by primary key. Permanent and immediate; dependent
// rows in other tables are left untouched.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the number of rows matching the options.
func (r *Repository[T]) Count(ctx context.Context, opts ...QueryOption) (int64, error) {
	var n int64
	if err := r.apply(ctx, opts).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
