package repository

import (
	"context"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"gorm.io/gorm"
)

// ReadingRepository handles glucose reading persistence
type ReadingRepository struct {
	db *gorm.DB
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// Create persists a new reading and assigns its id
func (r *ReadingRepository) Create(ctx context.Context, reading *domain.Reading) error {
	if err := r.db.WithContext(ctx).Create(reading).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}

// ListRangeDesc returns readings with date in [from, to], newest first
// (date desc, id desc) for display.
func (r *ReadingRepository) ListRangeDesc(ctx context.Context, from, to string) ([]domain.Reading, error) {
	readings := make([]domain.Reading, 0)
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date DESC, id DESC").
		Find(&readings).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return readings, nil
}

// ListRangeAsc returns readings with date in [from, to], oldest first
// (date asc, id asc) for aggregation.
func (r *ReadingRepository) ListRangeAsc(ctx context.Context, from, to string) ([]domain.Reading, error) {
	readings := make([]domain.Reading, 0)
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, id ASC").
		Find(&readings).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return readings, nil
}

// Recent returns the n most recently inserted readings, newest first.
func (r *ReadingRepository) Recent(ctx context.Context, n int) ([]domain.Reading, error) {
	readings := make([]domain.Reading, 0)
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(n).
		Find(&readings).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return readings, nil
}

// DeleteByIDs removes the given readings and returns how many rows were
// actually deleted. Nonexistent ids are not an error.
func (r *ReadingRepository) DeleteByIDs(ctx context.Context, ids []uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Reading{}, ids)
	if result.Error != nil {
		return 0, apperrors.NewDatabaseError(result.Error)
	}
	return result.RowsAffected, nil
}
