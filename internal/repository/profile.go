package repository

import (
	"context"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"gorm.io/gorm"
)

// ProfileRepository handles the singleton profile row
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get returns the singleton profile, creating it with defaults if the
// store predates seeding.
func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	profile := domain.DefaultProfile()
	profile.ID = 1
	if err := r.db.WithContext(ctx).Where("id = ?", 1).FirstOrCreate(&profile).Error; err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return &profile, nil
}

// Replace overwrites every field of the singleton row. Callers are
// responsible for filling omitted fields with defaults first.
func (r *ProfileRepository) Replace(ctx context.Context, profile *domain.Profile) error {
	profile.ID = 1
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return apperrors.NewDatabaseError(err)
	}
	return nil
}
