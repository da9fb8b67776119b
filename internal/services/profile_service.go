package services

import (
	"context"

	"github.com/glucoach/glucoach/internal/domain"
	"github.com/glucoach/glucoach/internal/repository"
)

// ProfileService implements the singleton profile store.
type ProfileService struct {
	profiles *repository.ProfileRepository
}

func NewProfileService(profiles *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

// Get returns the singleton profile.
func (s *ProfileService) Get(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

// Put replaces every field of the profile. Callers hand in a profile that
// already carries defaults for omitted fields; previous values are never
// merged in.
func (s *ProfileService) Put(ctx context.Context, profile domain.Profile) error {
	return s.profiles.Replace(ctx, &profile)
}
