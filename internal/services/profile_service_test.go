package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucoach/glucoach/internal/domain"
	"github.com/glucoach/glucoach/internal/repository"
)

func newTestProfileService(t *testing.T) *ProfileService {
	t.Helper()
	return NewProfileService(repository.NewProfileRepository(newTestDB(t).DB))
}

func TestGetReturnsSeededDefaults(t *testing.T) {
	svc := newTestProfileService(t)

	profile, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint(1), profile.ID)
	assert.Equal(t, "", profile.Goals)
	assert.Equal(t, "", profile.Diet)
	assert.Equal(t, "", profile.Exercise)
	assert.Equal(t, 80, profile.TargetMin)
	assert.Equal(t, 140, profile.TargetMax)
}

func TestPutReplacesAllFields(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	err := svc.Put(ctx, domain.Profile{
		Goals:     "lower morning readings",
		Diet:      "low carb",
		Exercise:  "walk 30min",
		TargetMin: 90,
		TargetMax: 150,
	})
	require.NoError(t, err)

	profile, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "lower morning readings", profile.Goals)
	assert.Equal(t, "low carb", profile.Diet)
	assert.Equal(t, "walk 30min", profile.Exercise)
	assert.Equal(t, 90, profile.TargetMin)
	assert.Equal(t, 150, profile.TargetMax)
}

// Writes never merge: a profile carrying defaults for some fields resets
// them even if values were stored before.
func TestPutDoesNotMergePreviousValues(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, domain.Profile{
		Goals:     "old goals",
		Diet:      "old diet",
		Exercise:  "old exercise",
		TargetMin: 90,
		TargetMax: 150,
	}))

	// Simulates a payload that only set goals; the handler fills the
	// rest with defaults before calling Put.
	next := domain.DefaultProfile()
	next.Goals = "x"
	require.NoError(t, svc.Put(ctx, next))

	profile, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", profile.Goals)
	assert.Equal(t, "", profile.Diet)
	assert.Equal(t, "", profile.Exercise)
	assert.Equal(t, 80, profile.TargetMin)
	assert.Equal(t, 140, profile.TargetMax)
}

func TestProfileStaysSingleton(t *testing.T) {
	svc := newTestProfileService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, domain.Profile{Goals: "a", TargetMin: 80, TargetMax: 140}))
	require.NoError(t, svc.Put(ctx, domain.Profile{Goals: "b", TargetMin: 80, TargetMax: 140}))

	profile, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(1), profile.ID)
	assert.Equal(t, "b", profile.Goals)
}
