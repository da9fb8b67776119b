package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"github.com/glucoach/glucoach/internal/utils"
)

func TestAddDefaultsNoteAndMealState(t *testing.T) {
	svc := newTestReadingService(t)

	reading, err := svc.Add(context.Background(), domain.NewReading{
		Date:     "2026-08-30",
		TimeSlot: "Morning",
		Value:    120,
	})
	require.NoError(t, err)

	assert.NotZero(t, reading.ID)
	assert.Equal(t, "", reading.Note)
	assert.Equal(t, domain.MealStateFasting, reading.MealState)
	assert.Equal(t, 120, reading.Value)
}

func TestAddValidation(t *testing.T) {
	svc := newTestReadingService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input domain.NewReading
	}{
		{"missing date", domain.NewReading{TimeSlot: "Morning", Value: 100}},
		{"missing timeSlot", domain.NewReading{Date: "2026-08-30", Value: 100}},
		{"malformed date", domain.NewReading{Date: "30/08/2026", TimeSlot: "Morning", Value: 100}},
		{"unknown timeSlot", domain.NewReading{Date: "2026-08-30", TimeSlot: "Midnight", Value: 100}},
		{"negative value", domain.NewReading{Date: "2026-08-30", TimeSlot: "Morning", Value: -5}},
		{"unknown mealState", domain.NewReading{Date: "2026-08-30", TimeSlot: "Morning", Value: 100, MealState: "Snacking"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(ctx, tt.input)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
		})
	}
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	svc := newTestReadingService(t)

	first := mustAdd(t, svc, 1, 100)
	second := mustAdd(t, svc, 1, 110)
	assert.Greater(t, second.ID, first.ID)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := newTestReadingService(t)
	ctx := context.Background()

	mustAdd(t, svc, 3, 100)
	older := mustAdd(t, svc, 2, 110)
	newer := mustAdd(t, svc, 2, 120) // same date, later insert
	today := mustAdd(t, svc, 0, 130)

	items, err := svc.List(ctx, "week")
	require.NoError(t, err)
	require.Len(t, items, 4)

	assert.Equal(t, today.ID, items[0].ID)
	// Within a date, the most recent insert wins.
	assert.Equal(t, newer.ID, items[1].ID)
	assert.Equal(t, older.ID, items[2].ID)
}

func TestListRangeSelector(t *testing.T) {
	svc := newTestReadingService(t)
	ctx := context.Background()

	mustAdd(t, svc, 2, 100)
	mustAdd(t, svc, 14, 110) // outside the week, inside the month

	week, err := svc.List(ctx, "week")
	require.NoError(t, err)
	assert.Len(t, week, 1)

	// Any selector other than "week" gets month semantics.
	for _, key := range []string{"month", "year", "bogus"} {
		items, err := svc.List(ctx, key)
		require.NoError(t, err)
		assert.Len(t, items, 2, "range %q", key)
	}
}

func TestListEmptyStore(t *testing.T) {
	svc := newTestReadingService(t)

	items, err := svc.List(context.Background(), "week")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestRecent(t *testing.T) {
	svc := newTestReadingService(t)

	for i := 0; i < 5; i++ {
		mustAdd(t, svc, 0, float64(100+i))
	}

	recent, err := svc.Recent(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 104, recent[0].Value)
	assert.Equal(t, 102, recent[2].Value)
}

func TestDeleteEmptyIDsFails(t *testing.T) {
	svc := newTestReadingService(t)

	_, err := svc.Delete(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
}

func TestDeleteNonexistentIDsCountZero(t *testing.T) {
	svc := newTestReadingService(t)

	deleted, err := svc.Delete(context.Background(), []uint{999999})
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted)
}

func TestDeleteCountsOnlyExistingRows(t *testing.T) {
	svc := newTestReadingService(t)
	ctx := context.Background()

	a := mustAdd(t, svc, 1, 100)
	b := mustAdd(t, svc, 1, 110)

	deleted, err := svc.Delete(ctx, []uint{a.ID, b.ID, 999999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	items, err := svc.List(ctx, "week")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBackdatedReadingOutsideRangeIsHidden(t *testing.T) {
	svc := newTestReadingService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, domain.NewReading{
		Date:     utils.ShiftISO(utils.TodayISO(), -90),
		TimeSlot: "Evening",
		Value:    100,
	})
	require.NoError(t, err)

	items, err := svc.List(ctx, "month")
	require.NoError(t, err)
	assert.Empty(t, items)
}
