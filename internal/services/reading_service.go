package services

import (
	"context"
	"math"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"github.com/glucoach/glucoach/internal/repository"
	"github.com/glucoach/glucoach/internal/utils"
)

// Range selectors accepted by List. "week" means the trailing 7 days;
// every other value gets month semantics (trailing 30 days).
const (
	RangeWeek = "week"

	weekDays  = 7
	monthDays = 30
)

// ReadingService implements the glucose reading log on top of the
// reading repository.
type ReadingService struct {
	readings *repository.ReadingRepository
}

func NewReadingService(readings *repository.ReadingRepository) *ReadingService {
	return &ReadingService{readings: readings}
}

// Add validates and persists a new reading. Date and timeSlot are
// required; note defaults to empty and mealState to Fasting.
func (s *ReadingService) Add(ctx context.Context, input domain.NewReading) (*domain.Reading, error) {
	if input.Date == "" || input.TimeSlot == "" {
		return nil, apperrors.NewValidationError("date and timeSlot are required")
	}
	if !utils.ValidISODate(input.Date) {
		return nil, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}
	slot := domain.TimeSlot(input.TimeSlot)
	if !slot.Valid() {
		return nil, apperrors.NewValidationError("timeSlot must be Morning, Noon or Evening")
	}
	if input.Value < 0 {
		return nil, apperrors.NewValidationError("value must be non-negative")
	}
	state := domain.MealStateFasting
	if input.MealState != "" {
		state = domain.MealState(input.MealState)
		if !state.Valid() {
			return nil, apperrors.NewValidationError("mealState must be Fasting or Post-meal")
		}
	}

	reading := &domain.Reading{
		Date:      input.Date,
		TimeSlot:  slot,
		Value:     int(math.Round(input.Value)),
		Note:      input.Note,
		MealState: state,
	}
	if err := s.readings.Create(ctx, reading); err != nil {
		return nil, err
	}
	return reading, nil
}

// List returns readings for the selected coarse range, newest first.
func (s *ReadingService) List(ctx context.Context, rangeKey string) ([]domain.Reading, error) {
	from, to := rangeBounds(rangeKey)
	return s.readings.ListRangeDesc(ctx, from, to)
}

// Recent returns the n most recently inserted readings.
func (s *ReadingService) Recent(ctx context.Context, n int) ([]domain.Reading, error) {
	return s.readings.Recent(ctx, n)
}

// Delete removes readings by id and returns the number actually removed.
// An empty id list is a validation error; unknown ids contribute 0.
func (s *ReadingService) Delete(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, apperrors.NewValidationError("ids array required")
	}
	return s.readings.DeleteByIDs(ctx, ids)
}

// rangeBounds resolves a coarse range selector to inclusive local
// calendar-day bounds ending today.
func rangeBounds(rangeKey string) (from, to string) {
	days := monthDays
	if rangeKey == RangeWeek {
		days = weekDays
	}
	to = utils.TodayISO()
	from = utils.ShiftISO(to, -days)
	return from, to
}
