package services

import (
	"context"

	"github.com/glucoach/glucoach/internal/domain"
	"github.com/glucoach/glucoach/internal/glucose"
	"github.com/glucoach/glucoach/internal/repository"
	"github.com/glucoach/glucoach/internal/utils"
)

// SummaryService computes the raw trailing-week aggregate without any
// external calls.
type SummaryService struct {
	readings *repository.ReadingRepository
}

func NewSummaryService(readings *repository.ReadingRepository) *SummaryService {
	return &SummaryService{readings: readings}
}

// Weekly aggregates the trailing 7 local calendar days, oldest first.
func (s *SummaryService) Weekly(ctx context.Context) (*domain.WeeklySummary, error) {
	to := utils.TodayISO()
	from := utils.ShiftISO(to, -weekDays)

	items, err := s.readings.ListRangeAsc(ctx, from, to)
	if err != nil {
		return nil, err
	}

	avg, spike := glucose.Aggregate(items)
	return &domain.WeeklySummary{Avg: avg, Items: items, Spike: spike}, nil
}
