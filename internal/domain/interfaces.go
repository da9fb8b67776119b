package domain

import "context"

// ReadingService handles the glucose reading log.
type ReadingService interface {
	Add(ctx context.Context, input NewReading) (*Reading, error)
	List(ctx context.Context, rangeKey string) ([]Reading, error)
	Recent(ctx context.Context, n int) ([]Reading, error)
	Delete(ctx context.Context, ids []uint) (int64, error)
}

// ProfileService handles the singleton user profile.
type ProfileService interface {
	Get(ctx context.Context) (*Profile, error)
	Put(ctx context.Context, profile Profile) error
}

// SummaryService computes the raw trailing-week aggregate.
type SummaryService interface {
	Weekly(ctx context.Context) (*WeeklySummary, error)
}

// CoachService produces AI coaching text.
type CoachService interface {
	WeeklyReport(ctx context.Context) (*WeeklyReport, error)
	Tip(ctx context.Context, req TipRequest) (string, error)
}

// TextGenerator submits a prompt to an external text-generation provider.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}
