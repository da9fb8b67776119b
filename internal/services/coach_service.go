package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
)

const (
	weeklyTemperature = 0.6
	// Higher temperature for the shorter, more casual per-entry tip.
	tipTemperature = 0.7

	recentTipWindow = 3

	weeklyFallback = "이번 주 보고를 생성하지 못했습니다."
	tipFallback    = "좋은 습관을 꾸준히 이어가요!"
)

const weeklyPromptTemplate = `You are a supportive diabetes coach. Create a brief weekly report in Korean (3-5 sentences).
Data (last 7 days):
Average mg/dL: %d
Largest spike: %d (from %s to %s), around %s %s.
Logs (JSON): %s
User profile:
- Goals: %s
- Diet: %s
- Exercise: %s
- Target range: %d-%d mg/dL

Instructions:
- Hypothesize likely causes using notes (meal/exercise/fasting).
- Give 1-2 concrete tips tailored to the user's profile and target range.
- Avoid medical diagnosis; give general, safe lifestyle coaching.
- Keep it concise.`

// weeklyLog and recentLog are the trimmed views of a reading that go
// into the prompts. Row ids never reach the provider, and the weekly
// report leaves out the meal state as well.
type weeklyLog struct {
	Date     string          `json:"date"`
	TimeSlot domain.TimeSlot `json:"timeSlot"`
	Value    int             `json:"value"`
	Note     string          `json:"note"`
}

type recentLog struct {
	Date      string           `json:"date"`
	TimeSlot  domain.TimeSlot  `json:"timeSlot"`
	Value     int              `json:"value"`
	Note      string           `json:"note"`
	MealState domain.MealState `json:"mealState"`
}

const tipPromptTemplate = `Act as a concise diabetes lifestyle coach in Korean (1-2 sentences).
Current reading: %d mg/dL at %s (%s).
User profile: goals=%s; diet=%s; exercise=%s; target=%d-%d.
Recent logs: %s
Give one encouraging, practical tip aligned with target range and profile. No diagnosis.`

// CoachService assembles aggregated data, profile and recent readings
// into prompts for the text generator. Provider failures surface as-is;
// an empty response is replaced with a fixed fallback string.
type CoachService struct {
	gen      domain.TextGenerator
	summary  domain.SummaryService
	readings domain.ReadingService
	profiles domain.ProfileService
}

func NewCoachService(gen domain.TextGenerator, summary domain.SummaryService, readings domain.ReadingService, profiles domain.ProfileService) *CoachService {
	return &CoachService{
		gen:      gen,
		summary:  summary,
		readings: readings,
		profiles: profiles,
	}
}

// WeeklyReport builds the trailing-week coaching report.
func (s *CoachService) WeeklyReport(ctx context.Context) (*domain.WeeklyReport, error) {
	summary, err := s.summary.Weekly(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}

	logs := make([]weeklyLog, 0, len(summary.Items))
	for _, item := range summary.Items {
		logs = append(logs, weeklyLog{
			Date:     item.Date,
			TimeSlot: item.TimeSlot,
			Value:    item.Value,
			Note:     item.Note,
		})
	}
	logsJSON, err := json.Marshal(logs)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "failed to encode readings")
	}

	prompt := fmt.Sprintf(weeklyPromptTemplate,
		summary.Avg,
		summary.Spike.Delta,
		spikeValue(summary.Spike.From),
		spikeValue(summary.Spike.To),
		spikeDate(summary.Spike.To),
		spikeSlot(summary.Spike.To),
		logsJSON,
		profile.Goals,
		profile.Diet,
		profile.Exercise,
		profile.TargetMin,
		profile.TargetMax,
	)

	message, err := s.gen.Generate(ctx, prompt, weeklyTemperature)
	if err != nil {
		return nil, err
	}
	if message == "" {
		message = weeklyFallback
	}

	return &domain.WeeklyReport{
		Avg:     summary.Avg,
		Spike:   summary.Spike,
		Message: message,
	}, nil
}

// Tip builds a one-off coaching tip for a single reading, using the
// profile and the 3 most recent log entries as context.
func (s *CoachService) Tip(ctx context.Context, req domain.TipRequest) (string, error) {
	profile, err := s.profiles.Get(ctx)
	if err != nil {
		return "", err
	}
	recent, err := s.readings.Recent(ctx, recentTipWindow)
	if err != nil {
		return "", err
	}

	logs := make([]recentLog, 0, len(recent))
	for _, item := range recent {
		logs = append(logs, recentLog{
			Date:      item.Date,
			TimeSlot:  item.TimeSlot,
			Value:     item.Value,
			Note:      item.Note,
			MealState: item.MealState,
		})
	}
	recentJSON, err := json.Marshal(logs)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrorTypeInternal, "ENCODE", "failed to encode readings")
	}

	state := req.MealState
	if state == "" {
		state = domain.MealStateFasting
	}

	prompt := fmt.Sprintf(tipPromptTemplate,
		req.Value,
		req.TimeSlot,
		state,
		profile.Goals,
		profile.Diet,
		profile.Exercise,
		profile.TargetMin,
		profile.TargetMax,
		recentJSON,
	)

	message, err := s.gen.Generate(ctx, prompt, tipTemperature)
	if err != nil {
		return "", err
	}
	if message == "" {
		message = tipFallback
	}
	return message, nil
}

func spikeValue(r *domain.Reading) string {
	if r == nil {
		return "-"
	}
	return strconv.Itoa(r.Value)
}

func spikeDate(r *domain.Reading) string {
	if r == nil {
		return "-"
	}
	return r.Date
}

func spikeSlot(r *domain.Reading) string {
	if r == nil {
		return "-"
	}
	return string(r.TimeSlot)
}
