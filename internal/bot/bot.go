package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/glucoach/glucoach/internal/domain"
	apperrors "github.com/glucoach/glucoach/internal/errors"
	"github.com/glucoach/glucoach/internal/glucose"
	"github.com/glucoach/glucoach/internal/logger"
)

const errorReply = "요청을 처리하지 못했습니다. 잠시 후 다시 시도해 주세요."

// Bot is a thin Telegram command interface over the same services the
// HTTP API uses. It only answers commands; there is no conversation
// state.
type Bot struct {
	api     *tgbotapi.BotAPI
	summary domain.SummaryService
	coach   domain.CoachService
	errs    *apperrors.Handler
}

func NewBot(token string, summary domain.SummaryService, coach domain.CoachService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	logger.Info("bot authorized", "account", api.Self.UserName)
	return &Bot{
		api:     api,
		summary: summary,
		coach:   coach,
		errs:    apperrors.NewHandler(logger.GetLogger()),
	}, nil
}

// Start long-polls for updates until the context is canceled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || !update.Message.IsCommand() {
				continue
			}
			b.handleCommand(ctx, update.Message)
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	var reply string

	switch msg.Command() {
	case "start", "help":
		reply = "혈당 코치 봇입니다.\n/avg - 지난 7일 요약\n/report - AI 주간 리포트"
	case "avg":
		summary, err := b.summary.Weekly(ctx)
		if err != nil {
			b.errs.Handle(ctx, err)
			reply = errorReply
			break
		}
		reply = fmt.Sprintf("지난 7일 평균 혈당: %d mg/dL\n기록 수: %d\n최대 상승폭: %d",
			summary.Avg, len(summary.Items), summary.Spike.Delta)
		if n := len(summary.Items); n > 0 {
			last := summary.Items[n-1]
			band := glucose.Classify(last.Value, last.MealState)
			reply += fmt.Sprintf("\n최근 기록: %d mg/dL (%s, %.1f mmol/L)",
				last.Value, band, glucose.ToDisplay(last.Value))
		}
	case "report":
		report, err := b.coach.WeeklyReport(ctx)
		if err != nil {
			b.errs.Handle(ctx, err)
			reply = errorReply
			break
		}
		reply = report.Message
	default:
		return
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		logger.Error("failed to send reply", "error", err)
	}
}
