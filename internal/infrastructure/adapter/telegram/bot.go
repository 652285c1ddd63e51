package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	tu "github.com/mymmrac/telego/telegoutil"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/auth"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// Config holds the Telegram front end settings
type Config struct {
	Token          string
	PollTimeout    time.Duration
	SupportContact string
	HistoryLimit   int
	LockDays       int
	Level1Rate     decimal.Decimal
	Level2Rate     decimal.Decimal
}

// Bot is the Telegram front end of the ledger
type Bot struct {
	api          *telego.Bot
	ledger       usecase.LedgerUseCase
	adminGate    auth.AdminGate
	logger       coreport.Logger
	renderer     Renderer
	pollTimeout  time.Duration
	historyLimit int
}

// NewBot creates the bot client; nothing is sent to Telegram until Run
func NewBot(cfg Config, ledger usecase.LedgerUseCase, adminGate auth.AdminGate, logger coreport.Logger) (*Bot, error) {
	api, err := telego.NewBot(cfg.Token, telego.WithLogger(newTelegoLogger(logger, cfg.Token)))
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return newBot(api, cfg, ledger, adminGate, logger), nil
}

func newBot(api *telego.Bot, cfg Config, ledger usecase.LedgerUseCase, adminGate auth.AdminGate, logger coreport.Logger) *Bot {
	return &Bot{
		api:       api,
		ledger:    ledger,
		adminGate: adminGate,
		logger:    logger,
		renderer: Renderer{
			SupportContact: cfg.SupportContact,
			LockDays:       cfg.LockDays,
			Level1Rate:     cfg.Level1Rate,
			Level2Rate:     cfg.Level2Rate,
		},
		pollTimeout:  cfg.PollTimeout,
		historyLimit: cfg.HistoryLimit,
	}
}

// Run long-polls Telegram and blocks until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	me, err := b.api.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bot info: %w", err)
	}
	b.renderer.BotUsername = me.Username

	updates, err := b.api.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: int(b.pollTimeout / time.Second),
	})
	if err != nil {
		return fmt.Errorf("failed to start long polling: %w", err)
	}

	handler, err := th.NewBotHandler(b.api, updates)
	if err != nil {
		return fmt.Errorf("failed to create update handler: %w", err)
	}
	b.registerHandlers(handler)

	b.logger.Info("Telegram bot started", map[string]any{
		"username": me.Username,
	})

	// Returns once the updates channel is closed by ctx cancellation
	return handler.Start()
}

func (b *Bot) registerHandlers(h *th.BotHandler) {
	h.Handle(b.onStart, th.CommandEqual("start"))
	h.Handle(b.onAdmin, th.CommandEqual("admin"))
	h.Handle(b.onStats, th.CommandEqual("stats"))
	h.Handle(b.onDaily, th.CommandEqual("daily"))
	h.Handle(b.onUser, th.CommandEqual("user"))

	h.Handle(b.onSection, th.Or(
		th.CallbackDataEqual(CallbackMain),
		th.CallbackDataEqual(CallbackReferrals),
		th.CallbackDataEqual(CallbackHistory),
		th.CallbackDataEqual(CallbackSupport),
	))
	h.Handle(b.onReinvestPrompt, th.CallbackDataEqual(CallbackReinvest))
	h.Handle(b.onReinvestYes, th.CallbackDataEqual(CallbackReinvestYes))
	h.Handle(b.onReinvestNo, th.CallbackDataEqual(CallbackReinvestNo))

	// Stale buttons from older menus
	h.Handle(b.answerOnly, th.AnyCallbackQuery())
}

func (b *Bot) onStart(ctx *th.Context, update telego.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}

	reqCtx := b.requestContext(ctx)
	token := ""
	if args := commandArgs(msg.Text); len(args) > 0 {
		token = args[0]
	}

	firstName := msg.From.FirstName
	if firstName == "" {
		firstName = entity.DefaultFirstName
	}

	for _, r := range b.startScreen(reqCtx, usecase.RegisterRequest{
		UserID:        msg.From.ID,
		Username:      msg.From.Username,
		FirstName:     firstName,
		ReferrerToken: token,
	}) {
		b.send(reqCtx, msg.Chat.ID, r)
	}
	return nil
}

func (b *Bot) onAdmin(ctx *th.Context, update telego.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	b.send(b.requestContext(ctx), msg.Chat.ID, b.adminScreen(msg.From.ID))
	return nil
}

func (b *Bot) onStats(ctx *th.Context, update telego.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	reqCtx := b.requestContext(ctx)
	if r, ok := b.statsScreen(reqCtx, msg.From.ID); ok {
		b.send(reqCtx, msg.Chat.ID, r)
	}
	return nil
}

func (b *Bot) onDaily(ctx *th.Context, update telego.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	reqCtx := b.requestContext(ctx)
	if r, ok := b.dailyScreen(reqCtx, msg.From.ID); ok {
		b.send(reqCtx, msg.Chat.ID, r)
	}
	return nil
}

func (b *Bot) onUser(ctx *th.Context, update telego.Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return nil
	}
	reqCtx := b.requestContext(ctx)
	if r, ok := b.userInfoScreen(reqCtx, msg.From.ID, commandArgs(msg.Text)); ok {
		b.send(reqCtx, msg.Chat.ID, r)
	}
	return nil
}

func (b *Bot) onSection(ctx *th.Context, update telego.Update) error {
	query := update.CallbackQuery
	reqCtx := b.requestContext(ctx)
	b.send(reqCtx, query.From.ID, b.sectionScreen(reqCtx, query.From.ID, query.Data))
	b.answer(reqCtx, query.ID)
	return nil
}

func (b *Bot) onReinvestPrompt(ctx *th.Context, update telego.Update) error {
	query := update.CallbackQuery
	reqCtx := b.requestContext(ctx)
	b.send(reqCtx, query.From.ID, b.reinvestPrompt(reqCtx, query.From.ID))
	b.answer(reqCtx, query.ID)
	return nil
}

func (b *Bot) onReinvestYes(ctx *th.Context, update telego.Update) error {
	query := update.CallbackQuery
	reqCtx := b.requestContext(ctx)
	b.send(reqCtx, query.From.ID, b.reinvestScreen(reqCtx, query.From.ID))
	b.answer(reqCtx, query.ID)
	return nil
}

func (b *Bot) onReinvestNo(ctx *th.Context, update telego.Update) error {
	query := update.CallbackQuery
	reqCtx := b.requestContext(ctx)
	b.send(reqCtx, query.From.ID, reply{text: ReinvestCancelledText, markup: MainMenu()})
	b.answer(reqCtx, query.ID)
	return nil
}

func (b *Bot) answerOnly(ctx *th.Context, update telego.Update) error {
	b.answer(b.requestContext(ctx), update.CallbackQuery.ID)
	return nil
}

// requestContext tags the update with a fresh correlation id
func (b *Bot) requestContext(ctx *th.Context) context.Context {
	return coreport.WithCorrelationID(ctx.Context(), uuid.NewString())
}

func (b *Bot) send(ctx context.Context, chatID int64, r reply) {
	params := tu.Message(tu.ID(chatID), r.text).WithParseMode(telego.ModeMarkdown)
	if r.markup != nil {
		params = params.WithReplyMarkup(r.markup)
	}

	if _, err := b.api.SendMessage(ctx, params); err != nil {
		b.logger.Warn("Failed to send message", map[string]any{
			"chatId":        chatID,
			"correlationId": coreport.CorrelationID(ctx),
			"error":         err.Error(),
		})
	}
}

func (b *Bot) answer(ctx context.Context, callbackID string) {
	if err := b.api.AnswerCallbackQuery(ctx, tu.CallbackQuery(callbackID)); err != nil {
		b.logger.Debug("Failed to answer callback query", map[string]any{
			"correlationId": coreport.CorrelationID(ctx),
			"error":         err.Error(),
		})
	}
}

// commandArgs returns the words after the command itself
func commandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil
	}
	return fields[1:]
}
