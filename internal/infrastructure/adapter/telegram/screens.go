package telegram

import (
	"context"
	"errors"
	"strconv"

	"github.com/mymmrac/telego"

	errs "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/error"
	coreport "github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/core"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

// reply is one outgoing message
type reply struct {
	text   string
	markup *telego.InlineKeyboardMarkup
}

func (b *Bot) startScreen(ctx context.Context, req usecase.RegisterRequest) []reply {
	user, err := b.ledger.Register(ctx, req)
	if err != nil {
		return []reply{b.errorReply(ctx, "register", req.UserID, err)}
	}
	return []reply{
		{text: b.renderer.Welcome(user.ID)},
		{text: MenuPromptText, markup: MainMenu()},
	}
}

func (b *Bot) sectionScreen(ctx context.Context, userID int64, section string) reply {
	switch section {
	case CallbackMain:
		dashboard, err := b.ledger.GetDashboard(ctx, userID)
		if err != nil {
			return b.errorReply(ctx, "dashboard", userID, err)
		}
		return reply{text: b.renderer.Dashboard(dashboard), markup: MainMenu()}
	case CallbackReferrals:
		stats, err := b.ledger.GetReferralStats(ctx, userID)
		if err != nil {
			return b.errorReply(ctx, "referrals", userID, err)
		}
		return reply{text: b.renderer.Referrals(userID, stats), markup: MainMenu()}
	case CallbackHistory:
		entries, err := b.ledger.GetHistory(ctx, userID, b.historyLimit)
		if err != nil {
			return b.errorReply(ctx, "history", userID, err)
		}
		return reply{text: b.renderer.History(entries), markup: MainMenu()}
	default:
		return reply{text: b.renderer.Support(), markup: MainMenu()}
	}
}

func (b *Bot) reinvestPrompt(ctx context.Context, userID int64) reply {
	dashboard, err := b.ledger.GetDashboard(ctx, userID)
	if err != nil {
		return b.errorReply(ctx, "reinvest prompt", userID, err)
	}
	if !dashboard.Available.IsPositive() {
		return reply{text: NoFundsText, markup: MainMenu()}
	}
	return reply{text: b.renderer.ReinvestConfirm(dashboard.Available), markup: ReinvestConfirm()}
}

func (b *Bot) reinvestScreen(ctx context.Context, userID int64) reply {
	result, err := b.ledger.Reinvest(ctx, userID)
	if err != nil {
		if errs.IsInsufficientFundsError(err) {
			return reply{text: NoFundsText, markup: MainMenu()}
		}
		return b.errorReply(ctx, "reinvest", userID, err)
	}
	return reply{text: b.renderer.ReinvestDone(result), markup: MainMenu()}
}

func (b *Bot) adminScreen(callerID int64) reply {
	if !b.adminGate.IsAdmin(callerID) {
		return reply{text: AccessDeniedText}
	}
	return reply{text: b.renderer.AdminPanel()}
}

// The admin command screens return false when the caller is not an admin; such commands get no answer

func (b *Bot) statsScreen(ctx context.Context, callerID int64) (reply, bool) {
	stats, err := b.ledger.GetLedgerStats(ctx, callerID)
	if errs.IsUnauthorizedError(err) {
		return reply{}, false
	}
	if err != nil {
		return b.errorReply(ctx, "stats", callerID, err), true
	}
	return reply{text: b.renderer.Stats(stats)}, true
}

func (b *Bot) dailyScreen(ctx context.Context, callerID int64) (reply, bool) {
	result, err := b.ledger.AccrueDailyProfit(ctx, callerID)
	if errs.IsUnauthorizedError(err) {
		return reply{}, false
	}
	if err != nil {
		return b.errorReply(ctx, "daily", callerID, err), true
	}
	return reply{text: b.renderer.Accrual(result)}, true
}

func (b *Bot) userInfoScreen(ctx context.Context, callerID int64, args []string) (reply, bool) {
	if !b.adminGate.IsAdmin(callerID) {
		return reply{}, false
	}
	if len(args) != 1 {
		return reply{text: UserUsageText}, true
	}
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || userID <= 0 {
		return reply{text: UserUsageText}, true
	}

	info, err := b.ledger.GetUserInfo(ctx, callerID, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return reply{text: UserNotFoundText}, true
		}
		return b.errorReply(ctx, "user info", callerID, err), true
	}
	return reply{text: b.renderer.UserInfo(info)}, true
}

func (b *Bot) errorReply(ctx context.Context, operation string, userID int64, err error) reply {
	fields := map[string]any{
		"operation":     operation,
		"userId":        userID,
		"correlationId": coreport.CorrelationID(ctx),
		"error":         err.Error(),
	}

	switch {
	case errs.IsUserNotFoundError(err):
		b.logger.Debug("Update from unregistered user", fields)
		return reply{text: NotRegisteredText}
	case errors.Is(err, errs.ErrAccrualInProgress):
		b.logger.Info("Accrual already running", fields)
		return reply{text: AccrualBusyText}
	default:
		b.logger.Error("Failed to handle update", fields)
		return reply{text: GenericErrorText}
	}
}
