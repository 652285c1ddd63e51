package telegram

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/entity"
	"github.com/amirhossein-jamali/invest-ledger-bot/internal/domain/port/usecase"
)

const dateLayout = "02.01.2006"

// Fixed texts
const (
	MenuPromptText        = "👇 *Choose a section:*"
	NoFundsText           = "❌ *There are no funds on the available balance*"
	ReinvestCancelledText = "❌ *Reinvestment cancelled*"
	AccessDeniedText      = "⛔ You have no access to the admin panel"
	AccrualBusyText       = "⏳ A daily accrual run is already in progress"
	UserUsageText         = "Usage: /user <id>"
	UserNotFoundText      = "❌ User not found"
	NotRegisteredText     = "Send /start to register first"
	GenericErrorText      = "⚠️ Something went wrong. Please try again later"
)

var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

// EscapeMarkdown escapes user-provided text for Telegram's legacy Markdown mode
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// Renderer builds every bot message from ledger data; it performs no I/O
type Renderer struct {
	BotUsername    string
	SupportContact string
	LockDays       int
	Level1Rate     decimal.Decimal
	Level2Rate     decimal.Decimal
}

// ReferralLink is the deep link that registers a new user under userID
func (r Renderer) ReferralLink(userID int64) string {
	return fmt.Sprintf("https://t.me/%s?start=%d", r.BotUsername, userID)
}

func (r Renderer) Welcome(userID int64) string {
	return fmt.Sprintf(
		"🎯 *Welcome to Invest Ledger!*\n\n"+
			"💰 *Automated trading balance*\n"+
			"👥 *Referral program: %s + %s*\n\n"+
			"👤 Your ID: `%d`\n"+
			"🔗 Invite link: `%s`",
		percent(r.Level1Rate), percent(r.Level2Rate), userID, r.ReferralLink(userID),
	)
}

func (r Renderer) Dashboard(d *usecase.Dashboard) string {
	return fmt.Sprintf(
		"🏠 *Main menu*\n\n"+
			"👤 Your ID: `%d`\n"+
			"💼 *Available balance:* `%s`\n"+
			"📈 *Trading balance:* `%s`\n"+
			"🎯 *Total earned:* `%s`\n"+
			"⏳ *Days until unlock:* %d\n\n"+
			"*Available balance* can be withdrawn at once\n"+
			"*Trading balance* unlocks after %d days",
		d.UserID, money(d.Available), money(d.Trading), money(d.TotalEarned), d.DaysUntilUnlock, r.LockDays,
	)
}

func (r Renderer) Referrals(userID int64, s *usecase.ReferralStats) string {
	return fmt.Sprintf(
		"👥 *Referral program*\n\n"+
			"🔗 *Your referral link:*\n`%s`\n\n"+
			"💰 *Rates:*\n"+
			"• Level 1: *%s* of each deposit\n"+
			"• Level 2: *%s* of each deposit\n\n"+
			"📊 *Statistics:*\n"+
			"• Level 1 referrals: *%d*\n"+
			"• Level 2 referrals: *%d*\n"+
			"• Earned from referrals: *%s*",
		r.ReferralLink(userID), percent(r.Level1Rate), percent(r.Level2Rate),
		s.Level1Count, s.Level2Count, money(s.TotalEarned),
	)
}

// History lists entries in the order given, one block per transaction
func (r Renderer) History(entries []usecase.HistoryEntry) string {
	if len(entries) == 0 {
		return "📭 *You have no operations yet*"
	}

	var b strings.Builder
	b.WriteString("📋 *Operation history*\n\n")
	for _, e := range entries {
		tx := e.Transaction
		sign := ""
		if tx.Amount.IsPositive() {
			sign = "+"
		}
		fmt.Fprintf(&b, "%s *%s*: %s\n`%s%s`\n\n",
			e.Category.Icon, tx.CreatedAt.Format(dateLayout), EscapeMarkdown(tx.Description), sign, money(tx.Amount))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r Renderer) Support() string {
	contact := "the administrator"
	if r.SupportContact != "" {
		contact = EscapeMarkdown(r.SupportContact)
	}
	return fmt.Sprintf(
		"❓ *Support*\n\n"+
			"📞 *Contact:* %s\n\n"+
			"*When can I withdraw?*\n"+
			"→ Available balance: immediately\n"+
			"→ Trading balance: after %d days\n\n"+
			"*How does the referral program work?*\n"+
			"→ %s of every level 1 referral deposit\n"+
			"→ %s of every level 2 referral deposit",
		contact, r.LockDays, percent(r.Level1Rate), percent(r.Level2Rate),
	)
}

func (r Renderer) ReinvestConfirm(amount decimal.Decimal) string {
	return fmt.Sprintf(
		"⚠️ *Confirm reinvestment*\n\n"+
			"Amount: *%s*\n\n"+
			"After reinvesting, the money moves to the trading balance, "+
			"stays locked for %d days and earns the daily profit.\n\n"+
			"Are you sure?",
		money(amount), r.LockDays,
	)
}

func (r Renderer) ReinvestDone(result *usecase.ReinvestResult) string {
	return fmt.Sprintf(
		"✅ *Reinvested successfully!*\n\n"+
			"Amount: *%s*\n"+
			"📅 Unlock date: *%s*",
		money(result.Amount), result.UnlockAt.Format(dateLayout),
	)
}

func (r Renderer) AdminPanel() string {
	return "👨‍💻 *Admin panel*\n\n" +
		"*Commands:*\n" +
		"• /stats - ledger statistics\n" +
		"• /user <id> - user info\n" +
		"• /daily - accrue the daily profit"
}

func (r Renderer) Stats(s *usecase.LedgerStats) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"📊 *Ledger statistics*\n\n"+
			"👥 Total users: *%d*\n"+
			"💰 Total balance: *%s*\n"+
			"📈 Invested: *%s*\n\n"+
			"📝 *Latest registrations:*\n",
		s.TotalUsers, money(s.TotalBalance), money(s.TotalInvested),
	)
	for _, u := range s.RecentUsers {
		fmt.Fprintf(&b, "• ID: `%d` | %s | %s\n", u.ID, usernameOf(u), u.RegisteredAt.Format(dateLayout))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r Renderer) Accrual(result *usecase.AccrualResult) string {
	text := fmt.Sprintf(
		"✅ *Daily profit accrued*\n\n"+
			"Total: *%s*\n"+
			"Users: *%d*",
		money(result.TotalAccrued), result.UsersAffected,
	)
	if len(result.FailedUserIDs) > 0 {
		ids := make([]string, 0, len(result.FailedUserIDs))
		for _, id := range result.FailedUserIDs {
			ids = append(ids, fmt.Sprintf("`%d`", id))
		}
		text += "\n⚠️ Failed: " + strings.Join(ids, ", ")
	}
	return text
}

func (r Renderer) UserInfo(info *usecase.UserInfo) string {
	u := info.User
	referrer := "none"
	if u.ReferrerID != nil {
		referrer = fmt.Sprintf("`%d`", *u.ReferrerID)
	}
	return fmt.Sprintf(
		"👤 *User* `%d`\n\n"+
			"Name: %s\n"+
			"Username: %s\n"+
			"Registered: %s\n"+
			"Referrer: %s\n\n"+
			"💼 Available: `%s`\n"+
			"📈 Trading: `%s`\n"+
			"🎯 Total earned: `%s`\n"+
			"⏳ Days until unlock: %d\n\n"+
			"👥 Referrals: %d / %d, earned %s",
		u.ID, EscapeMarkdown(u.FirstName), usernameOf(u), u.RegisteredAt.Format(dateLayout), referrer,
		money(info.Dashboard.Available), money(info.Dashboard.Trading), money(info.Dashboard.TotalEarned),
		info.Dashboard.DaysUntilUnlock,
		info.Referrals.Level1Count, info.Referrals.Level2Count, money(info.Referrals.TotalEarned),
	)
}

func usernameOf(u *entity.User) string {
	if u.Username == "" {
		return "no username"
	}
	return "@" + EscapeMarkdown(u.Username)
}

func money(amount decimal.Decimal) string {
	return "$" + entity.FormatAmount(amount)
}

func percent(rate decimal.Decimal) string {
	return rate.Shift(2).String() + "%"
}
