package telegram

import (
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Callback data of the inline buttons
const (
	CallbackMain        = "main"
	CallbackReferrals   = "referrals"
	CallbackHistory     = "history"
	CallbackSupport     = "support"
	CallbackReinvest    = "reinvest"
	CallbackReinvestYes = "reinvest_yes"
	CallbackReinvestNo  = "reinvest_no"
)

// MainMenu is the navigation keyboard attached to every section
func MainMenu() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("🏠 Main").WithCallbackData(CallbackMain),
			tu.InlineKeyboardButton("👥 Referrals").WithCallbackData(CallbackReferrals),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📋 History").WithCallbackData(CallbackHistory),
			tu.InlineKeyboardButton("❓ Support").WithCallbackData(CallbackSupport),
		),
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("📊 Reinvest").WithCallbackData(CallbackReinvest),
		),
	)
}

// ReinvestConfirm asks the user to confirm moving the available balance
func ReinvestConfirm() *telego.InlineKeyboardMarkup {
	return tu.InlineKeyboard(
		tu.InlineKeyboardRow(
			tu.InlineKeyboardButton("✅ Yes, reinvest").WithCallbackData(CallbackReinvestYes),
			tu.InlineKeyboardButton("❌ Cancel").WithCallbackData(CallbackReinvestNo),
		),
	)
}
