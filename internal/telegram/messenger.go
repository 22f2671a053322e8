// Package telegram adapts the Telegram Bot API to the conversation: it turns
// updates into conversation events and sends the bot's replies.
package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	ParseModeNone       = ""
	ParseModeMarkdown   = tgbotapi.ModeMarkdown
	ParseModeMarkdownV2 = tgbotapi.ModeMarkdownV2
)

// Button is one inline keyboard button with its callback token.
type Button struct {
	Text string
	Data string
}

// Keyboard is a grid of buttons, one slice per row.
type Keyboard [][]Button

type OutgoingMessage struct {
	Text      string
	ParseMode string
	Keyboard  Keyboard
}

// Messenger is everything the bot needs from the chat platform.
type Messenger interface {
	// Reply sends a new message and returns its id.
	Reply(ctx context.Context, chatID int64, msg OutgoingMessage) (int, error)
	// Edit replaces the text of a message the bot sent earlier.
	Edit(ctx context.Context, chatID int64, messageID int, msg OutgoingMessage) error
	// AnswerCallback acknowledges a button press, optionally with a toast.
	AnswerCallback(ctx context.Context, callbackID, text string) error
	// FileURL resolves an uploaded file to a downloadable URL.
	FileURL(ctx context.Context, fileID string) (string, error)
	// Identity is the bot's @username.
	Identity() string
}

// EscapeMarkdown makes user text safe inside a legacy Markdown message.
func EscapeMarkdown(text string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, text)
}

func inlineMarkup(k Keyboard) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(k))
	for _, row := range k {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(b.Text, b.Data))
		}
		rows = append(rows, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
