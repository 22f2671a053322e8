package handler

import (
	"ashram-bot/internal/constant"
	"ashram-bot/internal/conversation"
	"ashram-bot/internal/telegram"

	"github.com/dustin/go-humanize"
)

// Render builds the message for a prompt. User supplied text is escaped
// before it is placed inside Markdown.
func Render(p conversation.Prompt, s conversation.Session) (telegram.OutgoingMessage, bool) {
	switch p {
	case conversation.PromptWelcome:
		return telegram.OutgoingMessage{Text: constant.MsgWelcome, ParseMode: telegram.ParseModeMarkdownV2}, true
	case conversation.PromptLearn:
		return telegram.OutgoingMessage{Text: constant.MsgLearn, ParseMode: telegram.ParseModeMarkdown}, true
	case conversation.PromptCategoryMenu:
		return telegram.OutgoingMessage{Text: constant.MsgCategoryMenu, Keyboard: telegram.CategoryKeyboard()}, true
	case conversation.PromptDescription:
		return telegram.OutgoingMessage{
			Text:      constant.MsgDescription(telegram.EscapeMarkdown(s.Category)),
			ParseMode: telegram.ParseModeMarkdown,
		}, true
	case conversation.PromptPrice:
		return telegram.OutgoingMessage{Text: constant.MsgPrice, ParseMode: telegram.ParseModeMarkdown}, true
	case conversation.PromptReview:
		return telegram.OutgoingMessage{
			Text: constant.MsgReview(
				telegram.EscapeMarkdown(s.Category),
				telegram.EscapeMarkdown(s.Description),
				FormatCost(s.EstimatedUSD),
			),
			ParseMode: telegram.ParseModeMarkdown,
			Keyboard:  telegram.ReviewKeyboard(),
		}, true
	case conversation.PromptRestarted:
		return telegram.OutgoingMessage{Text: constant.MsgRestarted}, true
	case conversation.PromptSendPhoto:
		return telegram.OutgoingMessage{Text: constant.MsgSendPhoto}, true
	case conversation.PromptInvalidCategory:
		return telegram.OutgoingMessage{Text: constant.MsgInvalidCategory}, true
	case conversation.PromptNothingToSubmit:
		return telegram.OutgoingMessage{Text: constant.MsgNothingToSubmit}, true
	default:
		return telegram.OutgoingMessage{}, false
	}
}

// FormatCost shows 0 as unknown and everything else as whole dollars.
func FormatCost(usd int) string {
	if usd <= 0 {
		return constant.MsgUnknownCostLabel
	}
	return "$" + humanize.Comma(int64(usd))
}
