package telegram

import (
	"strconv"
	"strings"

	"ashram-bot/internal/catalog"
	"ashram-bot/internal/conversation"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	CallbackSubmit  = "submit"
	CallbackRestart = "restart"
)

// Inbound is one update reduced to who sent it, where to answer and what
// happened.
type Inbound struct {
	UpdateID   int
	UserID     int64
	ChatID     int64
	MessageID  int
	CallbackID string
	Event      conversation.Event
}

// IsCallback reports whether the update came from an inline button.
func (in Inbound) IsCallback() bool {
	return in.CallbackID != ""
}

// FromUpdate converts the updates the bot reacts to. Anything else
// (stickers, edits, unknown buttons) reports false.
func FromUpdate(u tgbotapi.Update) (Inbound, bool) {
	switch {
	case u.Message != nil:
		return fromMessage(u.UpdateID, u.Message)
	case u.CallbackQuery != nil:
		return fromCallback(u.UpdateID, u.CallbackQuery)
	default:
		return Inbound{}, false
	}
}

func fromMessage(updateID int, m *tgbotapi.Message) (Inbound, bool) {
	if m.From == nil || m.Chat == nil {
		return Inbound{}, false
	}
	in := Inbound{
		UpdateID:  updateID,
		UserID:    m.From.ID,
		ChatID:    m.Chat.ID,
		MessageID: m.MessageID,
	}

	switch {
	case m.IsCommand():
		in.Event = conversation.CommandEvent(m.Command(), m.Text)
	case len(m.Photo) > 0:
		largest := m.Photo[len(m.Photo)-1]
		in.Event = conversation.PhotoEvent(conversation.Photo{
			FileID:     largest.FileID,
			Caption:    m.Caption,
			SenderName: DisplayName(m.From),
			SenderID:   strconv.FormatInt(m.From.ID, 10),
		})
	case m.Text != "":
		in.Event = conversation.TextEvent(m.Text)
	default:
		return Inbound{}, false
	}
	return in, true
}

func fromCallback(updateID int, q *tgbotapi.CallbackQuery) (Inbound, bool) {
	if q.From == nil {
		return Inbound{}, false
	}
	in := Inbound{
		UpdateID:   updateID,
		UserID:     q.From.ID,
		ChatID:     q.From.ID,
		CallbackID: q.ID,
	}
	if q.Message != nil {
		in.MessageID = q.Message.MessageID
		if q.Message.Chat != nil {
			in.ChatID = q.Message.Chat.ID
		}
	}

	switch q.Data {
	case CallbackSubmit:
		in.Event = conversation.SubmitEvent()
	case CallbackRestart:
		in.Event = conversation.RestartEvent()
	default:
		index, ok := catalog.ParseCallback(q.Data)
		if !ok {
			return Inbound{}, false
		}
		in.Event = conversation.CategoryEvent(index)
	}
	return in, true
}

// DisplayName is "First Last", or just the first name.
func DisplayName(u *tgbotapi.User) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
