package telegram

import (
	"testing"

	"ashram-bot/internal/conversation"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sender() *tgbotapi.User {
	return &tgbotapi.User{ID: 42, FirstName: "Asha", LastName: "Rao"}
}

func message(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: 10,
		From:      sender(),
		Chat:      &tgbotapi.Chat{ID: 420},
		Text:      text,
	}
}

func command(text string, length int) *tgbotapi.Message {
	m := message(text)
	m.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}}
	return m
}

func TestFromUpdateMessages(t *testing.T) {
	photo := message("")
	photo.Caption = "cracked step"
	photo.Photo = []tgbotapi.PhotoSize{
		{FileID: "small", Width: 90, Height: 90},
		{FileID: "medium", Width: 320, Height: 320},
		{FileID: "large", Width: 1280, Height: 1280},
	}

	tests := []struct {
		name string
		msg  *tgbotapi.Message
		want conversation.Event
	}{
		{name: "start", msg: command("/start", 6), want: conversation.Event{Kind: conversation.EventStart}},
		{name: "learn with bot suffix", msg: command("/learn@ashram_bot", 17), want: conversation.Event{Kind: conversation.EventLearn}},
		{name: "unknown command is text", msg: command("/help", 5), want: conversation.TextEvent("/help")},
		{name: "plain text", msg: message("Leaking kitchen sink"), want: conversation.TextEvent("Leaking kitchen sink")},
		{
			name: "largest photo wins",
			msg:  photo,
			want: conversation.PhotoEvent(conversation.Photo{
				FileID:     "large",
				Caption:    "cracked step",
				SenderName: "Asha Rao",
				SenderID:   "42",
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, ok := FromUpdate(tgbotapi.Update{UpdateID: 5, Message: tt.msg})
			require.True(t, ok)
			assert.Equal(t, tt.want, in.Event)
			assert.Equal(t, int64(42), in.UserID)
			assert.Equal(t, int64(420), in.ChatID)
			assert.Equal(t, 5, in.UpdateID)
			assert.False(t, in.IsCallback())
		})
	}
}

func TestFromUpdateCallbacks(t *testing.T) {
	tests := []struct {
		data string
		want conversation.Event
		ok   bool
	}{
		{data: "cat:3", want: conversation.CategoryEvent(3), ok: true},
		{data: "cat:99", want: conversation.CategoryEvent(99), ok: true},
		{data: CallbackSubmit, want: conversation.SubmitEvent(), ok: true},
		{data: CallbackRestart, want: conversation.RestartEvent(), ok: true},
		{data: "cat:x", ok: false},
		{data: "vote:1", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			in, ok := FromUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
				ID:      "cb-1",
				From:    sender(),
				Message: message("📋 Review your submission"),
				Data:    tt.data,
			}})
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				return
			}
			assert.Equal(t, tt.want, in.Event)
			assert.Equal(t, "cb-1", in.CallbackID)
			assert.Equal(t, 10, in.MessageID)
			assert.Equal(t, int64(420), in.ChatID)
			assert.True(t, in.IsCallback())
		})
	}
}

func TestFromUpdateIgnoresOtherUpdates(t *testing.T) {
	sticker := message("")
	sticker.Sticker = &tgbotapi.Sticker{FileID: "s"}

	_, ok := FromUpdate(tgbotapi.Update{Message: sticker})
	assert.False(t, ok)

	_, ok = FromUpdate(tgbotapi.Update{EditedMessage: message("edited")})
	assert.False(t, ok)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Asha Rao", DisplayName(sender()))
	assert.Equal(t, "Asha", DisplayName(&tgbotapi.User{FirstName: "Asha"}))
}
