package handler

import (
	"testing"

	"ashram-bot/internal/constant"
	"ashram-bot/internal/conversation"
	"ashram-bot/internal/telegram"

	"github.com/stretchr/testify/assert"
)

func TestFormatCost(t *testing.T) {
	tests := []struct {
		usd  int
		want string
	}{
		{usd: 0, want: constant.MsgUnknownCostLabel},
		{usd: 300, want: "$300"},
		{usd: 1500, want: "$1,500"},
		{usd: 2500000, want: "$2,500,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCost(tt.usd))
	}
}

func TestRenderReviewEscapesUserText(t *testing.T) {
	s := conversation.New(1)
	s.Category = "🔧 Plumbing"
	s.Description = "Replace *all* pipes under_sink"

	msg, ok := Render(conversation.PromptReview, s)

	assert.True(t, ok)
	assert.Contains(t, msg.Text, `Replace \*all\* pipes under\_sink`)
	assert.Contains(t, msg.Text, constant.MsgUnknownCostLabel)
	assert.Equal(t, telegram.ParseModeMarkdown, msg.ParseMode)
	assert.Equal(t, telegram.ReviewKeyboard(), msg.Keyboard)
}

func TestRenderNone(t *testing.T) {
	_, ok := Render(conversation.PromptNone, conversation.New(1))
	assert.False(t, ok)
}
