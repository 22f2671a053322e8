package telegram

import (
	"testing"

	"ashram-bot/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryKeyboardLayout(t *testing.T) {
	k := CategoryKeyboard()

	require.Len(t, k, 7)
	for _, row := range k[:6] {
		assert.Len(t, row, catalog.ButtonsPerRow)
	}
	assert.Len(t, k[6], 1)

	assert.Equal(t, Button{Text: "🪔 Temple & Altar", Data: "cat:0"}, k[0][0])
	assert.Equal(t, Button{Text: "🍽️ Kitchen", Data: "cat:3"}, k[1][1])
	assert.Equal(t, Button{Text: "🌿 Other", Data: "cat:12"}, k[6][0])
}

func TestInlineMarkup(t *testing.T) {
	markup := inlineMarkup(ReviewKeyboard())

	require.Len(t, markup.InlineKeyboard, 1)
	row := markup.InlineKeyboard[0]
	require.Len(t, row, 2)
	assert.Equal(t, "✅ Yes, submit", row[0].Text)
	require.NotNil(t, row[0].CallbackData)
	assert.Equal(t, CallbackSubmit, *row[0].CallbackData)
	assert.Equal(t, CallbackRestart, *row[1].CallbackData)
}

func TestEscapeMarkdown(t *testing.T) {
	assert.Equal(t, `a\_b \*c\* \[d\]`, EscapeMarkdown("a_b *c* [d]"))
}
