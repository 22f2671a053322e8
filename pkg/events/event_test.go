package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectSubmitted(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	e := ProjectSubmitted(SubmittedProject{
		ID:                  17,
		Title:               "Leaking kitchen sink",
		Category:            "kitchen",
		CategoryLabel:       "🍽️ Kitchen",
		GoalUSD:             300,
		SubmittedByTelegram: "42",
	}, at)

	var _ Event = e
	assert.Equal(t, TypeProjectSubmitted, e.EventType())
	assert.Equal(t, at, e.Timestamp())
	assert.Equal(t, "17", e.Payload()["project_id"])
	assert.Equal(t, "🍽️ Kitchen", e.Payload()["category_label"])
	assert.Equal(t, 300, e.Payload()["goal_usd"])
	assert.Equal(t, "42", e.Payload()["submitted_by_telegram"])
}
