package conversation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepTextForm(t *testing.T) {
	s := New(42)
	s.Step = StepDescription
	s.Category = "🍽️ Kitchen"

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"step":"description"`)

	var decoded Session
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, StepDescription, decoded.Step)
	assert.Equal(t, "🍽️ Kitchen", decoded.Category)
}

func TestStepUnmarshalRejectsUnknown(t *testing.T) {
	var s Step
	assert.Error(t, s.UnmarshalText([]byte("paused")))
}
