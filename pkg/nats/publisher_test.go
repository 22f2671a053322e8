package nats

import (
	"context"
	"errors"
	"testing"

	"ashram-bot/pkg/events"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	level   string
	module  string
	message string
	details map[string]interface{}
}

type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) record(level, module, message string, details map[string]interface{}) {
	l.entries = append(l.entries, logEntry{level: level, module: module, message: message, details: details})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message, details)
}

func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message, details)
}

func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message, details)
}

func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message, details)
}

func (l *recordingLogger) Sync() error { return nil }

type fakeStreams struct {
	got jetstream.StreamConfig
	err error
}

func (f *fakeStreams) CreateOrUpdateStream(_ context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error) {
	f.got = cfg
	return nil, f.err
}

func TestSubject(t *testing.T) {
	assert.Equal(t, "events.project_submitted", Subject(events.TypeProjectSubmitted))
}

func TestEnsureStream(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantWarns int
	}{
		{name: "created", err: nil, wantWarns: 0},
		{name: "owned elsewhere", err: errors.New("stream name already in use with a different configuration"), wantWarns: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			streams := &fakeStreams{err: tt.err}
			log := &recordingLogger{}

			ensureStream(context.Background(), streams, log)

			assert.Equal(t, StreamName, streams.got.Name)
			assert.Equal(t, []string{"events.>"}, streams.got.Subjects)
			require.Len(t, log.entries, tt.wantWarns)
			if tt.wantWarns > 0 {
				assert.Equal(t, "warn", log.entries[0].level)
				assert.Equal(t, "NatsPublisher", log.entries[0].module)
				assert.Equal(t, tt.err.Error(), log.entries[0].details["error"])
			}
		})
	}
}
