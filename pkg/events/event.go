// Package events carries notifications about stored projects from the bot
// to the website.
package events

import (
	"strconv"
	"time"
)

const TypeProjectSubmitted = "PROJECT_SUBMITTED"

// Event is what travels on the in-process topic and on NATS.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is an Event decoded from the wire or built by a constructor
// below.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// SubmittedProject is the part of a stored project the website needs to
// list it before its next sync.
type SubmittedProject struct {
	ID                  int64
	Title               string
	Category            string
	CategoryLabel       string
	GoalUSD             int
	PhotoURL            string
	SubmittedBy         string
	SubmittedByTelegram string
}

// ProjectSubmitted is raised once a project row has been stored. The id is
// sent as a string so it survives JSON consumers that read numbers as floats.
func ProjectSubmitted(p SubmittedProject, at time.Time) BaseEvent {
	return BaseEvent{
		Type: TypeProjectSubmitted,
		Data: map[string]interface{}{
			"project_id":            strconv.FormatInt(p.ID, 10),
			"title":                 p.Title,
			"category":              p.Category,
			"category_label":        p.CategoryLabel,
			"goal_usd":              p.GoalUSD,
			"photo_url":             p.PhotoURL,
			"submitted_by":          p.SubmittedBy,
			"submitted_by_telegram": p.SubmittedByTelegram,
		},
		OccurredAt: at,
	}
}
