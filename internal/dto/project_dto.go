package dto

import "time"

// ProjectEventMessage is the payload carried on the in-process event bus.
type ProjectEventMessage struct {
	Type       string                 `json:"type"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Bot    string `json:"bot"`
}
