package entity

import "time"

const (
	ProjectStatusOpen = "open"

	DefaultProjectPhase    = 1
	DefaultProjectPriority = 10
)

// Project is one reported ashram project as shown on the website.
type Project struct {
	Id                  int64
	Title               string `validate:"required,max=80"`
	Description         string `validate:"required"`
	Category            string `validate:"required"`
	CategoryLabel       string `validate:"required"`
	GoalUSD             int    `validate:"gte=0"`
	RaisedUSD           int    `validate:"gte=0"`
	Status              string `validate:"required"`
	PhotoURL            string `validate:"required,url"`
	SubmittedBy         string
	SubmittedByTelegram string `validate:"required"`
	Phase               int    `validate:"gte=1"`
	Priority            int
	CreatedAt           time.Time
}
