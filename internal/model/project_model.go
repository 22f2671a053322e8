package model

import "time"

// Project mirrors the ashram_projects table. The JSON names are the column
// names, so the same struct is the PostgREST request body.
type Project struct {
	Id                  int64     `gorm:"primaryKey;autoIncrement" json:"id,omitzero"`
	Title               string    `gorm:"type:varchar(80);not null" json:"title"`
	Description         string    `gorm:"type:text;not null" json:"description"`
	Category            string    `gorm:"type:varchar(64);not null;index" json:"category"`
	CategoryLabel       string    `gorm:"type:varchar(128);not null" json:"category_label"`
	GoalUSD             int       `gorm:"column:goal_usd;not null;default:0" json:"goal_usd"`
	RaisedUSD           int       `gorm:"column:raised_usd;not null;default:0" json:"raised_usd"`
	Status              string    `gorm:"type:varchar(32);not null;index" json:"status"`
	PhotoURL            string    `gorm:"column:photo_url;type:text" json:"photo_url"`
	SubmittedBy         string    `gorm:"type:varchar(255)" json:"submitted_by"`
	SubmittedByTelegram string    `gorm:"column:submitted_by_telegram;type:varchar(64)" json:"submitted_by_telegram"`
	Phase               int       `gorm:"not null" json:"phase"`
	Priority            int       `gorm:"not null" json:"priority"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at,omitzero"`
}

func (Project) TableName() string {
	return "ashram_projects"
}
