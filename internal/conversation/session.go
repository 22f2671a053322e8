package conversation

import "time"

// Photo is the captured image plus the identity of whoever sent it.
type Photo struct {
	FileID     string `json:"file_id"`
	Caption    string `json:"caption"`
	SenderName string `json:"sender_name"`
	SenderID   string `json:"sender_id"`
}

// Session is the per-user conversation record. It is a value: transitions
// return an updated copy and never mutate the receiver.
type Session struct {
	UserID       int64     `json:"user_id"`
	Step         Step      `json:"step"`
	Photo        Photo     `json:"photo"`
	Category     string    `json:"category,omitempty"`
	Description  string    `json:"description,omitempty"`
	EstimatedUSD int       `json:"estimated_usd"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// New returns an idle session for the user.
func New(userID int64) Session {
	return Session{UserID: userID, Step: StepIdle}
}

func (s Session) HasPhoto() bool {
	return s.Photo.FileID != ""
}

// IsZero reports whether the session carries no state worth storing.
func (s Session) IsZero() bool {
	return s.Step == StepIdle && !s.HasPhoto() && s.Category == "" && s.Description == "" && s.EstimatedUSD == 0
}

func (s Session) withStep(step Step, now time.Time) Session {
	s.Step = step
	s.UpdatedAt = now
	return s
}

// withDraft starts a new project draft; previous draft fields are dropped.
func (s Session) withDraft(photo Photo, now time.Time) Session {
	s.Photo = photo
	s.Category = ""
	s.Description = ""
	s.EstimatedUSD = 0
	return s.withStep(StepCategory, now)
}

func (s Session) withCategory(label string, now time.Time) Session {
	s.Category = label
	return s.withStep(StepDescription, now)
}

func (s Session) withDescription(text string, now time.Time) Session {
	s.Description = text
	return s.withStep(StepPrice, now)
}

func (s Session) withEstimate(usd int, now time.Time) Session {
	s.EstimatedUSD = usd
	return s.withStep(StepConfirm, now)
}
