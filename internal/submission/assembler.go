// Package submission turns a finished conversation into the record the
// website reads.
package submission

import (
	"errors"
	"fmt"

	"ashram-bot/internal/catalog"
	"ashram-bot/internal/conversation"
	"ashram-bot/internal/entity"
)

// TitleLimit bounds the title, counted in runes.
const TitleLimit = 80

var ErrIncompleteSession = errors.New("session is not ready for submission")

// Assemble maps s to a new open project. It has no side effects.
func Assemble(s conversation.Session, photoURL string) (*entity.Project, error) {
	switch {
	case !s.HasPhoto():
		return nil, fmt.Errorf("%w: no photo", ErrIncompleteSession)
	case s.Category == "":
		return nil, fmt.Errorf("%w: no category", ErrIncompleteSession)
	case s.Description == "":
		return nil, fmt.Errorf("%w: no description", ErrIncompleteSession)
	}

	goal := s.EstimatedUSD
	if goal < 0 {
		goal = 0
	}

	return &entity.Project{
		Title:               Title(s.Description),
		Description:         s.Description,
		Category:            catalog.Key(s.Category),
		CategoryLabel:       s.Category,
		GoalUSD:             goal,
		RaisedUSD:           0,
		Status:              entity.ProjectStatusOpen,
		PhotoURL:            photoURL,
		SubmittedBy:         s.Photo.SenderName,
		SubmittedByTelegram: s.Photo.SenderID,
		Phase:               entity.DefaultProjectPhase,
		Priority:            entity.DefaultProjectPriority,
	}, nil
}

// Title cuts a description down to TitleLimit runes.
func Title(description string) string {
	runes := []rune(description)
	if len(runes) <= TitleLimit {
		return description
	}
	return string(runes[:TitleLimit])
}
