// Package conversation decides, for one user at a time, what the bot does
// next. It performs no I/O: Apply maps the current session and an inbound
// event to the next session, the prompt to show and any side effect the
// caller has to carry out.
package conversation

import (
	"time"

	"ashram-bot/internal/catalog"
)

// Prompt names the outbound message a transition asks for.
type Prompt int

const (
	PromptNone Prompt = iota
	PromptWelcome
	PromptLearn
	PromptCategoryMenu
	PromptDescription
	PromptPrice
	PromptReview
	PromptRestarted
	PromptSendPhoto
	PromptInvalidCategory
	PromptNothingToSubmit
)

// Effect is work outside the state machine that a transition requires.
type Effect int

const (
	EffectNone Effect = iota
	// EffectAnswerQuestion forwards Transition.Question to the knowledge responder.
	EffectAnswerQuestion
	// EffectSubmit persists the session; on success the caller drops it.
	EffectSubmit
)

// Transition is the result of applying one event. Changed is set when
// Session differs from the input and has to be stored again.
type Transition struct {
	Session  Session
	Changed  bool
	Reset    bool
	Prompt   Prompt
	Effect   Effect
	Question string
}

// Apply computes the next transition. It never mutates s.
func Apply(s Session, ev Event, now time.Time) Transition {
	switch ev.Kind {
	case EventStart:
		return stay(s, PromptWelcome)
	case EventLearn:
		return move(s.withStep(StepLearning, now), PromptLearn)
	case EventPhoto:
		return move(s.withDraft(ev.Photo, now), PromptCategoryMenu)
	case EventCategory:
		return selectCategory(s, ev.CategoryIndex, now)
	case EventText:
		return receiveText(s, ev.Text, now)
	case EventSubmit:
		if s.Step != StepConfirm {
			return stay(s, PromptNothingToSubmit)
		}
		return Transition{Session: s, Effect: EffectSubmit}
	case EventRestart:
		return Transition{Session: New(s.UserID), Reset: true, Prompt: PromptRestarted}
	default:
		return stay(s, PromptSendPhoto)
	}
}

func selectCategory(s Session, index int, now time.Time) Transition {
	if !s.HasPhoto() {
		return stay(s, PromptSendPhoto)
	}
	label, err := catalog.Label(index)
	if err != nil {
		return stay(s, PromptInvalidCategory)
	}
	return move(s.withCategory(label, now), PromptDescription)
}

func receiveText(s Session, text string, now time.Time) Transition {
	switch s.Step {
	case StepLearning:
		// Stored again so an active learner keeps the session alive.
		return Transition{
			Session:  s.withStep(StepLearning, now),
			Changed:  true,
			Effect:   EffectAnswerQuestion,
			Question: text,
		}
	case StepDescription:
		return move(s.withDescription(text, now), PromptPrice)
	case StepPrice:
		return move(s.withEstimate(ParsePrice(text), now), PromptReview)
	case StepIdle, StepCategory, StepConfirm:
		return stay(s, PromptSendPhoto)
	default:
		return stay(s, PromptSendPhoto)
	}
}

func stay(s Session, p Prompt) Transition {
	return Transition{Session: s, Prompt: p}
}

func move(s Session, p Prompt) Transition {
	return Transition{Session: s, Changed: true, Prompt: p}
}
