// Package handler runs the conversation for incoming chat updates.
package handler

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"ashram-bot/internal/constant"
	"ashram-bot/internal/conversation"
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/repository/contract"
	"ashram-bot/internal/service"
	"ashram-bot/internal/telegram"

	"github.com/google/uuid"
)

type BotHandler struct {
	messenger   telegram.Messenger
	sessions    contract.SessionRepository
	knowledge   service.IKnowledgeService
	submissions service.ISubmissionService
	timeout     time.Duration
	now         func() time.Time
	logger      logger.ILogger
}

// NewBotHandler wires the conversation. timeout bounds each call to the
// chat platform.
func NewBotHandler(
	messenger telegram.Messenger,
	sessions contract.SessionRepository,
	knowledge service.IKnowledgeService,
	submissions service.ISubmissionService,
	timeout time.Duration,
	log logger.ILogger,
) *BotHandler {
	return &BotHandler{
		messenger:   messenger,
		sessions:    sessions,
		knowledge:   knowledge,
		submissions: submissions,
		timeout:     timeout,
		now:         time.Now,
		logger:      log,
	}
}

// Handle processes one update end to end. It is safe to call from the
// dispatcher only: two updates for the same user must not overlap.
func (h *BotHandler) Handle(ctx context.Context, in telegram.Inbound) {
	requestID := uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("BotHandler", "Recovered from panic", map[string]interface{}{
				"request_id": requestID,
				"user_id":    in.UserID,
				"panic":      fmt.Sprint(r),
				"stack":      string(debug.Stack()),
			})
		}
	}()

	h.logger.Debug("BotHandler", "Update received", map[string]interface{}{
		"request_id": requestID,
		"update_id":  in.UpdateID,
		"user_id":    in.UserID,
		"event":      in.Event.Kind.String(),
	})

	session, err := h.sessions.Get(ctx, in.UserID)
	if err != nil {
		h.logger.Error("BotHandler", "Failed to load session", map[string]interface{}{
			"request_id": requestID,
			"user_id":    in.UserID,
			"error":      err.Error(),
		})
		h.answerCallback(ctx, in, "")
		return
	}

	tr := conversation.Apply(session, in.Event, h.now())

	if tr.Effect != conversation.EffectSubmit {
		h.answerCallback(ctx, in, "")
	}

	switch {
	case tr.Reset:
		err = h.sessions.Delete(ctx, in.UserID)
	case tr.Changed:
		err = h.sessions.Save(ctx, tr.Session)
	}
	if err != nil {
		h.logger.Error("BotHandler", "Failed to store session", map[string]interface{}{
			"request_id": requestID,
			"user_id":    in.UserID,
			"step":       tr.Session.Step.String(),
			"error":      err.Error(),
		})
	}

	if msg, ok := Render(tr.Prompt, tr.Session); ok {
		h.reply(ctx, in.ChatID, msg)
	}

	switch tr.Effect {
	case conversation.EffectAnswerQuestion:
		h.answer(ctx, in, tr.Question)
	case conversation.EffectSubmit:
		h.submit(ctx, in, tr.Session, requestID)
	case conversation.EffectNone:
	}
}

func (h *BotHandler) answer(ctx context.Context, in telegram.Inbound, question string) {
	h.reply(ctx, in.ChatID, telegram.OutgoingMessage{
		Text:      constant.MsgThinking,
		ParseMode: telegram.ParseModeMarkdown,
	})
	answer := h.knowledge.Ask(ctx, question)
	h.reply(ctx, in.ChatID, telegram.OutgoingMessage{Text: answer})
}

func (h *BotHandler) submit(ctx context.Context, in telegram.Inbound, session conversation.Session, requestID string) {
	h.answerCallback(ctx, in, constant.MsgSubmittingToast)

	project, err := h.submissions.Submit(ctx, session)
	if errors.Is(err, service.ErrSubmissionInFlight) {
		h.reply(ctx, in.ChatID, telegram.OutgoingMessage{Text: constant.MsgSubmissionPending})
		return
	}
	if err != nil {
		h.logger.Warn("BotHandler", "Submission failed, session kept", map[string]interface{}{
			"request_id": requestID,
			"user_id":    in.UserID,
			"error":      err.Error(),
		})
		h.replaceReview(ctx, in, telegram.OutgoingMessage{
			Text:     constant.MsgSubmitFailed(err),
			Keyboard: telegram.ReviewKeyboard(),
		})
		return
	}

	if err := h.sessions.Delete(ctx, in.UserID); err != nil {
		h.logger.Error("BotHandler", "Failed to clear session after submission", map[string]interface{}{
			"request_id": requestID,
			"user_id":    in.UserID,
			"project_id": project.Id,
			"error":      err.Error(),
		})
	}

	h.replaceReview(ctx, in, telegram.OutgoingMessage{
		Text:      constant.MsgSubmitted,
		ParseMode: telegram.ParseModeMarkdown,
	})
}

// replaceReview edits the review card in place, or sends a new message
// when the update did not come from one.
func (h *BotHandler) replaceReview(ctx context.Context, in telegram.Inbound, msg telegram.OutgoingMessage) {
	if in.MessageID == 0 || !in.IsCallback() {
		h.reply(ctx, in.ChatID, msg)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if err := h.messenger.Edit(ctx, in.ChatID, in.MessageID, msg); err != nil {
		h.logger.Warn("BotHandler", "Failed to edit message", map[string]interface{}{
			"chat_id":    in.ChatID,
			"message_id": in.MessageID,
			"error":      err.Error(),
		})
	}
}

func (h *BotHandler) reply(ctx context.Context, chatID int64, msg telegram.OutgoingMessage) {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if _, err := h.messenger.Reply(ctx, chatID, msg); err != nil {
		h.logger.Warn("BotHandler", "Failed to send message", map[string]interface{}{
			"chat_id": chatID,
			"error":   err.Error(),
		})
	}
}

func (h *BotHandler) answerCallback(ctx context.Context, in telegram.Inbound, text string) {
	if !in.IsCallback() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	if err := h.messenger.AnswerCallback(ctx, in.CallbackID, text); err != nil {
		h.logger.Warn("BotHandler", "Failed to answer callback", map[string]interface{}{
			"callback_id": in.CallbackID,
			"error":       err.Error(),
		})
	}
}
