package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ashram-bot/internal/constant"
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/pkg/llm"
)

// IKnowledgeService answers questions in learning mode. Ask never fails:
// problems come back as text the user can read.
type IKnowledgeService interface {
	Ask(ctx context.Context, question string) string
}

type knowledgeService struct {
	provider  llm.LLMProvider
	persona   string
	maxTokens int
	timeout   time.Duration
	logger    logger.ILogger
}

func NewKnowledgeService(provider llm.LLMProvider, maxTokens int, timeout time.Duration, log logger.ILogger) IKnowledgeService {
	return &knowledgeService{
		provider:  provider,
		persona:   constant.TeachingsPersona,
		maxTokens: maxTokens,
		timeout:   timeout,
		logger:    log,
	}
}

func (s *knowledgeService) Ask(ctx context.Context, question string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	started := time.Now()
	answer, err := s.provider.Generate(ctx, question,
		llm.WithSystem(s.persona),
		llm.WithMaxTokens(s.maxTokens),
	)
	if errors.Is(err, llm.ErrEmptyResponse) || (err == nil && strings.TrimSpace(answer) == "") {
		s.logger.Warn("KnowledgeService", "Empty answer from LLM", map[string]interface{}{
			"question_len": len(question),
		})
		return constant.MsgNoAnswer
	}
	if err != nil {
		s.logger.Error("KnowledgeService", "LLM request failed", map[string]interface{}{
			"error":       err.Error(),
			"duration_ms": time.Since(started).Milliseconds(),
		})
		return constant.MsgAnswerFailed(err)
	}

	s.logger.Info("KnowledgeService", "Question answered", map[string]interface{}{
		"question_len": len(question),
		"answer_len":   len(answer),
		"duration_ms":  time.Since(started).Milliseconds(),
	})
	return answer
}
