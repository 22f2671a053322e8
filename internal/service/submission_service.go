package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"ashram-bot/internal/conversation"
	"ashram-bot/internal/entity"
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/repository/contract"
	"ashram-bot/internal/submission"

	"github.com/go-playground/validator/v10"
	"github.com/patrickmn/go-cache"
)

// ErrSubmissionInFlight means the same user already has a submission
// waiting on the datastore.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// FileResolver turns an uploaded photo id into a public URL.
type FileResolver interface {
	FileURL(ctx context.Context, fileID string) (string, error)
}

type ISubmissionService interface {
	Submit(ctx context.Context, session conversation.Session) (*entity.Project, error)
}

type SubmissionTimeouts struct {
	Files     time.Duration
	Datastore time.Duration
}

type submissionService struct {
	files     FileResolver
	repo      contract.ProjectRepository
	publisher IPublisherService
	validate  *validator.Validate
	inFlight  *cache.Cache
	timeouts  SubmissionTimeouts
	logger    logger.ILogger
}

// NewSubmissionService wires the write path. publisher may be nil.
func NewSubmissionService(
	files FileResolver,
	repo contract.ProjectRepository,
	publisher IPublisherService,
	timeouts SubmissionTimeouts,
	log logger.ILogger,
) ISubmissionService {
	// An entry outlives a stuck call by at most this long.
	guardTTL := timeouts.Files + timeouts.Datastore + time.Minute
	return &submissionService{
		files:     files,
		repo:      repo,
		publisher: publisher,
		validate:  validator.New(),
		inFlight:  cache.New(guardTTL, 2*guardTTL),
		timeouts:  timeouts,
		logger:    log,
	}
}

func (s *submissionService) Submit(ctx context.Context, session conversation.Session) (*entity.Project, error) {
	key := strconv.FormatInt(session.UserID, 10)
	if err := s.inFlight.Add(key, struct{}{}, cache.DefaultExpiration); err != nil {
		return nil, ErrSubmissionInFlight
	}
	defer s.inFlight.Delete(key)

	if !session.HasPhoto() {
		return nil, fmt.Errorf("%w: no photo", submission.ErrIncompleteSession)
	}

	photoURL, err := s.resolvePhoto(ctx, session.Photo.FileID)
	if err != nil {
		return nil, err
	}

	project, err := submission.Assemble(session, photoURL)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(project); err != nil {
		return nil, fmt.Errorf("invalid project: %w", err)
	}

	if err := s.create(ctx, project); err != nil {
		s.logger.Error("SubmissionService", "Failed to save project", map[string]interface{}{
			"user_id": session.UserID,
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("SubmissionService", "Project submitted", map[string]interface{}{
		"user_id":    session.UserID,
		"project_id": project.Id,
		"category":   project.Category,
		"goal_usd":   project.GoalUSD,
	})

	if s.publisher != nil {
		if err := s.publisher.PublishProjectSubmitted(context.WithoutCancel(ctx), project); err != nil {
			s.logger.Warn("SubmissionService", "Failed to publish project event", map[string]interface{}{
				"project_id": project.Id,
				"error":      err.Error(),
			})
		}
	}

	return project, nil
}

func (s *submissionService) resolvePhoto(ctx context.Context, fileID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeouts.Files)
	defer cancel()
	return s.files.FileURL(ctx, fileID)
}

func (s *submissionService) create(ctx context.Context, project *entity.Project) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeouts.Datastore)
	defer cancel()
	return s.repo.Create(ctx, project)
}
