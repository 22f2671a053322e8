package service

import (
	"context"
	"encoding/json"
	"time"

	"ashram-bot/internal/dto"
	"ashram-bot/internal/entity"
	"ashram-bot/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishProjectSubmitted(ctx context.Context, project *entity.Project) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (ps *publisherService) PublishProjectSubmitted(ctx context.Context, project *entity.Project) error {
	event := events.ProjectSubmitted(events.SubmittedProject{
		ID:                  project.Id,
		Title:               project.Title,
		Category:            project.Category,
		CategoryLabel:       project.CategoryLabel,
		GoalUSD:             project.GoalUSD,
		PhotoURL:            project.PhotoURL,
		SubmittedBy:         project.SubmittedBy,
		SubmittedByTelegram: project.SubmittedByTelegram,
	}, time.Now().UTC())

	raw, err := json.Marshal(dto.ProjectEventMessage{
		Type:       event.EventType(),
		OccurredAt: event.Timestamp(),
		Data:       event.Payload(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), raw)
	msg.SetContext(ctx)
	return ps.publisher.Publish(ps.topicName, msg)
}
