package contract

import (
	"context"

	"ashram-bot/internal/entity"
)

// ProjectRepository is the write path for submitted projects. Create fills
// in the id and creation time assigned by the datastore.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
}
