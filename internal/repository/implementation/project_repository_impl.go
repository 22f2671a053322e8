package implementation

import (
	"context"

	"ashram-bot/internal/entity"
	"ashram-bot/internal/mapper"
	"ashram-bot/internal/repository/contract"

	"gorm.io/gorm"
)

// ProjectRepositoryImpl writes projects straight into Postgres. It is used
// when a connection string for the Supabase database is configured.
type ProjectRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) contract.ProjectRepository {
	return &ProjectRepositoryImpl{
		db:     db,
		mapper: mapper.NewProjectMapper(),
	}
}

func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *entity.Project) error {
	m := r.mapper.ToModel(project)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*project = *r.mapper.ToEntity(m)
	return nil
}
