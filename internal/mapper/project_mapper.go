package mapper

import (
	"ashram-bot/internal/entity"
	"ashram-bot/internal/model"
)

type ProjectMapper struct{}

func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

func (m *ProjectMapper) ToEntity(p *model.Project) *entity.Project {
	if p == nil {
		return nil
	}
	return &entity.Project{
		Id:                  p.Id,
		Title:               p.Title,
		Description:         p.Description,
		Category:            p.Category,
		CategoryLabel:       p.CategoryLabel,
		GoalUSD:             p.GoalUSD,
		RaisedUSD:           p.RaisedUSD,
		Status:              p.Status,
		PhotoURL:            p.PhotoURL,
		SubmittedBy:         p.SubmittedBy,
		SubmittedByTelegram: p.SubmittedByTelegram,
		Phase:               p.Phase,
		Priority:            p.Priority,
		CreatedAt:           p.CreatedAt,
	}
}

func (m *ProjectMapper) ToModel(p *entity.Project) *model.Project {
	if p == nil {
		return nil
	}
	return &model.Project{
		Id:                  p.Id,
		Title:               p.Title,
		Description:         p.Description,
		Category:            p.Category,
		CategoryLabel:       p.CategoryLabel,
		GoalUSD:             p.GoalUSD,
		RaisedUSD:           p.RaisedUSD,
		Status:              p.Status,
		PhotoURL:            p.PhotoURL,
		SubmittedBy:         p.SubmittedBy,
		SubmittedByTelegram: p.SubmittedByTelegram,
		Phase:               p.Phase,
		Priority:            p.Priority,
		CreatedAt:           p.CreatedAt,
	}
}
