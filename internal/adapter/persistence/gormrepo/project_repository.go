package gormrepo

import (
	"context"
	"errors"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectRepository = (*ProjectRepository)(nil)

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := toProjectModel(p)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		return insertTimeline(tx, m.Timeline)
	})
	if err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	var m ProjectModel
	err := r.db.WithContext(ctx).Preload("Timeline", byDateDesc).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Project{}, nil
	}
	if err != nil {
		return entities.Project{}, err
	}
	return fromProjectModel(m), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]entities.Project, error) {
	var models []ProjectModel
	if err := r.db.WithContext(ctx).Preload("Timeline", byDateDesc).Order("date_created DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(models))
	for _, m := range models {
		out = append(out, fromProjectModel(m))
	}
	return out, nil
}

// Update rewrites the project row and replaces its timeline.
func (r *ProjectRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	m := toProjectModel(p)
	found := true
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&ProjectModel{}).Where("id = ?", p.ID).
			Select("*").Omit("id", clause.Associations).Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			found = false
			return nil
		}
		if err := tx.Where("project_id = ?", p.ID).Delete(&TimelineEventModel{}).Error; err != nil {
			return err
		}
		return insertTimeline(tx, m.Timeline)
	})
	if err != nil || !found {
		return entities.Project{}, err
	}
	return p, nil
}

func byDateDesc(db *gorm.DB) *gorm.DB {
	return db.Order("date DESC")
}

func insertTimeline(tx *gorm.DB, events []TimelineEventModel) error {
	if len(events) == 0 {
		return nil
	}
	return tx.Create(&events).Error
}

func toProjectModel(p entities.Project) ProjectModel {
	events := make([]TimelineEventModel, 0, len(p.Timeline))
	for _, ev := range p.Timeline {
		events = append(events, TimelineEventModel{
			ID:          ev.ID,
			ProjectID:   p.ID,
			Title:       ev.Title,
			Date:        ev.Date,
			Status:      string(ev.Status),
			Description: ev.Description,
		})
	}
	var agreementDate *time.Time
	if !p.AgreementDate.IsZero() {
		d := p.AgreementDate
		agreementDate = &d
	}
	return ProjectModel{
		ID:              p.ID,
		Name:            p.Name,
		ClientName:      p.ClientName,
		ClientAddress:   p.ClientAddress,
		ProjectAddress:  p.ProjectAddress,
		PhoneNumber:     p.PhoneNumber,
		Email:           p.Email,
		DateCreated:     p.DateCreated,
		AgreementDate:   agreementDate,
		ProjectType:     p.ProjectType,
		NumberOfFloors:  p.NumberOfFloors,
		ProjectDuration: p.ProjectDuration,
		EstimatedBudget: p.EstimatedBudget,
		Status:          string(p.Status),
		Timeline:        events,
	}
}

func fromProjectModel(m ProjectModel) entities.Project {
	events := make([]entities.TimelineEvent, 0, len(m.Timeline))
	for _, ev := range m.Timeline {
		events = append(events, entities.TimelineEvent{
			ID:          ev.ID,
			Title:       ev.Title,
			Date:        ev.Date.UTC(),
			Status:      entities.TimelineEventStatus(ev.Status),
			Description: ev.Description,
		})
	}
	entities.SortTimeline(events)
	p := entities.Project{
		ID:              m.ID,
		Name:            m.Name,
		ClientName:      m.ClientName,
		ClientAddress:   m.ClientAddress,
		ProjectAddress:  m.ProjectAddress,
		PhoneNumber:     m.PhoneNumber,
		Email:           m.Email,
		DateCreated:     m.DateCreated.UTC(),
		ProjectType:     m.ProjectType,
		NumberOfFloors:  m.NumberOfFloors,
		ProjectDuration: m.ProjectDuration,
		EstimatedBudget: m.EstimatedBudget,
		Status:          entities.ProjectStatus(m.Status),
		Timeline:        events,
	}
	if m.AgreementDate != nil {
		p.AgreementDate = m.AgreementDate.UTC()
	}
	return p
}
