package repository

import (
	"context"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
)

type timelineEventAttr struct {
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Date        string `dynamodbav:"date"`
	Status      string `dynamodbav:"status"`
	Description string `dynamodbav:"description,omitempty"`
}

type projectItem struct {
	ID              string              `dynamodbav:"id"`
	Name            string              `dynamodbav:"name"`
	ClientName      string              `dynamodbav:"client_name"`
	ClientAddress   string              `dynamodbav:"client_address,omitempty"`
	ProjectAddress  string              `dynamodbav:"project_address,omitempty"`
	PhoneNumber     string              `dynamodbav:"phone_number,omitempty"`
	Email           string              `dynamodbav:"email,omitempty"`
	DateCreated     string              `dynamodbav:"date_created"`
	AgreementDate   string              `dynamodbav:"agreement_date,omitempty"`
	ProjectType     string              `dynamodbav:"project_type,omitempty"`
	NumberOfFloors  int                 `dynamodbav:"number_of_floors"`
	ProjectDuration string              `dynamodbav:"project_duration,omitempty"`
	EstimatedBudget string              `dynamodbav:"estimated_budget"`
	Status          string              `dynamodbav:"status"`
	Timeline        []timelineEventAttr `dynamodbav:"timeline"`
}

// ProjectDynamoRepository persists projects with their timeline embedded.
//
// Table requirements:
//   - PK: id (string)
type ProjectDynamoRepository struct {
	t table
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb DynamoAPI, tableName string) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{t: table{ddb: ddb, name: tableName}}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	if err := putNew(ctx, r.t, toProjectItem(p)); err != nil {
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, id string) (entities.Project, error) {
	it, found, err := getItem[projectItem](ctx, r.t, id)
	if err != nil || !found {
		return entities.Project{}, err
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) List(ctx context.Context) ([]entities.Project, error) {
	items, err := scanAll[projectItem](ctx, r.t)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Project, 0, len(items))
	for _, it := range items {
		out = append(out, fromProjectItem(it))
	}
	return out, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	ok, err := replaceExisting(ctx, r.t, toProjectItem(p))
	if err != nil || !ok {
		return entities.Project{}, err
	}
	return p, nil
}

func toProjectItem(p entities.Project) projectItem {
	timeline := make([]timelineEventAttr, 0, len(p.Timeline))
	for _, ev := range p.Timeline {
		timeline = append(timeline, timelineEventAttr{
			ID:          ev.ID,
			Title:       ev.Title,
			Date:        formatTime(ev.Date),
			Status:      string(ev.Status),
			Description: ev.Description,
		})
	}
	return projectItem{
		ID:              p.ID,
		Name:            p.Name,
		ClientName:      p.ClientName,
		ClientAddress:   p.ClientAddress,
		ProjectAddress:  p.ProjectAddress,
		PhoneNumber:     p.PhoneNumber,
		Email:           p.Email,
		DateCreated:     formatTime(p.DateCreated),
		AgreementDate:   formatTime(p.AgreementDate),
		ProjectType:     p.ProjectType,
		NumberOfFloors:  p.NumberOfFloors,
		ProjectDuration: p.ProjectDuration,
		EstimatedBudget: floatToString(p.EstimatedBudget),
		Status:          string(p.Status),
		Timeline:        timeline,
	}
}

func fromProjectItem(it projectItem) entities.Project {
	timeline := make([]entities.TimelineEvent, 0, len(it.Timeline))
	for _, ev := range it.Timeline {
		timeline = append(timeline, entities.TimelineEvent{
			ID:          ev.ID,
			Title:       ev.Title,
			Date:        parseTime(ev.Date),
			Status:      entities.TimelineEventStatus(ev.Status),
			Description: ev.Description,
		})
	}
	return entities.Project{
		ID:              it.ID,
		Name:            it.Name,
		ClientName:      it.ClientName,
		ClientAddress:   it.ClientAddress,
		ProjectAddress:  it.ProjectAddress,
		PhoneNumber:     it.PhoneNumber,
		Email:           it.Email,
		DateCreated:     parseTime(it.DateCreated),
		AgreementDate:   parseTime(it.AgreementDate),
		ProjectType:     it.ProjectType,
		NumberOfFloors:  it.NumberOfFloors,
		ProjectDuration: it.ProjectDuration,
		EstimatedBudget: parseFloat(it.EstimatedBudget),
		Status:          entities.ProjectStatus(it.Status),
		Timeline:        timeline,
	}
}
