package response

import (
	"time"

	"construction_dashboard/internal/domain/entities"
)

type TimelineEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
}

type ProjectResponse struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	ClientName      string                  `json:"clientName"`
	ClientAddress   string                  `json:"clientAddress"`
	ProjectAddress  string                  `json:"projectAddress"`
	PhoneNumber     string                  `json:"phoneNumber"`
	Email           string                  `json:"email,omitempty"`
	DateCreated     time.Time               `json:"dateCreated"`
	AgreementDate   *time.Time              `json:"agreementDate,omitempty"`
	ProjectType     string                  `json:"projectType"`
	NumberOfFloors  int                     `json:"numberOfFloors"`
	ProjectDuration string                  `json:"projectDuration"`
	EstimatedBudget float64                 `json:"estimatedBudget"`
	Status          string                  `json:"status"`
	Timeline        []TimelineEventResponse `json:"timeline"`
}

func FromTimeline(events []entities.TimelineEvent) []TimelineEventResponse {
	out := make([]TimelineEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, TimelineEventResponse{
			ID:          ev.ID,
			Title:       ev.Title,
			Date:        ev.Date,
			Status:      string(ev.Status),
			Description: ev.Description,
		})
	}
	return out
}

func FromProject(p entities.Project) ProjectResponse {
	res := ProjectResponse{
		ID:              p.ID,
		Name:            p.Name,
		ClientName:      p.ClientName,
		ClientAddress:   p.ClientAddress,
		ProjectAddress:  p.ProjectAddress,
		PhoneNumber:     p.PhoneNumber,
		Email:           p.Email,
		DateCreated:     p.DateCreated,
		ProjectType:     p.ProjectType,
		NumberOfFloors:  p.NumberOfFloors,
		ProjectDuration: p.ProjectDuration,
		EstimatedBudget: p.EstimatedBudget,
		Status:          string(p.Status),
		Timeline:        FromTimeline(p.Timeline),
	}
	if !p.AgreementDate.IsZero() {
		d := p.AgreementDate
		res.AgreementDate = &d
	}
	return res
}

func FromProjects(list []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProject(p))
	}
	return out
}
