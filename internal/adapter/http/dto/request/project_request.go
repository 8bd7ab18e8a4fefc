package request

import (
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase"
)

type ProjectRequest struct {
	Name            string     `json:"name" binding:"required"`
	ClientName      string     `json:"clientName" binding:"required"`
	ClientAddress   string     `json:"clientAddress"`
	ProjectAddress  string     `json:"projectAddress"`
	PhoneNumber     string     `json:"phoneNumber"`
	Email           string     `json:"email"`
	AgreementDate   *time.Time `json:"agreementDate"`
	ProjectType     string     `json:"projectType"`
	NumberOfFloors  int        `json:"numberOfFloors"`
	ProjectDuration string     `json:"projectDuration"`
	EstimatedBudget float64    `json:"estimatedBudget"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	p := entities.Project{
		Name:            r.Name,
		ClientName:      r.ClientName,
		ClientAddress:   r.ClientAddress,
		ProjectAddress:  r.ProjectAddress,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		ProjectType:     r.ProjectType,
		NumberOfFloors:  r.NumberOfFloors,
		ProjectDuration: r.ProjectDuration,
		EstimatedBudget: r.EstimatedBudget,
	}
	if r.AgreementDate != nil {
		p.AgreementDate = r.AgreementDate.UTC()
	}
	return p
}

// ProjectPatchRequest carries a partial project update.
type ProjectPatchRequest struct {
	Name            *string    `json:"name"`
	ClientName      *string    `json:"clientName"`
	ClientAddress   *string    `json:"clientAddress"`
	ProjectAddress  *string    `json:"projectAddress"`
	PhoneNumber     *string    `json:"phoneNumber"`
	Email           *string    `json:"email"`
	AgreementDate   *time.Time `json:"agreementDate"`
	ProjectType     *string    `json:"projectType"`
	NumberOfFloors  *int       `json:"numberOfFloors"`
	ProjectDuration *string    `json:"projectDuration"`
	EstimatedBudget *float64   `json:"estimatedBudget"`
	Status          *string    `json:"status"`
}

func (r ProjectPatchRequest) ToPatch() usecase.ProjectPatch {
	patch := usecase.ProjectPatch{
		Name:            r.Name,
		ClientName:      r.ClientName,
		ClientAddress:   r.ClientAddress,
		ProjectAddress:  r.ProjectAddress,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		AgreementDate:   r.AgreementDate,
		ProjectType:     r.ProjectType,
		NumberOfFloors:  r.NumberOfFloors,
		ProjectDuration: r.ProjectDuration,
		EstimatedBudget: r.EstimatedBudget,
	}
	if r.Status != nil {
		s := entities.ProjectStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ClientInfoRequest struct {
	ClientName    string `json:"clientName" binding:"required"`
	ClientAddress string `json:"clientAddress"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
}

func (r ClientInfoRequest) ToClientInfo() usecase.ClientInfo {
	return usecase.ClientInfo{
		ClientName:    r.ClientName,
		ClientAddress: r.ClientAddress,
		PhoneNumber:   r.PhoneNumber,
		Email:         r.Email,
	}
}

type TimelineEventRequest struct {
	Title       string     `json:"title" binding:"required"`
	Date        *time.Time `json:"date"`
	Status      string     `json:"status"`
	Description string     `json:"description"`
}

// ToEntity leaves Date zero when omitted; the registry stamps it.
func (r TimelineEventRequest) ToEntity() entities.TimelineEvent {
	ev := entities.TimelineEvent{
		Title:       r.Title,
		Status:      entities.TimelineEventStatus(r.Status),
		Description: r.Description,
	}
	if r.Date != nil {
		ev.Date = r.Date.UTC()
	}
	return ev
}
