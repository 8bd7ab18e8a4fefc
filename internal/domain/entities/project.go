package entities

import (
	"sort"
	"time"
)

// ProjectStatus is the construction lifecycle of a project.
type ProjectStatus string

const (
	ProjectStatusNew               ProjectStatus = "New"
	ProjectStatusUnderConstruction ProjectStatus = "Under Construction"
	ProjectStatusCompleted         ProjectStatus = "Completed"
	ProjectStatusOnHold            ProjectStatus = "On Hold"
	ProjectStatusOpportunityLost   ProjectStatus = "Opportunity Lost"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusNew, ProjectStatusUnderConstruction, ProjectStatusCompleted,
		ProjectStatusOnHold, ProjectStatusOpportunityLost:
		return true
	}
	return false
}

type TimelineEventStatus string

const (
	TimelineEventCompleted  TimelineEventStatus = "completed"
	TimelineEventInProgress TimelineEventStatus = "in-progress"
	TimelineEventPending    TimelineEventStatus = "pending"
)

func (s TimelineEventStatus) Valid() bool {
	switch s {
	case TimelineEventCompleted, TimelineEventInProgress, TimelineEventPending:
		return true
	}
	return false
}

type TimelineEvent struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Date        time.Time           `json:"date"`
	Status      TimelineEventStatus `json:"status"`
	Description string              `json:"description,omitempty"`
}

// Project is a construction job for a client.
//
// Estimations are not embedded: they reference the project by ProjectID and are
// looked up on demand. The timeline is append-only and kept newest first.
type Project struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	ClientName      string          `json:"client_name"`
	ClientAddress   string          `json:"client_address"`
	ProjectAddress  string          `json:"project_address"`
	PhoneNumber     string          `json:"phone_number"`
	Email           string          `json:"email,omitempty"`
	DateCreated     time.Time       `json:"date_created"`
	AgreementDate   time.Time       `json:"agreement_date"`
	ProjectType     string          `json:"project_type"`
	NumberOfFloors  int             `json:"number_of_floors"`
	ProjectDuration string          `json:"project_duration"`
	EstimatedBudget float64         `json:"estimated_budget"`
	Status          ProjectStatus   `json:"status"`
	Timeline        []TimelineEvent `json:"timeline"`
}

// SortTimeline orders events by date descending. Events sharing a date keep
// their insertion order, newest insert first.
func SortTimeline(events []TimelineEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})
}
