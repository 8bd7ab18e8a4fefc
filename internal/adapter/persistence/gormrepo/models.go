// Package gormrepo implements the repository ports on GORM, for PostgreSQL
// and SQLite.
package gormrepo

import "time"

type LineItemModel struct {
	ID          string  `gorm:"primaryKey;size:64"`
	Name        string  `gorm:"size:255;not null"`
	Category    string  `gorm:"size:128;index"`
	Unit        string  `gorm:"size:32;not null"`
	Rate        float64 `gorm:"type:double precision;not null"`
	Description string  `gorm:"type:text"`
}

func (LineItemModel) TableName() string { return "line_items" }

type EstimationTemplateModel struct {
	ID           string `gorm:"primaryKey;size:64"`
	Name         string `gorm:"size:255;not null"`
	Category     string `gorm:"size:128"`
	ItemsCount   int
	LastModified time.Time
	Items        []EstimationTemplateItemModel `gorm:"foreignKey:TemplateID;constraint:OnDelete:CASCADE"`
}

func (EstimationTemplateModel) TableName() string { return "estimation_templates" }

// Item ids are only unique within their template.
type EstimationTemplateItemModel struct {
	ID         string  `gorm:"primaryKey;size:64"`
	TemplateID string  `gorm:"primaryKey;size:64"`
	Position   int     `gorm:"not null"`
	LineItemID string  `gorm:"size:64;not null"`
	Quantity   float64 `gorm:"type:double precision;not null"`
	Notes      string  `gorm:"type:text"`
}

func (EstimationTemplateItemModel) TableName() string { return "estimation_template_items" }

type ProjectEstimationModel struct {
	ID          string  `gorm:"primaryKey;size:64"`
	ProjectID   string  `gorm:"size:64;not null;uniqueIndex:idx_project_estimation_version,priority:1"`
	TemplateID  string  `gorm:"size:64"`
	Name        string  `gorm:"size:255;not null"`
	TotalAmount float64 `gorm:"type:double precision;not null"`
	CreatedDate time.Time
	UpdatedDate time.Time
	IsActive    bool                         `gorm:"not null;default:false"`
	Version     int                          `gorm:"not null;uniqueIndex:idx_project_estimation_version,priority:2"`
	Items       []ProjectEstimationItemModel `gorm:"foreignKey:EstimationID;constraint:OnDelete:CASCADE"`
}

func (ProjectEstimationModel) TableName() string { return "project_estimations" }

type ProjectEstimationItemModel struct {
	ID           string  `gorm:"primaryKey;size:64"`
	EstimationID string  `gorm:"primaryKey;size:64"`
	Position     int     `gorm:"not null"`
	LineItemID   string  `gorm:"size:64;not null"`
	Quantity     float64 `gorm:"type:double precision;not null"`
	Rate         float64 `gorm:"type:double precision;not null"`
	Amount       float64 `gorm:"type:double precision;not null"`
	Notes        string  `gorm:"type:text"`
}

func (ProjectEstimationItemModel) TableName() string { return "project_estimation_items" }

// EstimationSequenceModel is the per-project version counter.
type EstimationSequenceModel struct {
	ProjectID string `gorm:"primaryKey;size:64"`
	Value     int    `gorm:"not null"`
}

func (EstimationSequenceModel) TableName() string { return "estimation_sequences" }

type ProjectModel struct {
	ID              string `gorm:"primaryKey;size:64"`
	Name            string `gorm:"size:255;not null"`
	ClientName      string `gorm:"size:255;not null"`
	ClientAddress   string `gorm:"type:text"`
	ProjectAddress  string `gorm:"type:text"`
	PhoneNumber     string `gorm:"size:32"`
	Email           string `gorm:"size:255"`
	DateCreated     time.Time
	AgreementDate   *time.Time
	ProjectType     string               `gorm:"size:64"`
	NumberOfFloors  int                  `gorm:"not null;default:0"`
	ProjectDuration string               `gorm:"size:64"`
	EstimatedBudget float64              `gorm:"type:decimal(16,2);not null;default:0"`
	Status          string               `gorm:"size:32;index;not null"`
	Timeline        []TimelineEventModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (ProjectModel) TableName() string { return "projects" }

type TimelineEventModel struct {
	ID          string `gorm:"primaryKey;size:64"`
	ProjectID   string `gorm:"primaryKey;size:64"`
	Title       string `gorm:"size:255;not null"`
	Date        time.Time
	Status      string `gorm:"size:32;not null"`
	Description string `gorm:"type:text"`
}

func (TimelineEventModel) TableName() string { return "timeline_events" }

type AgreementModel struct {
	ID              string `gorm:"primaryKey;size:64"`
	Name            string `gorm:"size:255;not null"`
	Type            string `gorm:"size:64"`
	LastModified    time.Time
	TemplateContent string `gorm:"type:text;not null"`
}

func (AgreementModel) TableName() string { return "agreements" }

type PaymentModel struct {
	ID                 string  `gorm:"primaryKey;size:64"`
	ProjectID          string  `gorm:"size:64;index;not null"`
	EstimationID       string  `gorm:"size:64;not null"`
	Amount             float64 `gorm:"type:decimal(16,2);not null"`
	Date               time.Time
	Status             string `gorm:"size:32;not null"`
	ProviderPayloadRaw string `gorm:"type:text"`
}

func (PaymentModel) TableName() string { return "payments" }
