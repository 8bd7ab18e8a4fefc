// Package seed loads the reference catalog, a sample project and a standard
// agreement. Records that already exist are skipped, so Run can be repeated.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase"
)

const (
	SampleProjectID   = "PRJ001"
	SampleTemplateID  = "ET001"
	SampleAgreementID = "AGR001"
)

var lineItems = []entities.LineItem{
	{ID: "LI001", Name: "Brick masonry", Category: "Masonry", Unit: "sqft", Rate: 350, Description: "Fly ash brick wall, 230mm"},
	{ID: "LI002", Name: "RCC column", Category: "Structure", Unit: "nos", Rate: 5000, Description: "M25 grade including shuttering"},
	{ID: "LI003", Name: "Vitrified tile flooring", Category: "Finishing", Unit: "sqft", Rate: 120},
	{ID: "LI004", Name: "Interior painting", Category: "Finishing", Unit: "sqft", Rate: 28, Description: "Two coats emulsion over putty"},
	{ID: "LI005", Name: "Electrical wiring", Category: "Services", Unit: "point", Rate: 950},
	{ID: "LI006", Name: "Plumbing", Category: "Services", Unit: "point", Rate: 1800},
}

var template = entities.EstimationTemplate{
	ID:       SampleTemplateID,
	Name:     "Residential",
	Category: "Residential",
	Items: []entities.EstimationTemplateItem{
		{ID: "ETI001", LineItemID: "LI001", Quantity: 100},
		{ID: "ETI002", LineItemID: "LI002", Quantity: 8},
		{ID: "ETI003", LineItemID: "LI003", Quantity: 1200},
		{ID: "ETI004", LineItemID: "LI004", Quantity: 3400},
		{ID: "ETI005", LineItemID: "LI005", Quantity: 45},
		{ID: "ETI006", LineItemID: "LI006", Quantity: 12},
	},
}

var project = entities.Project{
	ID:              SampleProjectID,
	Name:            "Sharma Residence",
	ClientName:      "Rajesh Sharma",
	ClientAddress:   "12 MG Road, Bengaluru",
	ProjectAddress:  "Plot 45, Whitefield, Bengaluru",
	PhoneNumber:     "+91 98450 12345",
	Email:           "rajesh.sharma@example.com",
	AgreementDate:   time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC),
	ProjectType:     "Residential",
	NumberOfFloors:  2,
	ProjectDuration: "12 months",
	EstimatedBudget: 2500000,
}

const agreementContent = `<h1>Construction Agreement</h1>
<p>This agreement is made on {{AGREEMENT_DATE}} between {{CLIENT_NAME}} of {{CLIENT_ADDRESS}}
and the contractor for the construction of {{PROJECT_NAME}}.</p>
<p>The building will have {{NUMBER_OF_FLOORS}} floor(s) and is to be completed within {{PROJECT_DURATION}}.</p>
<p>The estimated budget for the work is {{ESTIMATED_BUDGET}}.</p>
<h2>Schedule of rates</h2>
{{ESTIMATION_TABLE}}`

var agreement = entities.Agreement{
	ID:              SampleAgreementID,
	Name:            "Standard Construction Agreement",
	Type:            "Construction",
	TemplateContent: agreementContent,
}

type UseCases struct {
	Catalog     usecase.ICatalogUseCase
	Projects    usecase.IProjectUseCase
	Estimations usecase.IEstimationUseCase
	Agreements  usecase.IAgreementUseCase
}

func Run(ctx context.Context, uc UseCases) error {
	for _, li := range lineItems {
		if err := ensure("line item", li.ID,
			func() error { _, err := uc.Catalog.GetLineItem(ctx, li.ID); return err },
			func() error { _, err := uc.Catalog.CreateLineItem(ctx, li); return err },
		); err != nil {
			return err
		}
	}
	if err := ensure("template", template.ID,
		func() error { _, err := uc.Catalog.GetTemplate(ctx, template.ID); return err },
		func() error { _, err := uc.Catalog.CreateTemplate(ctx, template); return err },
	); err != nil {
		return err
	}
	if err := ensure("project", project.ID,
		func() error { _, err := uc.Projects.GetProject(ctx, project.ID); return err },
		func() error { _, err := uc.Projects.Create(ctx, project); return err },
	); err != nil {
		return err
	}
	if err := ensure("agreement", agreement.ID,
		func() error { _, err := uc.Agreements.GetByID(ctx, agreement.ID); return err },
		func() error { _, err := uc.Agreements.Create(ctx, agreement); return err },
	); err != nil {
		return err
	}

	existing, err := uc.Estimations.ListByProject(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("seed estimations: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("[seed] estimations present project_id=%s count=%d", project.ID, len(existing))
		return nil
	}
	est, err := uc.Estimations.CreateFromTemplate(ctx, project.ID, template.ID, "")
	if err != nil {
		return fmt.Errorf("seed estimation: %w", err)
	}
	log.Printf("[seed] estimation created estimation_id=%s total=%.2f", est.ID, est.TotalAmount)
	return nil
}

// ensure creates the record when lookup reports it missing.
func ensure(kind, id string, lookup, create func() error) error {
	err := lookup()
	if err == nil {
		log.Printf("[seed] %s exists id=%s", kind, id)
		return nil
	}
	if !errors.Is(err, usecase.ErrNotFound) {
		return fmt.Errorf("seed %s %s: %w", kind, id, err)
	}
	if err := create(); err != nil {
		return fmt.Errorf("seed %s %s: %w", kind, id, err)
	}
	log.Printf("[seed] %s created id=%s", kind, id)
	return nil
}
