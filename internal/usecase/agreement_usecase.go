package usecase

//go:generate mockgen -source=agreement_usecase.go -destination=../adapter/http/handlers/mocks/agreement_usecase_mock.go -package=mocks

import (
	"context"
	"fmt"
	"html"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"
	"construction_dashboard/internal/usecase/merge"

	"github.com/google/uuid"
)

// AgreementPreview is a template rendered against sample data.
type AgreementPreview struct {
	HTML          string
	BudgetInWords string
}

// IAgreementUseCase manages agreement templates and merges them with project data.
type IAgreementUseCase interface {
	Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	GetByID(ctx context.Context, id string) (entities.Agreement, error)
	List(ctx context.Context) ([]entities.Agreement, error)
	Update(ctx context.Context, a entities.Agreement) (entities.Agreement, error)
	Delete(ctx context.Context, id string) error

	Generate(ctx context.Context, projectID, agreementID string) (string, error)
	Print(ctx context.Context, projectID, agreementID string) (string, error)
	Preview(ctx context.Context, agreementID string) (AgreementPreview, error)
}

type AgreementUseCase struct {
	repo        interfaces.IAgreementRepository
	projects    interfaces.IProjectRegistry
	estimations interfaces.IProjectEstimationRepository
	lineItems   interfaces.ILineItemRepository
	formatter   merge.Formatter
	now         func() time.Time
}

var _ IAgreementUseCase = (*AgreementUseCase)(nil)

func NewAgreementUseCase(
	repo interfaces.IAgreementRepository,
	projects interfaces.IProjectRegistry,
	estimations interfaces.IProjectEstimationRepository,
	lineItems interfaces.ILineItemRepository,
	formatter merge.Formatter,
) *AgreementUseCase {
	return &AgreementUseCase{
		repo:        repo,
		projects:    projects,
		estimations: estimations,
		lineItems:   lineItems,
		formatter:   formatter,
		now:         utcNow,
	}
}

func (u *AgreementUseCase) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	a = normalizeAgreement(a)
	if err := validateAgreement(a); err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.LastModified = u.now()

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Agreement{}, err
	}
	log.Printf("[agreement][usecase] created agreement_id=%s type=%s", created.ID, created.Type)
	return created, nil
}

func (u *AgreementUseCase) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Agreement{}, ErrInvalidID
	}
	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Agreement{}, err
	}
	if a.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return a, nil
}

func (u *AgreementUseCase) List(ctx context.Context) ([]entities.Agreement, error) {
	list, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (u *AgreementUseCase) Update(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	a = normalizeAgreement(a)
	if a.ID == "" {
		return entities.Agreement{}, ErrInvalidID
	}
	if err := validateAgreement(a); err != nil {
		return entities.Agreement{}, err
	}
	a.LastModified = u.now()

	updated, err := u.repo.Update(ctx, a)
	if err != nil {
		return entities.Agreement{}, err
	}
	if updated.ID == "" {
		return entities.Agreement{}, ErrAgreementNotFound
	}
	return updated, nil
}

func (u *AgreementUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAgreementNotFound
	}
	return nil
}

// Generate merges the agreement template with the project and its active
// estimation. The merge itself reads only; the one side effect is the
// "Agreement generated" timeline event.
func (u *AgreementUseCase) Generate(ctx context.Context, projectID, agreementID string) (string, error) {
	out, agreement, err := u.render(ctx, projectID, agreementID)
	if err != nil {
		return "", err
	}

	_, err = u.projects.AppendTimelineEvent(ctx, strings.TrimSpace(projectID), entities.TimelineEvent{
		Title:       "Agreement generated",
		Status:      entities.TimelineEventCompleted,
		Description: fmt.Sprintf("Agreement %q generated", agreement.Name),
	})
	if err != nil {
		log.Printf("[agreement][usecase] timeline append failed project_id=%s err=%v", projectID, err)
	}
	log.Printf("[agreement][usecase] generated project_id=%s agreement_id=%s html_len=%d", projectID, agreementID, len(out))
	return out, nil
}

// Print wraps the merged agreement in a standalone printable document. It does
// not touch the timeline.
func (u *AgreementUseCase) Print(ctx context.Context, projectID, agreementID string) (string, error) {
	out, agreement, err := u.render(ctx, projectID, agreementID)
	if err != nil {
		return "", err
	}
	return printableDocument(agreement.Name, out), nil
}

// Preview renders the template against sample project data, so authors can
// check their placeholders before any project exists.
func (u *AgreementUseCase) Preview(ctx context.Context, agreementID string) (AgreementPreview, error) {
	agreement, err := u.GetByID(ctx, agreementID)
	if err != nil {
		return AgreementPreview{}, err
	}
	sample := sampleProject(u.now())
	out := merge.Render(merge.Input{Project: sample, Template: agreement.TemplateContent}, u.formatter)
	return AgreementPreview{
		HTML:          out,
		BudgetInWords: merge.NumberToWords(int64(math.Floor(sample.EstimatedBudget))),
	}, nil
}

func (u *AgreementUseCase) render(ctx context.Context, projectID, agreementID string) (string, entities.Agreement, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return "", entities.Agreement{}, ErrInvalidID
	}
	project, err := u.projects.GetProject(ctx, projectID)
	if err != nil {
		return "", entities.Agreement{}, err
	}
	agreement, err := u.GetByID(ctx, agreementID)
	if err != nil {
		return "", entities.Agreement{}, err
	}

	estimations, err := u.estimations.ListByProjectID(ctx, projectID)
	if err != nil {
		return "", entities.Agreement{}, err
	}
	in := merge.Input{Project: project, Template: agreement.TemplateContent}
	if active, ok := findActive(estimations); ok {
		lineItems := make(map[string]entities.LineItem, len(active.Items))
		for _, it := range active.Items {
			if _, seen := lineItems[it.LineItemID]; seen {
				continue
			}
			li, err := u.lineItems.GetByID(ctx, it.LineItemID)
			if err != nil {
				return "", entities.Agreement{}, err
			}
			if li.ID == "" {
				log.Printf("[agreement][usecase] line item missing project_id=%s line_item_id=%s", projectID, it.LineItemID)
				return "", entities.Agreement{}, ErrLineItemNotFound
			}
			lineItems[li.ID] = li
		}
		in.Active = &active
		in.LineItems = lineItems
	}

	return merge.Render(in, u.formatter), agreement, nil
}

func printableDocument(title, body string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n<style>\n")
	b.WriteString("body { font-family: serif; margin: 2cm; }\n")
	b.WriteString("table { width: 100%; border-collapse: collapse; }\n")
	b.WriteString("td, th { border: 1px solid #444; padding: 4px; }\n")
	b.WriteString("@media print { body { margin: 0; } }\n")
	b.WriteString("</style>\n</head>\n<body onload=\"window.print()\">\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

func sampleProject(now time.Time) entities.Project {
	return entities.Project{
		ID:              "SAMPLE",
		Name:            "Sample Residence",
		ClientName:      "Sample Client",
		ClientAddress:   "12 MG Road, Bengaluru",
		ProjectAddress:  "Plot 7, Whitefield, Bengaluru",
		AgreementDate:   now,
		ProjectType:     "Residential",
		NumberOfFloors:  2,
		ProjectDuration: "12 months",
		EstimatedBudget: 2500000,
		Status:          entities.ProjectStatusNew,
	}
}

func normalizeAgreement(a entities.Agreement) entities.Agreement {
	a.ID = strings.TrimSpace(a.ID)
	a.Name = strings.TrimSpace(a.Name)
	a.Type = strings.TrimSpace(a.Type)
	return a
}

func validateAgreement(a entities.Agreement) error {
	if a.Name == "" {
		return ErrInvalidName
	}
	if strings.TrimSpace(a.TemplateContent) == "" {
		return ErrInvalidContent
	}
	return nil
}
