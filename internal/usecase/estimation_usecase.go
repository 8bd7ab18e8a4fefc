package usecase

//go:generate mockgen -source=estimation_usecase.go -destination=../adapter/http/handlers/mocks/estimation_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ItemUpdate is a partial estimation item update. Nil fields keep their
// current value before the amount is recomputed.
type ItemUpdate struct {
	Quantity *float64
	Rate     *float64
	Notes    *string
}

// IEstimationUseCase manages the versioned estimations of a project.
//
// All mutations of a project's estimations are serialized per project id and
// keep these invariants:
//   - at most one active estimation per project, exactly one when any exist
//   - versions strictly increase and are never reused
//   - every item amount is quantity * rate and the total is their sum
type IEstimationUseCase interface {
	CreateFromTemplate(ctx context.Context, projectID, templateID, name string) (entities.ProjectEstimation, error)
	GetByID(ctx context.Context, id string) (entities.ProjectEstimation, error)
	ListByProject(ctx context.Context, projectID string) ([]entities.ProjectEstimation, error)
	GetActive(ctx context.Context, projectID string) (entities.ProjectEstimation, error)
	AddItem(ctx context.Context, estimationID, lineItemID string, quantity float64, notes string) (entities.ProjectEstimation, error)
	UpdateItem(ctx context.Context, estimationID, itemID string, upd ItemUpdate) (entities.ProjectEstimation, error)
	DeleteItem(ctx context.Context, estimationID, itemID string) (entities.ProjectEstimation, error)
	SetActive(ctx context.Context, projectID, estimationID string) (bool, error)
	Duplicate(ctx context.Context, estimationID, newName string) (entities.ProjectEstimation, error)
	DeleteEstimation(ctx context.Context, estimationID string) (bool, error)
}

type EstimationUseCase struct {
	repo      interfaces.IProjectEstimationRepository
	lineItems interfaces.ILineItemRepository
	templates interfaces.IEstimationTemplateRepository
	projects  interfaces.IProjectRegistry
	locks     *keyedMutex
	now       func() time.Time
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(
	repo interfaces.IProjectEstimationRepository,
	lineItems interfaces.ILineItemRepository,
	templates interfaces.IEstimationTemplateRepository,
	projects interfaces.IProjectRegistry,
) *EstimationUseCase {
	return &EstimationUseCase{
		repo:      repo,
		lineItems: lineItems,
		templates: templates,
		projects:  projects,
		locks:     newKeyedMutex(),
		now:       utcNow,
	}
}

// CreateFromTemplate copies the template items into a new active estimation,
// capturing each line item's current rate. A line item missing from the
// catalog is kept with rate 0 so catalog drift never blocks estimating.
func (u *EstimationUseCase) CreateFromTemplate(ctx context.Context, projectID, templateID, name string) (entities.ProjectEstimation, error) {
	projectID = strings.TrimSpace(projectID)
	templateID = strings.TrimSpace(templateID)
	name = strings.TrimSpace(name)
	if projectID == "" || templateID == "" {
		return entities.ProjectEstimation{}, ErrInvalidID
	}
	log.Printf("[estimation][usecase] create start project_id=%s template_id=%s", projectID, templateID)

	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return entities.ProjectEstimation{}, err
	}
	tpl, err := u.templates.GetByID(ctx, templateID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	if tpl.ID == "" {
		return entities.ProjectEstimation{}, ErrTemplateNotFound
	}

	items := make([]entities.ProjectEstimationItem, 0, len(tpl.Items))
	for _, ti := range tpl.Items {
		li, err := u.lineItems.GetByID(ctx, ti.LineItemID)
		if err != nil {
			return entities.ProjectEstimation{}, err
		}
		if li.ID == "" {
			log.Printf("[estimation][usecase] line item missing, using rate 0 template_id=%s line_item_id=%s", templateID, ti.LineItemID)
		}
		items = append(items, entities.ProjectEstimationItem{
			ID:         uuid.NewString(),
			LineItemID: ti.LineItemID,
			Quantity:   ti.Quantity,
			Rate:       li.Rate,
			Notes:      ti.Notes,
		})
	}

	unlock := u.locks.Lock(projectID)
	defer unlock()

	version, err := u.repo.NextVersion(ctx, projectID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	if name == "" {
		name = fmt.Sprintf("%s v%d", tpl.Name, version)
	}

	now := u.now()
	e := entities.ProjectEstimation{
		ID:          uuid.NewString(),
		ProjectID:   projectID,
		TemplateID:  tpl.ID,
		Name:        name,
		CreatedDate: now,
		UpdatedDate: now,
		IsActive:    true,
		Version:     version,
		Items:       items,
	}
	e.Recalculate()

	created, err := u.repo.CreateActive(ctx, e)
	if err != nil {
		return entities.ProjectEstimation{}, storeError(err, projectID)
	}
	u.recordEvent(ctx, projectID, "Estimation created", fmt.Sprintf("%s (v%d) created from template %s", created.Name, created.Version, tpl.Name))

	log.Printf("[estimation][usecase] create success project_id=%s estimation_id=%s version=%d total=%.2f", projectID, created.ID, created.Version, created.TotalAmount)
	return created, nil
}

func (u *EstimationUseCase) GetByID(ctx context.Context, id string) (entities.ProjectEstimation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ProjectEstimation{}, ErrInvalidID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	if e.ID == "" {
		return entities.ProjectEstimation{}, ErrEstimationNotFound
	}
	return e, nil
}

// ListByProject returns the project's estimations, highest version first.
func (u *EstimationUseCase) ListByProject(ctx context.Context, projectID string) ([]entities.ProjectEstimation, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, ErrInvalidID
	}
	if _, err := u.projects.GetProject(ctx, projectID); err != nil {
		return nil, err
	}
	list, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Version > list[j].Version })
	return list, nil
}

func (u *EstimationUseCase) GetActive(ctx context.Context, projectID string) (entities.ProjectEstimation, error) {
	list, err := u.ListByProject(ctx, projectID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	active, ok := findActive(list)
	if !ok {
		return entities.ProjectEstimation{}, ErrEstimationNotFound
	}
	return active, nil
}

func (u *EstimationUseCase) AddItem(ctx context.Context, estimationID, lineItemID string, quantity float64, notes string) (entities.ProjectEstimation, error) {
	lineItemID = strings.TrimSpace(lineItemID)
	if lineItemID == "" {
		return entities.ProjectEstimation{}, ErrInvalidID
	}
	if quantity <= 0 {
		return entities.ProjectEstimation{}, ErrInvalidQuantity
	}
	li, err := u.lineItems.GetByID(ctx, lineItemID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	if li.ID == "" {
		return entities.ProjectEstimation{}, ErrLineItemNotFound
	}

	return u.mutateEstimation(ctx, estimationID, func(e *entities.ProjectEstimation) error {
		e.Items = append(e.Items, entities.ProjectEstimationItem{
			ID:         uuid.NewString(),
			LineItemID: li.ID,
			Quantity:   quantity,
			Rate:       li.Rate,
			Notes:      strings.TrimSpace(notes),
		})
		return nil
	})
}

// UpdateItem merges upd onto the item and recomputes its amount and the
// estimation total, even when only the notes changed.
func (u *EstimationUseCase) UpdateItem(ctx context.Context, estimationID, itemID string, upd ItemUpdate) (entities.ProjectEstimation, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ProjectEstimation{}, ErrInvalidID
	}
	if (upd.Quantity != nil && *upd.Quantity < 0) || (upd.Rate != nil && *upd.Rate < 0) {
		return entities.ProjectEstimation{}, ErrNegativeValue
	}

	return u.mutateEstimation(ctx, estimationID, func(e *entities.ProjectEstimation) error {
		idx := e.FindItem(itemID)
		if idx < 0 {
			return ErrEstimationItemNotFound
		}
		it := &e.Items[idx]
		if upd.Quantity != nil {
			it.Quantity = *upd.Quantity
		}
		if upd.Rate != nil {
			it.Rate = *upd.Rate
		}
		if upd.Notes != nil {
			it.Notes = strings.TrimSpace(*upd.Notes)
		}
		return nil
	})
}

// DeleteItem removes an item. An estimation may end up with no items.
func (u *EstimationUseCase) DeleteItem(ctx context.Context, estimationID, itemID string) (entities.ProjectEstimation, error) {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.ProjectEstimation{}, ErrInvalidID
	}

	return u.mutateEstimation(ctx, estimationID, func(e *entities.ProjectEstimation) error {
		idx := e.FindItem(itemID)
		if idx < 0 {
			return ErrEstimationItemNotFound
		}
		e.Items = append(e.Items[:idx], e.Items[idx+1:]...)
		return nil
	})
}

// SetActive makes estimationID the project's only active estimation. An id
// that does not belong to the project is a no-op reported as false, so UI
// toggles stay idempotent.
func (u *EstimationUseCase) SetActive(ctx context.Context, projectID, estimationID string) (bool, error) {
	projectID = strings.TrimSpace(projectID)
	estimationID = strings.TrimSpace(estimationID)
	if projectID == "" {
		return false, ErrInvalidID
	}
	if estimationID == "" {
		return false, nil
	}

	unlock := u.locks.Lock(projectID)
	defer unlock()

	list, err := u.repo.ListByProjectID(ctx, projectID)
	if err != nil {
		return false, err
	}
	var target *entities.ProjectEstimation
	activeCount := 0
	for i := range list {
		if list[i].ID == estimationID {
			target = &list[i]
		}
		if list[i].IsActive {
			activeCount++
		}
	}
	if target == nil {
		log.Printf("[estimation][usecase] set-active no-op project_id=%s estimation_id=%s", projectID, estimationID)
		return false, nil
	}
	if target.IsActive && activeCount == 1 {
		return true, nil
	}

	if err := u.repo.SetActive(ctx, projectID, estimationID); err != nil {
		return false, storeError(err, projectID)
	}
	u.recordEvent(ctx, projectID, "Active estimation changed", fmt.Sprintf("%s (v%d) is now active", target.Name, target.Version))
	log.Printf("[estimation][usecase] set-active success project_id=%s estimation_id=%s", projectID, estimationID)
	return true, nil
}

// Duplicate copies an estimation under the next version with fresh item ids
// and makes the copy active. Template and total are carried over.
func (u *EstimationUseCase) Duplicate(ctx context.Context, estimationID, newName string) (entities.ProjectEstimation, error) {
	src, unlock, err := u.lockEstimation(ctx, estimationID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	defer unlock()

	version, err := u.repo.NextVersion(ctx, src.ProjectID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		newName = src.Name + " (Copy)"
	}

	now := u.now()
	dup := src.Clone()
	dup.ID = uuid.NewString()
	dup.Name = newName
	dup.Version = version
	dup.IsActive = true
	dup.CreatedDate = now
	dup.UpdatedDate = now
	for i := range dup.Items {
		dup.Items[i].ID = uuid.NewString()
	}

	created, err := u.repo.CreateActive(ctx, dup)
	if err != nil {
		return entities.ProjectEstimation{}, storeError(err, src.ProjectID)
	}
	u.recordEvent(ctx, src.ProjectID, "Estimation duplicated", fmt.Sprintf("%s (v%d) copied from %s (v%d)", created.Name, created.Version, src.Name, src.Version))
	return created, nil
}

// DeleteEstimation removes an estimation. The last estimation of a project is
// never deleted; when the active one goes, the most recent survivor takes over.
func (u *EstimationUseCase) DeleteEstimation(ctx context.Context, estimationID string) (bool, error) {
	target, unlock, err := u.lockEstimation(ctx, estimationID)
	if err != nil {
		return false, err
	}
	defer unlock()

	siblings, err := u.repo.ListByProjectID(ctx, target.ProjectID)
	if err != nil {
		return false, err
	}
	if len(siblings) <= 1 {
		log.Printf("[estimation][usecase] delete rejected, last estimation project_id=%s estimation_id=%s", target.ProjectID, target.ID)
		return false, ErrLastEstimation
	}

	promoteID := ""
	if target.IsActive || !hasOtherActive(siblings, target.ID) {
		promoteID = reactivateMostRecent(siblings, target.ID)
	}
	if err := u.repo.Delete(ctx, target.ID, promoteID); err != nil {
		return false, storeError(err, target.ProjectID)
	}
	u.recordEvent(ctx, target.ProjectID, "Estimation deleted", fmt.Sprintf("%s (v%d) deleted", target.Name, target.Version))
	log.Printf("[estimation][usecase] delete success project_id=%s estimation_id=%s promoted=%s", target.ProjectID, target.ID, promoteID)
	return true, nil
}

// mutateEstimation applies fn to the stored estimation under the project lock,
// recomputes amounts and persists it. Nothing is written when fn fails.
func (u *EstimationUseCase) mutateEstimation(ctx context.Context, estimationID string, fn func(e *entities.ProjectEstimation) error) (entities.ProjectEstimation, error) {
	e, unlock, err := u.lockEstimation(ctx, estimationID)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	defer unlock()

	e = e.Clone()
	if err := fn(&e); err != nil {
		return entities.ProjectEstimation{}, err
	}
	e.Recalculate()
	e.UpdatedDate = u.now()

	updated, err := u.repo.Update(ctx, e)
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	if updated.ID == "" {
		return entities.ProjectEstimation{}, ErrEstimationNotFound
	}
	return updated, nil
}

// lockEstimation takes the lock of the estimation's project and returns the
// estimation as read under that lock.
func (u *EstimationUseCase) lockEstimation(ctx context.Context, estimationID string) (entities.ProjectEstimation, func(), error) {
	e, err := u.GetByID(ctx, estimationID)
	if err != nil {
		return entities.ProjectEstimation{}, nil, err
	}
	unlock := u.locks.Lock(e.ProjectID)

	e, err = u.GetByID(ctx, e.ID)
	if err != nil {
		unlock()
		return entities.ProjectEstimation{}, nil, err
	}
	return e, unlock, nil
}

// storeError translates the store's rejections of a multi-record write. The
// store applies nothing when it rejects, so the caller can simply retry.
func storeError(err error, projectID string) error {
	switch {
	case errors.Is(err, interfaces.ErrLastStoredEstimation):
		log.Printf("[estimation][usecase] delete rejected by store, last estimation project_id=%s", projectID)
		return ErrLastEstimation
	case errors.Is(err, interfaces.ErrEstimationWriteConflict):
		log.Printf("[estimation][usecase] write conflict project_id=%s err=%v", projectID, err)
		return fmt.Errorf("%w: %v", ErrConcurrentUpdate, err)
	}
	return err
}

// recordEvent appends to the project timeline. The estimation change is already
// committed at this point, so a failure is logged rather than returned.
func (u *EstimationUseCase) recordEvent(ctx context.Context, projectID, title, description string) {
	if u.projects == nil {
		return
	}
	_, err := u.projects.AppendTimelineEvent(ctx, projectID, entities.TimelineEvent{
		Title:       title,
		Status:      entities.TimelineEventCompleted,
		Description: description,
	})
	if err != nil {
		log.Printf("[estimation][usecase] timeline append failed project_id=%s title=%q err=%v", projectID, title, err)
	}
}

// reactivateMostRecent picks the estimation to activate when excludingID goes
// away: latest CreatedDate first, ties resolved by the later insert (higher
// version). It returns "" when no candidate is left.
func reactivateMostRecent(estimations []entities.ProjectEstimation, excludingID string) string {
	var best *entities.ProjectEstimation
	for i := range estimations {
		c := &estimations[i]
		if c.ID == excludingID {
			continue
		}
		if best == nil ||
			c.CreatedDate.After(best.CreatedDate) ||
			(c.CreatedDate.Equal(best.CreatedDate) && c.Version > best.Version) {
			best = c
		}
	}
	if best == nil {
		return ""
	}
	return best.ID
}

func hasOtherActive(estimations []entities.ProjectEstimation, excludingID string) bool {
	for _, e := range estimations {
		if e.ID != excludingID && e.IsActive {
			return true
		}
	}
	return false
}

func findActive(estimations []entities.ProjectEstimation) (entities.ProjectEstimation, bool) {
	for _, e := range estimations {
		if e.IsActive {
			return e, true
		}
	}
	return entities.ProjectEstimation{}, false
}
