package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProjectEstimationRepository struct {
	db *gorm.DB
}

var _ interfaces.IProjectEstimationRepository = (*ProjectEstimationRepository)(nil)

func NewProjectEstimationRepository(db *gorm.DB) *ProjectEstimationRepository {
	return &ProjectEstimationRepository{db: db}
}

func (r *ProjectEstimationRepository) CreateActive(ctx context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
	e.IsActive = true
	m := toEstimationModel(e)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deactivateProject(tx, e.ProjectID); err != nil {
			return err
		}
		// Items are written separately so the parent insert never upserts them.
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		if err := insertEstimationItems(tx, m.Items); err != nil {
			return err
		}
		return bumpSequence(tx, e.ProjectID, e.Version)
	})
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	return e.Clone(), nil
}

func (r *ProjectEstimationRepository) GetByID(ctx context.Context, id string) (entities.ProjectEstimation, error) {
	var m ProjectEstimationModel
	err := r.db.WithContext(ctx).Preload("Items", byPosition).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ProjectEstimation{}, nil
	}
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	return fromEstimationModel(m), nil
}

func (r *ProjectEstimationRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.ProjectEstimation, error) {
	var models []ProjectEstimationModel
	err := r.db.WithContext(ctx).Preload("Items", byPosition).
		Where("project_id = ?", projectID).
		Order("version").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProjectEstimation, 0, len(models))
	for _, m := range models {
		out = append(out, fromEstimationModel(m))
	}
	return out, nil
}

// Update rewrites the estimation and its items. is_active is never touched.
func (r *ProjectEstimationRepository) Update(ctx context.Context, e entities.ProjectEstimation) (entities.ProjectEstimation, error) {
	m := toEstimationModel(e)
	var current ProjectEstimationModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&current, "id = ?", e.ID).Error; err != nil {
			return err
		}
		res := tx.Model(&ProjectEstimationModel{}).Where("id = ?", e.ID).
			Select("name", "template_id", "total_amount", "updated_date").
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if err := tx.Where("estimation_id = ?", e.ID).Delete(&ProjectEstimationItemModel{}).Error; err != nil {
			return err
		}
		return insertEstimationItems(tx, m.Items)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ProjectEstimation{}, nil
	}
	if err != nil {
		return entities.ProjectEstimation{}, err
	}
	out := e.Clone()
	out.IsActive = current.IsActive
	return out, nil
}

func (r *ProjectEstimationRepository) SetActive(ctx context.Context, projectID, estimationID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target ProjectEstimationModel
		err := tx.Select("id").Where("id = ? AND project_id = ?", estimationID, projectID).First(&target).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("estimation %s not found in project %s", estimationID, projectID)
		}
		if err != nil {
			return err
		}
		if err := deactivateProject(tx, projectID); err != nil {
			return err
		}
		return tx.Model(&ProjectEstimationModel{}).Where("id = ?", estimationID).Update("is_active", true).Error
	})
}

// Delete removes the estimation first so promoting promoteID never leaves two
// active rows, even momentarily.
func (r *ProjectEstimationRepository) Delete(ctx context.Context, id, promoteID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var target ProjectEstimationModel
		res := tx.Select("id", "project_id").Where("id = ?", id).Limit(1).Find(&target)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("estimation %s not found", id)
		}
		var siblings int64
		if err := tx.Model(&ProjectEstimationModel{}).Where("project_id = ?", target.ProjectID).Count(&siblings).Error; err != nil {
			return err
		}
		if siblings <= 1 {
			return interfaces.ErrLastStoredEstimation
		}

		if err := tx.Where("estimation_id = ?", id).Delete(&ProjectEstimationItemModel{}).Error; err != nil {
			return err
		}
		res = tx.Delete(&ProjectEstimationModel{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("estimation %s not found", id)
		}
		if promoteID == "" {
			return nil
		}
		res = tx.Model(&ProjectEstimationModel{}).Where("id = ?", promoteID).Update("is_active", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("estimation %s not found", promoteID)
		}
		return nil
	})
}

// NextVersion increments the project's sequence row, seeding it from the
// highest stored version on first use.
func (r *ProjectEstimationRepository) NextVersion(ctx context.Context, projectID string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&EstimationSequenceModel{}).Where("project_id = ?", projectID).
			UpdateColumn("value", gorm.Expr("value + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var highest int
			err := tx.Model(&ProjectEstimationModel{}).Where("project_id = ?", projectID).
				Select("COALESCE(MAX(version), 0)").Scan(&highest).Error
			if err != nil {
				return err
			}
			seq := EstimationSequenceModel{ProjectID: projectID, Value: highest + 1}
			if err := tx.Create(&seq).Error; err != nil {
				return err
			}
			next = seq.Value
			return nil
		}
		var seq EstimationSequenceModel
		if err := tx.First(&seq, "project_id = ?", projectID).Error; err != nil {
			return err
		}
		next = seq.Value
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

func deactivateProject(tx *gorm.DB, projectID string) error {
	return tx.Model(&ProjectEstimationModel{}).
		Where("project_id = ? AND is_active = ?", projectID, true).
		Update("is_active", false).Error
}

func insertEstimationItems(tx *gorm.DB, items []ProjectEstimationItemModel) error {
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

// bumpSequence keeps the counter at or above a version written directly,
// e.g. by the seeder.
func bumpSequence(tx *gorm.DB, projectID string, version int) error {
	res := tx.Model(&EstimationSequenceModel{}).
		Where("project_id = ? AND value < ?", projectID, version).
		UpdateColumn("value", version)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := tx.Model(&EstimationSequenceModel{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.Create(&EstimationSequenceModel{ProjectID: projectID, Value: version}).Error
}

func toEstimationModel(e entities.ProjectEstimation) ProjectEstimationModel {
	items := make([]ProjectEstimationItemModel, 0, len(e.Items))
	for i, it := range e.Items {
		items = append(items, ProjectEstimationItemModel{
			ID:           it.ID,
			EstimationID: e.ID,
			Position:     i,
			LineItemID:   it.LineItemID,
			Quantity:     it.Quantity,
			Rate:         it.Rate,
			Amount:       it.Amount,
			Notes:        it.Notes,
		})
	}
	return ProjectEstimationModel{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		TemplateID:  e.TemplateID,
		Name:        e.Name,
		TotalAmount: e.TotalAmount,
		CreatedDate: e.CreatedDate,
		UpdatedDate: e.UpdatedDate,
		IsActive:    e.IsActive,
		Version:     e.Version,
		Items:       items,
	}
}

func fromEstimationModel(m ProjectEstimationModel) entities.ProjectEstimation {
	items := make([]entities.ProjectEstimationItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entities.ProjectEstimationItem{
			ID:         it.ID,
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Rate:       it.Rate,
			Amount:     it.Amount,
			Notes:      it.Notes,
		})
	}
	return entities.ProjectEstimation{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		TemplateID:  m.TemplateID,
		Name:        m.Name,
		TotalAmount: m.TotalAmount,
		CreatedDate: m.CreatedDate.UTC(),
		UpdatedDate: m.UpdatedDate.UTC(),
		IsActive:    m.IsActive,
		Version:     m.Version,
		Items:       items,
	}
}
