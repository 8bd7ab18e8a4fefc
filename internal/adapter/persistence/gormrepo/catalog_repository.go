package gormrepo

import (
	"context"
	"errors"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type LineItemRepository struct {
	db *gorm.DB
}

var _ interfaces.ILineItemRepository = (*LineItemRepository)(nil)

func NewLineItemRepository(db *gorm.DB) *LineItemRepository {
	return &LineItemRepository{db: db}
}

func (r *LineItemRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	m := toLineItemModel(li)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemRepository) GetByID(ctx context.Context, id string) (entities.LineItem, error) {
	var m LineItemModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.LineItem{}, nil
	}
	if err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemModel(m), nil
}

func (r *LineItemRepository) List(ctx context.Context) ([]entities.LineItem, error) {
	var models []LineItemModel
	if err := r.db.WithContext(ctx).Order("category, name").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.LineItem, 0, len(models))
	for _, m := range models {
		out = append(out, fromLineItemModel(m))
	}
	return out, nil
}

func (r *LineItemRepository) Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	m := toLineItemModel(li)
	res := r.db.WithContext(ctx).Model(&LineItemModel{}).Where("id = ?", li.ID).
		Select("*").Omit("id").Updates(&m)
	if res.Error != nil {
		return entities.LineItem{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.LineItem{}, nil
	}
	return li, nil
}

func (r *LineItemRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&LineItemModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func toLineItemModel(li entities.LineItem) LineItemModel {
	return LineItemModel{
		ID:          li.ID,
		Name:        li.Name,
		Category:    li.Category,
		Unit:        li.Unit,
		Rate:        li.Rate,
		Description: li.Description,
	}
}

func fromLineItemModel(m LineItemModel) entities.LineItem {
	return entities.LineItem{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Unit:        m.Unit,
		Rate:        m.Rate,
		Description: m.Description,
	}
}

type EstimationTemplateRepository struct {
	db *gorm.DB
}

var _ interfaces.IEstimationTemplateRepository = (*EstimationTemplateRepository)(nil)

func NewEstimationTemplateRepository(db *gorm.DB) *EstimationTemplateRepository {
	return &EstimationTemplateRepository{db: db}
}

func (r *EstimationTemplateRepository) Create(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	m := toTemplateModel(t)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.EstimationTemplate{}, err
	}
	return t, nil
}

func (r *EstimationTemplateRepository) GetByID(ctx context.Context, id string) (entities.EstimationTemplate, error) {
	var m EstimationTemplateModel
	err := r.db.WithContext(ctx).Preload("Items", byPosition).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.EstimationTemplate{}, nil
	}
	if err != nil {
		return entities.EstimationTemplate{}, err
	}
	return fromTemplateModel(m), nil
}

func (r *EstimationTemplateRepository) List(ctx context.Context) ([]entities.EstimationTemplate, error) {
	var models []EstimationTemplateModel
	if err := r.db.WithContext(ctx).Preload("Items", byPosition).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.EstimationTemplate, 0, len(models))
	for _, m := range models {
		out = append(out, fromTemplateModel(m))
	}
	return out, nil
}

// Update replaces the template row and all of its items in one transaction.
func (r *EstimationTemplateRepository) Update(ctx context.Context, t entities.EstimationTemplate) (entities.EstimationTemplate, error) {
	m := toTemplateModel(t)
	found := true
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&EstimationTemplateModel{}).Where("id = ?", t.ID).
			Select("name", "category", "items_count", "last_modified").Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			found = false
			return nil
		}
		if err := tx.Where("template_id = ?", t.ID).Delete(&EstimationTemplateItemModel{}).Error; err != nil {
			return err
		}
		if len(m.Items) == 0 {
			return nil
		}
		return tx.Create(&m.Items).Error
	})
	if err != nil || !found {
		return entities.EstimationTemplate{}, err
	}
	return t, nil
}

func (r *EstimationTemplateRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ?", id).Delete(&EstimationTemplateItemModel{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&EstimationTemplateModel{}, "id = ?", id)
		deleted = res.RowsAffected > 0
		return res.Error
	})
	return deleted, err
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func toTemplateModel(t entities.EstimationTemplate) EstimationTemplateModel {
	items := make([]EstimationTemplateItemModel, 0, len(t.Items))
	for i, it := range t.Items {
		items = append(items, EstimationTemplateItemModel{
			ID:         it.ID,
			TemplateID: t.ID,
			Position:   i,
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}
	return EstimationTemplateModel{
		ID:           t.ID,
		Name:         t.Name,
		Category:     t.Category,
		ItemsCount:   t.ItemsCount,
		LastModified: t.LastModified,
		Items:        items,
	}
}

func fromTemplateModel(m EstimationTemplateModel) entities.EstimationTemplate {
	items := make([]entities.EstimationTemplateItem, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, entities.EstimationTemplateItem{
			ID:         it.ID,
			LineItemID: it.LineItemID,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
		})
	}
	return entities.EstimationTemplate{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Items:        items,
		ItemsCount:   m.ItemsCount,
		LastModified: m.LastModified.UTC(),
	}
}
