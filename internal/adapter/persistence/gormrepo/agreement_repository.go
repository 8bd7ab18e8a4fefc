package gormrepo

import (
	"context"
	"errors"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type AgreementRepository struct {
	db *gorm.DB
}

var _ interfaces.IAgreementRepository = (*AgreementRepository)(nil)

func NewAgreementRepository(db *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

func (r *AgreementRepository) Create(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	m := toAgreementModel(a)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Agreement{}, err
	}
	return a, nil
}

func (r *AgreementRepository) GetByID(ctx context.Context, id string) (entities.Agreement, error) {
	var m AgreementModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Agreement{}, nil
	}
	if err != nil {
		return entities.Agreement{}, err
	}
	return fromAgreementModel(m), nil
}

func (r *AgreementRepository) List(ctx context.Context) ([]entities.Agreement, error) {
	var models []AgreementModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Agreement, 0, len(models))
	for _, m := range models {
		out = append(out, fromAgreementModel(m))
	}
	return out, nil
}

func (r *AgreementRepository) Update(ctx context.Context, a entities.Agreement) (entities.Agreement, error) {
	m := toAgreementModel(a)
	res := r.db.WithContext(ctx).Model(&AgreementModel{}).Where("id = ?", a.ID).
		Select("*").Omit("id").Updates(&m)
	if res.Error != nil {
		return entities.Agreement{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Agreement{}, nil
	}
	return a, nil
}

func (r *AgreementRepository) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&AgreementModel{}, "id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func toAgreementModel(a entities.Agreement) AgreementModel {
	return AgreementModel{
		ID:              a.ID,
		Name:            a.Name,
		Type:            a.Type,
		LastModified:    a.LastModified,
		TemplateContent: a.TemplateContent,
	}
}

func fromAgreementModel(m AgreementModel) entities.Agreement {
	return entities.Agreement{
		ID:              m.ID,
		Name:            m.Name,
		Type:            m.Type,
		LastModified:    m.LastModified.UTC(),
		TemplateContent: m.TemplateContent,
	}
}
