package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"construction_dashboard/internal/domain/entities"
	"construction_dashboard/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	m := PaymentModel{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		EstimationID:       p.EstimationID,
		Amount:             p.Amount,
		Date:               p.Date,
		Status:             string(p.Status),
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var m PaymentModel
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Payment{}, nil
	}
	if err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentModel(m), nil
}

func (r *PaymentRepository) ListByProjectID(ctx context.Context, projectID string) ([]entities.Payment, error) {
	var models []PaymentModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("date").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(models))
	for _, m := range models {
		out = append(out, fromPaymentModel(m))
	}
	return out, nil
}

func fromPaymentModel(m PaymentModel) entities.Payment {
	p := entities.Payment{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		EstimationID: m.EstimationID,
		Amount:       m.Amount,
		Date:         m.Date.UTC(),
		Status:       entities.PaymentStatus(m.Status),
	}
	if m.ProviderPayloadRaw == "" {
		return p
	}
	p.ProviderPayloadRaw = json.RawMessage(m.ProviderPayloadRaw)
	var parsed map[string]interface{}
	if err := json.Unmarshal(p.ProviderPayloadRaw, &parsed); err != nil {
		log.Printf("[payment][gorm] provider payload is not an object payment_id=%s err=%v", m.ID, err)
		return p
	}
	p.ProviderPayload = parsed
	return p
}
