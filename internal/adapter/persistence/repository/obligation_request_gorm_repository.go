package repository

import (
	"context"
	"errors"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// ObligationRequestGormRepository persists ObligationRequest rows through GORM
// (PostgreSQL in deployments, SQLite locally and in tests).
type ObligationRequestGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IObligationRequestRepository = (*ObligationRequestGormRepository)(nil)

func NewObligationRequestGormRepository(db *gorm.DB) *ObligationRequestGormRepository {
	return &ObligationRequestGormRepository{db: db}
}

func (r *ObligationRequestGormRepository) Create(ctx context.Context, req entities.ObligationRequest) (entities.ObligationRequest, error) {
	m := toObligationRequestModel(req)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicateKey(err) {
			return entities.ObligationRequest{}, interfaces.ErrDuplicateKey
		}
		return entities.ObligationRequest{}, err
	}
	return m.toEntity(), nil
}

func (r *ObligationRequestGormRepository) GetByID(ctx context.Context, id string) (entities.ObligationRequest, error) {
	var m obligationRequestModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ObligationRequest{}, nil
	}
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	return m.toEntity(), nil
}

func (r *ObligationRequestGormRepository) FindPending(ctx context.Context, requesterID, catalogItemID string) (entities.ObligationRequest, error) {
	var m obligationRequestModel
	err := r.db.WithContext(ctx).
		Where("requester_id = ? AND catalog_item_id = ? AND status = ?", requesterID, catalogItemID, string(entities.RequestStatusPending)).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ObligationRequest{}, nil
	}
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	return m.toEntity(), nil
}

func (r *ObligationRequestGormRepository) Decline(ctx context.Context, req entities.ObligationRequest, decidedAt time.Time) (entities.ObligationRequest, error) {
	if err := decidePending(r.db.WithContext(ctx), req.ID, entities.RequestStatusDeclined, decidedAt); err != nil {
		return entities.ObligationRequest{}, err
	}
	req.Status = entities.RequestStatusDeclined
	req.DecidedAt = &decidedAt
	req.UpdatedAt = decidedAt
	return req, nil
}

// AcceptWithObligation inserts the obligation first so a second accept trips the
// request_id unique index before touching the request row.
func (r *ObligationRequestGormRepository) AcceptWithObligation(ctx context.Context, req entities.ObligationRequest, o entities.PaymentObligation) (entities.ObligationRequest, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toPaymentObligationModel(o)
		if err := tx.Create(&m).Error; err != nil {
			if isDuplicateKey(err) {
				return interfaces.ErrDuplicateKey
			}
			return err
		}
		return decidePending(tx, req.ID, entities.RequestStatusAccepted, o.AcceptedAt)
	})
	if err != nil {
		return entities.ObligationRequest{}, err
	}

	decidedAt := o.AcceptedAt
	req.Status = entities.RequestStatusAccepted
	req.DecidedAt = &decidedAt
	req.UpdatedAt = decidedAt
	return req, nil
}

func decidePending(db *gorm.DB, id string, status entities.RequestStatus, at time.Time) error {
	at = at.UTC()
	res := db.Model(&obligationRequestModel{}).
		Where("id = ? AND status = ?", id, string(entities.RequestStatusPending)).
		Updates(map[string]any{
			"status":     string(status),
			"decided_at": at,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return interfaces.ErrStaleWrite
	}
	return nil
}
