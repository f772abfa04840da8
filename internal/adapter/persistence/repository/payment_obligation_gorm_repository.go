package repository

import (
	"context"
	"errors"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type PaymentObligationGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPaymentObligationRepository = (*PaymentObligationGormRepository)(nil)

func NewPaymentObligationGormRepository(db *gorm.DB) *PaymentObligationGormRepository {
	return &PaymentObligationGormRepository{db: db}
}

func (r *PaymentObligationGormRepository) GetByID(ctx context.Context, id string) (entities.PaymentObligation, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *PaymentObligationGormRepository) GetByRequestID(ctx context.Context, requestID string) (entities.PaymentObligation, error) {
	return r.first(ctx, "request_id = ?", requestID)
}

func (r *PaymentObligationGormRepository) first(ctx context.Context, query string, arg string) (entities.PaymentObligation, error) {
	var m paymentObligationModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PaymentObligation{}, nil
	}
	if err != nil {
		return entities.PaymentObligation{}, err
	}
	return m.toEntity(), nil
}

// ApplyPayment runs the version-guarded balance update and the ledger insert in
// one database transaction.
func (r *PaymentObligationGormRepository) ApplyPayment(ctx context.Context, expectedVersion int64, updated entities.PaymentObligation, tx entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Transaction(func(db *gorm.DB) error {
		res := db.Model(&paymentObligationModel{}).
			Where("id = ? AND version = ? AND amount_due >= ?", updated.ID, expectedVersion, tx.AmountPaid).
			Updates(map[string]any{
				"amount_due": updated.AmountDue,
				"status":     string(updated.Status),
				"version":    updated.Version,
				"updated_at": updated.UpdatedAt.UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrStaleWrite
		}

		m := toPaymentTransactionModel(tx)
		if err := db.Create(&m).Error; err != nil {
			if isDuplicateKey(err) {
				return interfaces.ErrDuplicateKey
			}
			return err
		}
		return nil
	})
}

func (r *PaymentObligationGormRepository) GetTransactionByIdempotencyKey(ctx context.Context, obligationID, key string) (entities.PaymentTransaction, error) {
	var m paymentTransactionModel
	err := r.db.WithContext(ctx).
		Where("obligation_id = ? AND idempotency_key = ?", obligationID, key).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PaymentTransaction{}, nil
	}
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return m.toEntity(), nil
}

func (r *PaymentObligationGormRepository) ListTransactions(ctx context.Context, obligationID string, afterSequence int64, limit int) ([]entities.PaymentTransaction, error) {
	q := r.db.WithContext(ctx).
		Where("obligation_id = ? AND seq > ?", obligationID, afterSequence).
		Order("seq ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []paymentTransactionModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	txs := make([]entities.PaymentTransaction, 0, len(rows))
	for _, m := range rows {
		txs = append(txs, m.toEntity())
	}
	return txs, nil
}
