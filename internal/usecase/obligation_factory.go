package usecase

import (
	"context"
	"errors"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObligationFactory turns an accepted request into its single payment obligation.
//
// It is only reachable through ObligationRequestUseCase.Decide. The storage adapter
// inserts the obligation and flips the request to accepted in one atomic write; the
// unique request reference on the obligation closes the race between two accepts.
type ObligationFactory struct {
	repo   interfaces.IObligationRequestRepository
	logger *zap.Logger
}

func NewObligationFactory(repo interfaces.IObligationRequestRepository, logger *zap.Logger) *ObligationFactory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObligationFactory{repo: repo, logger: logger.Named("obligation_factory")}
}

// Build returns the obligation an accepted request produces, without persisting it.
func (f *ObligationFactory) Build(r entities.ObligationRequest, deadline, acceptedAt time.Time) entities.PaymentObligation {
	return entities.PaymentObligation{
		ID:              uuid.NewString(),
		RequestID:       r.ID,
		VendorID:        r.VendorID,
		RequesterID:     r.RequesterID,
		CatalogItemID:   r.CatalogItemID,
		Total:           r.Total,
		AmountDue:       r.Total,
		Status:          entities.StatusForDue(r.Total, r.Total),
		AcceptedAt:      acceptedAt,
		PaymentDeadline: deadline,
		Version:         0,
		CreatedAt:       acceptedAt,
		UpdatedAt:       acceptedAt,
	}
}

// CreateObligation persists the obligation together with the request's transition
// to accepted. Storage constraint failures surface as the same conflicts a
// pre-check would report.
func (f *ObligationFactory) CreateObligation(ctx context.Context, r entities.ObligationRequest, deadline, acceptedAt time.Time) (entities.ObligationRequest, entities.PaymentObligation, error) {
	o := f.Build(r, deadline, acceptedAt)

	accepted, err := f.repo.AcceptWithObligation(ctx, r, o)
	if err != nil {
		switch {
		case errors.Is(err, interfaces.ErrDuplicateKey):
			f.logger.Warn("obligation already exists", zap.String("request_id", r.ID))
			return entities.ObligationRequest{}, entities.PaymentObligation{}, ErrObligationAlreadyExists
		case errors.Is(err, interfaces.ErrStaleWrite):
			f.logger.Warn("request no longer pending", zap.String("request_id", r.ID))
			return entities.ObligationRequest{}, entities.PaymentObligation{}, ErrAlreadyDecided
		}
		f.logger.Error("accept failed", zap.String("request_id", r.ID), zap.Error(err))
		return entities.ObligationRequest{}, entities.PaymentObligation{}, err
	}

	f.logger.Info("obligation created",
		zap.String("request_id", r.ID),
		zap.String("obligation_id", o.ID),
		zap.Int64("amount_due", o.AmountDue),
		zap.Time("payment_deadline", o.PaymentDeadline),
	)
	return accepted, o, nil
}
