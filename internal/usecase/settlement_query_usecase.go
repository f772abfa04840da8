package usecase

import (
	"context"
	"strings"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"
)

const (
	DefaultTransactionPageSize = 50
	MaxTransactionPageSize     = 200
)

// ISettlementQueryUseCase is the read surface used by dashboards and the rating gate.
// Reads are limited to the obligation's vendor and requester.
type ISettlementQueryUseCase interface {
	GetObligation(ctx context.Context, caller entities.Caller, obligationID string) (entities.PaymentObligation, error)
	GetObligationByRequestID(ctx context.Context, caller entities.Caller, requestID string) (entities.PaymentObligation, error)
	GetBalance(ctx context.Context, caller entities.Caller, obligationID string) (entities.Balance, error)
	ListTransactions(ctx context.Context, caller entities.Caller, obligationID string, afterSequence int64, limit int) (entities.TransactionPage, error)
	IsCleared(ctx context.Context, caller entities.Caller, obligationID string) (bool, error)
}

type SettlementQueryUseCase struct {
	repo interfaces.IPaymentObligationRepository
}

var _ ISettlementQueryUseCase = (*SettlementQueryUseCase)(nil)

func NewSettlementQueryUseCase(repo interfaces.IPaymentObligationRepository) *SettlementQueryUseCase {
	return &SettlementQueryUseCase{repo: repo}
}

func (u *SettlementQueryUseCase) GetObligation(ctx context.Context, caller entities.Caller, obligationID string) (entities.PaymentObligation, error) {
	obligationID = strings.TrimSpace(obligationID)
	if obligationID == "" {
		return entities.PaymentObligation{}, ErrInvalidObligationID
	}

	o, err := u.repo.GetByID(ctx, obligationID)
	if err != nil {
		return entities.PaymentObligation{}, err
	}
	return u.authorize(o, caller)
}

func (u *SettlementQueryUseCase) GetObligationByRequestID(ctx context.Context, caller entities.Caller, requestID string) (entities.PaymentObligation, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.PaymentObligation{}, ErrInvalidRequestID
	}

	o, err := u.repo.GetByRequestID(ctx, requestID)
	if err != nil {
		return entities.PaymentObligation{}, err
	}
	return u.authorize(o, caller)
}

func (u *SettlementQueryUseCase) GetBalance(ctx context.Context, caller entities.Caller, obligationID string) (entities.Balance, error) {
	o, err := u.GetObligation(ctx, caller, obligationID)
	if err != nil {
		return entities.Balance{}, err
	}
	return o.Balance(), nil
}

// ListTransactions returns up to limit ledger entries after afterSequence, oldest
// first. Passing the returned NextAfter resumes the listing.
func (u *SettlementQueryUseCase) ListTransactions(ctx context.Context, caller entities.Caller, obligationID string, afterSequence int64, limit int) (entities.TransactionPage, error) {
	o, err := u.GetObligation(ctx, caller, obligationID)
	if err != nil {
		return entities.TransactionPage{}, err
	}
	if afterSequence < 0 {
		afterSequence = 0
	}
	switch {
	case limit <= 0:
		limit = DefaultTransactionPageSize
	case limit > MaxTransactionPageSize:
		limit = MaxTransactionPageSize
	}

	items, err := u.repo.ListTransactions(ctx, o.ID, afterSequence, limit)
	if err != nil {
		return entities.TransactionPage{}, err
	}

	page := entities.TransactionPage{Items: items, NextAfter: afterSequence}
	if len(items) > 0 {
		page.NextAfter = items[len(items)-1].Sequence
	}
	// The obligation version is the sequence of its newest transaction.
	page.HasMore = page.NextAfter < o.Version
	return page, nil
}

// IsCleared is the signal the rating module consumes.
func (u *SettlementQueryUseCase) IsCleared(ctx context.Context, caller entities.Caller, obligationID string) (bool, error) {
	o, err := u.GetObligation(ctx, caller, obligationID)
	if err != nil {
		return false, err
	}
	return o.IsCleared(), nil
}

func (u *SettlementQueryUseCase) authorize(o entities.PaymentObligation, caller entities.Caller) (entities.PaymentObligation, error) {
	if o.ID == "" {
		return entities.PaymentObligation{}, ErrObligationNotFound
	}
	if !o.IsCounterparty(caller) {
		return entities.PaymentObligation{}, ErrNotCounterparty
	}
	return o, nil
}
