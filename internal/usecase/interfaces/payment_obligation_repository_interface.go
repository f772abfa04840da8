package interfaces

import (
	"context"

	"trade_credit/internal/domain/entities"
)

// IPaymentObligationRepository abstracts persistence for obligations and their ledger.
//
// ApplyPayment is a compare-and-swap: it stores updated and appends tx only if the
// stored obligation still has expectedVersion and enough balance. Otherwise it
// returns ErrStaleWrite and writes nothing. A reused idempotency key yields
// ErrDuplicateKey.

type IPaymentObligationRepository interface {
	GetByID(ctx context.Context, id string) (entities.PaymentObligation, error)
	GetByRequestID(ctx context.Context, requestID string) (entities.PaymentObligation, error)
	ApplyPayment(ctx context.Context, expectedVersion int64, updated entities.PaymentObligation, tx entities.PaymentTransaction) error
	GetTransactionByIdempotencyKey(ctx context.Context, obligationID, key string) (entities.PaymentTransaction, error)
	ListTransactions(ctx context.Context, obligationID string, afterSequence int64, limit int) ([]entities.PaymentTransaction, error)
}
