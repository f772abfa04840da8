package interfaces

import "context"

// PaymentAuthorization describes the money movement the provider must authorize.
type PaymentAuthorization struct {
	ObligationID   string
	PayerID        string
	Amount         int64
	IdempotencyKey string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The settlement service calls it after every validation passed and before the
// ledger write, and stores the returned reference on the transaction.
type IPaymentGateway interface {
	Authorize(ctx context.Context, auth PaymentAuthorization) (providerReference string, err error)
}
