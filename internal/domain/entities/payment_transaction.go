package entities

import "time"

// PaymentTransaction is one immutable entry of an obligation's payment ledger.
//
// Storage model (DynamoDB):
//   - PK: obligation_id, SK: seq
//
// Sequence starts at 1 and equals the obligation version produced by this entry,
// so listing by sequence is listing in creation order.
type PaymentTransaction struct {
	ID                string    `json:"id"`
	ObligationID      string    `json:"obligation_id"`
	Sequence          int64     `json:"sequence"`
	PayerID           string    `json:"payer_id"`
	VendorID          string    `json:"vendor_id"`
	RequesterID       string    `json:"requester_id"`
	AmountPaid        int64     `json:"amount_paid"`
	AmountDueBefore   int64     `json:"amount_due_before"`
	AmountDueAfter    int64     `json:"amount_due_after"`
	IdempotencyKey    string    `json:"idempotency_key,omitempty"`
	ProviderReference string    `json:"provider_reference,omitempty"`
	PaidAt            time.Time `json:"paid_at"`
}

// TransactionPage is a finite slice of the ledger. NextAfter is the sequence to
// resume from; HasMore is false once the ledger end was reached.
type TransactionPage struct {
	Items     []PaymentTransaction `json:"items"`
	NextAfter int64                `json:"next_after"`
	HasMore   bool                 `json:"has_more"`
}
