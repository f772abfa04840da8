package entities

import "time"

// ObligationStatus represents the settlement state of a payment obligation.
//
// unpaid -> partially_paid -> paid; paid is terminal.

type ObligationStatus string

const (
	ObligationStatusUnpaid        ObligationStatus = "unpaid"
	ObligationStatusPartiallyPaid ObligationStatus = "partially_paid"
	ObligationStatusPaid          ObligationStatus = "paid"
)

// PaymentObligation is the payable created when a vendor accepts a request.
//
// Storage model (DynamoDB):
//   - PK: id
//   - guard item "obligation#<request_id>" enforces one obligation per request
//
// Version is bumped by every applied transaction and is the compare-and-swap
// token for balance updates. It always equals the number of transactions.
type PaymentObligation struct {
	ID              string           `json:"id"`
	RequestID       string           `json:"request_id"`
	VendorID        string           `json:"vendor_id"`
	RequesterID     string           `json:"requester_id"`
	CatalogItemID   string           `json:"catalog_item_id"`
	Total           int64            `json:"total"`
	AmountDue       int64            `json:"amount_due"`
	Status          ObligationStatus `json:"status"`
	AcceptedAt      time.Time        `json:"accepted_at"`
	PaymentDeadline time.Time        `json:"payment_deadline"`
	Version         int64            `json:"version"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func (o PaymentObligation) IsCleared() bool {
	return o.Status == ObligationStatusPaid
}

func (o PaymentObligation) IsCounterparty(c Caller) bool {
	return (c.IsVendor() && c.OrgID == o.VendorID) || (c.IsCompany() && c.OrgID == o.RequesterID)
}

// StatusForDue derives the status implied by a remaining balance.
func StatusForDue(total, due int64) ObligationStatus {
	switch {
	case due == 0:
		return ObligationStatusPaid
	case due == total:
		return ObligationStatusUnpaid
	default:
		return ObligationStatusPartiallyPaid
	}
}

// Balance is the read model exposed to dashboards and the rating gate.
type Balance struct {
	ObligationID    string           `json:"obligation_id"`
	RequestID       string           `json:"request_id"`
	Total           int64            `json:"total"`
	AmountDue       int64            `json:"amount_due"`
	Status          ObligationStatus `json:"status"`
	PaymentDeadline time.Time        `json:"payment_deadline"`
}

func (o PaymentObligation) Balance() Balance {
	return Balance{
		ObligationID:    o.ID,
		RequestID:       o.RequestID,
		Total:           o.Total,
		AmountDue:       o.AmountDue,
		Status:          o.Status,
		PaymentDeadline: o.PaymentDeadline,
	}
}
