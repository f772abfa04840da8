package response

import (
	"time"

	"trade_credit/internal/domain/entities"
)

type ObligationResponse struct {
	ID               string    `json:"id"`
	RequestID        string    `json:"request_id"`
	VendorID         string    `json:"vendor_id"`
	RequesterID      string    `json:"requester_id"`
	CatalogItemID    string    `json:"catalog_item_id"`
	Total            int64     `json:"total"`
	AmountDue        int64     `json:"amount_due"`
	TotalDisplay     string    `json:"total_display"`
	AmountDueDisplay string    `json:"amount_due_display"`
	Status           string    `json:"status"`
	AcceptedAt       time.Time `json:"accepted_at"`
	PaymentDeadline  time.Time `json:"payment_deadline"`
	Version          int64     `json:"version"`
}

func FromObligation(o entities.PaymentObligation) ObligationResponse {
	return ObligationResponse{
		ID:               o.ID,
		RequestID:        o.RequestID,
		VendorID:         o.VendorID,
		RequesterID:      o.RequesterID,
		CatalogItemID:    o.CatalogItemID,
		Total:            o.Total,
		AmountDue:        o.AmountDue,
		TotalDisplay:     FormatAmount(o.Total),
		AmountDueDisplay: FormatAmount(o.AmountDue),
		Status:           string(o.Status),
		AcceptedAt:       o.AcceptedAt,
		PaymentDeadline:  o.PaymentDeadline,
		Version:          o.Version,
	}
}

type BalanceResponse struct {
	ObligationID     string    `json:"obligation_id"`
	RequestID        string    `json:"request_id"`
	Total            int64     `json:"total"`
	AmountDue        int64     `json:"amount_due"`
	AmountPaid       int64     `json:"amount_paid"`
	AmountDueDisplay string    `json:"amount_due_display"`
	Status           string    `json:"status"`
	PaymentDeadline  time.Time `json:"payment_deadline"`
}

func FromBalance(b entities.Balance) BalanceResponse {
	return BalanceResponse{
		ObligationID:     b.ObligationID,
		RequestID:        b.RequestID,
		Total:            b.Total,
		AmountDue:        b.AmountDue,
		AmountPaid:       b.Total - b.AmountDue,
		AmountDueDisplay: FormatAmount(b.AmountDue),
		Status:           string(b.Status),
		PaymentDeadline:  b.PaymentDeadline,
	}
}

type TransactionResponse struct {
	ID                string    `json:"id"`
	ObligationID      string    `json:"obligation_id"`
	Sequence          int64     `json:"sequence"`
	PayerID           string    `json:"payer_id"`
	AmountPaid        int64     `json:"amount_paid"`
	AmountPaidDisplay string    `json:"amount_paid_display"`
	AmountDueBefore   int64     `json:"amount_due_before"`
	AmountDueAfter    int64     `json:"amount_due_after"`
	ProviderReference string    `json:"provider_reference,omitempty"`
	PaidAt            time.Time `json:"paid_at"`
}

func FromTransaction(tx entities.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		ID:                tx.ID,
		ObligationID:      tx.ObligationID,
		Sequence:          tx.Sequence,
		PayerID:           tx.PayerID,
		AmountPaid:        tx.AmountPaid,
		AmountPaidDisplay: FormatAmount(tx.AmountPaid),
		AmountDueBefore:   tx.AmountDueBefore,
		AmountDueAfter:    tx.AmountDueAfter,
		ProviderReference: tx.ProviderReference,
		PaidAt:            tx.PaidAt,
	}
}

type TransactionPageResponse struct {
	Items     []TransactionResponse `json:"items"`
	NextAfter int64                 `json:"next_after"`
	HasMore   bool                  `json:"has_more"`
}

func FromTransactionPage(p entities.TransactionPage) TransactionPageResponse {
	items := make([]TransactionResponse, 0, len(p.Items))
	for _, tx := range p.Items {
		items = append(items, FromTransaction(tx))
	}
	return TransactionPageResponse{Items: items, NextAfter: p.NextAfter, HasMore: p.HasMore}
}

type PaymentResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	Obligation  ObligationResponse  `json:"obligation"`
	Replayed    bool                `json:"replayed"`
}

func FromPayment(tx entities.PaymentTransaction, o entities.PaymentObligation, replayed bool) PaymentResponse {
	return PaymentResponse{
		Transaction: FromTransaction(tx),
		Obligation:  FromObligation(o),
		Replayed:    replayed,
	}
}

type ClearedResponse struct {
	ObligationID string `json:"obligation_id"`
	Cleared      bool   `json:"cleared"`
}
