package response

import (
	"time"

	"trade_credit/internal/domain/entities"
)

type ObligationRequestResponse struct {
	ID              string     `json:"id"`
	CatalogItemID   string     `json:"catalog_item_id"`
	VendorID        string     `json:"vendor_id"`
	RequesterID     string     `json:"requester_id"`
	CreatedBy       string     `json:"created_by"`
	Quantity        int64      `json:"quantity"`
	UnitPrice       int64      `json:"unit_price"`
	Total           int64      `json:"total"`
	TotalDisplay    string     `json:"total_display"`
	Note            string     `json:"note,omitempty"`
	DefaultDeadline time.Time  `json:"default_deadline"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	DecidedAt       *time.Time `json:"decided_at,omitempty"`
}

func FromObligationRequest(r entities.ObligationRequest) ObligationRequestResponse {
	return ObligationRequestResponse{
		ID:              r.ID,
		CatalogItemID:   r.CatalogItemID,
		VendorID:        r.VendorID,
		RequesterID:     r.RequesterID,
		CreatedBy:       r.CreatedBy,
		Quantity:        r.Quantity,
		UnitPrice:       r.UnitPrice,
		Total:           r.Total,
		TotalDisplay:    FormatAmount(r.Total),
		Note:            r.Note,
		DefaultDeadline: r.DefaultDeadline,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		DecidedAt:       r.DecidedAt,
	}
}

type DecisionResponse struct {
	Request    ObligationRequestResponse `json:"request"`
	Obligation *ObligationResponse       `json:"obligation,omitempty"`
}

func FromDecision(r entities.ObligationRequest, o *entities.PaymentObligation) DecisionResponse {
	res := DecisionResponse{Request: FromObligationRequest(r)}
	if o != nil {
		ob := FromObligation(*o)
		res.Obligation = &ob
	}
	return res
}
