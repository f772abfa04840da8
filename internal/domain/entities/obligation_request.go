package entities

import (
	"strings"
	"time"
)

// RequestStatus represents the lifecycle of an obligation request.
//
// Domain notes:
//   - A request is created by a company member against a catalog item.
//   - Only the owning vendor moves it out of pending; accepted and declined are terminal.

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusAccepted || s == RequestStatusDeclined
}

// Decision is the vendor's answer to a pending request.
type Decision string

const (
	DecisionAccept  Decision = "accept"
	DecisionDecline Decision = "decline"
)

func (d Decision) IsValid() bool {
	return d == DecisionAccept || d == DecisionDecline
}

// ObligationRequest is a company's request to buy a catalog item on credit.
//
// Storage model (DynamoDB):
//   - PK: id
//   - pending guard: one "pending#<requester_id>#<catalog_item_id>" guard item while pending
//
// Monetary representation:
//   - UnitPrice and Total are minor currency units (cents/paise).
//   - UnitPrice is a snapshot taken from the catalog at creation time.
type ObligationRequest struct {
	ID              string        `json:"id"`
	CatalogItemID   string        `json:"catalog_item_id"`
	VendorID        string        `json:"vendor_id"`
	RequesterID     string        `json:"requester_id"`
	CreatedBy       string        `json:"created_by"`
	Quantity        int64         `json:"quantity"`
	UnitPrice       int64         `json:"unit_price"`
	Total           int64         `json:"total"`
	Note            string        `json:"note,omitempty"`
	DefaultDeadline time.Time     `json:"default_deadline"`
	Status          RequestStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
	DecidedAt       *time.Time    `json:"decided_at,omitempty"`
}

// HasNote reports whether the requester attached custom payment terms.
func (r ObligationRequest) HasNote() bool {
	return strings.TrimSpace(r.Note) != ""
}

// IsCounterparty reports whether the caller's organization is the vendor or the requester.
func (r ObligationRequest) IsCounterparty(c Caller) bool {
	return (c.IsVendor() && c.OrgID == r.VendorID) || (c.IsCompany() && c.OrgID == r.RequesterID)
}
