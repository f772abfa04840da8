package request

import (
	"errors"
	"strings"
	"time"

	"trade_credit/internal/domain/entities"
)

var ErrInvalidDeadlineFormat = errors.New("custom_deadline must be YYYY-MM-DD or RFC3339")

// CreateObligationRequestRequest asks to buy a catalog item on credit. A non-empty
// note marks custom payment terms the vendor has to honor with a deadline.
type CreateObligationRequestRequest struct {
	CatalogItemID string `json:"catalog_item_id" binding:"required"`
	Quantity      int64  `json:"quantity"`
	Note          string `json:"note" binding:"max=2000"`
}

type DecisionRequest struct {
	Decision       string `json:"decision" binding:"required"`
	CustomDeadline string `json:"custom_deadline"`
}

func (r DecisionRequest) ToDecision() entities.Decision {
	return entities.Decision(strings.ToLower(strings.TrimSpace(r.Decision)))
}

// ParseCustomDeadline reads a calendar date in loc or a full RFC3339 timestamp.
// An empty value yields nil.
func (r DecisionRequest) ParseCustomDeadline(loc *time.Location) (*time.Time, error) {
	raw := strings.TrimSpace(r.CustomDeadline)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	return nil, ErrInvalidDeadlineFormat
}
