package interfaces

import (
	"context"
	"time"

	"trade_credit/internal/domain/entities"
)

// IObligationRequestRepository abstracts persistence for ObligationRequest.
//
// The settlement core must be able to:
//   - create a pending request (unique per requester + catalog item while pending)
//   - decline a pending request
//   - accept a pending request and create its obligation in one atomic unit
//
// Lookups return a zero value (ID == "") when nothing matches.

type IObligationRequestRepository interface {
	Create(ctx context.Context, r entities.ObligationRequest) (entities.ObligationRequest, error)
	GetByID(ctx context.Context, id string) (entities.ObligationRequest, error)
	FindPending(ctx context.Context, requesterID, catalogItemID string) (entities.ObligationRequest, error)
	Decline(ctx context.Context, r entities.ObligationRequest, decidedAt time.Time) (entities.ObligationRequest, error)
	AcceptWithObligation(ctx context.Context, r entities.ObligationRequest, o entities.PaymentObligation) (entities.ObligationRequest, error)
}
