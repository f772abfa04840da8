package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequestCommand is a company's credit request for a catalog item.
type CreateRequestCommand struct {
	CatalogItemID string
	Quantity      int64
	Note          string
}

// DecideCommand is the owning vendor's decision on a pending request.
// CustomDeadline is only consulted when the request carries a note.
type DecideCommand struct {
	RequestID      string
	Decision       entities.Decision
	CustomDeadline *time.Time
}

// DecisionResult is the decided request and, on accept, its new obligation.
type DecisionResult struct {
	Request    entities.ObligationRequest
	Obligation *entities.PaymentObligation
}

// IObligationRequestUseCase exposes the obligation request state machine.
//
//   - Create  => pending request with a price snapshot and a default deadline
//   - Decide  => pending -> accepted (creates the obligation) | pending -> declined
//   - GetByID => read for either counterparty

type IObligationRequestUseCase interface {
	Create(ctx context.Context, caller entities.Caller, cmd CreateRequestCommand) (entities.ObligationRequest, error)
	Decide(ctx context.Context, caller entities.Caller, cmd DecideCommand) (DecisionResult, error)
	GetByID(ctx context.Context, caller entities.Caller, id string) (entities.ObligationRequest, error)
}

type ObligationRequestUseCase struct {
	repo    interfaces.IObligationRequestRepository
	catalog interfaces.ICatalogService
	factory *ObligationFactory
	policy  Policy
	logger  *zap.Logger
	now     func() time.Time
}

var _ IObligationRequestUseCase = (*ObligationRequestUseCase)(nil)

func NewObligationRequestUseCase(
	repo interfaces.IObligationRequestRepository,
	catalog interfaces.ICatalogService,
	factory *ObligationFactory,
	policy Policy,
	logger *zap.Logger,
) *ObligationRequestUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObligationRequestUseCase{
		repo:    repo,
		catalog: catalog,
		factory: factory,
		policy:  policy.withDefaults(),
		logger:  logger.Named("obligation_request"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (u *ObligationRequestUseCase) Create(ctx context.Context, caller entities.Caller, cmd CreateRequestCommand) (entities.ObligationRequest, error) {
	catalogItemID := strings.TrimSpace(cmd.CatalogItemID)
	if catalogItemID == "" {
		return entities.ObligationRequest{}, ErrInvalidCatalogItem
	}
	if cmd.Quantity <= 0 {
		return entities.ObligationRequest{}, ErrInvalidQuantity
	}
	if !caller.IsCompany() || caller.OrgID == "" {
		return entities.ObligationRequest{}, ErrNotRequester
	}
	log := u.logger.With(zap.String("catalog_item_id", catalogItemID), zap.String("requester_id", caller.OrgID))

	item, err := u.catalog.GetItem(ctx, catalogItemID)
	if err != nil {
		log.Error("catalog lookup failed", zap.Error(err))
		return entities.ObligationRequest{}, err
	}
	if item.ID == "" {
		return entities.ObligationRequest{}, ErrCatalogItemNotFound
	}
	if item.Price <= 0 {
		log.Warn("catalog item has no positive price", zap.Int64("price", item.Price))
		return entities.ObligationRequest{}, ErrInvalidCatalogPrice
	}
	if cmd.Quantity > math.MaxInt64/item.Price {
		return entities.ObligationRequest{}, ErrInvalidQuantity
	}

	// Fast path; the storage guard below is what closes the double-submit race.
	if existing, err := u.repo.FindPending(ctx, caller.OrgID, catalogItemID); err != nil {
		return entities.ObligationRequest{}, err
	} else if existing.ID != "" {
		log.Info("pending request already exists", zap.String("request_id", existing.ID))
		return entities.ObligationRequest{}, ErrDuplicateActiveRequest
	}

	now := u.now()
	r := entities.ObligationRequest{
		ID:              uuid.NewString(),
		CatalogItemID:   catalogItemID,
		VendorID:        item.OwnerID,
		RequesterID:     caller.OrgID,
		CreatedBy:       caller.UserID,
		Quantity:        cmd.Quantity,
		UnitPrice:       item.Price,
		Total:           cmd.Quantity * item.Price,
		Note:            strings.TrimSpace(cmd.Note),
		DefaultDeadline: DefaultDeadline(now, u.policy.NetTermDays, u.policy.Location),
		Status:          entities.RequestStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateKey) {
			log.Info("pending request guard hit")
			return entities.ObligationRequest{}, ErrDuplicateActiveRequest
		}
		log.Error("create request failed", zap.Error(err))
		return entities.ObligationRequest{}, err
	}
	log.Info("request created", zap.String("request_id", created.ID), zap.Int64("total", created.Total))
	return created, nil
}

func (u *ObligationRequestUseCase) Decide(ctx context.Context, caller entities.Caller, cmd DecideCommand) (DecisionResult, error) {
	requestID := strings.TrimSpace(cmd.RequestID)
	if requestID == "" {
		return DecisionResult{}, ErrInvalidRequestID
	}
	if !cmd.Decision.IsValid() {
		return DecisionResult{}, ErrInvalidDecision
	}
	log := u.logger.With(zap.String("request_id", requestID), zap.String("decision", string(cmd.Decision)))

	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		log.Error("load request failed", zap.Error(err))
		return DecisionResult{}, err
	}
	if r.ID == "" {
		return DecisionResult{}, ErrRequestNotFound
	}
	if !caller.IsVendor() || caller.OrgID != r.VendorID {
		return DecisionResult{}, ErrNotOwnerVendor
	}
	if r.Status.IsTerminal() {
		return DecisionResult{}, ErrAlreadyDecided
	}

	now := u.now()
	if cmd.Decision == entities.DecisionDecline {
		declined, err := u.repo.Decline(ctx, r, now)
		if err != nil {
			if errors.Is(err, interfaces.ErrStaleWrite) {
				return DecisionResult{}, ErrAlreadyDecided
			}
			log.Error("decline failed", zap.Error(err))
			return DecisionResult{}, err
		}
		log.Info("request declined")
		return DecisionResult{Request: declined}, nil
	}

	deadline, err := ResolveDeadline(r, cmd.CustomDeadline, u.policy.NetTermDays, u.policy.Location)
	if err != nil {
		return DecisionResult{}, err
	}
	accepted, o, err := u.factory.CreateObligation(ctx, r, deadline, now)
	if err != nil {
		return DecisionResult{}, err
	}
	log.Info("request accepted", zap.String("obligation_id", o.ID))
	return DecisionResult{Request: accepted, Obligation: &o}, nil
}

func (u *ObligationRequestUseCase) GetByID(ctx context.Context, caller entities.Caller, id string) (entities.ObligationRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ObligationRequest{}, ErrInvalidRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ObligationRequest{}, err
	}
	if r.ID == "" {
		return entities.ObligationRequest{}, ErrRequestNotFound
	}
	if !r.IsCounterparty(caller) {
		return entities.ObligationRequest{}, ErrNotCounterparty
	}
	return r, nil
}
