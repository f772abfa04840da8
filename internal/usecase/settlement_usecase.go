package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitPaymentCommand is a company member's payment attempt against an obligation.
type SubmitPaymentCommand struct {
	ObligationID   string
	Amount         int64
	Credential     string
	IdempotencyKey string
}

// PaymentResult is the committed ledger entry and the obligation after it.
// Replayed is true when an idempotent retry returned an earlier result.
type PaymentResult struct {
	Transaction entities.PaymentTransaction
	Obligation  entities.PaymentObligation
	Replayed    bool
}

// ISettlementUseCase accepts payments against payment obligations.
type ISettlementUseCase interface {
	SubmitPayment(ctx context.Context, caller entities.Caller, cmd SubmitPaymentCommand) (PaymentResult, error)
}

type SettlementUseCase struct {
	repo     interfaces.IPaymentObligationRepository
	verifier interfaces.ICredentialVerifier
	locks    interfaces.ILockManager
	gateway  interfaces.IPaymentGateway
	policy   Policy
	logger   *zap.Logger
	now      func() time.Time
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

// NewSettlementUseCase wires the settlement service. gateway may be nil, in which
// case payments are recorded without an external authorization step.
func NewSettlementUseCase(
	repo interfaces.IPaymentObligationRepository,
	verifier interfaces.ICredentialVerifier,
	locks interfaces.ILockManager,
	gateway interfaces.IPaymentGateway,
	policy Policy,
	logger *zap.Logger,
) *SettlementUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettlementUseCase{
		repo:     repo,
		verifier: verifier,
		locks:    locks,
		gateway:  gateway,
		policy:   policy.withDefaults(),
		logger:   logger.Named("settlement"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// MaxIdempotencyKeyLength matches the widest key column the storage adapters accept.
const MaxIdempotencyKeyLength = 128

func validIdempotencyKey(key string) bool {
	if len(key) > MaxIdempotencyKeyLength {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == ':', c == '-':
		default:
			return false
		}
	}
	return true
}

func obligationLockKey(id string) string {
	return "obligation:" + id
}

func (u *SettlementUseCase) SubmitPayment(ctx context.Context, caller entities.Caller, cmd SubmitPaymentCommand) (PaymentResult, error) {
	obligationID := strings.TrimSpace(cmd.ObligationID)
	if obligationID == "" {
		return PaymentResult{}, ErrInvalidObligationID
	}
	idemKey := strings.TrimSpace(cmd.IdempotencyKey)
	if idemKey != "" && !validIdempotencyKey(idemKey) {
		return PaymentResult{}, ErrInvalidIdemKey
	}
	log := u.logger.With(
		zap.String("obligation_id", obligationID),
		zap.String("payer_id", caller.UserID),
		zap.Int64("amount", cmd.Amount),
	)
	log.Info("submit payment start")

	release, err := u.locks.Acquire(ctx, obligationLockKey(obligationID))
	if err != nil {
		log.Warn("obligation lock not obtained", zap.Error(err))
		return PaymentResult{}, err
	}
	defer release()

	o, err := u.repo.GetByID(ctx, obligationID)
	if err != nil {
		log.Error("load obligation failed", zap.Error(err))
		return PaymentResult{}, err
	}
	if o.ID == "" {
		return PaymentResult{}, ErrObligationNotFound
	}
	if !caller.IsCompany() || caller.OrgID != o.RequesterID {
		return PaymentResult{}, ErrNotRequester
	}

	ok, err := u.verifier.Verify(ctx, caller.UserID, cmd.Credential)
	if err != nil {
		log.Error("credential verification failed", zap.Error(err))
		return PaymentResult{}, err
	}
	if !ok {
		log.Warn("credential rejected")
		return PaymentResult{}, ErrCredentialInvalid
	}

	if cmd.Amount <= 0 {
		return PaymentResult{}, ErrInvalidAmount
	}

	if idemKey != "" {
		res, found, err := u.replay(ctx, o, caller, cmd.Amount, idemKey)
		if err != nil {
			return PaymentResult{}, err
		}
		if found {
			log.Info("idempotent replay", zap.String("transaction_id", res.Transaction.ID))
			return res, nil
		}
	}

	var providerRef string
	// An authorization that never reaches the ledger must be reconciled by hand.
	fail := func(err error) (PaymentResult, error) {
		if providerRef != "" {
			log.Error("authorized payment not applied", zap.String("provider_reference", providerRef), zap.Error(err))
		}
		return PaymentResult{}, err
	}
	for attempt := 1; ; attempt++ {
		if o.Status == entities.ObligationStatusPaid {
			return fail(ErrObligationClosed)
		}
		if cmd.Amount > o.AmountDue {
			return fail(ErrAmountExceedsDue)
		}

		if u.gateway != nil && providerRef == "" {
			providerRef, err = u.gateway.Authorize(ctx, interfaces.PaymentAuthorization{
				ObligationID:   o.ID,
				PayerID:        caller.UserID,
				Amount:         cmd.Amount,
				IdempotencyKey: idemKey,
			})
			if err != nil {
				log.Error("payment authorization failed", zap.Error(err))
				return PaymentResult{}, err
			}
		}

		tx, updated := u.apply(o, caller, cmd.Amount, idemKey, providerRef)
		err = u.repo.ApplyPayment(ctx, o.Version, updated, tx)
		if err == nil {
			log.Info("submit payment success",
				zap.String("transaction_id", tx.ID),
				zap.Int64("amount_due", updated.AmountDue),
				zap.String("status", string(updated.Status)),
			)
			return PaymentResult{Transaction: tx, Obligation: updated}, nil
		}

		switch {
		case errors.Is(err, interfaces.ErrDuplicateKey) && idemKey != "":
			// A concurrent retry with the same key committed first.
			res, found, rerr := u.replay(ctx, o, caller, cmd.Amount, idemKey)
			if rerr != nil {
				return fail(rerr)
			}
			if found {
				return res, nil
			}
			return fail(ErrConcurrentUpdate)
		case errors.Is(err, interfaces.ErrStaleWrite):
			if attempt >= u.policy.MaxCASRetries {
				log.Warn("compare-and-swap retries exhausted", zap.Int("attempts", attempt))
				return fail(ErrConcurrentUpdate)
			}
			log.Info("obligation changed underneath, reloading", zap.Int("attempt", attempt))
			if o, err = u.repo.GetByID(ctx, obligationID); err != nil {
				return fail(err)
			}
			if o.ID == "" {
				return fail(ErrObligationNotFound)
			}
		default:
			log.Error("apply payment failed", zap.Error(err))
			return fail(err)
		}
	}
}

// apply computes the ledger entry and the obligation state it produces.
func (u *SettlementUseCase) apply(o entities.PaymentObligation, caller entities.Caller, amount int64, idemKey, providerRef string) (entities.PaymentTransaction, entities.PaymentObligation) {
	now := u.now()
	newDue := o.AmountDue - amount

	tx := entities.PaymentTransaction{
		ID:                uuid.NewString(),
		ObligationID:      o.ID,
		Sequence:          o.Version + 1,
		PayerID:           caller.UserID,
		VendorID:          o.VendorID,
		RequesterID:       o.RequesterID,
		AmountPaid:        amount,
		AmountDueBefore:   o.AmountDue,
		AmountDueAfter:    newDue,
		IdempotencyKey:    idemKey,
		ProviderReference: providerRef,
		PaidAt:            now,
	}

	updated := o
	updated.AmountDue = newDue
	updated.Status = entities.StatusForDue(o.Total, newDue)
	updated.Version = o.Version + 1
	updated.UpdatedAt = now
	return tx, updated
}

// replay looks up an earlier transaction made with the same idempotency key.
func (u *SettlementUseCase) replay(ctx context.Context, o entities.PaymentObligation, caller entities.Caller, amount int64, key string) (PaymentResult, bool, error) {
	prev, err := u.repo.GetTransactionByIdempotencyKey(ctx, o.ID, key)
	if err != nil {
		return PaymentResult{}, false, err
	}
	if prev.ID == "" {
		return PaymentResult{}, false, nil
	}
	if prev.PayerID != caller.UserID || prev.AmountPaid != amount {
		return PaymentResult{}, true, ErrIdempotencyKeyReused
	}
	current, err := u.repo.GetByID(ctx, o.ID)
	if err != nil {
		return PaymentResult{}, true, err
	}
	return PaymentResult{Transaction: prev, Obligation: current, Replayed: true}, true, nil
}
