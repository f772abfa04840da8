package usecase_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"trade_credit/internal/adapter/persistence/repository"
	"trade_credit/internal/domain/entities"
	"trade_credit/internal/infrastructure/credentials"
	"trade_credit/internal/infrastructure/lock"
	"trade_credit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	buyer  = entities.Caller{UserID: "user-a", OrgID: "company-a", OrgType: entities.OrgTypeCompany}
	seller = entities.Caller{UserID: "user-v", OrgID: "vendor-v", OrgType: entities.OrgTypeVendor}
)

type settlementStack struct {
	requests   *usecase.ObligationRequestUseCase
	settlement *usecase.SettlementUseCase
	queries    *usecase.SettlementQueryUseCase
	catalog    *repository.CatalogGormRepository
}

func newSettlementStack(t *testing.T) settlementStack {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repository.Migrate(db))

	requestRepo := repository.NewObligationRequestGormRepository(db)
	obligationRepo := repository.NewPaymentObligationGormRepository(db)
	catalog := repository.NewCatalogGormRepository(db)

	ctx := context.Background()
	require.NoError(t, catalog.Save(ctx, entities.CatalogItem{ID: "item-1", Price: 2500, OwnerID: seller.OrgID}))
	hash, err := credentials.HashSecret("secret")
	require.NoError(t, err)
	require.NoError(t, catalog.SetPasswordHash(ctx, buyer.UserID, hash))

	return settlementStack{
		requests: usecase.NewObligationRequestUseCase(
			requestRepo, catalog, usecase.NewObligationFactory(requestRepo, nil), usecase.Policy{}, nil,
		),
		settlement: usecase.NewSettlementUseCase(
			obligationRepo, credentials.NewBcryptVerifier(catalog), lock.NewMemoryLockManager(), nil, usecase.Policy{}, nil,
		),
		queries: usecase.NewSettlementQueryUseCase(obligationRepo),
		catalog: catalog,
	}
}

// openObligation walks a request of 4 x 2500 through acceptance.
func (s settlementStack) openObligation(t *testing.T) entities.PaymentObligation {
	t.Helper()
	ctx := context.Background()
	req, err := s.requests.Create(ctx, buyer, usecase.CreateRequestCommand{CatalogItemID: "item-1", Quantity: 4})
	require.NoError(t, err)
	require.Equal(t, int64(10000), req.Total)

	res, err := s.requests.Decide(ctx, seller, usecase.DecideCommand{RequestID: req.ID, Decision: entities.DecisionAccept})
	require.NoError(t, err)
	require.NotNil(t, res.Obligation)
	return *res.Obligation
}

func pay(ob string, amount int64) usecase.SubmitPaymentCommand {
	return usecase.SubmitPaymentCommand{ObligationID: ob, Amount: amount, Credential: "secret"}
}

func TestSettlement_PartialThenFullPayment(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()
	ob := s.openObligation(t)

	first, err := s.settlement.SubmitPayment(ctx, buyer, pay(ob.ID, 4000))
	require.NoError(t, err)
	assert.Equal(t, int64(6000), first.Obligation.AmountDue)
	assert.Equal(t, entities.ObligationStatusPartiallyPaid, first.Obligation.Status)

	_, err = s.settlement.SubmitPayment(ctx, buyer, pay(ob.ID, 7000))
	assert.ErrorIs(t, err, usecase.ErrAmountExceedsDue)

	second, err := s.settlement.SubmitPayment(ctx, buyer, pay(ob.ID, 6000))
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.Obligation.AmountDue)
	assert.Equal(t, entities.ObligationStatusPaid, second.Obligation.Status)

	_, err = s.settlement.SubmitPayment(ctx, buyer, pay(ob.ID, 1))
	assert.ErrorIs(t, err, usecase.ErrObligationClosed)

	cleared, err := s.queries.IsCleared(ctx, seller, ob.ID)
	require.NoError(t, err)
	assert.True(t, cleared)

	page, err := s.queries.ListTransactions(ctx, buyer, ob.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, []int64{4000, 6000}, []int64{page.Items[0].AmountPaid, page.Items[1].AmountPaid})
	assert.False(t, page.HasMore)
}

func TestSettlement_WrongCredentialMovesNothing(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()
	ob := s.openObligation(t)

	cmd := pay(ob.ID, 1000)
	cmd.Credential = "wrong"
	_, err := s.settlement.SubmitPayment(ctx, buyer, cmd)
	assert.ErrorIs(t, err, usecase.ErrCredentialInvalid)

	bal, err := s.queries.GetBalance(ctx, buyer, ob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10000), bal.AmountDue)
}

func TestSettlement_IdempotentReplay(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()
	ob := s.openObligation(t)

	cmd := pay(ob.ID, 2500)
	cmd.IdempotencyKey = "k-1"
	first, err := s.settlement.SubmitPayment(ctx, buyer, cmd)
	require.NoError(t, err)

	again, err := s.settlement.SubmitPayment(ctx, buyer, cmd)
	require.NoError(t, err)
	assert.True(t, again.Replayed)
	assert.Equal(t, first.Transaction.ID, again.Transaction.ID)
	assert.Equal(t, int64(7500), again.Obligation.AmountDue)

	cmd.Amount = 100
	_, err = s.settlement.SubmitPayment(ctx, buyer, cmd)
	assert.ErrorIs(t, err, usecase.ErrIdempotencyKeyReused)
}

func TestSettlement_ConcurrentPaymentsNeverOverpay(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()
	ob := s.openObligation(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.settlement.SubmitPayment(ctx, buyer, pay(ob.ID, 6000))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, usecase.ErrAmountExceedsDue)
	}
	assert.Equal(t, 1, succeeded)

	bal, err := s.queries.GetBalance(ctx, buyer, ob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), bal.AmountDue)
	assert.Equal(t, entities.ObligationStatusPartiallyPaid, bal.Status)
}

func TestSettlement_ConcurrentAcceptCreatesOneObligation(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()
	req, err := s.requests.Create(ctx, buyer, usecase.CreateRequestCommand{CatalogItemID: "item-1", Quantity: 2})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.requests.Decide(ctx, seller, usecase.DecideCommand{RequestID: req.ID, Decision: entities.DecisionAccept})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, usecase.KindConflict, usecase.KindOf(err))
	}
	assert.Equal(t, 1, succeeded)

	ob, err := s.queries.GetObligationByRequestID(ctx, buyer, req.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), ob.AmountDue)
}

func TestSettlement_DeclineAllowsNewRequest(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()

	req, err := s.requests.Create(ctx, buyer, usecase.CreateRequestCommand{CatalogItemID: "item-1", Quantity: 1})
	require.NoError(t, err)
	_, err = s.requests.Create(ctx, buyer, usecase.CreateRequestCommand{CatalogItemID: "item-1", Quantity: 3})
	assert.ErrorIs(t, err, usecase.ErrDuplicateActiveRequest)

	_, err = s.requests.Decide(ctx, seller, usecase.DecideCommand{RequestID: req.ID, Decision: entities.DecisionDecline})
	require.NoError(t, err)

	_, err = s.requests.Create(ctx, buyer, usecase.CreateRequestCommand{CatalogItemID: "item-1", Quantity: 3})
	assert.NoError(t, err)
}

func TestSettlement_BalanceConservation(t *testing.T) {
	s := newSettlementStack(t)
	ctx := context.Background()
	ob := s.openObligation(t)
	rng := rand.New(rand.NewSource(42))

	var paid int64
	for i := 0; i < 25; i++ {
		amount := rng.Int63n(3000) + 1
		res, err := s.settlement.SubmitPayment(ctx, buyer, pay(ob.ID, amount))
		if paid+amount > ob.Total {
			if paid == ob.Total {
				assert.ErrorIs(t, err, usecase.ErrObligationClosed)
			} else {
				assert.ErrorIs(t, err, usecase.ErrAmountExceedsDue)
			}
			continue
		}
		require.NoError(t, err)
		paid += amount
		assert.Equal(t, ob.Total-paid, res.Obligation.AmountDue)
		assert.Equal(t, entities.StatusForDue(ob.Total, res.Obligation.AmountDue), res.Obligation.Status)
	}

	var sum int64
	var after int64
	for {
		page, err := s.queries.ListTransactions(ctx, seller, ob.ID, after, 4)
		require.NoError(t, err)
		for _, tx := range page.Items {
			assert.Equal(t, tx.AmountDueBefore-tx.AmountPaid, tx.AmountDueAfter)
			sum += tx.AmountPaid
		}
		after = page.NextAfter
		if !page.HasMore {
			break
		}
	}

	bal, err := s.queries.GetBalance(ctx, buyer, ob.ID)
	require.NoError(t, err)
	assert.Equal(t, paid, sum)
	assert.Equal(t, ob.Total-sum, bal.AmountDue)
}
