package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase/interfaces"
	mock_interfaces "trade_credit/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	fixedNow    = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	companyA    = entities.Caller{UserID: "user-a", OrgID: "company-a", OrgType: entities.OrgTypeCompany}
	companyB    = entities.Caller{UserID: "user-b", OrgID: "company-b", OrgType: entities.OrgTypeCompany}
	vendorV     = entities.Caller{UserID: "user-v", OrgID: "vendor-v", OrgType: entities.OrgTypeVendor}
	otherVendor = entities.Caller{UserID: "user-w", OrgID: "vendor-w", OrgType: entities.OrgTypeVendor}
)

func newRequestUseCase(ctrl *gomock.Controller) (*ObligationRequestUseCase, *mock_interfaces.MockIObligationRequestRepository, *mock_interfaces.MockICatalogService) {
	repo := mock_interfaces.NewMockIObligationRequestRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogService(ctrl)
	uc := NewObligationRequestUseCase(repo, catalog, NewObligationFactory(repo, nil), Policy{}, nil)
	uc.now = func() time.Time { return fixedNow }
	return uc, repo, catalog
}

func pendingRequest() entities.ObligationRequest {
	return entities.ObligationRequest{
		ID:              "req-1",
		CatalogItemID:   "item-1",
		VendorID:        vendorV.OrgID,
		RequesterID:     companyA.OrgID,
		CreatedBy:       companyA.UserID,
		Quantity:        4,
		UnitPrice:       2500,
		Total:           10000,
		DefaultDeadline: DefaultDeadline(fixedNow, DefaultNetTermDays, time.UTC),
		Status:          entities.RequestStatusPending,
		CreatedAt:       fixedNow,
		UpdatedAt:       fixedNow,
	}
}

func TestObligationRequestUseCase_Create_Validations(t *testing.T) {
	cases := []struct {
		name   string
		caller entities.Caller
		cmd    CreateRequestCommand
		want   error
	}{
		{name: "empty catalog item", caller: companyA, cmd: CreateRequestCommand{CatalogItemID: " ", Quantity: 1}, want: ErrInvalidCatalogItem},
		{name: "zero quantity", caller: companyA, cmd: CreateRequestCommand{CatalogItemID: "item-1", Quantity: 0}, want: ErrInvalidQuantity},
		{name: "negative quantity", caller: companyA, cmd: CreateRequestCommand{CatalogItemID: "item-1", Quantity: -3}, want: ErrInvalidQuantity},
		{name: "vendor cannot request", caller: vendorV, cmd: CreateRequestCommand{CatalogItemID: "item-1", Quantity: 1}, want: ErrNotRequester},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _, _ := newRequestUseCase(ctrl)

			_, err := uc.Create(context.Background(), tc.caller, tc.cmd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestObligationRequestUseCase_Create_Catalog(t *testing.T) {
	t.Run("catalog error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newRequestUseCase(ctrl)

		catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.CatalogItem{}, errors.New("catalog down"))

		_, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: "item-1", Quantity: 1})
		if err == nil || err.Error() != "catalog down" {
			t.Fatalf("expected catalog error, got %v", err)
		}
	})

	t.Run("catalog item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newRequestUseCase(ctrl)

		catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.CatalogItem{}, nil)

		_, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: "item-1", Quantity: 1})
		if !errors.Is(err, ErrCatalogItemNotFound) || !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
		}
	})

	for _, price := range []int64{0, -500} {
		t.Run(fmt.Sprintf("non-positive price %d", price), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _, catalog := newRequestUseCase(ctrl)

			catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.CatalogItem{ID: "item-1", Price: price, OwnerID: vendorV.OrgID}, nil)

			_, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: "item-1", Quantity: 2})
			if !errors.Is(err, ErrInvalidCatalogPrice) || !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidCatalogPrice, got %v", err)
			}
		})
	}

	t.Run("total overflow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, catalog := newRequestUseCase(ctrl)

		catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.CatalogItem{ID: "item-1", Price: 1 << 40, OwnerID: vendorV.OrgID}, nil)

		_, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: "item-1", Quantity: 1 << 30})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestObligationRequestUseCase_Create_Duplicate(t *testing.T) {
	item := entities.CatalogItem{ID: "item-1", Price: 2500, OwnerID: vendorV.OrgID}

	t.Run("pending request found by pre-check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, catalog := newRequestUseCase(ctrl)

		catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().FindPending(gomock.Any(), companyA.OrgID, "item-1").Return(pendingRequest(), nil)

		_, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: "item-1", Quantity: 4})
		if !errors.Is(err, ErrDuplicateActiveRequest) {
			t.Fatalf("expected ErrDuplicateActiveRequest, got %v", err)
		}
	})

	t.Run("storage guard rejects concurrent submit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, catalog := newRequestUseCase(ctrl)

		catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(item, nil)
		repo.EXPECT().FindPending(gomock.Any(), companyA.OrgID, "item-1").Return(entities.ObligationRequest{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ObligationRequest{}, interfaces.ErrDuplicateKey)

		_, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: "item-1", Quantity: 4})
		if !errors.Is(err, ErrDuplicateActiveRequest) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrDuplicateActiveRequest, got %v", err)
		}
	})
}

func TestObligationRequestUseCase_Create_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, repo, catalog := newRequestUseCase(ctrl)

	catalog.EXPECT().GetItem(gomock.Any(), "item-1").Return(entities.CatalogItem{ID: "item-1", Price: 2500, OwnerID: vendorV.OrgID}, nil)
	repo.EXPECT().FindPending(gomock.Any(), companyA.OrgID, "item-1").Return(entities.ObligationRequest{}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r entities.ObligationRequest) (entities.ObligationRequest, error) {
			return r, nil
		},
	)

	got, err := uc.Create(context.Background(), companyA, CreateRequestCommand{CatalogItemID: " item-1 ", Quantity: 4, Note: "  net 45  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected generated id")
	}
	if got.Status != entities.RequestStatusPending {
		t.Fatalf("expected pending, got %s", got.Status)
	}
	if got.VendorID != vendorV.OrgID || got.RequesterID != companyA.OrgID || got.CreatedBy != companyA.UserID {
		t.Fatalf("unexpected parties: %+v", got)
	}
	if got.UnitPrice != 2500 || got.Total != 10000 {
		t.Fatalf("expected price snapshot 2500 and total 10000, got %d/%d", got.UnitPrice, got.Total)
	}
	if got.Note != "net 45" {
		t.Fatalf("expected trimmed note, got %q", got.Note)
	}
	want := time.Date(2024, 2, 14, 23, 59, 59, 0, time.UTC)
	if !got.DefaultDeadline.Equal(want) {
		t.Fatalf("expected default deadline %v, got %v", want, got.DefaultDeadline)
	}
}

func TestObligationRequestUseCase_Decide_Checks(t *testing.T) {
	t.Run("invalid decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRequestUseCase(ctrl)

		_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: "maybe"})
		if !errors.Is(err, ErrInvalidDecision) {
			t.Fatalf("expected ErrInvalidDecision, got %v", err)
		}
	})

	t.Run("empty request id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _ := newRequestUseCase(ctrl)

		_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "", Decision: entities.DecisionAccept})
		if !errors.Is(err, ErrInvalidRequestID) {
			t.Fatalf("expected ErrInvalidRequestID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(entities.ObligationRequest{}, nil)

		_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionAccept})
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	for _, caller := range []entities.Caller{otherVendor, companyA} {
		t.Run("forbidden for "+caller.OrgID, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, repo, _ := newRequestUseCase(ctrl)

			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)

			_, err := uc.Decide(context.Background(), caller, DecideCommand{RequestID: "req-1", Decision: entities.DecisionAccept})
			if !errors.Is(err, ErrNotOwnerVendor) || !errors.Is(err, ErrForbidden) {
				t.Fatalf("expected ErrNotOwnerVendor, got %v", err)
			}
		})
	}

	for _, status := range []entities.RequestStatus{entities.RequestStatusAccepted, entities.RequestStatusDeclined} {
		t.Run("already "+string(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, repo, _ := newRequestUseCase(ctrl)

			r := pendingRequest()
			r.Status = status
			repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

			_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionDecline})
			if !errors.Is(err, ErrAlreadyDecided) {
				t.Fatalf("expected ErrAlreadyDecided, got %v", err)
			}
		})
	}
}

func TestObligationRequestUseCase_Decide_Decline(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
		repo.EXPECT().Decline(gomock.Any(), gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, r entities.ObligationRequest, at time.Time) (entities.ObligationRequest, error) {
				r.Status = entities.RequestStatusDeclined
				r.DecidedAt = &at
				return r, nil
			},
		)

		res, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionDecline})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Request.Status != entities.RequestStatusDeclined || res.Obligation != nil {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("lost race to another decision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
		repo.EXPECT().Decline(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ObligationRequest{}, interfaces.ErrStaleWrite)

		_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionDecline})
		if !errors.Is(err, ErrAlreadyDecided) {
			t.Fatalf("expected ErrAlreadyDecided, got %v", err)
		}
	})
}

func TestObligationRequestUseCase_Decide_Accept(t *testing.T) {
	acceptEcho := func(_ context.Context, r entities.ObligationRequest, _ entities.PaymentObligation) (entities.ObligationRequest, error) {
		r.Status = entities.RequestStatusAccepted
		return r, nil
	}

	t.Run("empty note uses default deadline even with custom one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		custom := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
		repo.EXPECT().AcceptWithObligation(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(acceptEcho)

		res, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionAccept, CustomDeadline: &custom})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		o := res.Obligation
		if o == nil {
			t.Fatalf("expected obligation")
		}
		want := time.Date(2024, 2, 14, 23, 59, 59, 0, time.UTC)
		if !o.PaymentDeadline.Equal(want) {
			t.Fatalf("expected deadline %v, got %v", want, o.PaymentDeadline)
		}
		if o.AmountDue != 10000 || o.Total != 10000 || o.Status != entities.ObligationStatusUnpaid || o.Version != 0 {
			t.Fatalf("unexpected obligation: %+v", o)
		}
		if o.RequestID != "req-1" || o.VendorID != vendorV.OrgID || o.RequesterID != companyA.OrgID || o.CatalogItemID != "item-1" {
			t.Fatalf("unexpected references: %+v", o)
		}
		if res.Request.Status != entities.RequestStatusAccepted {
			t.Fatalf("expected accepted request, got %s", res.Request.Status)
		}
	})

	t.Run("note requires custom deadline and leaves request pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		r := pendingRequest()
		r.Note = "net 60"
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

		_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionAccept})
		if !errors.Is(err, ErrDeadlineRequired) || !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrDeadlineRequired, got %v", err)
		}
	})

	t.Run("note with custom deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		r := pendingRequest()
		r.Note = "net 60"
		custom := time.Date(2024, 3, 20, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		repo.EXPECT().AcceptWithObligation(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(acceptEcho)

		res, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionAccept, CustomDeadline: &custom})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2024, 3, 20, 23, 59, 59, 0, time.UTC)
		if !res.Obligation.PaymentDeadline.Equal(want) {
			t.Fatalf("expected %v, got %v", want, res.Obligation.PaymentDeadline)
		}
	})

	t.Run("concurrent accept loses on uniqueness constraint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)
		repo.EXPECT().AcceptWithObligation(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.ObligationRequest{}, interfaces.ErrDuplicateKey)

		_, err := uc.Decide(context.Background(), vendorV, DecideCommand{RequestID: "req-1", Decision: entities.DecisionAccept})
		if !errors.Is(err, ErrObligationAlreadyExists) || !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrObligationAlreadyExists, got %v", err)
		}
	})
}

func TestObligationRequestUseCase_GetByID(t *testing.T) {
	t.Run("counterparties can read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil).Times(2)

		for _, c := range []entities.Caller{companyA, vendorV} {
			if _, err := uc.GetByID(context.Background(), c, "req-1"); err != nil {
				t.Fatalf("unexpected error for %s: %v", c.OrgID, err)
			}
		}
	})

	t.Run("others cannot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, repo, _ := newRequestUseCase(ctrl)

		repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pendingRequest(), nil)

		_, err := uc.GetByID(context.Background(), companyB, "req-1")
		if !errors.Is(err, ErrNotCounterparty) {
			t.Fatalf("expected ErrNotCounterparty, got %v", err)
		}
	})
}
