package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"trade_credit/internal/adapter/http/handlers/mocks"
	"trade_credit/internal/domain/entities"
	"trade_credit/internal/usecase"

	"go.uber.org/mock/gomock"
)

func sampleRequest() entities.ObligationRequest {
	return entities.ObligationRequest{
		ID:              "req-1",
		CatalogItemID:   "item-1",
		VendorID:        "vendor-v",
		RequesterID:     "company-a",
		Quantity:        4,
		UnitPrice:       2500,
		Total:           10000,
		DefaultDeadline: testNow.AddDate(0, 0, 30),
		Status:          entities.RequestStatusPending,
		CreatedAt:       testNow,
	}
}

func TestObligationRequestHandler_CreateRequest(t *testing.T) {
	t.Run("no caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewObligationRequestHandler(mocks.NewMockIObligationRequestUseCase(ctrl), nil)

		r := newTestRouter(nil)
		r.POST("/v1/obligation-requests", h.CreateRequest)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests", `{"catalog_item_id":"item-1","quantity":4}`, nil)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewObligationRequestHandler(mocks.NewMockIObligationRequestUseCase(ctrl), nil)

		r := newTestRouter(&testCompany)
		r.POST("/v1/obligation-requests", h.CreateRequest)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests", `{"quantity":4}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIObligationRequestUseCase(ctrl)
		h := NewObligationRequestHandler(uc, nil)

		r := newTestRouter(&testCompany)
		r.POST("/v1/obligation-requests", h.CreateRequest)

		uc.EXPECT().Create(gomock.Any(), testCompany, gomock.Any()).Return(entities.ObligationRequest{}, usecase.ErrDuplicateActiveRequest)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests", `{"catalog_item_id":"item-1","quantity":4}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "DUPLICATE_ACTIVE_REQUEST" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIObligationRequestUseCase(ctrl)
		h := NewObligationRequestHandler(uc, nil)

		r := newTestRouter(&testCompany)
		r.POST("/v1/obligation-requests", h.CreateRequest)

		uc.EXPECT().
			Create(gomock.Any(), testCompany, usecase.CreateRequestCommand{CatalogItemID: "item-1", Quantity: 4, Note: "net 45"}).
			Return(sampleRequest(), nil)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests", `{"catalog_item_id":"item-1","quantity":4,"note":"net 45"}`, nil)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "req-1" || body["total_display"] != "100.00" || body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestObligationRequestHandler_GetRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIObligationRequestUseCase(ctrl)
	h := NewObligationRequestHandler(uc, nil)

	r := newTestRouter(&testVendor)
	r.GET("/v1/obligation-requests/:request_id", h.GetRequest)

	uc.EXPECT().GetByID(gomock.Any(), testVendor, "req-1").Return(sampleRequest(), nil)
	uc.EXPECT().GetByID(gomock.Any(), testVendor, "req-2").Return(entities.ObligationRequest{}, usecase.ErrNotCounterparty)

	if w := doJSON(r, http.MethodGet, "/v1/obligation-requests/req-1", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/v1/obligation-requests/req-2", "", nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestObligationRequestHandler_DecideRequest(t *testing.T) {
	t.Run("bad deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewObligationRequestHandler(mocks.NewMockIObligationRequestUseCase(ctrl), nil)

		r := newTestRouter(&testVendor)
		r.POST("/v1/obligation-requests/:request_id/decision", h.DecideRequest)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests/req-1/decision", `{"decision":"accept","custom_deadline":"soon"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "INVALID_DEADLINE" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("deadline required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIObligationRequestUseCase(ctrl)
		h := NewObligationRequestHandler(uc, nil)

		r := newTestRouter(&testVendor)
		r.POST("/v1/obligation-requests/:request_id/decision", h.DecideRequest)

		uc.EXPECT().Decide(gomock.Any(), testVendor, gomock.Any()).Return(usecase.DecisionResult{}, usecase.ErrDeadlineRequired)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests/req-1/decision", `{"decision":"accept"}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("accept with custom deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIObligationRequestUseCase(ctrl)
		h := NewObligationRequestHandler(uc, time.UTC)

		r := newTestRouter(&testVendor)
		r.POST("/v1/obligation-requests/:request_id/decision", h.DecideRequest)

		accepted := sampleRequest()
		accepted.Status = entities.RequestStatusAccepted
		ob := entities.PaymentObligation{ID: "ob-1", RequestID: "req-1", Total: 10000, AmountDue: 10000, Status: entities.ObligationStatusUnpaid}

		uc.EXPECT().Decide(gomock.Any(), testVendor, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ entities.Caller, cmd usecase.DecideCommand) (usecase.DecisionResult, error) {
				if cmd.RequestID != "req-1" || cmd.Decision != entities.DecisionAccept {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				if cmd.CustomDeadline == nil || !cmd.CustomDeadline.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
					t.Fatalf("unexpected deadline: %v", cmd.CustomDeadline)
				}
				return usecase.DecisionResult{Request: accepted, Obligation: &ob}, nil
			})

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests/req-1/decision", `{"decision":"accept","custom_deadline":"2024-03-01"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		obligation, _ := body["obligation"].(map[string]any)
		if obligation["id"] != "ob-1" || obligation["amount_due_display"] != "100.00" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIObligationRequestUseCase(ctrl)
		h := NewObligationRequestHandler(uc, nil)

		r := newTestRouter(&testVendor)
		r.POST("/v1/obligation-requests/:request_id/decision", h.DecideRequest)

		uc.EXPECT().Decide(gomock.Any(), testVendor, gomock.Any()).Return(usecase.DecisionResult{}, usecase.ErrAlreadyDecided)

		w := doJSON(r, http.MethodPost, "/v1/obligation-requests/req-1/decision", `{"decision":"decline"}`, nil)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
