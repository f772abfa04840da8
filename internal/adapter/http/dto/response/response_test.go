package response

import (
	"testing"
	"time"

	"trade_credit/internal/domain/entities"
)

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{
		0:      "0.00",
		5:      "0.05",
		4000:   "40.00",
		123456: "1234.56",
	}
	for in, want := range cases {
		if got := FormatAmount(in); got != want {
			t.Fatalf("FormatAmount(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestFromDecision(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	r := entities.ObligationRequest{ID: "req-1", Total: 10000, Status: entities.RequestStatusDeclined, DecidedAt: &now}

	res := FromDecision(r, nil)
	if res.Request.ID != "req-1" || res.Request.TotalDisplay != "100.00" || res.Obligation != nil {
		t.Fatalf("unexpected decline response: %+v", res)
	}

	o := entities.PaymentObligation{ID: "ob-1", Total: 10000, AmountDue: 10000, Status: entities.ObligationStatusUnpaid}
	res = FromDecision(r, &o)
	if res.Obligation == nil || res.Obligation.ID != "ob-1" || res.Obligation.AmountDueDisplay != "100.00" {
		t.Fatalf("unexpected accept response: %+v", res)
	}
}

func TestFromBalance(t *testing.T) {
	b := FromBalance(entities.Balance{ObligationID: "ob-1", Total: 10000, AmountDue: 6000, Status: entities.ObligationStatusPartiallyPaid})
	if b.AmountPaid != 4000 || b.AmountDueDisplay != "60.00" || b.Status != "partially_paid" {
		t.Fatalf("unexpected balance: %+v", b)
	}
}

func TestFromTransactionPage(t *testing.T) {
	empty := FromTransactionPage(entities.TransactionPage{})
	if empty.Items == nil || len(empty.Items) != 0 {
		t.Fatalf("expected empty non-nil items")
	}

	page := FromTransactionPage(entities.TransactionPage{
		Items:     []entities.PaymentTransaction{{ID: "tx-1", Sequence: 1, AmountPaid: 4000}},
		NextAfter: 1,
		HasMore:   true,
	})
	if len(page.Items) != 1 || page.Items[0].AmountPaidDisplay != "40.00" || !page.HasMore {
		t.Fatalf("unexpected page: %+v", page)
	}
}
