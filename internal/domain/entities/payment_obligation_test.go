package entities

import "testing"

func TestStatusForDue(t *testing.T) {
	cases := []struct {
		total, due int64
		want       ObligationStatus
	}{
		{10000, 10000, ObligationStatusUnpaid},
		{10000, 6000, ObligationStatusPartiallyPaid},
		{10000, 1, ObligationStatusPartiallyPaid},
		{10000, 0, ObligationStatusPaid},
	}
	for _, tc := range cases {
		if got := StatusForDue(tc.total, tc.due); got != tc.want {
			t.Fatalf("StatusForDue(%d, %d) = %s, want %s", tc.total, tc.due, got, tc.want)
		}
	}
}

func TestPaymentObligation_IsCounterparty(t *testing.T) {
	o := PaymentObligation{VendorID: "vendor-v", RequesterID: "company-a"}

	cases := []struct {
		caller Caller
		want   bool
	}{
		{Caller{OrgID: "vendor-v", OrgType: OrgTypeVendor}, true},
		{Caller{OrgID: "company-a", OrgType: OrgTypeCompany}, true},
		{Caller{OrgID: "vendor-v", OrgType: OrgTypeCompany}, false},
		{Caller{OrgID: "company-b", OrgType: OrgTypeCompany}, false},
	}
	for _, tc := range cases {
		if got := o.IsCounterparty(tc.caller); got != tc.want {
			t.Fatalf("IsCounterparty(%+v) = %v, want %v", tc.caller, got, tc.want)
		}
	}
}

func TestPaymentObligation_Balance(t *testing.T) {
	o := PaymentObligation{ID: "ob-1", RequestID: "req-1", Total: 10000, AmountDue: 0, Status: ObligationStatusPaid}

	b := o.Balance()
	if b.ObligationID != "ob-1" || b.AmountDue != 0 || b.Status != ObligationStatusPaid {
		t.Fatalf("unexpected balance: %+v", b)
	}
	if !o.IsCleared() {
		t.Fatalf("expected cleared")
	}
}
