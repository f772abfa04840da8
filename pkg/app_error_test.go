package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	err := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause")
	}
	body := err.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if err.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected error string: %q", err.Error())
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "not found", http.StatusNotFound)
	if simple.HTTPStatus != http.StatusNotFound || simple.Unwrap() != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
