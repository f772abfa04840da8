package usecase

import "errors"

// ErrorKind groups domain errors by how callers should react to them.
type ErrorKind string

const (
	KindNotFound          ErrorKind = "not_found"
	KindForbidden         ErrorKind = "forbidden"
	KindInvalidInput      ErrorKind = "invalid_input"
	KindConflict          ErrorKind = "conflict"
	KindAmountExceedsDue  ErrorKind = "amount_exceeds_due"
	KindCredentialInvalid ErrorKind = "credential_invalid"
)

// DomainError is a settlement failure scoped to a single request or obligation.
// Errors with an empty Code are kind sentinels: errors.Is(err, ErrConflict) is
// true for every conflict.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == "" && t.Kind == e.Kind
}

func newDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

var (
	ErrNotFound          = &DomainError{Kind: KindNotFound, Message: "not found"}
	ErrForbidden         = &DomainError{Kind: KindForbidden, Message: "forbidden"}
	ErrInvalidInput      = &DomainError{Kind: KindInvalidInput, Message: "invalid input"}
	ErrConflict          = &DomainError{Kind: KindConflict, Message: "conflict"}
	ErrAmountExceedsDue  = newDomainError(KindAmountExceedsDue, "AMOUNT_EXCEEDS_DUE", "amount exceeds amount due")
	ErrCredentialInvalid = newDomainError(KindCredentialInvalid, "CREDENTIAL_INVALID", "credential check failed")
)

var (
	ErrRequestNotFound     = newDomainError(KindNotFound, "REQUEST_NOT_FOUND", "obligation request not found")
	ErrCatalogItemNotFound = newDomainError(KindNotFound, "CATALOG_ITEM_NOT_FOUND", "catalog item not found")
	ErrObligationNotFound  = newDomainError(KindNotFound, "OBLIGATION_NOT_FOUND", "payment obligation not found")

	ErrNotRequester    = newDomainError(KindForbidden, "NOT_REQUESTER", "caller is not the requesting company")
	ErrNotOwnerVendor  = newDomainError(KindForbidden, "NOT_OWNER_VENDOR", "caller is not the owning vendor")
	ErrNotCounterparty = newDomainError(KindForbidden, "NOT_COUNTERPARTY", "caller is not a counterparty")

	ErrInvalidRequestID    = newDomainError(KindInvalidInput, "INVALID_REQUEST_ID", "invalid request id")
	ErrInvalidObligationID = newDomainError(KindInvalidInput, "INVALID_OBLIGATION_ID", "invalid obligation id")
	ErrInvalidCatalogItem  = newDomainError(KindInvalidInput, "INVALID_CATALOG_ITEM_ID", "invalid catalog_item_id")
	ErrInvalidQuantity     = newDomainError(KindInvalidInput, "INVALID_QUANTITY", "quantity must be a positive integer")
	ErrInvalidDecision     = newDomainError(KindInvalidInput, "INVALID_DECISION", "decision must be accept or decline")
	ErrDeadlineRequired    = newDomainError(KindInvalidInput, "DEADLINE_REQUIRED", "custom deadline is required when the request carries a note")
	ErrInvalidAmount       = newDomainError(KindInvalidInput, "INVALID_AMOUNT", "amount must be a positive integer")
	ErrInvalidCatalogPrice = newDomainError(KindInvalidInput, "INVALID_CATALOG_PRICE", "catalog item has no positive price")
	ErrInvalidIdemKey      = newDomainError(KindInvalidInput, "INVALID_IDEMPOTENCY_KEY", "idempotency key must be 1-128 characters of [A-Za-z0-9._:-]")

	ErrDuplicateActiveRequest  = newDomainError(KindConflict, "DUPLICATE_ACTIVE_REQUEST", "a pending request for this item already exists")
	ErrAlreadyDecided          = newDomainError(KindConflict, "ALREADY_DECIDED", "request was already decided")
	ErrObligationAlreadyExists = newDomainError(KindConflict, "OBLIGATION_ALREADY_EXISTS", "an obligation already exists for this request")
	ErrObligationClosed        = newDomainError(KindConflict, "OBLIGATION_CLOSED", "obligation is already paid")
	ErrIdempotencyKeyReused    = newDomainError(KindConflict, "IDEMPOTENCY_KEY_REUSED", "idempotency key was used for a different payment")
	ErrConcurrentUpdate        = newDomainError(KindConflict, "CONCURRENT_UPDATE", "obligation was modified concurrently, retry")
)

// KindOf returns the kind of a domain error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
