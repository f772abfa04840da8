package interfaces

import "errors"

// Storage adapters report constraint outcomes with these errors so use cases can
// translate them into the same conflicts their pre-checks produce.
var (
	// ErrDuplicateKey means a uniqueness constraint rejected the write.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrStaleWrite means a conditional write lost its precondition
	// (status no longer pending, version moved, balance changed).
	ErrStaleWrite = errors.New("stale write")
)

var (
	// ErrLockNotObtained means another payment holds the obligation lock.
	ErrLockNotObtained = errors.New("lock not obtained")
	// ErrPaymentRejected means the payment provider refused the authorization.
	ErrPaymentRejected = errors.New("payment rejected by provider")
)
