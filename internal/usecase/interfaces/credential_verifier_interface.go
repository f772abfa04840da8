package interfaces

import "context"

// ICredentialVerifier re-checks a payer's secret before money moves.
type ICredentialVerifier interface {
	Verify(ctx context.Context, userID, secret string) (bool, error)
}
