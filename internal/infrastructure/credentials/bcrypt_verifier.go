package credentials

import (
	"context"
	"errors"

	"trade_credit/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// ICredentialStore reads the stored bcrypt hash for a user. An empty hash
// means the user has no payment credential.
type ICredentialStore interface {
	GetPasswordHash(ctx context.Context, userID string) (string, error)
}

// BcryptVerifier checks a payer's secret against the stored bcrypt hash.
type BcryptVerifier struct {
	store ICredentialStore
}

var _ interfaces.ICredentialVerifier = (*BcryptVerifier)(nil)

func NewBcryptVerifier(store ICredentialStore) *BcryptVerifier {
	return &BcryptVerifier{store: store}
}

func (v *BcryptVerifier) Verify(ctx context.Context, userID, secret string) (bool, error) {
	if userID == "" || secret == "" {
		return false, nil
	}
	hash, err := v.store.GetPasswordHash(ctx, userID)
	if err != nil {
		return false, err
	}
	if hash == "" {
		return false, nil
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// HashSecret returns the bcrypt hash stored for a credential.
func HashSecret(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
