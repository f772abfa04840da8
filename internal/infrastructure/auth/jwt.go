package auth

import (
	"errors"
	"time"

	"trade_credit/internal/domain/entities"
	"trade_credit/internal/infrastructure/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInvalidClaims    = errors.New("invalid token claims")
	ErrTokenNotYetValid = errors.New("token is not yet valid")
	ErrMissingUserID    = errors.New("missing user_id in claims")
	ErrMissingOrgID     = errors.New("missing org_id in claims")
	ErrInvalidOrgType   = errors.New("org_type must be vendor or company")
)

// Claims carries the caller identity issued by the session layer.
type Claims struct {
	jwt.RegisteredClaims
	UserID  string `json:"user_id"`
	OrgID   string `json:"org_id"`
	OrgType string `json:"org_type"`
}

// JWTService validates HS256 bearer tokens.
type JWTService struct {
	secret []byte
	issuer string
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{secret: []byte(cfg.Secret), issuer: cfg.Issuer}
}

// GenerateToken signs a token for caller. Used by local tooling and tests.
func (s *JWTService) GenerateToken(caller entities.Caller, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   caller.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:  caller.UserID,
		OrgID:   caller.OrgID,
		OrgType: string(caller.OrgType),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken parses tokenString and returns the caller it identifies.
func (s *JWTService) ValidateToken(tokenString string) (entities.Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entities.Caller{}, ErrExpiredToken
		}
		if errors.Is(err, jwt.ErrTokenNotValidYet) {
			return entities.Caller{}, ErrTokenNotYetValid
		}
		return entities.Caller{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.Caller{}, ErrInvalidClaims
	}
	if claims.UserID == "" {
		return entities.Caller{}, ErrMissingUserID
	}
	if claims.OrgID == "" {
		return entities.Caller{}, ErrMissingOrgID
	}
	orgType := entities.OrgType(claims.OrgType)
	if !orgType.IsValid() {
		return entities.Caller{}, ErrInvalidOrgType
	}

	return entities.Caller{UserID: claims.UserID, OrgID: claims.OrgID, OrgType: orgType}, nil
}
