package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hireline/hireline/pkg/errx"
	"github.com/hireline/hireline/pkg/kernel"
)

// Claims is the identity carried by a portal access token.
type Claims struct {
	UserID    kernel.UserID
	Role      kernel.ActorRole
	ExpiresAt time.Time
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates portal access tokens. Session issuance
// proper lives in the identity service; this service exists so the API can
// mint tokens in development and validate them on every request.
type JWTService struct {
	secretKey []byte
	tokenTTL  time.Duration
	issuer    string
}

// NewJWTService creates a token service from the given signing config.
func NewJWTService(secretKey string, tokenTTL time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		tokenTTL:  tokenTTL,
		issuer:    issuer,
	}
}

// GenerateToken mints a signed access token for a user with its portal role.
func (s *JWTService) GenerateToken(userID kernel.UserID, role kernel.ActorRole) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign access token", errx.TypeInternal)
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token, returning its claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	var claims tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken().WithCause(err)
	}

	role := kernel.ActorRole(claims.Role)
	if !role.IsValid() {
		return nil, ErrInvalidToken().WithDetail("role", claims.Role)
	}

	return &Claims{
		UserID:    kernel.UserID(claims.Subject),
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
