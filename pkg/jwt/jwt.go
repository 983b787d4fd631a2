package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents the claims in a chat token. The username is the only
// identity claim; everything else is standard registered metadata.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service issues and validates signed chat tokens
type Service struct {
	secretKey []byte
	issuer    string
	audience  string
	expiry    time.Duration
}

// NewService creates a new JWT service. The expiry defaults to one hour when
// zero is given.
func NewService(secretKey, issuer, audience string, expiry time.Duration) *Service {
	if expiry == 0 {
		expiry = time.Hour
	}

	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		expiry:    expiry,
	}
}

// GenerateToken generates a signed token carrying the given username. The
// username is embedded exactly as submitted; no canonicalization happens here.
func (s *Service) GenerateToken(username string) (string, error) {
	now := time.Now()

	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a token string and returns its claims. Signature,
// lifetime, issuer and audience are all checked.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secretKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
