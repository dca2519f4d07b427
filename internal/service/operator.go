package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pageza/promptchef/backend/internal/types"
)

const operatorIssuer = "promptchef"

// OperatorTokenService issues and validates HS256 operator tokens
type OperatorTokenService struct {
	secret []byte
}

// NewOperatorTokenService creates a new OperatorTokenService instance
func NewOperatorTokenService(secret string) *OperatorTokenService {
	return &OperatorTokenService{secret: []byte(secret)}
}

// GenerateToken signs an operator token for subject valid for ttl
func (s *OperatorTokenService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &types.OperatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    operatorIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: types.OperatorRole,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign operator token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses tokenString and checks signature, expiry, issuer and role
func (s *OperatorTokenService) ValidateToken(tokenString string) (*types.OperatorClaims, error) {
	claims := &types.OperatorClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(operatorIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	if claims.Role != types.OperatorRole {
		return nil, errors.New("token does not carry the operator role")
	}
	return claims, nil
}
