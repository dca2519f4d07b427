package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// OperatorRole is the only role accepted on operator endpoints
const OperatorRole = "operator"

// OperatorClaims represents the claims in an operator JWT
type OperatorClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
