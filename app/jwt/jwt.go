package jwtutil

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. Admin tokens carry only the role; the id
// claim is omitted because the admin identity is not a stored user.
type Claims struct {
	UserID uint   `json:"id,omitempty"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type Signer struct {
	Secret []byte
	Issuer string
	ExpMin int
}

func (s *Signer) sign(claims Claims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.ExpMin) * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// SignUser issues a token for a stored user: {id, role}.
func (s *Signer) SignUser(userID uint, role string) (string, error) {
	return s.sign(Claims{UserID: userID, Role: role})
}

// SignAdmin issues a role-only token for the static administrator.
func (s *Signer) SignAdmin(role string) (string, error) {
	return s.sign(Claims{Role: role})
}

func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) { return s.Secret, nil })
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
