package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

type providerClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier validates provider-issued HS256 tokens locally with a shared
// secret. Suited to self-hosted deployments where the token issuer and this
// service share a key; no network round trip per request.
type JWTVerifier struct {
	secretKey []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secretKey: []byte(secret)}
}

func (verifier *JWTVerifier) Verify(_ context.Context, token string) (Claims, error) {
	claims := &providerClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return verifier.secretKey, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrTokenRejected
	}

	return Claims{
		SubjectID: claims.Subject,
		Email:     claims.Email,
	}, nil
}
