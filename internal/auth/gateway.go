package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Errors surfaced to callers of the Gateway. The specific verification
// failure (expired vs bad signature vs malformed) is logged but never
// returned, so the external response stays uniform.
var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// Gateway is the single choke point every protected request passes through.
// It normalizes the Authorization header, verifies the token and yields the
// authenticated user identifier. It never touches the database; handlers
// that need the full user record look it up by identifier themselves.
type Gateway struct {
	verifier *TokenVerifier
	now      func() time.Time
}

func NewGateway(verifier *TokenVerifier) *Gateway {
	return &Gateway{verifier: verifier, now: time.Now}
}

// Authenticate accepts the raw Authorization header value, either as a bare
// token or in "Bearer <token>" form. Existing clients send both.
func (g *Gateway) Authenticate(rawHeader string) (uuid.UUID, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(rawHeader, "Bearer "))
	if tokenString == "" {
		return uuid.Nil, ErrMissingToken
	}

	userID, err := g.verifier.Verify(tokenString, g.now())
	if err != nil {
		log.Printf("ERROR [auth.Gateway] token rejected: %v", err)
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
