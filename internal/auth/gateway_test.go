package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, secret []byte) (*Gateway, *TokenIssuer) {
	t.Helper()
	return NewGateway(NewTokenVerifier(secret)), NewTokenIssuer(secret, testValidity)
}

func TestGateway_Authenticate(t *testing.T) {
	secret := []byte("test-secret")
	gateway, issuer := newTestGateway(t, secret)

	userID := uuid.New()
	token, err := issuer.Issue(userID, time.Now())
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		want    uuid.UUID
		wantErr error
	}{
		{
			name:   "bearer prefix",
			header: "Bearer " + token,
			want:   userID,
		},
		{
			name:   "bare token",
			header: token,
			want:   userID,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrMissingToken,
		},
		{
			name:    "bearer prefix with no token",
			header:  "Bearer ",
			wantErr: ErrMissingToken,
		},
		{
			name:    "garbage token",
			header:  "Bearer not-a-token",
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gateway.Authenticate(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGateway_ExpiredTokenCollapsesToInvalid(t *testing.T) {
	secret := []byte("test-secret")
	gateway, issuer := newTestGateway(t, secret)

	token, err := issuer.Issue(uuid.New(), time.Now().Add(-2*testValidity))
	require.NoError(t, err)

	// The external error never says why the token was rejected.
	_, err = gateway.Authenticate("Bearer " + token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestGateway_ForeignSecretRejected(t *testing.T) {
	gateway, _ := newTestGateway(t, []byte("server-secret"))
	foreignIssuer := NewTokenIssuer([]byte("attacker-secret"), testValidity)

	token, err := foreignIssuer.Issue(uuid.New(), time.Now())
	require.NoError(t, err)

	_, err = gateway.Authenticate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
