package service

import (
	"testing"

	"github.com/mvcampos/painel-iptv/internal/config"
	"github.com/mvcampos/painel-iptv/internal/domain"
	"github.com/mvcampos/painel-iptv/internal/metrics"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.OwnerPassword = "3str4NH$"
	cfg.Auth.PartnerPassword = "3str4NH@"

	return NewAuthService(cfg, metrics.NoopClientMetrics{}, logger.New(logger.ERROR))
}

func TestLoginOwnerPassword(t *testing.T) {
	svc := newTestAuthService(t)

	token, session, err := svc.Login("3str4NH$")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, domain.ScopeOwner, session.Scope)
}

func TestLoginPartnerPassword(t *testing.T) {
	svc := newTestAuthService(t)

	_, session, err := svc.Login("3str4NH@")
	require.NoError(t, err)
	assert.Equal(t, domain.ScopePartner, session.Scope)
}

func TestLoginRejectsNearMisses(t *testing.T) {
	svc := newTestAuthService(t)

	for _, password := range []string{"", "3str4NH", "3str4nh$", "3str4NH$ ", "senha"} {
		_, _, err := svc.Login(password)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials, "password %q", password)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(t)

	token, _, err := svc.Login("3str4NH@")
	require.NoError(t, err)

	session, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopePartner, session.Scope)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t)

	_, err := svc.ValidateToken("nem-um-token")
	assert.Error(t, err)

	// Token assinado com outro segredo
	other := newTestAuthService(t)
	other.cfg.Auth.JWTSecret = "outro-segredo"
	token, _, err := other.Login("3str4NH$")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
