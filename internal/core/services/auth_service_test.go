package services

import (
	"testing"

	"scholarchain/internal/config"
	"scholarchain/internal/core/domain"
	"scholarchain/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authConfigForTest() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			SessionTokenMins: 60,
		},
		Roles: config.RoleKeyConfig{
			ProviderKey:  "provider-key",
			ApplicantKey: "applicant-key",
		},
	}
}

func TestCreateSession(t *testing.T) {
	cfg := authConfigForTest()
	svc, err := NewAuthService(cfg)
	require.NoError(t, err)

	tests := []struct {
		name     string
		roleKey  string
		wantRole string
	}{
		{name: "provider key", roleKey: "provider-key", wantRole: RoleProvider},
		{name: "applicant key", roleKey: "applicant-key", wantRole: RoleApplicant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := svc.CreateSession(testProviderAddress, tt.roleKey)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRole, session.Role)
			assert.Equal(t, testProviderAddress, session.Address)

			claims, err := jwt.ValidateSessionToken(session.Token, cfg.JWT.Secret)
			require.NoError(t, err)
			assert.Equal(t, testProviderAddress, claims.Address)
			assert.Equal(t, tt.wantRole, claims.Role)
		})
	}
}

func TestCreateSession_WrongRoleKey(t *testing.T) {
	svc, err := NewAuthService(authConfigForTest())
	require.NoError(t, err)

	_, err = svc.CreateSession(testProviderAddress, "not-a-key")
	require.ErrorIs(t, err, domain.ErrInvalidRoleKey)
}

func TestCreateSession_MissingFields(t *testing.T) {
	svc, err := NewAuthService(authConfigForTest())
	require.NoError(t, err)

	_, err = svc.CreateSession("", "provider-key")
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "address", validationErr.Field)

	_, err = svc.CreateSession(testProviderAddress, "")
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "roleKey", validationErr.Field)
}
