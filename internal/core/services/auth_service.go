package services

import (
	"errors"
	"fmt"

	"scholarchain/internal/config"
	"scholarchain/internal/core/domain"
	"scholarchain/internal/pkg/jwt"
	"scholarchain/internal/pkg/password"
)

// Wallet roles
const (
	RoleProvider  = "provider"
	RoleApplicant = "applicant"
)

// AuthService exchanges a wallet address plus a role key for a session
// token. The address itself is opaque and never validated; the role key
// is the only thing checked, and only bcrypt hashes of the configured
// keys are kept in memory.
type AuthService struct {
	cfg              *config.Config
	providerKeyHash  string
	applicantKeyHash string
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) (*AuthService, error) {
	providerHash, err := password.Hash(cfg.Roles.ProviderKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash provider role key: %w", err)
	}
	applicantHash, err := password.Hash(cfg.Roles.ApplicantKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash applicant role key: %w", err)
	}

	return &AuthService{
		cfg:              cfg,
		providerKeyHash:  providerHash,
		applicantKeyHash: applicantHash,
	}, nil
}

// SessionOutput represents a created wallet session
type SessionOutput struct {
	Token   string `json:"token"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

// CreateSession verifies the role key and issues a session token bound
// to the wallet address.
func (s *AuthService) CreateSession(address, roleKey string) (*SessionOutput, error) {
	if address == "" {
		return nil, domain.NewValidationError("address", "must not be empty")
	}
	if roleKey == "" {
		return nil, domain.NewValidationError("roleKey", "must not be empty")
	}

	var role string
	switch {
	case password.Verify(roleKey, s.providerKeyHash):
		role = RoleProvider
	case password.Verify(roleKey, s.applicantKeyHash):
		role = RoleApplicant
	default:
		return nil, domain.ErrInvalidRoleKey
	}

	token, err := jwt.GenerateSessionToken(address, role, s.cfg.JWT.Secret, s.cfg.JWT.SessionTokenMins)
	if err != nil {
		return nil, errors.New("failed to issue session token")
	}

	return &SessionOutput{
		Token:   token,
		Address: address,
		Role:    role,
	}, nil
}
