package services

import (
	"admindash_backend/internal/auth"
	"admindash_backend/internal/logger"
	"admindash_backend/internal/models"
	"admindash_backend/internal/services/dto"
	"admindash_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type AuthServiceImpl struct {
	verifier auth.CredentialVerifier
	tokens   *auth.TokenIssuer
	activity ActivityLogService
}

func NewAuthService(verifier auth.CredentialVerifier, tokens *auth.TokenIssuer, activity ActivityLogService) AuthService {
	return &AuthServiceImpl{
		verifier: verifier,
		tokens:   tokens,
		activity: activity,
	}
}

// Login checks the shared admin secret and issues a session token. Both
// outcomes are audited; audit failures never change the login result.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if !s.verifier.Verify(req.Password) {
		if err := s.activity.Record(
			models.ActorTypeSystem,
			"Failed admin login attempt",
			models.EntityTypeSystem,
			nil, nil, nil,
		); err != nil {
			logger.Error("failed to write audit log for failed login", "error", err)
		}
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.activity.Record(
		models.ActorTypeAdmin,
		"Admin login successful",
		models.EntityTypeSystem,
		nil, nil, nil,
	); err != nil {
		logger.Error("failed to write audit log for successful login", "error", err)
	}

	token, err := s.tokens.Issue()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{Token: token}, nil
}
