package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/pacer/internal/identity"
	"github.com/terraincognita07/pacer/internal/models"
	"github.com/terraincognita07/pacer/internal/security"
)

type IdentityUserRepository interface {
	FindOrCreateBySubjectID(candidate *models.User) (models.User, bool, error)
	FindByID(userID uint) (models.User, error)
}

// IdentityService maps a raw bearer credential to a local user, provisioning
// the user on first sight of a subject id.
type IdentityService struct {
	verifier identity.TokenVerifier
	users    IdentityUserRepository
}

func NewIdentityService(verifier identity.TokenVerifier, users IdentityUserRepository) *IdentityService {
	return &IdentityService{verifier: verifier, users: users}
}

// ResolveBearer verifies the Authorization header value and returns the
// local user for the credential's subject, creating it if necessary.
func (service *IdentityService) ResolveBearer(ctx context.Context, header string) (models.User, error) {
	token, err := parseBearerToken(header)
	if err != nil {
		return models.User{}, err
	}

	claims, err := service.verifier.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, identity.ErrProviderUnavailable) {
			return models.User{}, ErrAuthUnavailable
		}
		return models.User{}, ErrAuthRejected
	}

	subjectID := strings.TrimSpace(claims.SubjectID)
	if subjectID == "" {
		return models.User{}, ErrAuthIncomplete
	}

	candidate := models.User{
		Username:     subjectID,
		SubjectID:    &subjectID,
		PasswordHash: unusablePasswordSentinel(),
		CreatedAt:    time.Now().UTC(),
	}
	if email := strings.TrimSpace(claims.Email); email != "" {
		candidate.Username = email
		candidate.Email = &email
	}

	user, _, err := service.users.FindOrCreateBySubjectID(&candidate)
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func parseBearerToken(header string) (string, error) {
	trimmed := strings.TrimSpace(header)
	if trimmed == "" {
		return "", ErrAuthMalformed
	}

	parts := strings.Fields(trimmed)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrAuthMalformed
	}
	return parts[1], nil
}

// unusablePasswordSentinel marks credential-only accounts. The leading "!"
// is never produced by any password hasher, so the value can never match a
// login attempt.
func unusablePasswordSentinel() string {
	random, err := security.RandomString(40, security.Alphanumeric)
	if err != nil {
		return "!"
	}
	return "!" + random
}
