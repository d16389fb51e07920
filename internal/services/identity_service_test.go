package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/terraincognita07/pacer/internal/identity"
	"github.com/terraincognita07/pacer/internal/models"
)

type stubVerifier struct {
	claims identity.Claims
	err    error
}

func (verifier *stubVerifier) Verify(context.Context, string) (identity.Claims, error) {
	return verifier.claims, verifier.err
}

type recordingUserRepository struct {
	nextID    uint
	bySubject map[string]models.User
	lastSeen  *models.User
}

func newRecordingUserRepository() *recordingUserRepository {
	return &recordingUserRepository{nextID: 1, bySubject: make(map[string]models.User)}
}

func (repo *recordingUserRepository) FindOrCreateBySubjectID(candidate *models.User) (models.User, bool, error) {
	repo.lastSeen = candidate
	if existing, found := repo.bySubject[*candidate.SubjectID]; found {
		return existing, false, nil
	}
	candidate.ID = repo.nextID
	repo.nextID++
	repo.bySubject[*candidate.SubjectID] = *candidate
	return *candidate, true, nil
}

func (repo *recordingUserRepository) FindByID(userID uint) (models.User, error) {
	for _, user := range repo.bySubject {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("not found")
}

func TestResolveBearerRejectsMalformedHeaders(t *testing.T) {
	service := NewIdentityService(&stubVerifier{}, newRecordingUserRepository())

	for _, header := range []string{"", "   ", "token-without-scheme", "Basic abc", "Bearer", "Bearer two tokens"} {
		if _, err := service.ResolveBearer(context.Background(), header); !errors.Is(err, ErrAuthMalformed) {
			t.Fatalf("header %q: expected ErrAuthMalformed, got %v", header, err)
		}
	}
}

func TestResolveBearerMapsVerifierErrors(t *testing.T) {
	rejected := NewIdentityService(&stubVerifier{err: identity.ErrTokenRejected}, newRecordingUserRepository())
	if _, err := rejected.ResolveBearer(context.Background(), "Bearer t"); !errors.Is(err, ErrAuthRejected) {
		t.Fatalf("expected ErrAuthRejected, got %v", err)
	}

	unavailable := NewIdentityService(&stubVerifier{err: identity.ErrProviderUnavailable}, newRecordingUserRepository())
	if _, err := unavailable.ResolveBearer(context.Background(), "Bearer t"); !errors.Is(err, ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable, got %v", err)
	}
}

func TestResolveBearerRequiresSubject(t *testing.T) {
	service := NewIdentityService(&stubVerifier{claims: identity.Claims{Email: "person@example.com"}}, newRecordingUserRepository())
	if _, err := service.ResolveBearer(context.Background(), "Bearer t"); !errors.Is(err, ErrAuthIncomplete) {
		t.Fatalf("expected ErrAuthIncomplete, got %v", err)
	}
}

func TestResolveBearerProvisionsCredentialOnlyUser(t *testing.T) {
	repo := newRecordingUserRepository()
	service := NewIdentityService(&stubVerifier{claims: identity.Claims{
		SubjectID: "provider-subject-5",
		Email:     "person@example.com",
	}}, repo)

	user, err := service.ResolveBearer(context.Background(), "bearer t")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Username != "person@example.com" {
		t.Fatalf("expected username from email, got %q", user.Username)
	}
	if user.Email == nil || *user.Email != "person@example.com" {
		t.Fatalf("expected email stored, got %v", user.Email)
	}
	if !strings.HasPrefix(repo.lastSeen.PasswordHash, "!") {
		t.Fatalf("expected unusable password sentinel, got %q", repo.lastSeen.PasswordHash)
	}

	again, err := service.ResolveBearer(context.Background(), "Bearer t")
	if err != nil {
		t.Fatalf("resolve again: %v", err)
	}
	if again.ID != user.ID {
		t.Fatalf("expected same user on repeat resolution, got %d then %d", user.ID, again.ID)
	}
}

func TestResolveBearerFallsBackToSubjectForUsername(t *testing.T) {
	repo := newRecordingUserRepository()
	service := NewIdentityService(&stubVerifier{claims: identity.Claims{SubjectID: "provider-subject-6"}}, repo)

	user, err := service.ResolveBearer(context.Background(), "Bearer t")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if user.Username != "provider-subject-6" {
		t.Fatalf("expected subject id as username, got %q", user.Username)
	}
	if user.Email != nil {
		t.Fatalf("expected no email, got %v", *user.Email)
	}
}
