package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/pacer/internal/db"
	"github.com/terraincognita07/pacer/internal/identity"
	"gorm.io/gorm"
)

// fakeVerifier stands in for the external identity provider: tokens are
// granted explicitly per test, everything else is rejected.
type fakeVerifier struct {
	mu          sync.Mutex
	tokens      map[string]identity.Claims
	unavailable bool
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{tokens: make(map[string]identity.Claims)}
}

func (verifier *fakeVerifier) Verify(_ context.Context, token string) (identity.Claims, error) {
	verifier.mu.Lock()
	defer verifier.mu.Unlock()

	if verifier.unavailable {
		return identity.Claims{}, identity.ErrProviderUnavailable
	}
	claims, ok := verifier.tokens[token]
	if !ok {
		return identity.Claims{}, identity.ErrTokenRejected
	}
	return claims, nil
}

func (verifier *fakeVerifier) grant(token string, subjectID string, email string) {
	verifier.mu.Lock()
	defer verifier.mu.Unlock()
	verifier.tokens[token] = identity.Claims{SubjectID: subjectID, Email: email}
}

func (verifier *fakeVerifier) setUnavailable(unavailable bool) {
	verifier.mu.Lock()
	defer verifier.mu.Unlock()
	verifier.unavailable = unavailable
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *fakeVerifier) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "pacer-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	verifier := newFakeVerifier()
	handler := NewHandler(database, verifier)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, database, verifier
}

func performRequest(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode %s %s body: %v", method, path, err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, payload)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()

	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, response.StatusCode)
	}
}
