package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultVerifyTimeout = 10 * time.Second

// RemoteVerifier asks an external verification endpoint to validate the
// credential. The provider is a black box: a 2xx answer with a subject is
// trusted, a 4xx means the credential is bad, anything else means the
// provider itself is unreachable.
type RemoteVerifier struct {
	endpoint string
	client   *http.Client
}

func NewRemoteVerifier(endpoint string, client *http.Client) *RemoteVerifier {
	if client == nil {
		client = &http.Client{Timeout: defaultVerifyTimeout}
	}
	return &RemoteVerifier{endpoint: endpoint, client: client}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
}

func (verifier *RemoteVerifier) Verify(ctx context.Context, token string) (Claims, error) {
	payload, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return Claims{}, fmt.Errorf("encode verify request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, verifier.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Claims{}, fmt.Errorf("build verify request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := verifier.client.Do(request)
	if err != nil {
		return Claims{}, ErrProviderUnavailable
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode >= 200 && response.StatusCode < 300:
		// fall through to decode
	case response.StatusCode >= 400 && response.StatusCode < 500:
		return Claims{}, ErrTokenRejected
	default:
		return Claims{}, ErrProviderUnavailable
	}

	var decoded verifyResponse
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		return Claims{}, ErrProviderUnavailable
	}

	return Claims{
		SubjectID: decoded.SubjectID,
		Email:     decoded.Email,
	}, nil
}
