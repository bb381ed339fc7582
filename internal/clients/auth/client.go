package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client exchanges a Google credential for a backend session token.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: baseURL, httpClient: &http.Client{}}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

type loginRequest struct {
	Provider   string `json:"provider"`
	Credential string `json:"credential"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *Client) Login(ctx context.Context, credential string) (string, error) {

	if credential == "" {
		return "", fmt.Errorf("google credential is required")
	}

	payload, err := json.Marshal(loginRequest{Provider: "google", Credential: credential})
	if err != nil {
		return "", fmt.Errorf("error encoding login request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/google/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("login failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	var response loginResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("error decoding JSON response: %v", err)
	}
	if response.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	return response.Token, nil
}

// TokenStore holds the session token for the lifetime of the process. It
// satisfies the backend client's TokenSource.
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

func (s *TokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *TokenStore) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
