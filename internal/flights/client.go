package flights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Provider talks to the external flight search backend.
type Provider interface {
	// Authenticate exchanges the configured service credentials for a
	// bearer token.
	Authenticate(ctx context.Context) (string, error)

	// Search runs a round-trip search using a token from Authenticate.
	Search(ctx context.Context, token string, req SearchRequest) (*SearchResponse, error)
}

type httpProvider struct {
	cfg  Config
	http *http.Client
}

// NewHTTPProvider creates a Provider backed by the provider's v4 REST API.
func NewHTTPProvider(cfg Config) Provider {
	return &httpProvider{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMs) * time.Millisecond,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

type loginRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
	TenantID          string `json:"tenantId"`
}

type loginResponse struct {
	IDToken string `json:"idToken"`
}

func (p *httpProvider) Authenticate(ctx context.Context) (string, error) {
	if !p.cfg.HasCredentials() {
		return "", fmt.Errorf("%w: credentials not configured", ErrAuthFailed)
	}
	body := loginRequest{
		Email:             p.cfg.Email,
		Password:          p.cfg.Password,
		ReturnSecureToken: true,
		TenantID:          p.cfg.TenantID,
	}

	var resp loginResponse
	if err := p.postJSON(ctx, "/air/api/v4/login", "", body, &resp); err != nil {
		return "", fmt.Errorf("%w: %w", ErrAuthFailed, err)
	}
	if resp.IDToken == "" {
		return "", fmt.Errorf("%w: response carried no token", ErrAuthFailed)
	}
	return resp.IDToken, nil
}

func (p *httpProvider) Search(ctx context.Context, token string, req SearchRequest) (*SearchResponse, error) {
	var resp SearchResponse
	if err := p.postJSON(ctx, "/air/api/v4/search", token, req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}
	return &resp, nil
}

func (p *httpProvider) postJSON(ctx context.Context, path, token string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := p.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return fmt.Errorf("provider returned status %d: %s", httpResp.StatusCode, truncate(string(respBody), 200))
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
