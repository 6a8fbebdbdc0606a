package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"serenity/internal/models/db_models"
	"serenity/internal/models/request_models"
	"serenity/internal/models/response_models"
	"serenity/pkg/utils"
)

// envelope mirrors the server's APIResponse with the data left raw so each
// call can decode into its own type.
type envelope struct {
	Status  string          `json:"status"`
	Code    int             `json:"code"`
	Message string          `json:"message,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// APIClient is a thin typed wrapper over the REST surface.
type APIClient struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (a *APIClient) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
}

func (a *APIClient) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	a.mu.RLock()
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	a.mu.RUnlock()

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// apiError folds HTTP statuses back into the shared error taxonomy so the
// coordinator can react without string matching.
func apiError(status int, message string) error {
	switch status {
	case http.StatusUnauthorized:
		return utils.ErrUnauthorized
	case http.StatusForbidden:
		return utils.ErrForbidden
	case http.StatusNotFound:
		return utils.ErrNotFound
	case http.StatusTooManyRequests:
		return utils.ErrTooManyAttempts
	default:
		if message == "" {
			message = "request failed"
		}
		return fmt.Errorf("%s (status %d)", message, status)
	}
}

func (a *APIClient) SignUp(ctx context.Context, req request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	var out response_models.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/auth/signup", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	var out response_models.AuthResponse
	if err := a.do(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) Me(ctx context.Context) (*response_models.AccountResponse, error) {
	var out response_models.AccountResponse
	if err := a.do(ctx, http.MethodGet, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) Logout(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (a *APIClient) Dashboard(ctx context.Context) (*response_models.DashboardResponse, error) {
	var out response_models.DashboardResponse
	if err := a.do(ctx, http.MethodGet, "/dashboard", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) Sessions(ctx context.Context) ([]db_models.TherapySession, error) {
	var out []db_models.TherapySession
	if err := a.do(ctx, http.MethodGet, "/sessions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *APIClient) CreateSession(ctx context.Context, req request_models.CreateSessionRequest) (*db_models.TherapySession, error) {
	var out db_models.TherapySession
	if err := a.do(ctx, http.MethodPost, "/sessions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) SubmitFeedback(ctx context.Context, sessionID string, req request_models.FeedbackRequest) (*response_models.FeedbackResponse, error) {
	var out response_models.FeedbackResponse
	if err := a.do(ctx, http.MethodPut, "/sessions/"+sessionID+"/feedback", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *APIClient) Notifications(ctx context.Context) ([]db_models.Notification, error) {
	var out []db_models.Notification
	if err := a.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (a *APIClient) MarkNotificationRead(ctx context.Context, notificationID string) error {
	return a.do(ctx, http.MethodPut, "/notifications/"+notificationID+"/read", nil, nil)
}
