package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/foyerhq/foyer-client/internal/config"
	"github.com/foyerhq/foyer-client/internal/logger"
	"github.com/foyerhq/foyer-client/models"
)

// HTTPClient talks to the Foyer API over resty. It implements both [AuthAPI]
// and [HouseholdAPI] and holds no session state: bearer tokens arrive as
// call arguments.
type HTTPClient struct {
	client *resty.Client
	logger *logger.Logger
}

var (
	_ AuthAPI      = (*HTTPClient)(nil)
	_ HouseholdAPI = (*HTTPClient)(nil)
)

// NewHTTPClient builds an [HTTPClient] from the adapter configuration.
func NewHTTPClient(cfg config.ClientAdapter, logger *logger.Logger) *HTTPClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{client: cli, logger: logger}
}

// Login implements [AuthAPI].
func (h *HTTPClient) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(creds).
		Post("/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	return auth, nil
}

// Signup implements [AuthAPI].
func (h *HTTPClient) Signup(ctx context.Context, data models.SignupData) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(data).
		Post("/auth/signup")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode signup response: %w", err)
	}

	return auth, nil
}

// Logout implements [AuthAPI].
func (h *HTTPClient) Logout(ctx context.Context, accessToken string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post("/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// CurrentUser implements [AuthAPI].
func (h *HTTPClient) CurrentUser(ctx context.Context, accessToken string) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get("/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return user, nil
}

// RefreshTokens implements [AuthAPI].
func (h *HTTPClient) RefreshTokens(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"refresh_token": refreshToken}).
		Post("/auth/refresh")
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh tokens request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenPair{}, err
	}

	var pair models.TokenPair
	if err = json.Unmarshal(resp.Body(), &pair); err != nil {
		return models.TokenPair{}, fmt.Errorf("decode refresh response: %w", err)
	}

	return pair, nil
}

// GetAll implements [HouseholdAPI].
func (h *HTTPClient) GetAll(ctx context.Context, accessToken string) ([]models.Household, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get("/households/")
	if err != nil {
		return nil, fmt.Errorf("get households request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var households []models.Household
	if err = json.Unmarshal(resp.Body(), &households); err != nil {
		return nil, fmt.Errorf("decode households response: %w", err)
	}

	return households, nil
}

// apiErrorBody covers the two error payload shapes the API produces:
// FastAPI's {"detail": ...} and the application handler's
// {"error": {"code": ..., "message": ...}}.
type apiErrorBody struct {
	Detail json.RawMessage `json:"detail"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	return &APIError{
		Status:  resp.StatusCode(),
		Message: extractMessage(resp.Body()),
	}
}

// extractMessage pulls a human-readable message out of an error response
// body. Returns "" when the body holds none worth showing.
func extractMessage(body []byte) string {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}

	if parsed.Error != nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}

	// detail is a plain string for HTTPException errors; validation errors
	// put a list here, which is not display material.
	var detail string
	if err := json.Unmarshal(parsed.Detail, &detail); err == nil {
		return detail
	}

	return ""
}
