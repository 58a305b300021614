package baas

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samidy/monosync/models"
)

// authResponse is the envelope returned by the auth endpoints.
type authResponse struct {
	Token  string           `json:"token"`
	Record *models.Identity `json:"record"`
}

// SignInWithPassword implements [AuthAPI].
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (models.AuthState, error) {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"identity": email, "password": password}).
		Post("/api/collections/users/auth-with-password")
	if err != nil {
		return models.AuthState{}, fmt.Errorf("sign-in request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.AuthState{}, err
	}

	state, err := decodeAuthState(resp.Body())
	if err != nil {
		return models.AuthState{}, err
	}

	c.SetToken(state.Token)
	return state, nil
}

// SignUp implements [AuthAPI]: account creation followed by an immediate
// sign-in, matching the service's two-step registration flow.
func (c *Client) SignUp(ctx context.Context, email, password string) (models.AuthState, error) {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{
			"email":           email,
			"password":        password,
			"passwordConfirm": password,
		}).
		Post(recordsPath(UsersCollection))
	if err != nil {
		return models.AuthState{}, fmt.Errorf("sign-up request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return models.AuthState{}, err
	}

	return c.SignInWithPassword(ctx, email, password)
}

// RequestPasswordReset implements [AuthAPI].
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"email": email}).
		Post("/api/collections/users/request-password-reset")
	if err != nil {
		return fmt.Errorf("password reset request: %w", err)
	}

	return mapAPIError(resp)
}

// SignOut implements [AuthAPI].
func (c *Client) SignOut() {
	c.SetToken("")
}

// Verify implements [TokenVerifier]. The supplied token is sent as the
// bearer credential to the auth-refresh endpoint; the retained client token
// is deliberately not used here, so the gate can verify arbitrary tokens.
func (c *Client) Verify(ctx context.Context, token string) (*models.Identity, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		Post("/api/collections/users/auth-refresh")
	if err != nil {
		return nil, fmt.Errorf("auth-refresh request: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: auth-refresh returned %d", ErrUnauthorized, resp.StatusCode())
	}

	var payload authResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode auth-refresh response: %w", err)
	}
	if payload.Record == nil || payload.Record.ID == "" {
		return nil, fmt.Errorf("%w: auth-refresh response carries no identity", ErrUnauthorized)
	}

	return payload.Record, nil
}

// AdminAuth authenticates against the service's admin API and retains the
// returned token. Used only by the schema bootstrap tool.
func (c *Client) AdminAuth(ctx context.Context, email, password string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"identity": email, "password": password}).
		Post("/api/admins/auth-with-password")
	if err != nil {
		return fmt.Errorf("admin auth request: %w", err)
	}
	if err = mapAPIError(resp); err != nil {
		return err
	}

	var payload authResponse
	if err = json.Unmarshal(resp.Body(), &payload); err != nil {
		return fmt.Errorf("decode admin auth response: %w", err)
	}

	c.SetToken(payload.Token)
	return nil
}

func decodeAuthState(body []byte) (models.AuthState, error) {
	var payload authResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return models.AuthState{}, fmt.Errorf("decode auth response: %w", err)
	}
	if payload.Record == nil || payload.Record.ID == "" {
		return models.AuthState{}, fmt.Errorf("%w: auth response carries no identity", ErrUnauthorized)
	}

	return models.AuthState{Token: payload.Token, User: payload.Record}, nil
}
