package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/jobtrack/internal/types"
)

// Backend routes. All record endpoints require the bearer token.
const (
	signupPath       = "/api/v1/users/signup/"
	loginPath        = "/api/v1/users/login/"
	applicationsPath = "/api/v1/tracking/"
	resumesPath      = "/api/v1/resumes/"
)

// Signup registers a new account and establishes the session from the
// issued token. The prior session, if any, is replaced.
func (c *Client) Signup(ctx context.Context, req types.SignupRequest) (types.Identity, error) {
	if err := req.Validate(); err != nil {
		return types.Identity{}, fmt.Errorf("invalid signup request: %w", err)
	}
	return c.authenticate(ctx, signupPath, req)
}

// Login exchanges credentials for a token and establishes the session.
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (types.Identity, error) {
	if err := req.Validate(); err != nil {
		return types.Identity{}, fmt.Errorf("invalid login request: %w", err)
	}
	return c.authenticate(ctx, loginPath, req)
}

func (c *Client) authenticate(ctx context.Context, path string, body any) (types.Identity, error) {
	resp, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return types.Identity{}, err
	}

	var auth types.AuthResponse
	if err := resp.Decode(&auth); err != nil {
		return types.Identity{}, &DataError{Endpoint: path, Cause: err}
	}
	if auth.Token == "" {
		return types.Identity{}, &DataError{Endpoint: path, Problems: []string{"token: missing from auth response"}}
	}

	if err := c.session.Login(auth.Token, auth.User); err != nil {
		return types.Identity{}, err
	}
	return auth.User, nil
}

// Applications fetches the caller's tracked applications. The payload is
// shape-checked before decoding; an unknown status value is a DataError,
// not a new state.
func (c *Client) Applications(ctx context.Context) ([]types.ApplicationRecord, error) {
	resp, err := c.Do(ctx, http.MethodGet, applicationsPath, nil)
	if err != nil {
		return nil, err
	}
	if err := validatePayload(applicationsPath, applicationListSchema, resp.Body); err != nil {
		return nil, err
	}

	var records []types.ApplicationRecord
	if err := resp.Decode(&records); err != nil {
		return nil, &DataError{Endpoint: applicationsPath, Cause: err}
	}
	return records, nil
}

// Resumes fetches the caller's resumes with their latest scores.
func (c *Client) Resumes(ctx context.Context) ([]types.ResumeRecord, error) {
	resp, err := c.Do(ctx, http.MethodGet, resumesPath, nil)
	if err != nil {
		return nil, err
	}
	if err := validatePayload(resumesPath, resumeListSchema, resp.Body); err != nil {
		return nil, err
	}

	var records []types.ResumeRecord
	if err := resp.Decode(&records); err != nil {
		return nil, &DataError{Endpoint: resumesPath, Cause: err}
	}
	return records, nil
}
