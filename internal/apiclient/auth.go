package apiclient

import (
	"context"
	"net/http"

	"drepalife-app/internal/models"
)

// Login exchanges credentials for a token and the user record.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var res models.LoginResponse
	err := c.do(ctx, call{
		client: c.api,
		method: http.MethodPost,
		path:   "/api/users/login",
		body:   &models.LoginRequest{Email: email, Password: password},
		result: &res,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success || res.User == nil {
		return nil, rejected(res.Message, "Login failed. Please try again.")
	}
	return &res, nil
}

// Register creates an account. It does not log the user in.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error) {
	var res models.RegisterResponse
	err := c.do(ctx, call{
		client: c.api,
		method: http.MethodPost,
		path:   "/api/users/register",
		body:   &req,
		result: &res,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, rejected(res.Message, "Registration failed. Please try again.")
	}
	return &res, nil
}
