package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"drepalife-app/internal/models"
)

const healthTipsPath = "/health-tips"

func healthTipPath(id string) string {
	return healthTipsPath + "/" + url.PathEscape(id)
}

// ListHealthTips fetches every tip.
func (c *Client) ListHealthTips(ctx context.Context) ([]models.HealthTip, error) {
	var tips []models.HealthTip
	err := c.do(ctx, call{
		client: c.api,
		method: http.MethodGet,
		path:   healthTipsPath,
		auth:   true,
		result: &tips,
	})
	if err != nil {
		return nil, err
	}
	return tips, nil
}

// CreateHealthTip adds a tip.
func (c *Client) CreateHealthTip(ctx context.Context, in models.HealthTipInput) (*models.HealthTip, error) {
	var tip models.HealthTip
	err := c.do(ctx, call{
		client: c.api,
		method: http.MethodPost,
		path:   healthTipsPath,
		auth:   true,
		body:   &in,
		result: &tip,
	})
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

// UpdateHealthTip replaces the title and content of a tip.
func (c *Client) UpdateHealthTip(ctx context.Context, id string, in models.HealthTipInput) (*models.HealthTip, error) {
	var tip models.HealthTip
	err := c.do(ctx, call{
		client: c.api,
		method: http.MethodPut,
		path:   healthTipPath(id),
		auth:   true,
		body:   &in,
		result: &tip,
	})
	if err != nil {
		return nil, err
	}
	return &tip, nil
}

// DeleteHealthTip removes a tip.
func (c *Client) DeleteHealthTip(ctx context.Context, id string) error {
	return c.do(ctx, call{
		client: c.api,
		method: http.MethodDelete,
		path:   healthTipPath(id),
		auth:   true,
	})
}
