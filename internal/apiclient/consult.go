package apiclient

import (
	"context"
	"net/http"

	"drepalife-app/internal/models"
)

// Consult sends free-text symptoms to the advice endpoint.
func (c *Client) Consult(ctx context.Context, symptoms string) (string, error) {
	var res models.ConsultResponse
	err := c.do(ctx, call{
		client: c.consult,
		method: http.MethodPost,
		path:   "/consult",
		auth:   true,
		body:   &models.ConsultRequest{Symptoms: symptoms},
		result: &res,
	})
	if err != nil {
		return "", err
	}
	return res.Advice, nil
}
