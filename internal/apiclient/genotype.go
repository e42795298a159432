package apiclient

import (
	"context"
	"net/http"

	"drepalife-app/internal/models"
)

// GenotypeMatch asks the platform for the offspring risk of a couple.
func (c *Client) GenotypeMatch(ctx context.Context, patient, partner string) (*models.GenotypeMatchData, error) {
	var res models.GenotypeMatchResponse
	err := c.do(ctx, call{
		client: c.api,
		method: http.MethodPost,
		path:   "/api/genotype-matches",
		auth:   true,
		body:   &models.GenotypeMatchRequest{PatientGenotype: patient, PartnerGenotype: partner},
		result: &res,
	})
	if err != nil {
		return nil, err
	}
	if !res.Success || res.Data == nil {
		return nil, rejected(res.Message, "Compatibility check failed. Please try again.")
	}
	return res.Data, nil
}
