package api

import (
	"context"
	"fmt"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type TrialRecommendations struct {
	r *Resource
}

func NewTrialRecommendations(c *Client) *TrialRecommendations {
	return &TrialRecommendations{r: c.Resource("TrialRecommendation")}
}

// CreateRecommendation asks for a one-off plan; it works without a session.
func (s *TrialRecommendations) CreateRecommendation(ctx context.Context, in domain.TrialRecommendationInput) (domain.TrialRecommendation, error) {
	if in.Age <= 0 || in.HeightCM <= 0 || in.WeightKG <= 0 {
		return domain.TrialRecommendation{}, fmt.Errorf("%w: age, height and weight must be positive", domain.ErrInvalidArgument)
	}

	return post[domain.TrialRecommendation](ctx, s.r, s.r.Path(), in, "Failed to generate recommendation.")
}

func (s *TrialRecommendations) GetMyRecommendations(ctx context.Context) ([]domain.TrialRecommendation, error) {
	return get[[]domain.TrialRecommendation](ctx, s.r, s.r.Path(), "Failed to fetch recommendations.")
}
