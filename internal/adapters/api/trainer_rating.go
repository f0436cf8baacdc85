package api

import (
	"context"
	"fmt"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

const (
	MinRating = 1
	MaxRating = 5
)

type TrainerRatings struct {
	r *Resource
}

func NewTrainerRatings(c *Client) *TrainerRatings {
	return &TrainerRatings{r: c.Resource("TrainerRating")}
}

func (s *TrainerRatings) GetRatingsByTrainer(ctx context.Context, trainerID domain.UserID, q ListQuery) (domain.Page[domain.TrainerRating], error) {
	if err := requireUserID("trainer id", trainerID); err != nil {
		return domain.Page[domain.TrainerRating]{}, err
	}

	return get[domain.Page[domain.TrainerRating]](ctx, s.r, s.r.Path("trainer", trainerID), "Failed to fetch trainer ratings.", WithQuery(q.Values()))
}

func (s *TrainerRatings) GetRatingSummary(ctx context.Context, trainerID domain.UserID) (domain.RatingSummary, error) {
	if err := requireUserID("trainer id", trainerID); err != nil {
		return domain.RatingSummary{}, err
	}

	return get[domain.RatingSummary](ctx, s.r, s.r.Path("trainer", trainerID, "summary"), "Failed to fetch rating summary.")
}

func (s *TrainerRatings) RateTrainer(ctx context.Context, in domain.TrainerRatingInput) (domain.TrainerRating, error) {
	if err := validateRating(in); err != nil {
		return domain.TrainerRating{}, err
	}

	return post[domain.TrainerRating](ctx, s.r, s.r.Path(), in, "Failed to submit rating.")
}

func (s *TrainerRatings) UpdateRating(ctx context.Context, id int, in domain.TrainerRatingInput) (domain.TrainerRating, error) {
	if err := requirePositiveID("rating id", id); err != nil {
		return domain.TrainerRating{}, err
	}
	if err := validateRating(in); err != nil {
		return domain.TrainerRating{}, err
	}

	return put[domain.TrainerRating](ctx, s.r, s.r.Path(id), in, "Failed to update rating.")
}

func (s *TrainerRatings) DeleteRating(ctx context.Context, id int) error {
	if err := requirePositiveID("rating id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete rating.")
}

func validateRating(in domain.TrainerRatingInput) error {
	if err := requireUserID("trainer id", in.TrainerID); err != nil {
		return err
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be between %d and %d, got %d", domain.ErrInvalidArgument, MinRating, MaxRating, in.Rating)
	}

	return nil
}
