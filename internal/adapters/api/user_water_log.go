package api

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type UserWaterLogs struct {
	r *Resource
}

func NewUserWaterLogs(c *Client) *UserWaterLogs {
	return &UserWaterLogs{r: c.Resource("UserWaterLog")}
}

// GetWaterLogs lists entries for one calendar day; a zero date lets the server pick today.
func (s *UserWaterLogs) GetWaterLogs(ctx context.Context, date time.Time) ([]domain.UserWaterLog, error) {
	return get[[]domain.UserWaterLog](ctx, s.r, s.r.Path(), "Failed to fetch water logs.", dateParam(date)...)
}

func (s *UserWaterLogs) GetDailySummary(ctx context.Context, date time.Time) (domain.WaterSummary, error) {
	return get[domain.WaterSummary](ctx, s.r, s.r.Path("summary"), "Failed to fetch water summary.", dateParam(date)...)
}

func (s *UserWaterLogs) AddWaterLog(ctx context.Context, in domain.UserWaterLogInput) (domain.UserWaterLog, error) {
	if err := validateWaterLog(in); err != nil {
		return domain.UserWaterLog{}, err
	}

	return post[domain.UserWaterLog](ctx, s.r, s.r.Path(), in, "Failed to log water intake.")
}

func (s *UserWaterLogs) UpdateWaterLog(ctx context.Context, id int, in domain.UserWaterLogInput) (domain.UserWaterLog, error) {
	if err := requirePositiveID("water log id", id); err != nil {
		return domain.UserWaterLog{}, err
	}
	if err := validateWaterLog(in); err != nil {
		return domain.UserWaterLog{}, err
	}

	return put[domain.UserWaterLog](ctx, s.r, s.r.Path(id), in, "Failed to update water log.")
}

func (s *UserWaterLogs) DeleteWaterLog(ctx context.Context, id int) error {
	if err := requirePositiveID("water log id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete water log.")
}

func validateWaterLog(in domain.UserWaterLogInput) error {
	if in.AmountInML <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d ml", domain.ErrInvalidArgument, in.AmountInML)
	}

	return nil
}

func dateParam(date time.Time) []CallOption {
	if date.IsZero() {
		return nil
	}

	return []CallOption{WithParam("date", date.Format(domain.WaterDateLayout))}
}
