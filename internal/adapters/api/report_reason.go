package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type ReportReasons struct {
	r *Resource
}

func NewReportReasons(c *Client) *ReportReasons {
	return &ReportReasons{r: c.Resource("ReportReason")}
}

func (s *ReportReasons) GetAllReasons(ctx context.Context) ([]domain.ReportReason, error) {
	return get[[]domain.ReportReason](ctx, s.r, s.r.Path(), "Failed to fetch report reasons.")
}

func (s *ReportReasons) GetReasonByID(ctx context.Context, id int) (domain.ReportReason, error) {
	if err := requirePositiveID("reason id", id); err != nil {
		return domain.ReportReason{}, err
	}

	return get[domain.ReportReason](ctx, s.r, s.r.Path(id), "Failed to fetch report reason.")
}

func (s *ReportReasons) CreateReason(ctx context.Context, in domain.ReportReasonInput) (domain.ReportReason, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return domain.ReportReason{}, fmt.Errorf("%w: reason is required", domain.ErrInvalidArgument)
	}

	return post[domain.ReportReason](ctx, s.r, s.r.Path(), in, "Failed to create report reason.")
}

func (s *ReportReasons) UpdateReason(ctx context.Context, id int, in domain.ReportReasonInput) (domain.ReportReason, error) {
	if err := requirePositiveID("reason id", id); err != nil {
		return domain.ReportReason{}, err
	}

	return put[domain.ReportReason](ctx, s.r, s.r.Path(id), in, "Failed to update report reason.")
}

func (s *ReportReasons) DeleteReason(ctx context.Context, id int) error {
	if err := requirePositiveID("reason id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete report reason.")
}
