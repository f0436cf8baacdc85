package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type TrainerApplications struct {
	r *Resource
}

func NewTrainerApplications(c *Client) *TrainerApplications {
	return &TrainerApplications{r: c.Resource("TrainerApplication")}
}

func (s *TrainerApplications) GetAllApplications(ctx context.Context, q ListQuery) (domain.Page[domain.TrainerApplication], error) {
	return get[domain.Page[domain.TrainerApplication]](ctx, s.r, s.r.Path(), "Failed to fetch trainer applications.", WithQuery(q.Values()))
}

func (s *TrainerApplications) GetMyApplication(ctx context.Context) (domain.TrainerApplication, error) {
	return get[domain.TrainerApplication](ctx, s.r, s.r.Path("me"), "Failed to fetch your trainer application.")
}

func (s *TrainerApplications) GetApplicationByID(ctx context.Context, id int) (domain.TrainerApplication, error) {
	if err := requirePositiveID("application id", id); err != nil {
		return domain.TrainerApplication{}, err
	}

	return get[domain.TrainerApplication](ctx, s.r, s.r.Path(id), "Failed to fetch trainer application.")
}

func (s *TrainerApplications) SubmitApplication(ctx context.Context, in domain.TrainerApplicationInput) (domain.TrainerApplication, error) {
	if strings.TrimSpace(in.Experience) == "" {
		return domain.TrainerApplication{}, fmt.Errorf("%w: experience is required", domain.ErrInvalidArgument)
	}

	return post[domain.TrainerApplication](ctx, s.r, s.r.Path(), in, "Failed to submit trainer application.")
}

func (s *TrainerApplications) ApproveApplication(ctx context.Context, id int) (domain.TrainerApplication, error) {
	if err := requirePositiveID("application id", id); err != nil {
		return domain.TrainerApplication{}, err
	}

	return put[domain.TrainerApplication](ctx, s.r, s.r.Path(id, "approve"), nil, "Failed to approve trainer application.")
}

type rejectionBody struct {
	Reason string `json:"reason"`
}

func (s *TrainerApplications) RejectApplication(ctx context.Context, id int, reason string) (domain.TrainerApplication, error) {
	if err := requirePositiveID("application id", id); err != nil {
		return domain.TrainerApplication{}, err
	}

	return put[domain.TrainerApplication](ctx, s.r, s.r.Path(id, "reject"), rejectionBody{Reason: reason}, "Failed to reject trainer application.")
}
