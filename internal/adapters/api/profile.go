package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type Profiles struct {
	r *Resource
}

func NewProfiles(c *Client) *Profiles {
	return &Profiles{r: c.Resource("Profile")}
}

// GetMyProfile returns the profile of the signed-in user.
func (s *Profiles) GetMyProfile(ctx context.Context) (domain.Profile, error) {
	return get[domain.Profile](ctx, s.r, s.r.Path(), "Failed to fetch profile.")
}

func (s *Profiles) GetProfileByUserID(ctx context.Context, userID domain.UserID) (domain.Profile, error) {
	if err := requireUserID("user id", userID); err != nil {
		return domain.Profile{}, err
	}

	return get[domain.Profile](ctx, s.r, s.r.Path(userID), "Failed to fetch profile.")
}

func (s *Profiles) UpdateMyProfile(ctx context.Context, in domain.ProfileInput) (domain.Profile, error) {
	return put[domain.Profile](ctx, s.r, s.r.Path(), in, "Failed to update profile.")
}
