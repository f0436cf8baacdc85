package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type Subscriptions struct {
	r *Resource
}

func NewSubscriptions(c *Client) *Subscriptions {
	return &Subscriptions{r: c.Resource("Subscription")}
}

func (s *Subscriptions) GetAllSubscriptions(ctx context.Context, q ListQuery) (domain.Page[domain.Subscription], error) {
	return get[domain.Page[domain.Subscription]](ctx, s.r, s.r.Path(), "Failed to fetch subscriptions.", WithQuery(q.Values()))
}

func (s *Subscriptions) GetActiveSubscriptions(ctx context.Context) ([]domain.Subscription, error) {
	return get[[]domain.Subscription](ctx, s.r, s.r.Path("active"), "Failed to fetch active subscriptions.")
}

func (s *Subscriptions) GetSubscriptionByID(ctx context.Context, id int) (domain.Subscription, error) {
	if err := requirePositiveID("subscription id", id); err != nil {
		return domain.Subscription{}, err
	}

	return get[domain.Subscription](ctx, s.r, s.r.Path(id), "Failed to fetch subscription.")
}

func (s *Subscriptions) CreateSubscription(ctx context.Context, in domain.SubscriptionInput) (domain.Subscription, error) {
	return post[domain.Subscription](ctx, s.r, s.r.Path(), in, "Failed to create subscription.")
}

func (s *Subscriptions) UpdateSubscription(ctx context.Context, id int, in domain.SubscriptionInput) (domain.Subscription, error) {
	if err := requirePositiveID("subscription id", id); err != nil {
		return domain.Subscription{}, err
	}

	return put[domain.Subscription](ctx, s.r, s.r.Path(id), in, "Failed to update subscription.")
}

func (s *Subscriptions) DeleteSubscription(ctx context.Context, id int) error {
	if err := requirePositiveID("subscription id", id); err != nil {
		return err
	}

	return remove(ctx, s.r, s.r.Path(id), "Failed to delete subscription.")
}
