package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type UserPayments struct {
	r *Resource
}

func NewUserPayments(c *Client) *UserPayments {
	return &UserPayments{r: c.Resource("UserPayment")}
}

func (s *UserPayments) CreatePaymentLink(ctx context.Context, in domain.PaymentLinkInput) (domain.PaymentLink, error) {
	if err := requirePositiveID("subscription id", in.SubscriptionID); err != nil {
		return domain.PaymentLink{}, err
	}

	return post[domain.PaymentLink](ctx, s.r, s.r.Path("create-payment-link"), in, "Failed to create payment link.")
}

func (s *UserPayments) GetPaymentHistory(ctx context.Context, q ListQuery) (domain.Page[domain.UserPayment], error) {
	return get[domain.Page[domain.UserPayment]](ctx, s.r, s.r.Path("history"), "Failed to fetch payment history.", WithQuery(q.Values()))
}

func (s *UserPayments) GetPaymentByID(ctx context.Context, id int) (domain.UserPayment, error) {
	if err := requirePositiveID("payment id", id); err != nil {
		return domain.UserPayment{}, err
	}

	return get[domain.UserPayment](ctx, s.r, s.r.Path(id), "Failed to fetch payment.")
}

func (s *UserPayments) CancelPayment(ctx context.Context, orderCode int64) (domain.UserPayment, error) {
	if orderCode <= 0 {
		return domain.UserPayment{}, fmt.Errorf("order code %d: %w", orderCode, domain.ErrInvalidID)
	}

	return put[domain.UserPayment](ctx, s.r, s.r.Path("cancel", strconv.FormatInt(orderCode, 10)), nil, "Failed to cancel payment.")
}
