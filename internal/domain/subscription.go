package domain

import "time"

type Subscription struct {
	ID           int     `json:"id"`
	Name         string  `json:"subscriptionName"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationInDays"`
	Status       string  `json:"status,omitempty"`
}

type SubscriptionInput struct {
	Name         string  `json:"subscriptionName"`
	Description  string  `json:"description,omitempty"`
	Price        float64 `json:"price"`
	DurationDays int     `json:"durationInDays"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

type UserPayment struct {
	ID             int           `json:"id"`
	UserID         UserID        `json:"userId"`
	SubscriptionID int           `json:"subscriptionId"`
	OrderCode      int64         `json:"orderCode"`
	Amount         float64       `json:"amount"`
	Status         PaymentStatus `json:"status"`
	PaidAt         *time.Time    `json:"paidAt,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type PaymentLinkInput struct {
	SubscriptionID int    `json:"subscriptionId"`
	ReturnURL      string `json:"returnUrl,omitempty"`
	CancelURL      string `json:"cancelUrl,omitempty"`
}

type PaymentLink struct {
	CheckoutURL string `json:"checkoutUrl"`
	OrderCode   int64  `json:"orderCode"`
}
