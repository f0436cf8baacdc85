package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newPaymentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payment",
		Short: "Buy subscriptions and review payments",
	}

	cmd.AddCommand(
		newPaymentLinkCmd(app),
		newPaymentHistoryCmd(app),
		newPaymentGetCmd(app),
		newPaymentCancelCmd(app),
	)

	return cmd
}

func newPaymentLinkCmd(app *app) *cobra.Command {
	var in domain.PaymentLinkInput

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Create a checkout link for a subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Creating payment link...", func(ctx context.Context, svc *api.Services) (domain.PaymentLink, error) {
				return svc.UserPayments.CreatePaymentLink(ctx, in)
			})
		},
	}
	cmd.Flags().IntVar(&in.SubscriptionID, "subscription", 0, "Subscription plan id")
	cmd.Flags().StringVar(&in.ReturnURL, "return-url", "", "URL to open after a successful payment")
	cmd.Flags().StringVar(&in.CancelURL, "cancel-url", "", "URL to open after a cancelled payment")
	_ = cmd.MarkFlagRequired("subscription")

	return cmd
}

func newPaymentHistoryCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List your payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching payments...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.UserPayment], error) {
				return svc.UserPayments.GetPaymentHistory(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newPaymentGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("payment id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching payment...", func(ctx context.Context, svc *api.Services) (domain.UserPayment, error) {
				return svc.UserPayments.GetPaymentByID(ctx, id)
			})
		},
	}
}

func newPaymentCancelCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-code>",
		Short: "Cancel a pending payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderCode, err := strconv.ParseInt(strings.TrimSpace(args[0]), 10, 64)
			if err != nil {
				return fmt.Errorf("parse order code %q: must be a number", args[0])
			}

			return runCall(cmd, app, "Cancelling payment...", func(ctx context.Context, svc *api.Services) (domain.UserPayment, error) {
				return svc.UserPayments.CancelPayment(ctx, orderCode)
			})
		},
	}
}
