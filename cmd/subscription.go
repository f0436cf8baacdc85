package cmd

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSubscriptionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription",
		Short: "Browse and manage subscription plans",
	}

	cmd.AddCommand(
		newSubscriptionListCmd(app),
		newSubscriptionActiveCmd(app),
		newSubscriptionGetCmd(app),
		newSubscriptionCreateCmd(app),
		newSubscriptionUpdateCmd(app),
		newSubscriptionDeleteCmd(app),
	)

	return cmd
}

func newSubscriptionListCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List subscription plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching subscriptions...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.Subscription], error) {
				return svc.Subscriptions.GetAllSubscriptions(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newSubscriptionActiveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "active",
		Short: "List plans currently on sale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching subscriptions...", func(ctx context.Context, svc *api.Services) ([]domain.Subscription, error) {
				return svc.Subscriptions.GetActiveSubscriptions(ctx)
			})
		},
	}
}

func newSubscriptionGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one subscription plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("subscription id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching subscription...", func(ctx context.Context, svc *api.Services) (domain.Subscription, error) {
				return svc.Subscriptions.GetSubscriptionByID(ctx, id)
			})
		},
	}
}

func newSubscriptionCreateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a subscription plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.SubscriptionInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Creating subscription...", func(ctx context.Context, svc *api.Services) (domain.Subscription, error) {
				return svc.Subscriptions.CreateSubscription(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newSubscriptionUpdateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a subscription plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("subscription id", args[0])
			if err != nil {
				return err
			}

			var in domain.SubscriptionInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Updating subscription...", func(ctx context.Context, svc *api.Services) (domain.Subscription, error) {
				return svc.Subscriptions.UpdateSubscription(ctx, id, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newSubscriptionDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subscription plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("subscription id", args[0])
			if err != nil {
				return err
			}

			return runAction(cmd, app, "Deleting subscription...", "Subscription deleted.", func(ctx context.Context, svc *api.Services) error {
				return svc.Subscriptions.DeleteSubscription(ctx, id)
			})
		},
	}
}
