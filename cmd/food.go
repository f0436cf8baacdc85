package cmd

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFoodCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Browse and manage the food catalogue",
	}

	cmd.AddCommand(
		newFoodListCmd(app),
		newFoodGetCmd(app),
		newFoodByCategoryCmd(app),
		newFoodCreateCmd(app),
		newFoodUpdateCmd(app),
		newFoodDeleteCmd(app),
	)

	return cmd
}

func newFoodListCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List foods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching foods...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.Food], error) {
				return svc.Foods.GetAllFoods(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newFoodGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("food id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching food...", func(ctx context.Context, svc *api.Services) (domain.Food, error) {
				return svc.Foods.GetFoodByID(ctx, id)
			})
		},
	}
}

func newFoodByCategoryCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "by-category <category-id>",
		Short: "List foods in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, err := parseID("category id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching foods...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.Food], error) {
				return svc.Foods.GetFoodsByCategory(ctx, categoryID, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newFoodCreateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a food",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.FoodInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Creating food...", func(ctx context.Context, svc *api.Services) (domain.Food, error) {
				return svc.Foods.CreateFood(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newFoodUpdateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("food id", args[0])
			if err != nil {
				return err
			}

			var in domain.FoodInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Updating food...", func(ctx context.Context, svc *api.Services) (domain.Food, error) {
				return svc.Foods.UpdateFood(ctx, id, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newFoodDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a food",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("food id", args[0])
			if err != nil {
				return err
			}

			return runAction(cmd, app, "Deleting food...", "Food deleted.", func(ctx context.Context, svc *api.Services) error {
				return svc.Foods.DeleteFood(ctx, id)
			})
		},
	}
}
