package cmd

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Browse and manage food categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryActiveCmd(app),
		newCategoryGetCmd(app),
		newCategoryCreateCmd(app),
		newCategoryUpdateCmd(app),
		newCategoryDeleteCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all food categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching categories...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.FoodCategory], error) {
				return svc.FoodCategories.GetAllCategories(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newCategoryActiveCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "active",
		Short: "List active food categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching categories...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.FoodCategory], error) {
				return svc.FoodCategories.GetAllActiveCategories(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newCategoryGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one food category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching category...", func(ctx context.Context, svc *api.Services) (domain.FoodCategory, error) {
				return svc.FoodCategories.GetCategoryByID(ctx, id)
			})
		},
	}
}

func newCategoryCreateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a food category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.FoodCategoryInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Creating category...", func(ctx context.Context, svc *api.Services) (domain.FoodCategory, error) {
				return svc.FoodCategories.CreateCategory(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newCategoryUpdateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a food category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category id", args[0])
			if err != nil {
				return err
			}

			var in domain.FoodCategoryInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Updating category...", func(ctx context.Context, svc *api.Services) (domain.FoodCategory, error) {
				return svc.FoodCategories.UpdateCategory(ctx, id, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newCategoryDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a food category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category id", args[0])
			if err != nil {
				return err
			}

			return runAction(cmd, app, "Deleting category...", "Category deleted.", func(ctx context.Context, svc *api.Services) error {
				return svc.FoodCategories.DeleteCategory(ctx, id)
			})
		},
	}
}
