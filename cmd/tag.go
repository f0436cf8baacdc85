package cmd

import (
	"context"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTagCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Browse and manage food tags",
	}

	cmd.AddCommand(
		newTagListCmd(app),
		newTagGetCmd(app),
		newTagCreateCmd(app),
		newTagDeleteCmd(app),
	)

	return cmd
}

func newTagListCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching tags...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.Tag], error) {
				return svc.Tags.GetAllTags(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newTagGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tag id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching tag...", func(ctx context.Context, svc *api.Services) (domain.Tag, error) {
				return svc.Tags.GetTagByID(ctx, id)
			})
		},
	}
}

func newTagCreateCmd(app *app) *cobra.Command {
	var in domain.TagInput

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = strings.TrimSpace(args[0])

			return runCall(cmd, app, "Creating tag...", func(ctx context.Context, svc *api.Services) (domain.Tag, error) {
				return svc.Tags.CreateTag(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.Description, "description", "", "Tag description")

	return cmd
}

func newTagDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tag id", args[0])
			if err != nil {
				return err
			}

			return runAction(cmd, app, "Deleting tag...", "Tag deleted.", func(ctx context.Context, svc *api.Services) error {
				return svc.Tags.DeleteTag(ctx, id)
			})
		},
	}
}
