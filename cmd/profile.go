package cmd

import (
	"context"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit user profiles",
	}

	cmd.AddCommand(
		newProfileMeCmd(app),
		newProfileGetCmd(app),
		newProfileUpdateCmd(app),
	)

	return cmd
}

func newProfileMeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching profile...", func(ctx context.Context, svc *api.Services) (domain.Profile, error) {
				return svc.Profiles.GetMyProfile(ctx)
			})
		},
	}
}

func newProfileGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user-id>",
		Short: "Show another user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := domain.UserID(strings.TrimSpace(args[0]))

			return runCall(cmd, app, "Fetching profile...", func(ctx context.Context, svc *api.Services) (domain.Profile, error) {
				return svc.Profiles.GetProfileByUserID(ctx, userID)
			})
		},
	}
}

func newProfileUpdateCmd(app *app) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in domain.ProfileInput
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Updating profile...", func(ctx context.Context, svc *api.Services) (domain.Profile, error) {
				return svc.Profiles.UpdateMyProfile(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	_ = cmd.MarkFlagRequired("data")

	return cmd
}
