package cmd

import (
	"context"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTrainerCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trainer",
		Short: "Trainer applications and ratings",
	}

	cmd.AddCommand(
		newTrainerApplyCmd(app),
		newTrainerApplicationCmd(app),
		newTrainerApplicationsCmd(app),
		newTrainerApproveCmd(app),
		newTrainerRejectCmd(app),
		newTrainerRateCmd(app),
		newTrainerRatingsCmd(app),
		newTrainerSummaryCmd(app),
	)

	return cmd
}

func newTrainerApplyCmd(app *app) *cobra.Command {
	var (
		in   domain.TrainerApplicationInput
		data string
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Submit a trainer application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Submitting application...", func(ctx context.Context, svc *api.Services) (domain.TrainerApplication, error) {
				return svc.TrainerApplications.SubmitApplication(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.Experience, "experience", "", "Coaching experience summary")
	cmd.Flags().StringVar(&in.Introduction, "introduction", "", "Short introduction")
	cmd.Flags().StringSliceVar(&in.Certificates, "certificate", nil, "Certificate URL (repeatable)")
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)
	cmd.MarkFlagsOneRequired("experience", "data")
	cmd.MarkFlagsMutuallyExclusive("experience", "data")

	return cmd
}

func newTrainerApplicationCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "application [id]",
		Short: "Show your application, or one application by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runCall(cmd, app, "Fetching application...", func(ctx context.Context, svc *api.Services) (domain.TrainerApplication, error) {
					return svc.TrainerApplications.GetMyApplication(ctx)
				})
			}

			id, err := parseID("application id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching application...", func(ctx context.Context, svc *api.Services) (domain.TrainerApplication, error) {
				return svc.TrainerApplications.GetApplicationByID(ctx, id)
			})
		},
	}
}

func newTrainerApplicationsCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "applications",
		Short: "List trainer applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching applications...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.TrainerApplication], error) {
				return svc.TrainerApplications.GetAllApplications(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newTrainerApproveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <id>",
		Short: "Approve a trainer application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("application id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Approving application...", func(ctx context.Context, svc *api.Services) (domain.TrainerApplication, error) {
				return svc.TrainerApplications.ApproveApplication(ctx, id)
			})
		},
	}
}

func newTrainerRejectCmd(app *app) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a trainer application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("application id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Rejecting application...", func(ctx context.Context, svc *api.Services) (domain.TrainerApplication, error) {
				return svc.TrainerApplications.RejectApplication(ctx, id, strings.TrimSpace(reason))
			})
		},
	}
	cmd.Flags().StringVar(&reason, "reason", "", "Reason shown to the applicant")

	return cmd
}

func newTrainerRateCmd(app *app) *cobra.Command {
	var (
		in      domain.TrainerRatingInput
		trainer string
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a trainer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.TrainerID = domain.UserID(strings.TrimSpace(trainer))

			return runCall(cmd, app, "Saving rating...", func(ctx context.Context, svc *api.Services) (domain.TrainerRating, error) {
				return svc.TrainerRatings.RateTrainer(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&trainer, "trainer", "", "Trainer user id")
	cmd.Flags().IntVar(&in.Rating, "rating", 0, "Rating from 1 to 5")
	cmd.Flags().StringVar(&in.Comment, "comment", "", "Optional comment")
	_ = cmd.MarkFlagRequired("trainer")
	_ = cmd.MarkFlagRequired("rating")

	return cmd
}

func newTrainerRatingsCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "ratings <trainer-id>",
		Short: "List ratings for a trainer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trainerID := domain.UserID(strings.TrimSpace(args[0]))

			return runCall(cmd, app, "Fetching ratings...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.TrainerRating], error) {
				return svc.TrainerRatings.GetRatingsByTrainer(ctx, trainerID, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newTrainerSummaryCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary <trainer-id>",
		Short: "Show a trainer's average rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trainerID := domain.UserID(strings.TrimSpace(args[0]))

			return runCall(cmd, app, "Fetching rating summary...", func(ctx context.Context, svc *api.Services) (domain.RatingSummary, error) {
				return svc.TrainerRatings.GetRatingSummary(ctx, trainerID)
			})
		},
	}
}
