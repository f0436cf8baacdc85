package cmd

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newTrialCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Nutrition recommendations from body metrics",
	}

	cmd.AddCommand(
		newTrialRecommendCmd(app),
		newTrialListCmd(app),
	)

	return cmd
}

func newTrialRecommendCmd(app *app) *cobra.Command {
	var (
		in   domain.TrialRecommendationInput
		data string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Request a recommendation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := decodeData(cmd, data, &in); err != nil {
				return err
			}

			return runCall(cmd, app, "Computing recommendation...", func(ctx context.Context, svc *api.Services) (domain.TrialRecommendation, error) {
				return svc.TrialRecommendations.CreateRecommendation(ctx, in)
			})
		},
	}
	cmd.Flags().IntVar(&in.Age, "age", 0, "Age in years")
	cmd.Flags().StringVar(&in.Gender, "gender", "", "Gender")
	cmd.Flags().Float64Var(&in.HeightCM, "height", 0, "Height in centimetres")
	cmd.Flags().Float64Var(&in.WeightKG, "weight", 0, "Weight in kilograms")
	cmd.Flags().StringVar(&in.ActivityLevel, "activity", "", "Activity level")
	cmd.Flags().StringVar(&in.Goal, "goal", "", "Goal, for example lose, maintain or gain")
	cmd.Flags().StringVar(&data, "data", "", dataFlagUsage)

	return cmd
}

func newTrialListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your past recommendations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching recommendations...", func(ctx context.Context, svc *api.Services) ([]domain.TrialRecommendation, error) {
				return svc.TrialRecommendations.GetMyRecommendations(ctx)
			})
		},
	}
}
