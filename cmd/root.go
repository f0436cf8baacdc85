package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "ncc",
		Short:         "NutriCoach CLI (ncc): call the coaching platform API from the terminal",
		Long:          "ncc (NutriCoach CLI) stores your session token and calls the nutrition coaching backend: foods, subscriptions, payments, trainers, reports, water tracking and profiles.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return validateOutputFormat(flags.output)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.output, "output", "o", outputJSON, "Output format: json or yaml")
	rootCmd.PersistentFlags().StringVar(&flags.token, "token", "", "Bearer token for this invocation (overrides the stored session)")

	app, err := wireApp(flags)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSessionCmd(app),
		newConfigCmd(app),
		newFoodCmd(app),
		newCategoryCmd(app),
		newSubscriptionCmd(app),
		newTagCmd(app),
		newPaymentCmd(app),
		newTrainerCmd(app),
		newReportCmd(app),
		newWaterCmd(app),
		newProfileCmd(app),
		newTrialCmd(app),
		newChatCmd(app),
	)

	return rootCmd
}
