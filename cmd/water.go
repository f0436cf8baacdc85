package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWaterCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Track daily water intake",
	}

	cmd.AddCommand(
		newWaterListCmd(app),
		newWaterSummaryCmd(app),
		newWaterAddCmd(app),
		newWaterUpdateCmd(app),
		newWaterDeleteCmd(app),
	)

	return cmd
}

func newWaterListCmd(app *app) *cobra.Command {
	var rawDate string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List water log entries for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseWaterDate(rawDate)
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching water logs...", func(ctx context.Context, svc *api.Services) ([]domain.UserWaterLog, error) {
				return svc.UserWaterLogs.GetWaterLogs(ctx, date)
			})
		},
	}
	cmd.Flags().StringVar(&rawDate, "date", "", "Day to show (YYYY-MM-DD, default today)")

	return cmd
}

func newWaterSummaryCmd(app *app) *cobra.Command {
	var rawDate string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show intake against the daily target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := parseWaterDate(rawDate)
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching water summary...", func(ctx context.Context, svc *api.Services) (domain.WaterSummary, error) {
				return svc.UserWaterLogs.GetDailySummary(ctx, date)
			})
		},
	}
	cmd.Flags().StringVar(&rawDate, "date", "", "Day to summarize (YYYY-MM-DD, default today)")

	return cmd
}

func newWaterAddCmd(app *app) *cobra.Command {
	var in domain.UserWaterLogInput

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log water you drank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			now := app.now().UTC()
			in.ConsumedAt = &now

			return runCall(cmd, app, "Saving water log...", func(ctx context.Context, svc *api.Services) (domain.UserWaterLog, error) {
				return svc.UserWaterLogs.AddWaterLog(ctx, in)
			})
		},
	}
	cmd.Flags().IntVar(&in.AmountInML, "amount", 0, "Amount in millilitres")
	cmd.Flags().StringVar(&in.Note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWaterUpdateCmd(app *app) *cobra.Command {
	var in domain.UserWaterLogInput

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a water log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("water log id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Updating water log...", func(ctx context.Context, svc *api.Services) (domain.UserWaterLog, error) {
				return svc.UserWaterLogs.UpdateWaterLog(ctx, id, in)
			})
		},
	}
	cmd.Flags().IntVar(&in.AmountInML, "amount", 0, "Amount in millilitres")
	cmd.Flags().StringVar(&in.Note, "note", "", "Optional note")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newWaterDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a water log entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("water log id", args[0])
			if err != nil {
				return err
			}

			return runAction(cmd, app, "Deleting water log...", "Water log deleted.", func(ctx context.Context, svc *api.Services) error {
				return svc.UserWaterLogs.DeleteWaterLog(ctx, id)
			})
		},
	}
}

// parseWaterDate returns the zero time for an empty value so the server picks today.
func parseWaterDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}

	date, err := time.ParseInLocation(domain.WaterDateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: expected YYYY-MM-DD", raw)
	}

	return date, nil
}
