package cmd

import (
	"context"
	"strings"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report posts and moderate reports",
	}

	cmd.AddCommand(
		newReportReasonsCmd(app),
		newReportListCmd(app),
		newReportGetCmd(app),
		newReportCreateCmd(app),
		newReportCheckCmd(app),
		newReportStatusCmd(app),
		newReportDeleteCmd(app),
	)

	return cmd
}

func newReportReasonsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reasons",
		Short: "List the reasons a post can be reported for",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching report reasons...", func(ctx context.Context, svc *api.Services) ([]domain.ReportReason, error) {
				return svc.ReportReasons.GetAllReasons(ctx)
			})
		},
	}
}

func newReportListCmd(app *app) *cobra.Command {
	var q api.ListQuery

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List post reports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Fetching reports...", func(ctx context.Context, svc *api.Services) (domain.Page[domain.PostReport], error) {
				return svc.PostReports.GetAllReports(ctx, q)
			})
		},
	}
	addListFlags(cmd, &q)

	return cmd
}

func newReportGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("report id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Fetching report...", func(ctx context.Context, svc *api.Services) (domain.PostReport, error) {
				return svc.PostReports.GetReportByID(ctx, id)
			})
		},
	}
}

func newReportCreateCmd(app *app) *cobra.Command {
	var in domain.PostReportInput

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Report a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in.Note = strings.TrimSpace(in.Note)

			return runCall(cmd, app, "Submitting report...", func(ctx context.Context, svc *api.Services) (domain.PostReport, error) {
				return svc.PostReports.CreateReport(ctx, in)
			})
		},
	}
	cmd.Flags().IntVar(&in.PostID, "post", 0, "Post id")
	cmd.Flags().IntVar(&in.ReasonID, "reason", 0, "Report reason id")
	cmd.Flags().StringVar(&in.Note, "note", "", "Optional note for moderators")
	_ = cmd.MarkFlagRequired("post")
	_ = cmd.MarkFlagRequired("reason")

	return cmd
}

func newReportCheckCmd(app *app) *cobra.Command {
	var postID int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether you already reported a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Checking report...", func(ctx context.Context, svc *api.Services) (domain.ReportCheck, error) {
				return svc.PostReports.CheckUserReport(ctx, postID)
			})
		},
	}
	cmd.Flags().IntVar(&postID, "post", 0, "Post id")
	_ = cmd.MarkFlagRequired("post")

	return cmd
}

func newReportStatusCmd(app *app) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "status <id>",
		Short: "Change a report's moderation status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("report id", args[0])
			if err != nil {
				return err
			}

			return runCall(cmd, app, "Updating report...", func(ctx context.Context, svc *api.Services) (domain.PostReport, error) {
				return svc.PostReports.UpdateReportStatus(ctx, id, domain.ReportStatus(strings.TrimSpace(status)))
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "New status: Pending, Resolved or Rejected")
	_ = cmd.MarkFlagRequired("status")

	return cmd
}

func newReportDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("report id", args[0])
			if err != nil {
				return err
			}

			return runAction(cmd, app, "Deleting report...", "Report deleted.", func(ctx context.Context, svc *api.Services) error {
				return svc.PostReports.DeleteReport(ctx, id)
			})
		},
	}
}
