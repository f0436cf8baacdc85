package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	sessionview "github.com/bnema/nutricoach-cli/internal/adapters/render/session"
	"github.com/bnema/nutricoach-cli/internal/application"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the stored session credential",
	}

	cmd.AddCommand(
		newSessionSetCmd(app),
		newSessionShowCmd(app),
		newSessionClearCmd(app),
	)

	return cmd
}

func newSessionSetCmd(app *app) *cobra.Command {
	var input application.SetSessionCommand
	var data string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the session returned by the login endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session := input.Session()
			if strings.TrimSpace(data) != "" {
				session = domain.Session{}
				if err := decodeData(cmd, data, &session); err != nil {
					return err
				}
			}

			if err := app.sessions.SetSession(cmd.Context(), session); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Session saved for %s\n", session.DisplayName())
			return err
		},
	}

	cmd.Flags().StringVar(&input.AccessToken, "access-token", "", "Bearer access token")
	cmd.Flags().StringVar(&input.RefreshToken, "refresh-token", "", "Refresh token")
	cmd.Flags().StringVar(&input.UserID, "user-id", "", "User id")
	cmd.Flags().StringVar(&input.Email, "email", "", "User email")
	cmd.Flags().StringVar(&input.FullName, "name", "", "User full name")
	cmd.Flags().StringVar(&input.Role, "role", "", "User role (Customer, Trainer, Staff, Admin)")
	cmd.Flags().StringVar(&data, "data", "", `Full session object as JSON, "@file.json", or "-" for stdin`)
	cmd.MarkFlagsOneRequired("access-token", "data")
	cmd.MarkFlagsMutuallyExclusive("access-token", "data")

	return cmd
}

type sessionOutput struct {
	SignedIn  bool        `json:"signedIn"`
	UserID    string      `json:"userId,omitempty"`
	Email     string      `json:"email,omitempty"`
	FullName  string      `json:"fullName,omitempty"`
	Role      domain.Role `json:"role,omitempty"`
	Subject   string      `json:"subject,omitempty"`
	IssuedAt  *time.Time  `json:"issuedAt,omitempty"`
	ExpiresAt *time.Time  `json:"expiresAt,omitempty"`
	Expired   bool        `json:"expired"`
	Token     string      `json:"accessToken,omitempty"`
}

func newSessionShowCmd(app *app) *cobra.Command {
	var showToken bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the signed-in user and token expiry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := app.sessions.Status(cmd.Context())
			switch {
			case err == nil, errors.Is(err, domain.ErrSessionNotFound):
			case errors.Is(err, domain.ErrSessionMalformed):
				app.logger.Warn("ignoring malformed session entry", "error", err)
			default:
				return err
			}

			if cmd.Flags().Changed("output") {
				return writeOutput(cmd, app.flags.output, toSessionOutput(status, showToken))
			}

			rendered, err := sessionview.Render(status, sessionview.RenderOptions{
				Now:       app.now(),
				ShowToken: showToken,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&showToken, "show-token", false, "Print the full access token")

	return cmd
}

func toSessionOutput(status application.SessionStatus, showToken bool) sessionOutput {
	out := sessionOutput{
		SignedIn:  status.SignedIn,
		UserID:    string(status.Session.ID),
		Email:     status.Session.Email,
		FullName:  status.Session.FullName,
		Role:      status.Session.Role,
		Subject:   status.Subject,
		IssuedAt:  status.IssuedAt,
		ExpiresAt: status.ExpiresAt,
		Expired:   status.Expired,
	}
	if showToken {
		out.Token = status.Session.AccessToken
	}

	return out
}

func newSessionClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.sessions.ClearSession(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Session cleared.")
			return err
		},
	}
}
