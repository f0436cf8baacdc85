package cmd

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/adapters/api"
	"github.com/bnema/nutricoach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Contact support",
	}
	cmd.AddCommand(newChatCreateRoomCmd(app))

	return cmd
}

func newChatCreateRoomCmd(app *app) *cobra.Command {
	var in domain.ChatRoomInput

	cmd := &cobra.Command{
		Use:   "create-room",
		Short: "Open a support chat room",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCall(cmd, app, "Opening chat room...", func(ctx context.Context, svc *api.Services) (domain.ChatRoom, error) {
				return svc.ChatSupport.CreateRoom(ctx, in)
			})
		},
	}
	cmd.Flags().StringVar(&in.Subject, "subject", "", "Conversation subject")
	cmd.Flags().StringVar(&in.Message, "message", "", "First message")

	return cmd
}
