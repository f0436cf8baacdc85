package api

import (
	"context"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type ChatSupport struct {
	r *Resource
}

func NewChatSupport(c *Client) *ChatSupport {
	return &ChatSupport{r: c.Resource("ChatSupport")}
}

func (s *ChatSupport) CreateRoom(ctx context.Context, in domain.ChatRoomInput) (domain.ChatRoom, error) {
	return post[domain.ChatRoom](ctx, s.r, s.r.Path("create-room"), in, "Failed to create support chat room.")
}
