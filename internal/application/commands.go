package application

import (
	"strings"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type SetSessionCommand struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	FullName     string
	Role         string
}

func (c SetSessionCommand) Session() domain.Session {
	return domain.Session{
		AccessToken:  strings.TrimSpace(c.AccessToken),
		RefreshToken: strings.TrimSpace(c.RefreshToken),
		ID:           domain.UserID(strings.TrimSpace(c.UserID)),
		Email:        strings.TrimSpace(c.Email),
		FullName:     strings.TrimSpace(c.FullName),
		Role:         domain.Role(strings.TrimSpace(c.Role)),
	}
}
