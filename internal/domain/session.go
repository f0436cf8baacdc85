package domain

import (
	"fmt"
	"strings"
)

// SessionKey is the persisted-store key holding the signed-in user.
const SessionKey = "user"

type UserID string

type Role string

const (
	RoleCustomer Role = "Customer"
	RoleTrainer  Role = "Trainer"
	RoleStaff    Role = "Staff"
	RoleAdmin    Role = "Admin"
)

// Session is the credential written at login and read before every request.
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ID           UserID `json:"id,omitempty"`
	Email        string `json:"email,omitempty"`
	FullName     string `json:"fullName,omitempty"`
	Role         Role   `json:"role,omitempty"`
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.AccessToken) == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidArgument)
	}

	return nil
}

func (s Session) DisplayName() string {
	switch {
	case strings.TrimSpace(s.FullName) != "":
		return s.FullName
	case strings.TrimSpace(s.Email) != "":
		return s.Email
	case s.ID != "":
		return string(s.ID)
	default:
		return "unknown user"
	}
}
