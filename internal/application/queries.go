package application

import (
	"time"

	"github.com/bnema/nutricoach-cli/internal/domain"
)

type SessionStatus struct {
	Session   domain.Session
	SignedIn  bool
	Subject   string
	IssuedAt  *time.Time
	ExpiresAt *time.Time
	Expired   bool
	CheckedAt time.Time
}
