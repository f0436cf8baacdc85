package domain

import (
	"fmt"
	"time"
)

type ReportReason struct {
	ID          int    `json:"id"`
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

type ReportReasonInput struct {
	Reason      string `json:"reason"`
	Description string `json:"description,omitempty"`
}

type ReportStatus string

const (
	ReportPending  ReportStatus = "Pending"
	ReportResolved ReportStatus = "Resolved"
	ReportRejected ReportStatus = "Rejected"
)

type PostReport struct {
	ID         int          `json:"id"`
	PostID     int          `json:"postId"`
	ReasonID   int          `json:"reportReasonId"`
	ReasonText string       `json:"reason,omitempty"`
	ReporterID UserID       `json:"userId"`
	Note       string       `json:"note,omitempty"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
}

type PostReportInput struct {
	PostID   int    `json:"postId"`
	ReasonID int    `json:"reportReasonId"`
	Note     string `json:"note,omitempty"`
}

type ReportCheck struct {
	PostID      int  `json:"postId"`
	HasReported bool `json:"hasReported"`
}

func (s ReportStatus) Validate() error {
	switch s {
	case ReportPending, ReportResolved, ReportRejected:
		return nil
	default:
		return fmt.Errorf("%w: unknown report status %q", ErrInvalidArgument, string(s))
	}
}
