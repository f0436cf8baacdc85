package domain

import "time"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

type TrainerApplication struct {
	ID              int               `json:"id"`
	UserID          UserID            `json:"userId"`
	FullName        string            `json:"fullName,omitempty"`
	Experience      string            `json:"experience"`
	Certificates    []string          `json:"certificates,omitempty"`
	Introduction    string            `json:"introduction,omitempty"`
	Status          ApplicationStatus `json:"status"`
	RejectionReason string            `json:"rejectionReason,omitempty"`
	SubmittedAt     time.Time         `json:"submittedAt"`
}

type TrainerApplicationInput struct {
	Experience   string   `json:"experience"`
	Certificates []string `json:"certificates,omitempty"`
	Introduction string   `json:"introduction,omitempty"`
}

type TrainerRating struct {
	ID        int       `json:"id"`
	TrainerID UserID    `json:"trainerId"`
	UserID    UserID    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type TrainerRatingInput struct {
	TrainerID UserID `json:"trainerId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
}

type RatingSummary struct {
	TrainerID     UserID  `json:"trainerId"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}
