package domain

import "time"

// WaterDateLayout is the calendar-day format the backend expects for water-log queries.
const WaterDateLayout = "2006-01-02"

type UserWaterLog struct {
	ID         int       `json:"id"`
	UserID     UserID    `json:"userId"`
	AmountInML int       `json:"amountInMl"`
	ConsumedAt time.Time `json:"consumedAt"`
	Note       string    `json:"note,omitempty"`
}

type UserWaterLogInput struct {
	AmountInML int        `json:"amountInMl"`
	ConsumedAt *time.Time `json:"consumedAt,omitempty"`
	Note       string     `json:"note,omitempty"`
}

type WaterSummary struct {
	Date         string `json:"date"`
	TotalInML    int    `json:"totalAmountInMl"`
	TargetInML   int    `json:"targetAmountInMl"`
	EntriesCount int    `json:"entriesCount"`
}

func (s WaterSummary) Remaining() int {
	if s.TotalInML >= s.TargetInML {
		return 0
	}

	return s.TargetInML - s.TotalInML
}
