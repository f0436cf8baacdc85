package domain

import "time"

type Profile struct {
	UserID        UserID     `json:"userId"`
	FullName      string     `json:"fullName"`
	Email         string     `json:"email,omitempty"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	HeightCM      float64    `json:"height,omitempty"`
	WeightKG      float64    `json:"weight,omitempty"`
	ActivityLevel string     `json:"activityLevel,omitempty"`
	Goal          string     `json:"goal,omitempty"`
	AvatarURL     string     `json:"avatarUrl,omitempty"`
}

type ProfileInput struct {
	FullName      string     `json:"fullName,omitempty"`
	PhoneNumber   string     `json:"phoneNumber,omitempty"`
	Gender        string     `json:"gender,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	HeightCM      float64    `json:"height,omitempty"`
	WeightKG      float64    `json:"weight,omitempty"`
	ActivityLevel string     `json:"activityLevel,omitempty"`
	Goal          string     `json:"goal,omitempty"`
}

type TrialRecommendationInput struct {
	Age           int     `json:"age"`
	Gender        string  `json:"gender"`
	HeightCM      float64 `json:"height"`
	WeightKG      float64 `json:"weight"`
	ActivityLevel string  `json:"activityLevel"`
	Goal          string  `json:"goal"`
}

type TrialRecommendation struct {
	ID              int       `json:"id"`
	DailyCalories   float64   `json:"dailyCalories"`
	ProteinGrams    float64   `json:"protein"`
	CarbsGrams      float64   `json:"carbohydrates"`
	FatGrams        float64   `json:"fat"`
	WaterTargetInML int       `json:"waterIntakeInMl"`
	Advice          string    `json:"advice,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}
