package domain

import "time"

type ChatRoomInput struct {
	Subject string `json:"subject,omitempty"`
	Message string `json:"initialMessage,omitempty"`
}

type ChatRoom struct {
	RoomID    string    `json:"roomId"`
	UserID    UserID    `json:"userId,omitempty"`
	StaffID   UserID    `json:"staffId,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
