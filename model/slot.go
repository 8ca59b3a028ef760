package model

type Slot struct {
	ID             string `json:"id"`
	Date           string `json:"date"`      // YYYY-MM-DD
	StartTime      string `json:"startTime"` // HH:mm
	EndTime        string `json:"endTime"`   // HH:mm
	IsBooked       bool   `json:"isBooked"`
	TutorProfileID string `json:"tutorProfileId,omitempty"`
}

type SlotInput struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
