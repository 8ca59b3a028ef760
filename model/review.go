package model

import "time"

type Review struct {
	ID        string         `json:"id"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	BookingID string         `json:"bookingId,omitempty"`
	TutorID   string         `json:"tutorId,omitempty"`
	StudentID string         `json:"studentId,omitempty"`
	CreatedAt *time.Time     `json:"createdAt,omitempty"`
	Student   *Person        `json:"student,omitempty"`
	Booking   *ReviewBooking `json:"booking,omitempty"`
}

// ReviewRequest is the body of a review creation; the server assigns the id.
type ReviewRequest struct {
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	BookingID string `json:"bookingId"`
	TutorID   string `json:"tutorId,omitempty"`
	StudentID string `json:"studentId,omitempty"`
}

type ReviewBooking struct {
	DateTime *time.Time    `json:"dateTime,omitempty"`
	Status   BookingStatus `json:"status"`
}
