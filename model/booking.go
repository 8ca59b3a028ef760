package model

import "time"

type BookingStatus string

const (
	StatusPending     BookingStatus = "PENDING"
	StatusConfirmed   BookingStatus = "CONFIRMED"
	StatusAttended    BookingStatus = "ATTENDED"
	StatusRescheduled BookingStatus = "RESCHEDULED"
	StatusCompleted   BookingStatus = "COMPLETED"
	StatusCancelled   BookingStatus = "CANCELLED"
)

var bookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusAttended,
	StatusRescheduled,
	StatusCompleted,
	StatusCancelled,
}

// Known reports whether the status is one the remote API is documented to use.
func (s BookingStatus) Known() bool {
	for _, status := range bookingStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Booking struct {
	ID        string        `json:"id"`
	TutorID   string        `json:"tutorId,omitempty"`
	StudentID string        `json:"studentId,omitempty"`
	SlotID    string        `json:"slotId,omitempty"`
	DateTime  *time.Time    `json:"dateTime,omitempty"`
	Status    BookingStatus `json:"status"`
	CreatedAt *time.Time    `json:"createdAt,omitempty"`
	SlotInfo  *Slot         `json:"slot,omitempty"` // only populated on the tutor queue
	Student   *Person       `json:"student,omitempty"`
	Tutor     *Person       `json:"tutor,omitempty"`
}

type Person struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type BookingRequest struct {
	TutorProfileID string        `json:"tutorProfileId"`
	DateTime       string        `json:"dateTime"`
	Status         BookingStatus `json:"status"`
	SlotID         string        `json:"slotId,omitempty"`
}
