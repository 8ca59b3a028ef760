package slot

import "errors"

var (
	ErrInvalidSlot  = errors.New("invalid slot")
	ErrSlotBooked   = errors.New("slot is already booked")
	ErrSlotNotFound = errors.New("slot not found")
)
