package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidTransition = errors.New("invalid booking transition")

var ErrActionInFlight = errors.New("action already in progress for this booking")

var ErrInvalidReview = errors.New("invalid review")

var ErrAlreadyReviewed = errors.New("booking already reviewed")

var ErrSlotUnavailable = errors.New("slot unavailable")
