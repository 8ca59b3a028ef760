package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/hanksha/skillbridge-bff/model"
)

func (c *Client) CreateReview(ctx context.Context, creds model.Credentials, request model.ReviewRequest) (model.Review, error) {
	if err := requireSession(creds); err != nil {
		return model.Review{}, err
	}

	reviewURL, err := c.apiURL("api", "reviews")

	if err != nil {
		return model.Review{}, err
	}

	body, err := c.do(ctx, http.MethodPost, reviewURL, creds, request)

	if err != nil {
		return model.Review{}, err
	}

	created, err := decodeOne[model.Review](body, "review")

	if err != nil || created == nil {
		// The review was accepted; the API just did not echo it back.
		return model.Review{
			Rating:    request.Rating,
			Comment:   request.Comment,
			BookingID: request.BookingID,
			TutorID:   request.TutorID,
			StudentID: request.StudentID,
		}, nil
	}

	return *created, nil
}

// GetReviewByBooking returns nil without error when the booking has no review.
func (c *Client) GetReviewByBooking(ctx context.Context, creds model.Credentials, bookingID string) (*model.Review, error) {
	reviewURL, err := c.apiURL("api", "reviews", "booking", bookingID)

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, reviewURL, creds, nil)

	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	review, err := decodeOne[model.Review](body, "review")

	if err != nil {
		return nil, err
	}

	if review == nil || len(review.ID) == 0 {
		return nil, nil
	}

	return review, nil
}

func (c *Client) GetTutorReviews(ctx context.Context, creds model.Credentials, userID string) ([]model.Review, error) {
	reviewsURL, err := c.apiURL("api", "reviews", "tutor", userID)

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, reviewsURL, creds, nil)

	if err != nil {
		return nil, err
	}

	return decodeList[model.Review](body, "reviews")
}
