package apiclient

import (
	"context"
	"net/http"

	"github.com/hanksha/skillbridge-bff/model"
)

func (c *Client) GetMyBookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error) {
	return c.listBookings(ctx, creds, "api", "my", "bookings")
}

func (c *Client) GetTutorBookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error) {
	return c.listBookings(ctx, creds, "api", "my", "bookings", "tutor")
}

func (c *Client) GetAllBookings(ctx context.Context, creds model.Credentials) ([]model.Booking, error) {
	return c.listBookings(ctx, creds, "api", "all", "bookings")
}

func (c *Client) listBookings(ctx context.Context, creds model.Credentials, elem ...string) ([]model.Booking, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	listURL, err := c.apiURL(elem...)

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, listURL, creds, nil)

	if err != nil {
		return nil, err
	}

	return decodeList[model.Booking](body, "bookings")
}

func (c *Client) CreateBooking(ctx context.Context, creds model.Credentials, booking model.BookingRequest) (model.Booking, error) {
	if err := requireSession(creds); err != nil {
		return model.Booking{}, err
	}

	createURL, err := c.apiURL("api", "bookings")

	if err != nil {
		return model.Booking{}, err
	}

	body, err := c.do(ctx, http.MethodPost, createURL, creds, booking)

	if err != nil {
		return model.Booking{}, err
	}

	created, err := decodeOne[model.Booking](body, "booking")

	if err != nil {
		return model.Booking{}, err
	}

	if created == nil {
		return model.Booking{}, ErrNotFound
	}

	return *created, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, creds model.Credentials, id string, status model.BookingStatus) error {
	if err := requireSession(creds); err != nil {
		return err
	}

	bookingURL, err := c.apiURL("api", "bookings", id)

	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPatch, bookingURL, creds, map[string]model.BookingStatus{"status": status})

	return err
}

func (c *Client) CompleteBooking(ctx context.Context, creds model.Credentials, id string) error {
	return c.UpdateBookingStatus(ctx, creds, id, model.StatusCompleted)
}
