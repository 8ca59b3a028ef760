package apiclient

import (
	"context"
	"net/http"

	"github.com/hanksha/skillbridge-bff/model"
)

func (c *Client) GetSlotsByTutor(ctx context.Context, creds model.Credentials, tutorID string) ([]model.Slot, error) {
	slotsURL, err := c.apiURL("api", "tutor", "profileSlot", tutorID)

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, slotsURL, creds, nil)

	if err != nil {
		return nil, err
	}

	return decodeList[model.Slot](body, "slots")
}

func (c *Client) AddSlots(ctx context.Context, creds model.Credentials, tutorID string, slots []model.SlotInput) ([]model.Slot, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	slotsURL, err := c.apiURL("api", "tutor", "profileSlot", tutorID)

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodPost, slotsURL, creds, map[string][]model.SlotInput{"slots": slots})

	if err != nil {
		return nil, err
	}

	return decodeList[model.Slot](body, "slots")
}

func (c *Client) DeleteSlot(ctx context.Context, creds model.Credentials, slotID string) error {
	if err := requireSession(creds); err != nil {
		return err
	}

	slotURL, err := c.apiURL("api", "tutor", "profileSlot", slotID)

	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodDelete, slotURL, creds, nil)

	return err
}
