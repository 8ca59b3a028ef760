package apiclient

import (
	"context"
	"net/http"

	"github.com/hanksha/skillbridge-bff/model"
)

func (c *Client) GetAllUsers(ctx context.Context, creds model.Credentials) ([]model.User, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	usersURL, err := c.apiURL("api", "admin", "users")

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, usersURL, creds, nil)

	if err != nil {
		return nil, err
	}

	return decodeList[model.User](body, "users")
}

func (c *Client) UpdateUserStatus(ctx context.Context, creds model.Credentials, userID string, status model.UserStatus) error {
	if err := requireSession(creds); err != nil {
		return err
	}

	userURL, err := c.apiURL("api", "admin", "users", userID)

	if err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPatch, userURL, creds, map[string]model.UserStatus{"status": status})

	return err
}

func (c *Client) GetAllStudentProfiles(ctx context.Context, creds model.Credentials) ([]model.StudentProfile, error) {
	if err := requireSession(creds); err != nil {
		return nil, err
	}

	profilesURL, err := c.apiURL("api", "admin", "student", "Allprofile")

	if err != nil {
		return nil, err
	}

	body, err := c.do(ctx, http.MethodGet, profilesURL, creds, nil)

	if err != nil {
		return nil, err
	}

	return decodeList[model.StudentProfile](body, "students")
}
