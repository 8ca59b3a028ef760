package model

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTutor   Role = "TUTOR"
	RoleAdmin   Role = "ADMIN"
)

type UserStatus string

const (
	UserActive   UserStatus = "ACTIVE"
	UserInactive UserStatus = "INACTIVE"
	UserBanned   UserStatus = "BAND" // spelled as the remote API spells it
)

func (s UserStatus) Known() bool {
	return s == UserActive || s == UserInactive || s == UserBanned
}

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone,omitempty"`
	Image     string     `json:"image,omitempty"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type StudentProfile struct {
	ID        string     `json:"id"`
	StudentID string     `json:"studentId"`
	Grade     string     `json:"grade"`
	Interests Interests  `json:"interests"`
	User      User       `json:"user"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Interests is sent by the API either as a list or as one comma separated
// string. Both decode to a list; it always encodes as a list.
type Interests []string

func (i *Interests) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*i = nil
		return nil
	}

	var list []string

	if err := json.Unmarshal(data, &list); err == nil {
		*i = list
		return nil
	}

	var text string

	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	parsed := Interests{}

	for _, interest := range strings.Split(text, ",") {
		if interest = strings.TrimSpace(interest); len(interest) != 0 {
			parsed = append(parsed, interest)
		}
	}

	*i = parsed
	return nil
}
