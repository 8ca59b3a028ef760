package model

import "encoding/json"

type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

type TutorProfile struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	CategoryID    string      `json:"categoryId"`
	Experience    string      `json:"experience"`
	Price         float64     `json:"price"`
	Status        string      `json:"status"`
	Rating        json.Number `json:"rating,omitempty"` // the API sends either a string or a number
	Bio           string      `json:"bio,omitempty"`
	Location      string      `json:"location,omitempty"`
	TotalStudents int         `json:"totalStudents,omitempty"`
	TotalReviews  int         `json:"totalReviews,omitempty"`
	User          *User       `json:"user,omitempty"`
	Category      *Category   `json:"category,omitempty"`
}

// TutorProfileInput is what a tutor sends to create or update their profile.
type TutorProfileInput struct {
	CategoryID string  `json:"categoryId"`
	Bio        string  `json:"bio"`
	Experience string  `json:"experience"`
	Price      float64 `json:"price"`
}

type TutorQuery struct {
	Search     string
	CategoryID string
	Rating     float64
	Price      float64
}
