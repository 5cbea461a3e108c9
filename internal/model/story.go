package model

import "time"

// Story is a success-story entry. The listing is static data served as-is.
type Story struct {
	Name       string    `json:"name"`
	JobTitle   string    `json:"jobTitle"`
	Location   string    `json:"location"`
	Story      string    `json:"story"`
	PostedDate time.Time `json:"postedDate"`
	ImageURL   string    `json:"imageUrl"`
}
