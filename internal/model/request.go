package model

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GoogleSignInRequest struct {
	IDToken string `json:"idToken"`
}

type CreateJobRequest struct {
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	EmploymentType string    `json:"employmentType"`
	PostedDate     time.Time `json:"postedDate"`
	ApplyLink      string    `json:"applyLink"`
}

// UpdateJobRequest carries the fixed set of mutable fields. postedBy and
// postedDate are deliberately absent.
type UpdateJobRequest struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Description    string `json:"description"`
	EmploymentType string `json:"employmentType"`
	ApplyLink      string `json:"applyLink"`
}
