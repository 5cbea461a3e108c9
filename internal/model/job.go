package model

import "time"

// EmploymentTypeAll is the query sentinel meaning "do not filter".
const EmploymentTypeAll = "All"

// JobEntry is a job posting. PostedBy records the creating user's id and is
// immutable after creation; only the owner may delete the entry.
// JSON names are camelCase because they are the public wire contract.
type JobEntry struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	EmploymentType string    `json:"employmentType"`
	PostedDate     time.Time `json:"postedDate"`
	ApplyLink      string    `json:"applyLink"`
	PostedBy       string    `json:"postedBy"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
