// internal/models/opportunity.go
package models

import "time"

type Job struct {
	ID       string   `json:"id" validate:"required"`
	Title    string   `json:"title" validate:"required"`
	Company  string   `json:"company,omitempty"`
	Location string   `json:"location,omitempty"`
	JobType  string   `json:"jobType,omitempty"`
	Branch   string   `json:"branch,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type Event struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Category  string    `json:"category,omitempty"`
	Branch    string    `json:"branch,omitempty"`
	Location  string    `json:"location,omitempty"`
	StartDate time.Time `json:"startDate"`
}

// Connection is a row of the connections table as seen from one user.
type Connection struct {
	RequesterID string `json:"requesterId"`
	ResponderID string `json:"responderId"`
	Status      string `json:"status"`
}

// Other returns the id on the opposite side of userID.
func (c Connection) Other(userID string) string {
	if c.RequesterID == userID {
		return c.ResponderID
	}
	return c.RequesterID
}

func (j Job) Validate() error {
	return validate.Struct(j)
}

func (e Event) Validate() error {
	return validate.Struct(e)
}
