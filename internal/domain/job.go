package domain

import "time"

// JobStatus enumerates lifecycle states for a tracked application. The set is
// closed; anything else is a validation error, never coerced.
type JobStatus string

const (
	JobStatusApplied   JobStatus = "applied"
	JobStatusInterview JobStatus = "interview"
	JobStatusOffer     JobStatus = "offer"
	JobStatusRejected  JobStatus = "rejected"
)

// Valid reports whether the status is one of the four defined values.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusApplied, JobStatusInterview, JobStatusOffer, JobStatusRejected:
		return true
	}
	return false
}

// JobApplication is the aggregate for one tracked application. Ownership is
// set at creation and never reassigned.
type JobApplication struct {
	ID           string
	UserID       string
	CompanyName  string
	Role         string
	Status       JobStatus
	AppliedDate  time.Time
	FollowUpDate *time.Time
	Notes        string
	Location     string
	Salary       string
	CreatedAt    time.Time
}
