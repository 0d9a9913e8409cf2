package dto

import (
	"time"

	"github.com/spec-kit/careerpulse/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// SaveJobRequest payload. A present id means full update, otherwise create.
// Dates travel as YYYY-MM-DD strings.
type SaveJobRequest struct {
	ID           string  `json:"id"`
	CompanyName  string  `json:"companyName"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	AppliedDate  string  `json:"appliedDate"`
	FollowUpDate *string `json:"followUpDate"`
	Notes        string  `json:"notes"`
	Location     string  `json:"location"`
	Salary       string  `json:"salary"`
}

// JobResponse renders one tracked application.
type JobResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	CompanyName  string  `json:"companyName"`
	Role         string  `json:"role"`
	Status       string  `json:"status"`
	AppliedDate  string  `json:"appliedDate"`
	FollowUpDate *string `json:"followUpDate"`
	Notes        string  `json:"notes"`
	Location     string  `json:"location"`
	Salary       string  `json:"salary"`
}

// StatsResponse renders per-status counts.
type StatsResponse struct {
	Total     int `json:"total"`
	Applied   int `json:"applied"`
	Interview int `json:"interview"`
	Offer     int `json:"offer"`
	Rejected  int `json:"rejected"`
}

// NewJobResponse maps a domain record to its wire form.
func NewJobResponse(job *domain.JobApplication) JobResponse {
	resp := JobResponse{
		ID:          job.ID,
		UserID:      job.UserID,
		CompanyName: job.CompanyName,
		Role:        job.Role,
		Status:      string(job.Status),
		AppliedDate: job.AppliedDate.Format(DateLayout),
		Notes:       job.Notes,
		Location:    job.Location,
		Salary:      job.Salary,
	}
	if job.FollowUpDate != nil {
		formatted := job.FollowUpDate.Format(DateLayout)
		resp.FollowUpDate = &formatted
	}
	return resp
}

// NewJobListResponse maps a slice of records, preserving order.
func NewJobListResponse(jobs []domain.JobApplication) []JobResponse {
	result := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, NewJobResponse(&jobs[i]))
	}
	return result
}

// ParseDate parses a YYYY-MM-DD wire date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
