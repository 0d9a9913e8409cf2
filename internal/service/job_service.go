package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/careerpulse/internal/domain"
	"github.com/spec-kit/careerpulse/internal/repository"
	apperrors "github.com/spec-kit/careerpulse/pkg/util"
)

// JobService performs owner-scoped CRUD over job applications. It trusts the
// caller-supplied user id, which the boundary layer resolves from the bearer
// token; it never authenticates on its own.
type JobService struct {
	jobs repository.JobRepository
}

// JobSaveInput describes a save payload. An empty ID means creation; a
// present ID means a full replace of all mutable fields.
type JobSaveInput struct {
	ID           string
	CompanyName  string
	Role         string
	Status       domain.JobStatus
	AppliedDate  *time.Time
	FollowUpDate *time.Time
	Notes        string
	Location     string
	Salary       string
}

// JobStats aggregates per-status counts for the dashboard.
type JobStats struct {
	Total     int
	Applied   int
	Interview int
	Offer     int
	Rejected  int
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

// ListJobs returns all records owned by the user, most recent applied date
// first. Zero records is an empty slice, not an error.
func (s *JobService) ListJobs(ctx context.Context, userID string) ([]domain.JobApplication, error) {
	jobs, err := s.jobs.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	if jobs == nil {
		jobs = []domain.JobApplication{}
	}
	return jobs, nil
}

// SaveJob creates or fully replaces a record. On create the id is generated
// here, status defaults to "applied" and the applied date to today; optional
// fields absent from the input are written as empty, not left unchanged. On
// update, a record that does not exist or belongs to another user surfaces as
// NotFound rather than a silent success.
func (s *JobService) SaveJob(ctx context.Context, userID string, input JobSaveInput) (*domain.JobApplication, error) {
	status := input.Status
	if status == "" {
		status = domain.JobStatusApplied
	}
	if !status.Valid() {
		return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": string(input.Status)})
	}

	appliedDate := today()
	if input.AppliedDate != nil {
		appliedDate = *input.AppliedDate
	}

	job := &domain.JobApplication{
		ID:           input.ID,
		UserID:       userID,
		CompanyName:  input.CompanyName,
		Role:         input.Role,
		Status:       status,
		AppliedDate:  appliedDate,
		FollowUpDate: input.FollowUpDate,
		Notes:        input.Notes,
		Location:     input.Location,
		Salary:       input.Salary,
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
		if err := s.jobs.Insert(ctx, job); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
		return job, nil
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job")
		}
		return nil, apperrors.NewStorageError(err)
	}
	return job, nil
}

// DeleteJob removes the record matching both id and owner. A miss on either
// surfaces as NotFound; a non-owner can neither delete nor probe existence.
func (s *JobService) DeleteJob(ctx context.Context, jobID, userID string) error {
	if err := s.jobs.Delete(ctx, jobID, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("job")
		}
		return apperrors.NewStorageError(err)
	}
	return nil
}

// Stats aggregates the user's records per status.
func (s *JobService) Stats(ctx context.Context, userID string) (*JobStats, error) {
	counts, err := s.jobs.CountByStatus(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	stats := &JobStats{
		Applied:   counts[domain.JobStatusApplied],
		Interview: counts[domain.JobStatusInterview],
		Offer:     counts[domain.JobStatusOffer],
		Rejected:  counts[domain.JobStatusRejected],
	}
	stats.Total = stats.Applied + stats.Interview + stats.Offer + stats.Rejected
	return stats, nil
}

// today returns the current calendar date with no time component.
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
