package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/careerpulse/internal/api/dto"
	"github.com/spec-kit/careerpulse/internal/auth"
	"github.com/spec-kit/careerpulse/internal/domain"
	"github.com/spec-kit/careerpulse/internal/service"
	apperrors "github.com/spec-kit/careerpulse/pkg/util"
)

// JobsHandler exposes the job-application endpoints. Every operation is
// scoped to the user id the auth middleware resolved from the bearer token.
type JobsHandler struct {
	jobs *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{jobs: jobService}
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	jobs, err := h.jobs.ListJobs(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewJobListResponse(jobs)})
}

// Save handles POST /api/jobs. A payload without an id creates a record; one
// with an id fully replaces it.
func (h *JobsHandler) Save(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	var req dto.SaveJobRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CompanyName == "" || req.Role == "" {
		return apperrors.NewValidationError("companyName and role required", nil)
	}

	input := service.JobSaveInput{
		ID:          req.ID,
		CompanyName: req.CompanyName,
		Role:        req.Role,
		Status:      domain.JobStatus(req.Status),
		Notes:       req.Notes,
		Location:    req.Location,
		Salary:      req.Salary,
	}

	if req.AppliedDate != "" {
		applied, err := dto.ParseDate(req.AppliedDate)
		if err != nil {
			return apperrors.NewValidationError("appliedDate must be YYYY-MM-DD", nil)
		}
		input.AppliedDate = &applied
	}
	if req.FollowUpDate != nil && *req.FollowUpDate != "" {
		followUp, err := dto.ParseDate(*req.FollowUpDate)
		if err != nil {
			return apperrors.NewValidationError("followUpDate must be YYYY-MM-DD", nil)
		}
		input.FollowUpDate = &followUp
	}

	created := req.ID == ""
	job, err := h.jobs.SaveJob(c.Context(), userID, input)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"data": dto.NewJobResponse(job)})
}

// Delete handles DELETE /api/jobs/:id.
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	jobID := c.Params("id")
	if jobID == "" {
		return apperrors.NewValidationError("job id required", nil)
	}

	if err := h.jobs.DeleteJob(c.Context(), jobID, userID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"success": true}})
}

// Stats handles GET /api/jobs/stats.
func (h *JobsHandler) Stats(c *fiber.Ctx) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Invalid token")
	}

	stats, err := h.jobs.Stats(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.StatsResponse{
		Total:     stats.Total,
		Applied:   stats.Applied,
		Interview: stats.Interview,
		Offer:     stats.Offer,
		Rejected:  stats.Rejected,
	}})
}
