package handlers

import (
	"errors"

	"careerhub/internal/core/services"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ApplicationHandler handles application ledger endpoints
type ApplicationHandler struct {
	applicationService *services.ApplicationService
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

// UpdateStatusRequest represents status update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Apply handles job application submission
// @Summary Apply to a job
// @Description Submit an application to a job (one per job per user)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param body body services.ApplyInput true "Application data"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /jobs/{id}/apply [post]
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return response.BadRequest(c, "Invalid job ID")
	}

	var input services.ApplyInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.Apply(c.Context(), actor, uint(jobID), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			return response.NotFound(c, "Job not found")
		case errors.Is(err, services.ErrPermissionDenied):
			return response.Forbidden(c, "Only job seekers can apply to jobs")
		case errors.Is(err, services.ErrAlreadyApplied):
			return response.Conflict(c, "You have already applied to this job")
		default:
			return response.InternalServerError(c, "Failed to submit application")
		}
	}

	return response.Created(c, "Application submitted successfully", fiber.Map{
		"application": application.ToResponse(),
	})
}

// GetByID handles application detail
// @Summary Get application detail
// @Description Get an application by ID (applicant, owning employer or admin)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid application ID")
	}

	application, err := h.applicationService.GetByID(c.Context(), actor, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, services.ErrPermissionDenied):
			return response.Forbidden(c, "You don't have permission to view this application")
		default:
			return response.InternalServerError(c, "Failed to get application")
		}
	}

	return response.Success(c, "Application retrieved successfully", fiber.Map{
		"application": application.ToResponse(),
	})
}

// ListForJob handles listing applications to a job
// @Summary List applications for a job
// @Description List applications submitted to a job (owning employer or admin only)
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /jobs/{id}/applications [get]
func (h *ApplicationHandler) ListForJob(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	jobID, err := c.ParamsInt("id")
	if err != nil || jobID < 1 {
		return response.BadRequest(c, "Invalid job ID")
	}

	result, err := h.applicationService.ListForJob(c.Context(), actor, uint(jobID), pagination.GetParams(c).Page)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			return response.NotFound(c, "Job not found")
		case errors.Is(err, services.ErrPermissionDenied):
			return response.Forbidden(c, "You don't have permission to view these applications")
		default:
			return response.InternalServerError(c, "Failed to list applications")
		}
	}

	return response.Success(c, "Applications retrieved successfully", result)
}

// MyApplications handles the seeker's own application listing
// @Summary List my applications
// @Description List the authenticated job seeker's own applications
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /my/applications [get]
func (h *ApplicationHandler) MyApplications(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.applicationService.ListMine(c.Context(), actor, pagination.GetParams(c).Page)
	if err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			return response.Forbidden(c, "Only job seekers have an application list")
		}
		return response.InternalServerError(c, "Failed to list applications")
	}

	return response.Success(c, "Applications retrieved successfully", result)
}

// UpdateStatus handles application review
// @Summary Update application status
// @Description Move an application to pending, reviewed, accepted or rejected
// @Tags Applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid application ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	application, err := h.applicationService.UpdateStatus(c.Context(), actor, uint(id), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Status must be pending, reviewed, accepted or rejected")
		case errors.Is(err, services.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, services.ErrPermissionDenied):
			return response.Forbidden(c, "You don't have permission to review this application")
		default:
			return response.InternalServerError(c, "Failed to update application status")
		}
	}

	return response.Success(c, "Application status updated successfully", fiber.Map{
		"application": application.ToResponse(),
	})
}
