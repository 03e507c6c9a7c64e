package handlers

import (
	"errors"

	"careerhub/internal/core/domain"
	"careerhub/internal/core/services"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// JobHandler handles job catalog endpoints
type JobHandler struct {
	jobService         *services.JobService
	applicationService *services.ApplicationService
}

// NewJobHandler creates a new job handler
func NewJobHandler(jobService *services.JobService, applicationService *services.ApplicationService) *JobHandler {
	return &JobHandler{
		jobService:         jobService,
		applicationService: applicationService,
	}
}

// actorFromCtx builds the policy actor from the auth middleware locals.
func actorFromCtx(c *fiber.Ctx) (domain.Actor, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := c.Locals("role").(domain.Role)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: userID, Role: role}, true
}

// Home handles the landing page payload
// @Summary Landing page
// @Description Returns the most recent active jobs and the active-job count
// @Tags Jobs
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /home [get]
func (h *JobHandler) Home(c *fiber.Ctx) error {
	home, err := h.jobService.Home(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load home page")
	}

	return response.Success(c, "Home page retrieved successfully", home)
}

// Search handles job search
// @Summary Search jobs
// @Description Search active jobs with optional keyword, location, category and job type filters
// @Tags Jobs
// @Accept json
// @Produce json
// @Param keywords query string false "Keyword (matches title, company or description)"
// @Param location query string false "Location filter"
// @Param category query string false "Category filter"
// @Param job_type query string false "Job type filter"
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Router /jobs [get]
func (h *JobHandler) Search(c *fiber.Ctx) error {
	input := &services.SearchInput{
		// "q" survives as an alias for older clients.
		Keywords: c.Query("keywords", c.Query("q")),
		Location: c.Query("location"),
		Category: c.Query("category"),
		JobType:  c.Query("job_type"),
		Page:     pagination.GetParams(c).Page,
	}

	result, err := h.jobService.Search(c.Context(), input)
	if err != nil {
		return response.InternalServerError(c, "Failed to search jobs")
	}

	return response.Success(c, "Jobs retrieved successfully", result)
}

// GetByID handles job detail
// @Summary Get job detail
// @Description Get a job by ID; when authenticated, includes whether the viewer already applied
// @Tags Jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /jobs/{id} [get]
func (h *JobHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid job ID")
	}

	job, err := h.jobService.GetByID(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return response.NotFound(c, "Job not found")
		}
		return response.InternalServerError(c, "Failed to get job")
	}

	payload := fiber.Map{"job": job.ToResponse()}

	// Viewer-specific fields when a valid token was presented (OptionalAuth)
	if actor, ok := actorFromCtx(c); ok {
		if actor.Role == domain.RoleJobSeeker {
			application, err := h.applicationService.GetByViewer(c.Context(), actor.ID, job.ID)
			if err != nil {
				return response.InternalServerError(c, "Failed to get job")
			}
			payload["has_applied"] = application != nil
			if application != nil {
				payload["user_application"] = application.ToResponse()
			}
		}
		payload["can_edit"] = domain.CanManageJob(actor, job.EmployerID)
	}

	return response.Success(c, "Job retrieved successfully", payload)
}

// Create handles job posting
// @Summary Post a job
// @Description Create a new job posting owned by the authenticated employer
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.JobInput true "Job data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /jobs [post]
func (h *JobHandler) Create(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.JobInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := requiredJobFields(&input); len(fields) > 0 {
		return response.ValidationFailed(c, fields)
	}

	job, err := h.jobService.Create(c.Context(), actor, &input)
	if err != nil {
		return h.mapJobError(c, err, "Failed to create job")
	}

	return response.Created(c, "Job created successfully", fiber.Map{
		"job": job.ToResponse(),
	})
}

// Update handles job update
// @Summary Update a job
// @Description Update a job owned by the authenticated employer (admins can update any job)
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param body body services.JobInput true "Job data"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /jobs/{id} [put]
func (h *JobHandler) Update(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid job ID")
	}

	var input services.JobInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := requiredJobFields(&input); len(fields) > 0 {
		return response.ValidationFailed(c, fields)
	}

	job, err := h.jobService.Update(c.Context(), actor, uint(id), &input)
	if err != nil {
		return h.mapJobError(c, err, "Failed to update job")
	}

	return response.Success(c, "Job updated successfully", fiber.Map{
		"job": job.ToResponse(),
	})
}

// Delete handles job deletion
// @Summary Delete a job
// @Description Delete a job and all of its applications
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid job ID")
	}

	if err := h.jobService.Delete(c.Context(), actor, uint(id)); err != nil {
		return h.mapJobError(c, err, "Failed to delete job")
	}

	return response.Success(c, "Job deleted successfully", nil)
}

// MyJobs handles the employer's own postings listing
// @Summary List my jobs
// @Description List the authenticated employer's own job postings
// @Tags Jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /my/jobs [get]
func (h *JobHandler) MyJobs(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.jobService.ListMyJobs(c.Context(), actor, pagination.GetParams(c).Page)
	if err != nil {
		return h.mapJobError(c, err, "Failed to list jobs")
	}

	return response.Success(c, "Jobs retrieved successfully", result)
}

// requiredJobFields reports the missing required posting fields
func requiredJobFields(input *services.JobInput) map[string]string {
	fields := map[string]string{}
	if input.Title == "" {
		fields["title"] = "Title is required"
	}
	if input.Company == "" {
		fields["company"] = "Company is required"
	}
	if input.Description == "" {
		fields["description"] = "Description is required"
	}
	if input.Location == "" {
		fields["location"] = "Location is required"
	}
	return fields
}

// mapJobError translates job service errors to HTTP responses
func (h *JobHandler) mapJobError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		return response.NotFound(c, "Job not found")
	case errors.Is(err, services.ErrPermissionDenied):
		return response.Forbidden(c, "You don't have permission to manage this job")
	case errors.Is(err, services.ErrInvalidCategory):
		return response.BadRequest(c, "Invalid job category")
	case errors.Is(err, services.ErrInvalidJobType):
		return response.BadRequest(c, "Invalid job type")
	case errors.Is(err, services.ErrInvalidSalaryRange):
		return response.BadRequest(c, "Minimum salary cannot exceed maximum salary")
	default:
		return response.InternalServerError(c, fallback)
	}
}
