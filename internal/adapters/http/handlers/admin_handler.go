package handlers

import (
	"errors"

	"careerhub/internal/core/services"
	"careerhub/internal/pkg/pagination"
	"careerhub/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles moderation endpoints
type AdminHandler struct {
	dashboardService *services.DashboardService
	userService      *services.UserService
	jobService       *services.JobService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	dashboardService *services.DashboardService,
	userService *services.UserService,
	jobService *services.JobService,
) *AdminHandler {
	return &AdminHandler{
		dashboardService: dashboardService,
		userService:      userService,
		jobService:       jobService,
	}
}

// Overview handles the admin overview
// @Summary Admin overview
// @Description Get every user, every job and the latest applications
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/overview [get]
func (h *AdminHandler) Overview(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	overview, err := h.dashboardService.GetOverview(c.Context(), actor)
	if err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			return response.Forbidden(c, "Admin access required")
		}
		return response.InternalServerError(c, "Failed to load overview")
	}

	return response.Success(c, "Overview retrieved successfully", overview)
}

// ListUsers handles the admin user listing
// @Summary List users
// @Description List all users, paginated
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)
	users, total, err := h.userService.ListUsers(c.Context(), actor, params.Page)
	if err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			return response.Forbidden(c, "Admin access required")
		}
		return response.InternalServerError(c, "Failed to list users")
	}

	return response.Success(c, "Users retrieved successfully", pagination.NewResponse(users, params, total))
}

// ToggleUser handles user activation/deactivation
// @Summary Toggle user status
// @Description Flip a user's active flag; admins can never toggle themselves
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id}/toggle [put]
func (h *AdminHandler) ToggleUser(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.ToggleActive(c.Context(), actor, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCannotToggleSelf):
			return response.Forbidden(c, "You cannot change your own account status")
		case errors.Is(err, services.ErrPermissionDenied):
			return response.Forbidden(c, "Admin access required")
		case errors.Is(err, services.ErrUserNotFound):
			return response.NotFound(c, "User not found")
		default:
			return response.InternalServerError(c, "Failed to toggle user status")
		}
	}

	return response.Success(c, "User status updated successfully", fiber.Map{
		"user": user.ToResponse(),
	})
}

// ToggleJob handles job activation/deactivation
// @Summary Toggle job status
// @Description Flip a job's active flag (moderation)
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/jobs/{id}/toggle [put]
func (h *AdminHandler) ToggleJob(c *fiber.Ctx) error {
	actor, ok := actorFromCtx(c)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return response.BadRequest(c, "Invalid job ID")
	}

	job, err := h.jobService.ToggleActive(c.Context(), actor, uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPermissionDenied):
			return response.Forbidden(c, "Admin access required")
		case errors.Is(err, services.ErrJobNotFound):
			return response.NotFound(c, "Job not found")
		default:
			return response.InternalServerError(c, "Failed to toggle job status")
		}
	}

	return response.Success(c, "Job status updated successfully", fiber.Map{
		"job": job.ToResponse(),
	})
}
