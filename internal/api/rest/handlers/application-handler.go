package handlers

import (
	"errors"

	"github.com/WorkNestHQ/job_service/internal/api/rest/middleware"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/helper/utils"
	"github.com/WorkNestHQ/job_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	svc  services.ApplicationService
	auth helper.Auth
}

func NewApplicationHandler(svc services.ApplicationService, auth helper.Auth) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, auth: auth}
}

func (h *ApplicationHandler) SetupRoutes(app *fiber.App) {
	apply := app.Group("/api/jobs/:jobID/apply", middleware.AuthMiddleware(h.auth))
	apply.Post("/", middleware.SeekerOnly(), h.Apply)
	apply.Get("/", h.GetOwnApplication)

	apps := app.Group("/api/applications", middleware.AuthMiddleware(h.auth))
	apps.Get("/", middleware.SeekerOnly(), h.ListOwnApplications)
	apps.Patch("/:appID/status", h.UpdateStatus)
}

func (h *ApplicationHandler) Apply(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Please login to apply for jobs")
	}

	jobID, err := parseIDParam(ctx, "jobID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid job id")
	}

	var requestBody dto.ApplyRequest
	// An empty body is a valid application; only malformed JSON is rejected.
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&requestBody); err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
		}
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	application, err := h.svc.Apply(jobID, claims, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSeekerOnly):
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		case errors.Is(err, services.ErrJobNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Job not found")
		case errors.Is(err, services.ErrJobClosed), errors.Is(err, services.ErrAlreadyApplied):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, application)
}

func (h *ApplicationHandler) GetOwnApplication(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	jobID, err := parseIDParam(ctx, "jobID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid job id")
	}

	application, err := h.svc.GetForJob(jobID, claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to get application")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, application)
}

func (h *ApplicationHandler) ListOwnApplications(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	var q dto.ApplicationListQuery
	if err := ctx.QueryParser(&q); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid query parameters")
	}

	resp, err := h.svc.ListForApplicant(claims.UserID, q)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to get applications")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	appID, err := parseIDParam(ctx, "appID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid application id")
	}

	var requestBody dto.UpdateApplicationStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	application, err := h.svc.UpdateStatus(appID, claims, requestBody)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrApplicationNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrNotAllowed):
			return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())
		case errors.Is(err, services.ErrBadTransition):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to update application")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, application)
}
