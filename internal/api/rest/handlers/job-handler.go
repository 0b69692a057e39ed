package handlers

import (
	"errors"
	"strconv"

	"github.com/WorkNestHQ/job_service/internal/api/rest/middleware"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/helper/utils"
	"github.com/WorkNestHQ/job_service/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type JobHandler struct {
	svc  services.JobService
	auth helper.Auth
}

func NewJobHandler(svc services.JobService, auth helper.Auth) *JobHandler {
	return &JobHandler{svc: svc, auth: auth}
}

func (h *JobHandler) SetupRoutes(app *fiber.App) {
	jobs := app.Group("/api/jobs")

	jobs.Get("/", h.ListJobs)
	jobs.Post("/", h.CreateJob)
	jobs.Get("/:jobID", h.GetJob)

	// Guards go on the routes themselves; a middleware-bearing group on
	// "/:jobID" would prefix-match every nested path, apply included.
	jobs.Put("/:jobID", middleware.AuthMiddleware(h.auth), middleware.EmployerOnly(), h.UpdateJob)
	jobs.Delete("/:jobID", middleware.AuthMiddleware(h.auth), middleware.EmployerOnly(), h.DeleteJob)
}

func (h *JobHandler) ListJobs(ctx *fiber.Ctx) error {
	var q dto.JobListQuery
	if err := ctx.QueryParser(&q); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid query parameters")
	}

	resp, err := h.svc.ListJobs(q)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to fetch jobs")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *JobHandler) CreateJob(ctx *fiber.Ctx) error {
	var requestBody dto.CreateJobRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, jobValidationMessage(err))
	}

	job, err := h.svc.CreateJob(requestBody)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Failed to create job")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, job)
}

func (h *JobHandler) GetJob(ctx *fiber.Ctx) error {
	jobID, err := parseIDParam(ctx, "jobID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid job id")
	}

	job, err := h.svc.GetJob(jobID)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Job not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, job)
}

func (h *JobHandler) UpdateJob(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	jobID, err := parseIDParam(ctx, "jobID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid job id")
	}

	var requestBody dto.UpdateJobRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	job, err := h.svc.UpdateJob(jobID, claims.UserID, requestBody)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, job)
}

func (h *JobHandler) DeleteJob(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	jobID, err := parseIDParam(ctx, "jobID")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid job id")
	}

	if err := h.svc.DeleteJob(jobID, claims.UserID); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Job deleted successfully")
}

func parseIDParam(ctx *fiber.Ctx, name string) (uint, error) {
	raw := ctx.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// jobValidationMessage names the first missing required field, keeping the
// "<field> is required" wording.
func jobValidationMessage(err error) string {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) || len(invalid) == 0 {
		return "Please provide valid inputs"
	}

	fe := invalid[0]
	if fe.Tag() == "required" {
		return jsonFieldName(fe.Field()) + " is required"
	}
	return "Invalid value for " + jsonFieldName(fe.Field())
}

func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	switch structField {
	case "CompanyID":
		return "companyId"
	}
	// lower-case the first rune: Title -> title, ExperienceLevel -> experienceLevel
	return string(structField[0]|0x20) + structField[1:]
}
