package handlers

import (
	"errors"
	"strings"

	"github.com/WorkNestHQ/job_service/internal/api/rest/middleware"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/helper/utils"
	"github.com/WorkNestHQ/job_service/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	profile := auth.Group("/profile", middleware.AuthMiddleware(h.auth))
	profile.Get("/", h.GetProfile)
	profile.Put("/", h.UpdateProfile)
}

func (h *UserHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	// Trim before validating so a padded-but-valid email passes the
	// email tag; the service lowercases it afterwards.
	requestBody.Email = strings.TrimSpace(requestBody.Email)

	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, registerValidationMessage(err))
	}

	resp, err := h.svc.Register(requestBody)
	if err != nil {
		// Duplicate email and the remaining field-level failures both map to
		// 400 with their message, matching what clients already key on.
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}
	requestBody.Email = strings.TrimSpace(requestBody.Email)
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	resp, err := h.svc.Login(requestBody)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *UserHandler) GetProfile(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	user, err := h.svc.GetProfile(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Authentication required")
	}

	var requestBody dto.UpdateUserProfile
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := validate.Struct(requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.UpdateProfile(claims.UserID, requestBody)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "Server error")
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

// registerValidationMessage turns the first validator failure into the
// user-facing wording the clients expect.
func registerValidationMessage(err error) string {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) || len(invalid) == 0 {
		return "All fields are required"
	}

	fe := invalid[0]
	switch {
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 6 characters"
	case fe.Field() == "Email" && fe.Tag() == "email":
		return "Please enter a valid email address"
	default:
		return "All fields are required"
	}
}
