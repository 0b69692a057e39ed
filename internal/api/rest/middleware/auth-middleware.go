package middleware

import (
	"strings"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authentication required",
			})
		}

		ctx.Locals("userID", user.UserID)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

func SeekerOnly() fiber.Handler {
	return requireRole(domain.RoleSeeker, "Only job seekers can apply for jobs")
}

func EmployerOnly() fiber.Handler {
	return requireRole(domain.RoleEmployer, "Employer authentication required")
}

// requireRole trusts the role claim from the verified token; no DB lookup.
func requireRole(role, msg string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals("user").(dto.AuthClaims)
		if !ok || claims.UserID == 0 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Authentication required",
			})
		}

		if claims.Role != role {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"message": msg,
			})
		}

		return ctx.Next()
	}
}
