package auth

import (
	"backend-socialhub/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/register", func(c *fiber.Ctx) error {
		var req RegisterRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		user, err := svc.Register(c.Context(), req)
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	r.Post("/login", func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		user, token, err := svc.Login(c.Context(), req)
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.JSON(LoginResponse{User: user, Token: token})
	})

	r.Post("/logout", svc.RequireAuth(), func(c *fiber.Ctx) error {
		if err := svc.Logout(c.Context(), Token(c), Identity(c)); err != nil {
			return apperr.Fiber(err)
		}
		return c.SendString("logged out")
	})
}
