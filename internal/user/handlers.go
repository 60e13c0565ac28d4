package user

import (
	"backend-socialhub/internal/apperr"
	"backend-socialhub/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, requireAuth, selfOrAdmin fiber.Handler) {
	r.Put("/:id/follow", requireAuth, func(c *fiber.Ctx) error {
		if err := svc.Follow(c.Context(), auth.UserID(c), c.Params("id")); err != nil {
			return apperr.Fiber(err)
		}
		return c.SendString("user has been followed")
	})

	r.Put("/:id/unfollow", requireAuth, func(c *fiber.Ctx) error {
		if err := svc.Unfollow(c.Context(), auth.UserID(c), c.Params("id")); err != nil {
			return apperr.Fiber(err)
		}
		return c.SendString("user has been unfollowed")
	})

	r.Get("/:id", selfOrAdmin, func(c *fiber.Ctx) error {
		u, err := svc.Get(c.Context(), c.Params("id"))
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.JSON(u)
	})

	r.Put("/:id", selfOrAdmin, func(c *fiber.Ctx) error {
		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		u, err := svc.Update(c.Context(), c.Params("id"), req)
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.JSON(u)
	})

	r.Delete("/:id", selfOrAdmin, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), c.Params("id")); err != nil {
			return apperr.Fiber(err)
		}
		return c.SendString("user has been deleted")
	})
}
