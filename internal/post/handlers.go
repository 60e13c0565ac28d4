package post

import (
	"backend-socialhub/internal/apperr"
	"backend-socialhub/internal/auth"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, requireAuth fiber.Handler) {
	r.Post("/", requireAuth, func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		p, err := svc.Create(c.Context(), auth.UserID(c), req)
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	})

	r.Get("/timeline/all", requireAuth, func(c *fiber.Ctx) error {
		timeline, err := svc.Timeline(c.Context(), auth.UserID(c))
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.JSON(timeline)
	})

	r.Put("/:postId/like", requireAuth, func(c *fiber.Ctx) error {
		liked, err := svc.ToggleLike(c.Context(), auth.UserID(c), c.Params("postId"))
		if err != nil {
			return apperr.Fiber(err)
		}
		if liked {
			return c.SendString("the post has been liked")
		}
		return c.SendString("the post has been disliked")
	})

	r.Get("/:postId", requireAuth, func(c *fiber.Ctx) error {
		p, err := svc.Get(c.Context(), c.Params("postId"))
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.JSON(p)
	})

	r.Put("/:postId", requireAuth, func(c *fiber.Ctx) error {
		var req UpdateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		p, err := svc.Update(c.Context(), auth.UserID(c), c.Params("postId"), req)
		if err != nil {
			return apperr.Fiber(err)
		}
		return c.JSON(p)
	})

	r.Delete("/:postId", requireAuth, func(c *fiber.Ctx) error {
		if err := svc.Delete(c.Context(), auth.UserID(c), auth.IsAdmin(c), c.Params("postId")); err != nil {
			return apperr.Fiber(err)
		}
		return c.SendString("post has been deleted")
	})
}
