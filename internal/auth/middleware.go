package auth

import (
	"backend-socialhub/internal/apperr"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth verifies the bearer credential and stores the identity in
// request locals for downstream handlers.
func (s *Service) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, token, err := s.VerifyHeader(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return apperr.Fiber(err)
		}
		setIdentity(c, claims, token)
		return c.Next()
	}
}

// RequireSelfOrAdmin permits the request when the caller's id matches the
// named route parameter or the caller is an admin.
func (s *Service) RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, token, err := s.VerifyHeader(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return apperr.Fiber(err)
		}
		if claims.UserID != c.Params(param) && !claims.IsAdmin {
			return apperr.Fiber(apperr.ErrNotAllowed)
		}
		setIdentity(c, claims, token)
		return c.Next()
	}
}

func (s *Service) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, token, err := s.VerifyHeader(c.Context(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return apperr.Fiber(err)
		}
		if !claims.IsAdmin {
			return apperr.Fiber(apperr.ErrAdminOnly)
		}
		setIdentity(c, claims, token)
		return c.Next()
	}
}

func setIdentity(c *fiber.Ctx, claims *Claims, token string) {
	c.Locals("identity", claims)
	c.Locals("user_id", claims.UserID)
	c.Locals("is_admin", claims.IsAdmin)
	c.Locals("token", token)
}

func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

func IsAdmin(c *fiber.Ctx) bool {
	admin, _ := c.Locals("is_admin").(bool)
	return admin
}

func Identity(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals("identity").(*Claims)
	return claims
}

func Token(c *fiber.Ctx) string {
	token, _ := c.Locals("token").(string)
	return token
}
