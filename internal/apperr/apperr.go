package apperr

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Error is a request-level failure with a fixed HTTP status and user-facing
// message. Anything else that reaches a handler is treated as a store error.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

var (
	ErrNoToken          = New(fiber.StatusForbidden, "no token provided")
	ErrInvalidToken     = New(fiber.StatusUnauthorized, "invalid token")
	ErrNotAllowed       = New(fiber.StatusUnauthorized, "you are not allowed")
	ErrDeleteDenied     = New(fiber.StatusForbidden, "you are not allowed")
	ErrAdminOnly        = New(fiber.StatusUnauthorized, "only admin allowed!")
	ErrAccessDenied     = New(fiber.StatusForbidden, "access denied")
	ErrUpdateNotOwner   = New(fiber.StatusForbidden, "access denied. you can only update your post")
	ErrSelfFollow       = New(fiber.StatusForbidden, "you can't follow yourself!")
	ErrSelfUnfollow     = New(fiber.StatusForbidden, "you can't unfollow yourself!")
	ErrAlreadyFollowing = New(fiber.StatusForbidden, "you already followed this user!")
	ErrNotFollowing     = New(fiber.StatusForbidden, "you are not following this user!")
	ErrNotFound         = New(fiber.StatusNotFound, "not found")
	ErrDuplicateUser    = New(fiber.StatusBadRequest, "the user has been registered")
	ErrInvalidLogin     = New(fiber.StatusBadRequest, "invalid email or password")
)

// Fiber converts an error to the fiber error returned from a handler.
func Fiber(err error) *fiber.Error {
	var e *Error
	if errors.As(err, &e) {
		return fiber.NewError(e.Status, e.Message)
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}
