package apperr

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestFiberMapsTaxonomy(t *testing.T) {
	fe := Fiber(ErrNoToken)
	if fe.Code != fiber.StatusForbidden || fe.Message != "no token provided" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}

	fe = Fiber(ErrNotAllowed)
	if fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", fe.Code)
	}

	// same wording as the route guard but a post-delete rejection is a 403
	fe = Fiber(ErrDeleteDenied)
	if fe.Code != fiber.StatusForbidden || fe.Message != "you are not allowed" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func TestFiberWrapsStoreErrors(t *testing.T) {
	fe := Fiber(errors.New("connection refused"))
	if fe.Code != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown error, got %d", fe.Code)
	}
}

func TestErrorMessage(t *testing.T) {
	if ErrSelfFollow.Error() != "you can't follow yourself!" {
		t.Fatalf("unexpected message: %s", ErrSelfFollow.Error())
	}
}
