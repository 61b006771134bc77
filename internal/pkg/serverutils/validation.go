package serverutils

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks the struct's validate tags and maps violations to a
// 400 so the error middleware reports them as client errors.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}
