package apperr

import "github.com/tuanvumaihuynh/coffee-store/pkg/zerror"

const (
	ValidationErrorCode     = "VALIDATION_FAILED"
	InvalidParamErrorCode   = "INVALID_PARAMETER"
	CoffeeNotFoundErrorCode = "COFFEE_NOT_FOUND"
)

var (
	ValidationErr     = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	InvalidParamErr   = zerror.NewBadRequest(InvalidParamErrorCode, "invalid parameter")
	CoffeeNotFoundErr = zerror.NewNotFound(CoffeeNotFoundErrorCode, "coffee not found")
)

// NewCoffeeNotFound returns CoffeeNotFoundErr carrying the requested id.
func NewCoffeeNotFound(id int64) error {
	return CoffeeNotFoundErr.WithMsgf("coffee not found with id: %d", id)
}
