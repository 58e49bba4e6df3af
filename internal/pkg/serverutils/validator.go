package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts failures into the
// AppError taxonomy so the error middleware renders a 422.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return NewValidationError(fmt.Sprintf("field '%s' failed on '%s'", first.Field(), first.Tag()))
		}
		return NewValidationError(err.Error())
	}
	return nil
}
