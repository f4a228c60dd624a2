package deliveryman

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidEmail(email string) bool {
	return validate.Var(strings.TrimSpace(email), "required,email") == nil
}

func isValidID(id int64) bool {
	return id > 0
}
