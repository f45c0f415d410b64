package api

import (
	"errors"  // Error unwrapping
	"fmt"     // Message formatting
	"strings" // Message joining

	"github.com/go-playground/validator/v10" // Validation error details
)

// bindingErrorMessage converts a request-binding error into a client-facing
// validation message, listing each failed field when the error came from the
// validator
func bindingErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request" // Malformed JSON or type mismatch
	}
	var msgs []string
	for _, fe := range verrs {
		switch fe.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", fe.Field()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be greater than %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", fe.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
