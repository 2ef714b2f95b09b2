package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"bloghub/internal/session"
)

// render executes a page template with the ambient data every page needs:
// the current user for the navbar and any queued flash messages.
func render(c echo.Context, name string, data echo.Map) error {
	if data == nil {
		data = echo.Map{}
	}
	data["CurrentUser"] = currentUser(c)
	data["Flashes"] = session.Flashes(c)
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	return c.Render(http.StatusOK, name, data)
}

// formErrors translates a validator error into a field name to message map
// for re-rendering forms.
func formErrors(err error) map[string]string {
	msgs := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		msgs["Form"] = "Invalid input."
		return msgs
	}
	for _, fe := range verrs {
		msgs[fe.Field()] = fieldMessage(fe)
	}
	return msgs
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "eqfield":
		return "Passwords must match."
	default:
		return "Invalid value."
	}
}
