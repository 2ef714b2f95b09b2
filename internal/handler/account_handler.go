package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bloghub/internal/errors"
	"bloghub/internal/service"
	"bloghub/internal/session"
)

// AccountHandler serves the profile page and profile updates.
type AccountHandler struct {
	accounts service.AccountService
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accounts service.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// AccountForm is the profile update input. The picture arrives separately as
// a multipart file.
type AccountForm struct {
	Username string `form:"username" validate:"required,min=2,max=20"`
	Email    string `form:"email" validate:"required,email"`
}

// ShowAccount renders the profile form prefilled with current values.
func (h *AccountHandler) ShowAccount(c echo.Context) error {
	user := currentUser(c)
	form := AccountForm{Username: user.Username, Email: user.Email}
	return render(c, "account.html", echo.Map{"Title": "Account", "Form": form})
}

// UpdateAccount applies the profile change, optionally replacing the profile
// picture first. An invalid image aborts before any field is written.
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	user := currentUser(c)

	var form AccountForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "account.html", echo.Map{"Title": "Account", "Form": form, "Errors": formErrors(err)})
	}

	var (
		picture     io.Reader
		pictureName string
	)
	if fh, err := c.FormFile("picture"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return err
		}
		defer f.Close()
		picture = f
		pictureName = fh.Filename
	}

	_, err := h.accounts.UpdateAccount(c.Request().Context(), user.ID, form.Username, form.Email, picture, pictureName)
	if err != nil {
		var fieldErrs map[string]string
		switch {
		case errors.Is(err, apperrors.ErrUsernameTaken):
			fieldErrs = map[string]string{"Username": "That username is taken. Please choose a different one."}
		case errors.Is(err, apperrors.ErrEmailTaken):
			fieldErrs = map[string]string{"Email": "That email is taken. Please choose a different one."}
		case errors.Is(err, apperrors.ErrInvalidImage):
			fieldErrs = map[string]string{"Picture": "Please upload a valid jpg, png or gif image."}
		default:
			return err
		}
		return render(c, "account.html", echo.Map{"Title": "Account", "Form": form, "Errors": fieldErrs})
	}

	_ = session.AddFlash(c, "success", "Your account has been updated!")
	return c.Redirect(http.StatusSeeOther, "/account")
}
