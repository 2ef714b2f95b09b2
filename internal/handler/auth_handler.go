package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bloghub/internal/errors"
	"bloghub/internal/service"
	"bloghub/internal/session"
)

// AuthHandler serves registration, login/logout and the password reset flow.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterForm is the registration form input.
type RegisterForm struct {
	Username        string `form:"username" validate:"required,min=2,max=20"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// LoginForm is the login form input.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
	Remember bool   `form:"remember"`
}

// ResetRequestForm asks for the account email to start a password reset.
type ResetRequestForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ResetPasswordForm carries the replacement password.
type ResetPasswordForm struct {
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

// ShowRegister renders the empty registration form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return render(c, "register.html", echo.Map{"Title": "Register", "Form": RegisterForm{}})
}

// Register creates the account and redirects to login, or re-renders the
// form with field errors.
func (h *AuthHandler) Register(c echo.Context) error {
	var form RegisterForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "register.html", echo.Map{"Title": "Register", "Form": form, "Errors": formErrors(err)})
	}

	user, err := h.auth.Register(c.Request().Context(), form.Username, form.Email, form.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUsernameTaken):
			return render(c, "register.html", echo.Map{"Title": "Register", "Form": form,
				"Errors": map[string]string{"Username": "That username is taken. Please choose a different one."}})
		case errors.Is(err, apperrors.ErrEmailTaken):
			return render(c, "register.html", echo.Map{"Title": "Register", "Form": form,
				"Errors": map[string]string{"Email": "That email is taken. Please choose a different one."}})
		}
		return err
	}

	_ = session.AddFlash(c, "success", "Account created for "+user.Username+"! You are now able to log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowLogin renders the empty login form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return render(c, "login.html", echo.Map{"Title": "Login", "Form": LoginForm{}})
}

// Login establishes a session on matching credentials and honors the next
// parameter for the post-login redirect. A failed attempt flashes a generic
// message that does not say which part was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var form LoginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "login.html", echo.Map{"Title": "Login", "Form": form, "Errors": formErrors(err)})
	}

	user, err := h.auth.Authenticate(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			_ = session.AddFlash(c, "danger", "Login unsuccessful. Please check email and password.")
			return render(c, "login.html", echo.Map{"Title": "Login", "Form": form})
		}
		return err
	}

	if err := session.Login(c, user.ID, form.Remember); err != nil {
		return err
	}
	_ = session.AddFlash(c, "success", "You are now logged in!")
	return c.Redirect(http.StatusSeeOther, safeNext(c))
}

// Logout tears down the session and redirects home.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := session.Logout(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// ShowResetRequest renders the form asking for the account email.
func (h *AuthHandler) ShowResetRequest(c echo.Context) error {
	return render(c, "reset_request.html", echo.Map{"Title": "Reset Password", "Form": ResetRequestForm{}})
}

// RequestReset sends the reset email. The flash is identical whether or not
// the address belongs to an account.
func (h *AuthHandler) RequestReset(c echo.Context) error {
	var form ResetRequestForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "reset_request.html", echo.Map{"Title": "Reset Password", "Form": form, "Errors": formErrors(err)})
	}

	if err := h.auth.RequestPasswordReset(c.Request().Context(), form.Email); err != nil {
		return err
	}

	_ = session.AddFlash(c, "info", "An email has been sent with instructions to reset your password.")
	return c.Redirect(http.StatusSeeOther, "/login")
}

// ShowResetPassword verifies the token before showing the new-password form.
// An invalid or expired token redirects back to the request form.
func (h *AuthHandler) ShowResetPassword(c echo.Context) error {
	token := c.Param("token")
	if err := h.auth.VerifyResetToken(token); err != nil {
		_ = session.AddFlash(c, "warning", "That is an invalid or expired token.")
		return c.Redirect(http.StatusSeeOther, "/reset_password")
	}
	return render(c, "reset_password.html", echo.Map{"Title": "Reset Password", "Form": ResetPasswordForm{}, "Token": token})
}

// ResetPassword stores the new password when the token checks out.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")

	var form ResetPasswordForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(&form); err != nil {
		return render(c, "reset_password.html", echo.Map{"Title": "Reset Password", "Form": form, "Token": token, "Errors": formErrors(err)})
	}

	if err := h.auth.ResetPassword(c.Request().Context(), token, form.Password); err != nil {
		if errors.Is(err, apperrors.ErrTokenInvalid) {
			_ = session.AddFlash(c, "warning", "That is an invalid or expired token.")
			return c.Redirect(http.StatusSeeOther, "/reset_password")
		}
		return err
	}

	_ = session.AddFlash(c, "success", "Your password has been updated! You are now able to log in.")
	return c.Redirect(http.StatusSeeOther, "/login")
}
