package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"bloghub/internal/model"
	"bloghub/internal/repository"
	"bloghub/internal/session"
)

const currentUserKey = "currentUser"

// LoadUser resolves the session user once per request and stashes it in the
// echo context for handlers and guards.
func LoadUser(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, ok := session.CurrentUserID(c); ok {
				if user, err := users.FindByID(c.Request().Context(), id); err == nil {
					c.Set(currentUserKey, user)
				}
			}
			return next(c)
		}
	}
}

// RequireAuth redirects anonymous requests to the login page, preserving the
// requested path as the next parameter for the post-login redirect.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) == nil {
			target := "/login?next=" + url.QueryEscape(c.Request().URL.Path)
			return c.Redirect(http.StatusFound, target)
		}
		return next(c)
	}
}

// RequireAnonymous redirects already-authenticated requests home.
func RequireAnonymous(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if currentUser(c) != nil {
			return c.Redirect(http.StatusFound, "/")
		}
		return next(c)
	}
}

func currentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}

// safeNext returns the next query parameter when it is a local path, and the
// home path otherwise. Absolute or protocol-relative URLs are rejected.
func safeNext(c echo.Context) string {
	next := c.QueryParam("next")
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
