// Package session wraps cookie-backed sessions for the server-rendered
// surface: the current user id, login/logout, and one-time flash messages.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	echosession "github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName = "bloghub_session"
	userIDKey   = "user_id"

	rememberMaxAge = 30 * 24 * 60 * 60 // seconds
)

// Flash is a one-time notice queued for the next rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	// CookieStore serializes session values with gob.
	gob.Register(Flash{})
}

// Middleware installs the cookie session store. Cookies default to browser
// session lifetime; Login extends it when remember is set.
func Middleware(secret string) echo.MiddlewareFunc {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   0,
		SameSite: http.SameSiteLaxMode,
	}
	return echosession.Middleware(store)
}

// CurrentUserID returns the logged-in user id, if any.
func CurrentUserID(c echo.Context) (uint, bool) {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Values[userIDKey].(uint)
	return id, ok && id != 0
}

// Login records the user id in the session. With remember the cookie
// persists for thirty days, otherwise it expires with the browser session.
func Login(c echo.Context, userID uint, remember bool) error {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[userIDKey] = userID
	opts := *sess.Options
	if remember {
		opts.MaxAge = rememberMaxAge
	} else {
		opts.MaxAge = 0
	}
	sess.Options = &opts
	return sess.Save(c.Request(), c.Response())
}

// Logout drops the session cookie.
func Logout(c echo.Context) error {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return err
	}
	delete(sess.Values, userIDKey)
	opts := *sess.Options
	opts.MaxAge = -1
	sess.Options = &opts
	return sess.Save(c.Request(), c.Response())
}

// AddFlash queues a flash message for the next rendered page.
func AddFlash(c echo.Context, category, message string) error {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.AddFlash(Flash{Category: category, Message: message})
	return sess.Save(c.Request(), c.Response())
}

// Flashes drains and returns the queued flash messages.
func Flashes(c echo.Context) []Flash {
	sess, err := echosession.Get(sessionName, c)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(Flash); ok {
			flashes = append(flashes, f)
		}
	}
	_ = sess.Save(c.Request(), c.Response())
	return flashes
}
