package webserver

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// SessionName is the storefront admin session cookie.
const SessionName = "mkshop_session"

const (
	sessAdminLoggedIn = "admin_logged_in"
	sessAdminUsername = "admin_username"
)

// SetAdminSession marks the current session as admin-authenticated.
func SetAdminSession(c echo.Context, username string) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	sess.Values[sessAdminLoggedIn] = true
	sess.Values[sessAdminUsername] = username
	return sess.Save(c.Request(), c.Response())
}

// ClearSession drops all session state, returning to anonymous.
func ClearSession(c echo.Context) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	sess.Values = map[interface{}]interface{}{}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	return sess.Save(c.Request(), c.Response())
}

// IsAdminLoggedIn reports whether the session is admin-authenticated.
// Undecodable cookies count as anonymous.
func IsAdminLoggedIn(c echo.Context) bool {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return false
	}
	loggedIn, _ := sess.Values[sessAdminLoggedIn].(bool)
	return loggedIn
}

// AdminUsername returns the logged-in admin username, empty when
// anonymous.
func AdminUsername(c echo.Context) string {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return ""
	}
	username, _ := sess.Values[sessAdminUsername].(string)
	return username
}

// RequireAdmin gates admin page routes, redirecting anonymous visitors
// to the login page.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdminLoggedIn(c) {
			return c.Redirect(http.StatusFound, "/login")
		}
		return next(c)
	}
}
