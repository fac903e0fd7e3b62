package adminweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/markshop/markshop/internal/webserver"
)

func loginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{})
}

func loginSubmit(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	passed, err := credentialVerifier(c).Verify(c.Request().Context(), username, password)
	if err != nil {
		zap.L().Error("credential verification failed", zap.Error(err))
		passed = false
	}
	if !passed {
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"error": msgBadCredentials,
		})
	}

	if err := webserver.SetAdminSession(c, username); err != nil {
		zap.L().Error("failed to save admin session", zap.Error(err))
		return c.Render(http.StatusOK, "login.html", echo.Map{
			"error": msgBadCredentials,
		})
	}

	operatorStore(c).WriteLog(c.Request().Context(), username, "login", c.RealIP())
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

func logout(c echo.Context) error {
	if username := webserver.AdminUsername(c); username != "" {
		operatorStore(c).WriteLog(c.Request().Context(), username, "logout", c.RealIP())
	}
	if err := webserver.ClearSession(c); err != nil {
		zap.L().Warn("failed to clear session", zap.Error(err))
	}
	return c.Redirect(http.StatusFound, "/login")
}
