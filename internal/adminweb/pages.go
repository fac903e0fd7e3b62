package adminweb

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func indexPage(c echo.Context) error {
	products, err := productRepo(c).ListAll(c.Request().Context())
	if err != nil {
		zap.L().Error("failed to load catalog", zap.Error(err))
	}
	return c.Render(http.StatusOK, "index.html", echo.Map{
		"products": products,
	})
}

func cartPage(c echo.Context) error {
	return c.Render(http.StatusOK, "cart.html", echo.Map{})
}

func checkoutPage(c echo.Context) error {
	return c.Render(http.StatusOK, "checkout.html", echo.Map{})
}
