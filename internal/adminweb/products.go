package adminweb

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"github.com/markshop/markshop/internal/store"
	"github.com/markshop/markshop/internal/webserver"
)

func dashboard(c echo.Context) error {
	products, err := productRepo(c).ListAll(c.Request().Context())
	if err != nil {
		zap.L().Error("failed to load products for dashboard", zap.Error(err))
	}
	return c.Render(http.StatusOK, "admin.html", echo.Map{
		"products": products,
		"username": webserver.AdminUsername(c),
	})
}

func addProductForm(c echo.Context) error {
	return c.Render(http.StatusOK, "admin-add-product.html", echo.Map{})
}

func addProductSubmit(c echo.Context) error {
	name := c.FormValue("name")
	priceStr := c.FormValue("price")
	imageURL := c.FormValue("image_url")
	category := c.FormValue("category")
	discountStr := c.FormValue("discount")
	isSale := c.FormValue("is_sale") == "on"

	if name == "" || priceStr == "" || imageURL == "" {
		return c.Render(http.StatusOK, "admin-add-product.html", echo.Map{
			"error": msgMissingFields,
		})
	}

	price, err := cast.ToFloat64E(priceStr)
	if err != nil {
		return c.Render(http.StatusOK, "admin-add-product.html", echo.Map{
			"error": msgNotNumeric,
		})
	}
	var discount float64
	if discountStr != "" {
		discount, err = cast.ToFloat64E(discountStr)
		if err != nil {
			return c.Render(http.StatusOK, "admin-add-product.html", echo.Map{
				"error": msgNotNumeric,
			})
		}
	}

	_, err = productRepo(c).Insert(c.Request().Context(), store.ProductFields{
		Name:     name,
		Price:    price,
		ImageURL: imageURL,
		Category: category,
		Discount: discount,
		IsSale:   isSale,
	})
	if err != nil {
		zap.L().Error("admin add product failed", zap.Error(err))
		return c.Render(http.StatusOK, "admin-add-product.html", echo.Map{
			"error": fmt.Sprintf(msgGenericErrorFmt, err.Error()),
		})
	}

	operatorStore(c).WriteLog(c.Request().Context(), webserver.AdminUsername(c), "add-product", name)
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

// deleteProductSubmit swallows every failure and returns to the
// dashboard regardless of outcome, matching the legacy console.
func deleteProductSubmit(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err == nil {
		if err := productRepo(c).Delete(c.Request().Context(), id); err != nil {
			zap.L().Warn("admin delete product failed",
				zap.Int64("id", id), zap.Error(err))
		} else {
			operatorStore(c).WriteLog(c.Request().Context(),
				webserver.AdminUsername(c), "delete-product", strconv.FormatInt(id, 10))
		}
	}
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}
