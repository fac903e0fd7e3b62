// Package shopapi serves the storefront JSON product API. The mutation
// endpoints are deliberately unauthenticated, only the HTML admin pages
// are session-gated.
package shopapi

import (
	"github.com/labstack/echo/v4"
)

const (
	msgProductNotFound = "Product ไม่พบ"
	msgProductCreated  = "Product สร้างสำเร็จ"
	msgProductUpdated  = "Product อัปเดตสำเร็จ"
	msgProductDeleted  = "Product ลบสำเร็จ"
)

// InitRouter registers the product API routes.
func InitRouter() {
	registerProductRoutes()
}

func jsonError(c echo.Context, status int, message string) error {
	return c.JSON(status, echo.Map{"error": message})
}
