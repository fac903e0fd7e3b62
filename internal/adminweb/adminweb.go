// Package adminweb serves the HTML storefront pages and the
// session-gated admin console.
package adminweb

import (
	"github.com/labstack/echo/v4"

	"github.com/markshop/markshop/internal/store"
	"github.com/markshop/markshop/internal/webserver"
)

// Thai user-facing messages of the legacy storefront, kept verbatim.
const (
	msgBadCredentials  = "ชื่อผู้ใช้ หรือ รหัสผ่านไม่ถูกต้อง"
	msgMissingFields   = "กรุณากรอกข้อมูลให้ครบ"
	msgNotNumeric      = "ราคาและส่วนลดต้องเป็นตัวเลข"
	msgGenericErrorFmt = "เกิดข้อผิดพลาด: %s"
)

// InitRouter registers the storefront pages, the login flow and the
// admin console routes.
func InitRouter() {
	webserver.PubGET("/", indexPage)
	webserver.PubGET("/cart", cartPage)
	webserver.PubGET("/checkout", checkoutPage)

	webserver.PubGET("/login", loginForm)
	webserver.PubPOST("/login", loginSubmit)
	webserver.PubGET("/logout", logout)

	webserver.AdminGET("/dashboard", dashboard)
	webserver.AdminGET("/add-product", addProductForm)
	webserver.AdminPOST("/add-product", addProductSubmit)
	webserver.AdminPOST("/delete-product/:id", deleteProductSubmit)
}

func productRepo(c echo.Context) store.ProductRepository {
	return store.NewProductRepository(webserver.GetDB(c))
}

func operatorStore(c echo.Context) *store.OperatorStore {
	return store.NewOperatorStore(webserver.GetDB(c))
}

func credentialVerifier(c echo.Context) store.CredentialVerifier {
	return operatorStore(c)
}
