package adminweb

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/markshop/markshop/config"
	"github.com/markshop/markshop/internal/domain"
	"github.com/markshop/markshop/internal/webserver"
	"github.com/markshop/markshop/pkg/common"
)

func setupTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(domain.Tables...); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	db.Create(&domain.SysOpr{
		ID:       common.UUIDint64(),
		Username: "admin",
		Password: common.Sha256HashWithSalt("1234", common.GetSecretSalt()),
		Level:    "super",
		Status:   common.ENABLED,
	})
	ws := webserver.Init(config.DefaultAppConfig(), db)
	InitRouter()
	return ws.Echo(), db
}

func postForm(e *echo.Echo, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func loginAsAdmin(t *testing.T, e *echo.Echo) []*http.Cookie {
	rec := postForm(e, "/login", url.Values{
		"username": {"admin"},
		"password": {"1234"},
	}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("login: expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin/dashboard" {
		t.Fatalf("login: expected redirect to /admin/dashboard, got %q", loc)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login: expected a session cookie")
	}
	return cookies
}

func TestLoginSuccess(t *testing.T) {
	e, _ := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	rec := get(e, "/admin/dashboard", cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: expected 200 with session, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "admin") {
		t.Error("dashboard should show the admin username")
	}
}

func TestLoginFailure(t *testing.T) {
	e, _ := setupTestServer(t)

	rec := postForm(e, "/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected re-rendered login, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ชื่อผู้ใช้ หรือ รหัสผ่านไม่ถูกต้อง") {
		t.Error("expected Thai credential error in body")
	}

	// session must stay anonymous
	rec = get(e, "/admin/dashboard", rec.Result().Cookies())
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect for anonymous session, got %d", rec.Code)
	}
}

func TestAdminRoutesRedirectAnonymous(t *testing.T) {
	e, _ := setupTestServer(t)

	for _, target := range []string{"/admin/dashboard", "/admin/add-product"} {
		rec := get(e, target, nil)
		if rec.Code != http.StatusFound {
			t.Errorf("%s: expected 302, got %d", target, rec.Code)
			continue
		}
		if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
			t.Errorf("%s: expected redirect to /login, got %q", target, loc)
		}
	}
}

func TestLogoutClearsSession(t *testing.T) {
	e, _ := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	rec := get(e, "/logout", cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect on logout, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}

	rec = get(e, "/admin/dashboard", rec.Result().Cookies())
	if rec.Code != http.StatusFound {
		t.Fatalf("expected anonymous redirect after logout, got %d", rec.Code)
	}
}

func TestAddProductForm(t *testing.T) {
	e, db := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	rec := postForm(e, "/admin/add-product", url.Values{
		"name":      {"ลำโพงบลูทูธ"},
		"price":     {"1290.50"},
		"image_url": {"https://example.com/s.jpg"},
		"discount":  {"5"},
		"is_sale":   {"on"},
	}, cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}

	var p domain.Product
	if err := db.Where("name = ?", "ลำโพงบลูทูธ").First(&p).Error; err != nil {
		t.Fatalf("product not stored: %v", err)
	}
	if p.Price != 1290.50 || p.Discount != 5 || !p.IsSale {
		t.Errorf("stored product mismatch: %+v", p)
	}
	if p.Category != "Electronics" {
		t.Errorf("expected default category, got %q", p.Category)
	}
}

func TestAddProductFormMissingFields(t *testing.T) {
	e, db := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	rec := postForm(e, "/admin/add-product", url.Values{
		"name":  {"ไม่มีราคา"},
		"price": {""},
	}, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "กรุณากรอกข้อมูลให้ครบ") {
		t.Error("expected Thai missing-field error in body")
	}

	var count int64
	db.Model(&domain.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no product stored, got %d", count)
	}
}

func TestAddProductFormNonNumeric(t *testing.T) {
	e, db := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	rec := postForm(e, "/admin/add-product", url.Values{
		"name":      {"ราคาผิด"},
		"price":     {"แพงมาก"},
		"image_url": {"https://example.com/x.jpg"},
	}, cookies)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected re-rendered form, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ราคาและส่วนลดต้องเป็นตัวเลข") {
		t.Error("expected Thai numeric error in body")
	}

	var count int64
	db.Model(&domain.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no product stored, got %d", count)
	}
}

func TestDeleteProductFormSwallowsNotFound(t *testing.T) {
	e, _ := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	rec := postForm(e, "/admin/delete-product/999", url.Values{}, cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect despite missing id, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/admin/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", loc)
	}
}

func TestDeleteProductForm(t *testing.T) {
	e, db := setupTestServer(t)
	cookies := loginAsAdmin(t, e)

	db.Create(&domain.Product{Name: "จะถูกลบ", Price: 1, ImageURL: "https://example.com/d.jpg"})

	rec := postForm(e, "/admin/delete-product/1", url.Values{}, cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}

	var count int64
	db.Model(&domain.Product{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected product removed, got %d rows", count)
	}

	// gate still applies: anonymous delete redirects to login
	rec = postForm(e, "/admin/delete-product/1", url.Values{}, nil)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected anonymous redirect to /login, got %q", loc)
	}
}

func TestPublicPages(t *testing.T) {
	e, db := setupTestServer(t)
	db.Create(&domain.Product{Name: "หน้าแรก", Price: 100, ImageURL: "https://example.com/h.jpg", Category: "Electronics", Discount: 50})

	rec := get(e, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("index: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "หน้าแรก") {
		t.Error("index should list products")
	}
	if !strings.Contains(rec.Body.String(), "50.00") {
		t.Error("index should show the discounted price")
	}

	for _, target := range []string{"/cart", "/checkout"} {
		rec := get(e, target, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", target, rec.Code)
		}
	}
}
