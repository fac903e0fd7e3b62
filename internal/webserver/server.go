package webserver

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/markshop/markshop/config"
)

//go:embed templates/*.html
var templatesFS embed.FS

const dbContextKey = "markshop_db"

var server *WebServer

// WebServer wraps the echo instance serving both the storefront pages
// and the JSON product API.
type WebServer struct {
	root      *echo.Echo
	appConfig *config.AppConfig
	db        *gorm.DB
}

// Init creates the singleton web server.
func Init(cfg *config.AppConfig, db *gorm.DB) *WebServer {
	server = NewWebServer(cfg, db)
	return server
}

func NewWebServer(cfg *config.AppConfig, db *gorm.DB) *WebServer {
	ws := &WebServer{
		root:      echo.New(),
		appConfig: cfg,
		db:        db,
	}
	ws.root.HideBanner = true
	ws.root.Debug = cfg.System.Debug

	secret := cfg.Web.Secret
	if secret == "" {
		secret = random.String(32)
		zap.L().Warn("web secret not configured, using a random session key")
	}

	ws.root.Use(middleware.Recover())
	ws.root.Use(session.Middleware(sessions.NewCookieStore([]byte(secret))))
	ws.root.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(dbContextKey, ws.db)
			return next(c)
		}
	})
	ws.root.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Info("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status))
			return nil
		},
	}))

	ws.root.Renderer = newTemplateRenderer()
	ws.root.Validator = &CustomValidator{validate: validator.New()}
	ws.root.HTTPErrorHandler = ws.errorHandler
	return ws
}

// Echo exposes the underlying echo instance (used in tests).
func (ws *WebServer) Echo() *echo.Echo {
	return ws.root
}

func (ws *WebServer) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := http.StatusText(code)
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		zap.L().Error("http handler error", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}
	_ = c.JSON(code, echo.Map{"error": message})
}

// Listen starts the web server.
func Listen() error {
	addr := fmt.Sprintf("%s:%d", server.appConfig.Web.Host, server.appConfig.Web.Port)
	zap.S().Infof("starting web server on %s", addr)
	return server.root.Start(addr)
}

// GetDB fetches the database handle attached to the request context.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(dbContextKey).(*gorm.DB)
}

// PubGET registers a public page route.
func PubGET(path string, h echo.HandlerFunc) {
	server.root.GET(path, h)
}

// PubPOST registers a public form route.
func PubPOST(path string, h echo.HandlerFunc) {
	server.root.POST(path, h)
}

// ApiGET registers a JSON API route under /api.
func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT("/api"+path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE("/api"+path, h)
}

// AdminGET registers a session-gated admin page route under /admin.
func AdminGET(path string, h echo.HandlerFunc) {
	server.root.GET("/admin"+path, h, RequireAdmin)
}

func AdminPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/admin"+path, h, RequireAdmin)
}

// CustomValidator adapts go-playground/validator to echo's Validate.
type CustomValidator struct {
	validate *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// TemplateRenderer renders the embedded html templates. The real view
// layer lives outside this repo, these templates are minimal shells.
type TemplateRenderer struct {
	templates *template.Template
}

func newTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		templates: template.Must(template.ParseFS(templatesFS, "templates/*.html")),
	}
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.templates.ExecuteTemplate(w, name, data)
}
