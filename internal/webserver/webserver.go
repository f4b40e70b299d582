// Package webserver owns the HTTP surface: the echo engine, JSON codec,
// request validation, JWT verification and the static /images mount.
package webserver

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/cargoshop/cargoshop/config"
	"github.com/cargoshop/cargoshop/internal/store"
)

// AppContext is the slice of the application the web server depends on.
type AppContext interface {
	Config() *config.AppConfig
	Store() store.Store
}

type WebServer struct {
	root  *echo.Echo
	app   AppContext
	jwtmw echo.MiddlewareFunc
}

func New(app AppContext) *WebServer {
	ws := &WebServer{app: app}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = app.Config().System.Debug
	e.JSONSerializer = JsoniterSerializer{}
	e.Binder = NewStrictJSONBinder()
	e.Validator = NewEntityValidator()
	e.HTTPErrorHandler = ws.httpErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(zapLogger())

	e.Static("/images", filepath.Join(app.Config().System.Workdir, "public", "images"))

	ws.root = e
	ws.jwtmw = ws.jwtMiddleware()
	return ws
}

// Root exposes the echo engine for route registration and tests.
func (ws *WebServer) Root() *echo.Echo {
	return ws.root
}

func (ws *WebServer) ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	ws.root.GET(path, h, m...)
}

func (ws *WebServer) ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	ws.root.POST(path, h, m...)
}

func (ws *WebServer) ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	ws.root.PUT(path, h, m...)
}

func (ws *WebServer) ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) {
	ws.root.DELETE(path, h, m...)
}

func (ws *WebServer) Start() error {
	cfg := ws.app.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("web server listening on %s", addr)
	return ws.root.Start(addr)
}

func (ws *WebServer) Shutdown(ctx context.Context) error {
	return ws.root.Shutdown(ctx)
}

// httpErrorHandler renders every unhandled error as the fixed-shape
// {"error": ...} body the resource endpoints use.
func (ws *WebServer) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	msg := "Internal Server Error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		msg = fmt.Sprintf("%v", he.Message)
	}
	if err2 := c.JSON(code, echo.Map{"error": msg}); err2 != nil {
		zap.S().Errorf("error response failed: %v", err2)
	}
}

func zapLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			req := c.Request()
			zap.L().Info("http request",
				zap.String("method", req.Method),
				zap.String("uri", req.RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
