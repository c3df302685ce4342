package webserver

import (
	"fmt"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/riizpect/ServiceApp-sub000/internal/app"
)

const appContextKey = "serviceapp.appctx"

var server *WebServer

// WebServer hosts the admin REST API. Everything under /api except the session
// login/register endpoints requires a bearer token.
type WebServer struct {
	appctx app.AppContext
	root   *echo.Echo
	api    *echo.Group
}

// Init builds the server singleton. Route registration helpers below attach to
// it, mirroring how handler packages register themselves.
func Init(appctx app.AppContext) *WebServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(appContextKey, appctx)
			start := time.Now()
			err := next(c)
			zap.L().Debug("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("elapsed", time.Since(start)))
			return err
		}
	})

	api := e.Group("/api")
	api.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(appctx.Config().Web.JwtSecret),
		Skipper: func(c echo.Context) bool {
			switch c.Path() {
			case "/api/session/login", "/api/session/register":
				return true
			}
			return false
		},
	}))

	server = &WebServer{appctx: appctx, root: e, api: api}
	return server
}

// GetAppContext extracts the application context installed by Init.
func GetAppContext(c echo.Context) app.AppContext {
	return c.Get(appContextKey).(app.AppContext)
}

// Handler exposes the root handler (used by httptest).
func (s *WebServer) Handler() http.Handler {
	return s.root
}

// Listen starts serving on the configured host and port.
func (s *WebServer) Listen() error {
	cfg := s.appctx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.S().Infof("Admin API listening on %s", addr)
	err := s.root.Start(addr)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *WebServer) Shutdown() error {
	return s.root.Close()
}

// ApiGET registers a token-gated GET route under /api.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

// ApiPOST registers a token-gated POST route under /api.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

// ApiPUT registers a token-gated PUT route under /api.
func ApiPUT(path string, h echo.HandlerFunc) {
	server.api.PUT(path, h)
}

// ApiDELETE registers a token-gated DELETE route under /api.
func ApiDELETE(path string, h echo.HandlerFunc) {
	server.api.DELETE(path, h)
}
