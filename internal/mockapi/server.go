// Package mockapi is an in-process double of the bakery back-office REST
// API. It backs local development of the admin console and the integration
// tests; it is not the production backend.
package mockapi

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

type Server struct {
	DB        *gorm.DB
	JWTSecret []byte
	UploadDir string

	echo *echo.Echo
}

func New(db *gorm.DB, jwtSecret []byte, uploadDir string, log *slog.Logger) *Server {
	s := &Server{
		DB:        db,
		JWTSecret: jwtSecret,
		UploadDir: uploadDir,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), requestLogger(log))
	s.routes(e)
	s.echo = e
	return s
}

func (s *Server) routes(e *echo.Echo) {
	e.POST("/api/auth/login", s.Login)

	// Catalog reads are public; the storefront consumes them without a token.
	e.GET("/api/categories", s.ListCategories)
	e.GET("/api/categories/:id", s.GetCategory)
	e.GET("/api/products", s.ListProducts)
	e.GET("/api/products/:id", s.GetProduct)

	e.GET("/api/users", s.ListUsers, s.requireToken)
	e.GET("/api/users/:id", s.GetUser, s.requireToken)
	e.POST("/api/users", s.CreateUser, s.requireToken)
	e.PUT("/api/users/:id", s.UpdateUser, s.requireToken)
	e.DELETE("/api/users/:id", s.DeleteUser, s.requireToken)

	e.POST("/api/categories", s.CreateCategory, s.requireToken)
	e.PUT("/api/categories/:id", s.UpdateCategory, s.requireToken)
	e.DELETE("/api/categories/:id", s.DeleteCategory, s.requireToken)

	e.POST("/api/products", s.CreateProduct, s.requireToken)
	e.PUT("/api/products/:id", s.UpdateProduct, s.requireToken)
	e.DELETE("/api/products/:id", s.DeleteProduct, s.requireToken)

	e.Static("/public/uploads", s.UploadDir)
}

// Echo exposes the router for httptest servers.
func (s *Server) Echo() *echo.Echo { return s.echo }

func (s *Server) Start(addr string) error { return s.echo.Start(addr) }

func (s *Server) Shutdown(ctx context.Context) error { return s.echo.Shutdown(ctx) }

func errJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"error": msg})
}
