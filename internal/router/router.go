package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"postboard/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	postHandler *handler.PostHandler,
	userHandler *handler.UserHandler,
	authHandler *handler.AuthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Post routes
	api.GET("/posts", postHandler.ListPosts)
	api.GET("/posts/:id", postHandler.GetPost)
	api.POST("/posts", postHandler.CreatePost)
	api.PUT("/posts/:id", postHandler.UpdatePost)
	api.DELETE("/posts/:id", postHandler.DeletePost)

	// User routes
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id", userHandler.GetUser)

	// Auth routes
	api.POST("/login", authHandler.Login)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
