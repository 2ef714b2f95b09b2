package router

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bloghub/internal/config"
	"bloghub/internal/handler"
	"bloghub/internal/repository"
	"bloghub/internal/session"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	users repository.UserRepository,
	homeHandler *handler.HomeHandler,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	postHandler *handler.PostHandler,
) {
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(session.Middleware(cfg.SessionSecret))
	e.Use(handler.LoadUser(users))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.Static("/static", cfg.StaticDir)

	e.GET("/", homeHandler.Home)
	e.GET("/home", homeHandler.Home)
	e.GET("/about", homeHandler.About)

	// Anonymous-only routes redirect home when a session is present.
	e.GET("/register", authHandler.ShowRegister, handler.RequireAnonymous)
	e.POST("/register", authHandler.Register, handler.RequireAnonymous)
	e.GET("/login", authHandler.ShowLogin, handler.RequireAnonymous)
	e.POST("/login", authHandler.Login, handler.RequireAnonymous)
	e.GET("/logout", authHandler.Logout)

	e.GET("/reset_password", authHandler.ShowResetRequest, handler.RequireAnonymous)
	e.POST("/reset_password", authHandler.RequestReset, handler.RequireAnonymous)
	e.GET("/reset_password/:token", authHandler.ShowResetPassword, handler.RequireAnonymous)
	e.POST("/reset_password/:token", authHandler.ResetPassword, handler.RequireAnonymous)

	// Authenticated routes redirect to login with a next parameter.
	e.GET("/account", accountHandler.ShowAccount, handler.RequireAuth)
	e.POST("/account", accountHandler.UpdateAccount, handler.RequireAuth)

	e.GET("/post/new", postHandler.ShowCreate, handler.RequireAuth)
	e.POST("/post/new", postHandler.Create, handler.RequireAuth)
	e.GET("/post/:id", postHandler.Show)
	e.GET("/post/:id/update", postHandler.ShowUpdate, handler.RequireAuth)
	e.POST("/post/:id/update", postHandler.Update, handler.RequireAuth)
	e.POST("/post/:id/delete", postHandler.Delete, handler.RequireAuth)

	e.GET("/user/:username", postHandler.ByUser)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
