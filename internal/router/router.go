package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"doctorsportal/internal/auth"
	"doctorsportal/internal/config"
	"doctorsportal/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	tokenStore auth.TokenStoreInterface,
	availabilityHandler *handler.AvailabilityHandler,
	bookingHandler *handler.BookingHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "doctors portal server is running..")
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.GET("/availableAppointments", availabilityHandler.List)
	e.GET("/v2/availableAppointments", availabilityHandler.ListAggregated)
	e.GET("/jwt", authHandler.IssueToken)
	e.GET("/users", userHandler.ListUsers)
	e.GET("/users/admin/:email", userHandler.IsAdmin)
	e.POST("/users", userHandler.CreateUser)
	e.POST("/bookingAppointments", bookingHandler.Book)
	e.GET("/seed/treatments", seedHandler.SeedTreatments)

	// Secured routes (require JWT authentication).
	// A missing token is 401; a bad, expired or revoked one is 403.
	secured := e.Group("",
		echojwt.WithConfig(echojwt.Config{
			SigningKey: []byte(cfg.JWTSecret),
			NewClaimsFunc: func(c echo.Context) jwt.Claims {
				return new(auth.Claims)
			},
			ErrorHandler: func(c echo.Context, err error) error {
				if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
					return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized access")
				}
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			},
		}),
		claimedEmail(tokenStore),
	)

	secured.GET("/bookings", bookingHandler.ListBookings)
	secured.PUT("/users/admin/:id", userHandler.PromoteToAdmin)
	secured.POST("/logout", authHandler.Logout)
}

// claimedEmail rejects revoked tokens and exposes the verified email claim to
// downstream handlers for resource-level authorization checks.
func claimedEmail(tokenStore auth.TokenStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
			}
			if claims.ID != "" {
				revoked, _ := tokenStore.IsAccessTokenBlacklisted(c.Request().Context(), claims.ID)
				if revoked {
					return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
				}
			}
			c.Set(handler.ClaimedEmailKey, claims.Email)
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
