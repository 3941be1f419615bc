package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/model"
	"doctorsportal/internal/repository"
	"doctorsportal/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents a signup payload.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

// CreateUserResponse mirrors the store acknowledgement shape.
type CreateUserResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// IsAdminResponse reports whether an email belongs to an admin.
type IsAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

// PromoteResponse reports the outcome of an admin promotion.
type PromoteResponse struct {
	Acknowledged bool `json:"acknowledged"`
	repository.GrantResult
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User document"
// @Success 201 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.userService.CreateUser(c.Request().Context(), &model.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, CreateUserResponse{
		Acknowledged: true,
		InsertedID:   id.Hex(),
	})
}

// ListUsers godoc
// @Summary List all users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// IsAdmin godoc
// @Summary Check whether an email belongs to an admin
// @Tags users
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} IsAdminResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/admin/{email} [get]
func (h *UserHandler) IsAdmin(c echo.Context) error {
	email := c.Param("email")
	isAdmin, err := h.userService.IsAdmin(c.Request().Context(), email)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, IsAdminResponse{IsAdmin: isAdmin})
}

// PromoteToAdmin godoc
// @Summary Grant the admin role to a user
// @Description Only callers whose token email resolves to an admin may promote.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} PromoteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/admin/{id} [put]
func (h *UserHandler) PromoteToAdmin(c echo.Context) error {
	claimedEmail, _ := c.Get(ClaimedEmailKey).(string)
	targetID := c.Param("id")

	result, err := h.userService.PromoteToAdmin(c.Request().Context(), claimedEmail, targetID)
	if err != nil {
		if err == apperrors.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, PromoteResponse{
		Acknowledged: true,
		GrantResult:  *result,
	})
}
