package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "doctorsportal/internal/errors"
	"doctorsportal/internal/service"
)

// AuthHandler handles token endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenResponse represents a token issue response.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// IssueToken godoc
// @Summary Issue an access token for a signed-up email
// @Description Refused with an empty token when no user with that email exists.
// @Tags auth
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} TokenResponse
// @Failure 403 {object} TokenResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jwt [get]
func (h *AuthHandler) IssueToken(c echo.Context) error {
	email := c.QueryParam("email")

	token, err := h.authService.IssueToken(c.Request().Context(), email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return c.JSON(http.StatusForbidden, TokenResponse{AccessToken: ""})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, TokenResponse{AccessToken: token})
}

// Logout godoc
// @Summary Revoke the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	raw := strings.TrimSpace(strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer"))

	if err := h.authService.Logout(c.Request().Context(), raw); err != nil {
		if err == apperrors.ErrForbidden {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden access"})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out successfully"})
}
