package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"petclinic/internal/auth"
	"petclinic/internal/errors"
	"petclinic/internal/model"
	"petclinic/internal/service"
)

// TimeLayout is the naive local timestamp format used on the wire.
const TimeLayout = "2006-01-02T15:04:05"

var acceptedTimeLayouts = []string{
	TimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseNaiveTime parses a wall-clock timestamp without zone information.
func parseNaiveTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range acceptedTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return model.NaiveTime(t), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// claimsFrom returns the claims the JWT middleware stored on the context.
func claimsFrom(c echo.Context) (*auth.Claims, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, false
	}
	claims, ok := token.Claims.(*auth.Claims)
	return claims, ok
}

// principalFrom builds the caller identity. Unknown roles map to an empty role.
func principalFrom(c echo.Context) (service.Principal, error) {
	claims, ok := claimsFrom(c)
	if !ok {
		return service.Principal{}, errInvalidToken()
	}
	role, _ := model.ParseRole(claims.Role)
	return service.Principal{UserID: claims.UserID, Username: claims.Username, Role: role}, nil
}

func errInvalidToken() error {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "invalid token",
		Code:  "INVALID_TOKEN",
	})
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid " + name,
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return nil
}

// domainError maps a service error to an HTTP error response.
func domainError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
