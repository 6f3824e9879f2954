package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"petclinic/internal/auth"
)

var (
	ownerClaims  = &auth.Claims{UserID: 1, Username: "alice", Role: "OWNER"}
	doctorClaims = &auth.Claims{UserID: 3, Username: "drsmith", Role: "DOCTOR"}
)

// newTestEcho returns an echo instance whose routes see claims as the
// authenticated caller. A nil claims value leaves the request anonymous.
func newTestEcho(claims *auth.Claims) (*echo.Echo, *echo.Group) {
	e := echo.New()
	e.Validator = NewValidator()
	g := e.Group("/api", func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if claims != nil {
				c.Set("user", jwt.NewWithClaims(jwt.SigningMethodHS256, claims))
			}
			return next(c)
		}
	})
	return e, g
}

func doRequest(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(t, e, method, path, body)
}

func serve(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
