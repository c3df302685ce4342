package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/riizpect/ServiceApp-sub000/internal/auth"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerSessionRoutes() {
	webserver.ApiPOST("/session/login", loginHandler)
	webserver.ApiPOST("/session/register", registerHandler)
	webserver.ApiDELETE("/session", logoutHandler)
	webserver.ApiGET("/session/me", currentUserHandler)
}

func loginHandler(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", nil)
	}
	session, err := getAuth(c).Login(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredential) {
			return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIAL", err.Error(), nil)
		}
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Login failed", err.Error())
	}
	return ok(c, session)
}

func registerHandler(c echo.Context) error {
	var payload registerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse registration", nil)
	}
	payload.Email = strings.TrimSpace(payload.Email)
	if payload.Email == "" || payload.Password == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Email and password are required", nil)
	}
	session, err := getAuth(c).Register(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			return fail(c, http.StatusConflict, "DUPLICATE_EMAIL", err.Error(), nil)
		}
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Registration failed", err.Error())
	}
	return ok(c, session)
}

func logoutHandler(c echo.Context) error {
	getAuth(c).Logout()
	return ok(c, map[string]interface{}{"loggedOut": true})
}

func currentUserHandler(c echo.Context) error {
	user := getAuth(c).CurrentUser()
	if user == nil {
		return fail(c, http.StatusUnauthorized, "NO_SESSION", "No active session", nil)
	}
	return ok(c, user)
}
