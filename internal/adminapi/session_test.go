package adminapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riizpect/ServiceApp-sub000/config"
	"github.com/riizpect/ServiceApp-sub000/internal/app"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

var testJSON = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestServer(t *testing.T) *webserver.WebServer {
	t.Helper()
	cfg := new(config.AppConfig)
	*cfg = *config.DefaultAppConfig
	cfg.Web.JwtSecret = "test-secret"

	application := app.NewApplication(cfg)
	application.OverrideStore(kvstore.NewMemStore())

	server := webserver.Init(application)
	RegisterRoutes()
	return server
}

func doJSON(t *testing.T, server *webserver.WebServer, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)
	return rec
}

func TestSessionEndpoints(t *testing.T) {
	server := newTestServer(t)

	// register establishes a session and returns a token
	rec := doJSON(t, server, http.MethodPost, "/api/session/register",
		`{"name":"Demo","email":"demo@x.se","password":"pw123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var registered struct {
		Success bool `json:"success"`
		Data    struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &registered))
	require.True(t, registered.Success)
	require.NotEmpty(t, registered.Data.Token)

	// wrong password fails with 401
	rec = doJSON(t, server, http.MethodPost, "/api/session/login",
		`{"email":"demo@x.se","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// unknown email fails identically
	rec2 := doJSON(t, server, http.MethodPost, "/api/session/login",
		`{"email":"nobody@x.se","password":"pw123456"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec2.Code)
	assert.Equal(t, rec.Body.String(), rec2.Body.String(),
		"login failure body identical for both cases")

	// duplicate registration rejected
	rec = doJSON(t, server, http.MethodPost, "/api/session/register",
		`{"name":"Other","email":"demo@x.se","password":"pw"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApiRequiresToken(t *testing.T) {
	server := newTestServer(t)

	// echo-jwt rejects a missing token with 400 and an invalid one with 401
	rec := doJSON(t, server, http.MethodGet, "/api/customers", "", "")
	assert.True(t, rec.Code == http.StatusBadRequest || rec.Code == http.StatusUnauthorized,
		"collection routes are token gated, got %d", rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/api/customers", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCustomerFlowOverAPI(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/session/register",
		`{"name":"Demo","email":"demo@x.se","password":"pw123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var registered struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &registered))
	token := registered.Data.Token

	rec = doJSON(t, server, http.MethodPost, "/api/customers",
		`{"name":"Acme","city":"Umeå"}`, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	// partial update touches only the supplied field
	rec = doJSON(t, server, http.MethodPut, "/api/customers/"+created.Data.ID,
		`{"phone":"070-1234567"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/api/customers/"+created.Data.ID, "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"name":"Acme"`)
	assert.Contains(t, body, `"phone":"070-1234567"`)

	// archive removes from default listing
	rec = doJSON(t, server, http.MethodPost, "/api/customers/"+created.Data.ID+"/archive", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/api/customers", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), created.Data.ID)

	rec = doJSON(t, server, http.MethodGet, "/api/customers?archived=true", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), created.Data.ID)
}

func TestExportCustomersCSV(t *testing.T) {
	server := newTestServer(t)

	rec := doJSON(t, server, http.MethodPost, "/api/session/register",
		`{"name":"Demo","email":"demo@x.se","password":"pw123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var registered struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, testJSON.Unmarshal(rec.Body.Bytes(), &registered))
	token := registered.Data.Token

	rec = doJSON(t, server, http.MethodPost, "/api/customers", `{"name":"Acme"}`, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, server, http.MethodGet, "/api/export/customers.csv", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Acme")
}
