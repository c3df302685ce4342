package adminapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/auth"
	"github.com/riizpect/ServiceApp-sub000/internal/storage"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

// RegisterRoutes attaches every admin API handler to the webserver. Call after
// webserver.Init.
func RegisterRoutes() {
	registerSessionRoutes()
	registerCustomerRoutes()
	registerProductRoutes()
	registerCategoryRoutes()
	registerServiceCaseRoutes()
	registerReminderRoutes()
	registerExportRoutes()
}

func getStorage(c echo.Context) *storage.Storage {
	return webserver.GetAppContext(c).Storage()
}

func getAuth(c echo.Context) *auth.Service {
	return webserver.GetAppContext(c).Auth()
}

type apiError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Detail  interface{} `json:"detail,omitempty"`
}

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
	Total   *int        `json:"total,omitempty"`
	Page    *int        `json:"page,omitempty"`
	PerPage *int        `json:"perPage,omitempty"`
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(200, apiResponse{Success: true, Data: data})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, apiResponse{
		Success: false,
		Error:   &apiError{Code: code, Message: message, Detail: detail},
	})
}

func paged(c echo.Context, rows interface{}, total, page, pageSize int) error {
	return c.JSON(200, apiResponse{
		Success: true,
		Data:    rows,
		Total:   &total,
		Page:    &page,
		PerPage: &pageSize,
	})
}

// parsePagination reads page/perPage query params with the usual defaults.
func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	pageSize = 20
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

// pageSlice windows an in-memory result set; collections are small enough that
// all listing queries read everything anyway.
func pageSlice[T any](rows []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return []T{}
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
