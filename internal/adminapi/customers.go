package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type customerPayload struct {
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Notes       string `json:"notes"`
}

func registerCustomerRoutes() {
	webserver.ApiGET("/customers", listCustomers)
	webserver.ApiGET("/customers/:id", getCustomer)
	webserver.ApiPOST("/customers", createCustomer)
	webserver.ApiPUT("/customers/:id", updateCustomer)
	webserver.ApiPOST("/customers/:id/archive", archiveCustomer)
	webserver.ApiPOST("/customers/:id/unarchive", unarchiveCustomer)
	webserver.ApiDELETE("/customers/:id", deleteCustomer)
}

func listCustomers(c echo.Context) error {
	page, pageSize := parsePagination(c)
	customers := getStorage(c).Customers

	var rows []domain.Customer
	switch {
	case c.QueryParam("archived") == "true":
		rows = customers.GetArchived()
	case c.QueryParam("includeArchived") == "true":
		rows = customers.GetAllIncludingArchived()
	default:
		rows = customers.GetAll()
	}

	if q := strings.ToLower(strings.TrimSpace(c.QueryParam("q"))); q != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.Name), q) ||
				strings.Contains(strings.ToLower(row.CompanyName), q) ||
				strings.Contains(strings.ToLower(row.City), q) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	return paged(c, pageSlice(rows, page, pageSize), len(rows), page, pageSize)
}

func getCustomer(c echo.Context) error {
	customer := getStorage(c).Customers.GetByID(c.Param("id"))
	if customer == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	}
	return ok(c, customer)
}

func createCustomer(c echo.Context) error {
	var payload customerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer", nil)
	}
	if strings.TrimSpace(payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Customer name is required", nil)
	}

	customer := &domain.Customer{
		Name:        strings.TrimSpace(payload.Name),
		CompanyName: payload.CompanyName,
		Email:       payload.Email,
		Phone:       payload.Phone,
		Address:     payload.Address,
		PostalCode:  payload.PostalCode,
		City:        payload.City,
		Notes:       payload.Notes,
	}
	customer, err := getStorage(c).Customers.Save(customer)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save customer", err.Error())
	}
	return ok(c, customer)
}

func updateCustomer(c echo.Context) error {
	id := c.Param("id")
	customers := getStorage(c).Customers
	if customers.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse customer fields", nil)
	}
	if err := customers.Update(id, fields); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update customer", err.Error())
	}
	return ok(c, customers.GetByID(id))
}

func archiveCustomer(c echo.Context) error {
	id := c.Param("id")
	customers := getStorage(c).Customers
	if customers.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	}
	if err := customers.Archive(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to archive customer", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id, "archived": true})
}

func unarchiveCustomer(c echo.Context) error {
	id := c.Param("id")
	customers := getStorage(c).Customers
	if customers.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Customer not found", nil)
	}
	if err := customers.Unarchive(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to unarchive customer", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id, "archived": false})
}

// deleteCustomer permanently removes the record. The normal "delete" flow is
// archiving; this one is irreversible.
func deleteCustomer(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Customers.DeletePermanently(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete customer", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
