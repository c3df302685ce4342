package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type productPayload struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	SerialNumber  string     `json:"serialNumber"`
	CategoryID    string     `json:"categoryId"`
	CustomerID    string     `json:"customerId"`
	PurchaseDate  *time.Time `json:"purchaseDate"`
	WarrantyUntil *time.Time `json:"warrantyUntil"`
	IsStandalone  bool       `json:"isStandalone"`
	Notes         string     `json:"notes"`
}

type assignPayload struct {
	CustomerID string `json:"customerId"`
}

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:id", getProduct)
	webserver.ApiPOST("/products", createProduct)
	webserver.ApiPUT("/products/:id", updateProduct)
	webserver.ApiPOST("/products/:id/assign", assignProduct)
	webserver.ApiDELETE("/products/:id", deleteProduct)
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)
	products := getStorage(c).Products

	var rows []domain.Product
	switch {
	case c.QueryParam("standalone") == "true":
		rows = products.GetStandalone()
	case c.QueryParam("customerId") != "":
		rows = products.GetByCustomerID(c.QueryParam("customerId"))
	case c.QueryParam("includeInactive") == "true":
		rows = products.GetAll()
	default:
		rows = products.GetActive()
	}
	return paged(c, pageSlice(rows, page, pageSize), len(rows), page, pageSize)
}

func getProduct(c echo.Context) error {
	product := getStorage(c).Products.GetByID(c.Param("id"))
	if product == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, product)
}

func createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", nil)
	}
	if strings.TrimSpace(payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Product name is required", nil)
	}

	product := &domain.Product{
		Name:          strings.TrimSpace(payload.Name),
		Description:   payload.Description,
		SerialNumber:  payload.SerialNumber,
		CategoryID:    payload.CategoryID,
		CustomerID:    payload.CustomerID,
		PurchaseDate:  payload.PurchaseDate,
		WarrantyUntil: payload.WarrantyUntil,
		IsStandalone:  payload.IsStandalone || payload.CustomerID == "",
		IsActive:      true,
		Notes:         payload.Notes,
	}
	product, err := getStorage(c).Products.Save(product)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save product", err.Error())
	}
	return ok(c, product)
}

func updateProduct(c echo.Context) error {
	id := c.Param("id")
	products := getStorage(c).Products
	if products.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product fields", nil)
	}
	if err := products.Update(id, fields); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, products.GetByID(id))
}

func assignProduct(c echo.Context) error {
	id := c.Param("id")
	var payload assignPayload
	if err := c.Bind(&payload); err != nil || payload.CustomerID == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "customerId is required", nil)
	}
	products := getStorage(c).Products
	if products.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	if err := products.AssignToCustomer(id, payload.CustomerID); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to assign product", err.Error())
	}
	return ok(c, products.GetByID(id))
}

func deleteProduct(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Products.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete product", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
