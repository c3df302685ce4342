package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type categoryPayload struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func registerCategoryRoutes() {
	webserver.ApiGET("/product-categories", listCategories)
	webserver.ApiGET("/product-categories/:id", getCategory)
	webserver.ApiPOST("/product-categories", createCategory)
	webserver.ApiPUT("/product-categories/:id", updateCategory)
	webserver.ApiDELETE("/product-categories/:id", deleteCategory)
}

func listCategories(c echo.Context) error {
	return ok(c, getStorage(c).Categories.GetAll())
}

func getCategory(c echo.Context) error {
	category := getStorage(c).Categories.GetByID(c.Param("id"))
	if category == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
	}
	return ok(c, category)
}

func createCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category", nil)
	}
	if strings.TrimSpace(payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Category name is required", nil)
	}
	category := &domain.ProductCategory{
		Name:  strings.TrimSpace(payload.Name),
		Icon:  payload.Icon,
		Color: payload.Color,
	}
	category, err := getStorage(c).Categories.Save(category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save category", err.Error())
	}
	return ok(c, category)
}

func updateCategory(c echo.Context) error {
	id := c.Param("id")
	categories := getStorage(c).Categories
	if categories.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Category not found", nil)
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category fields", nil)
	}
	if err := categories.Update(id, fields); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update category", err.Error())
	}
	return ok(c, categories.GetByID(id))
}

func deleteCategory(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Categories.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete category", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
