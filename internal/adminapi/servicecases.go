package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type serviceCasePayload struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CustomerID    string     `json:"customerId"`
	ProductID     string     `json:"productId"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	ScheduledDate *time.Time `json:"scheduledDate"`
}

type checklistPayload struct {
	Text  string `json:"text"`
	Order int    `json:"order"`
}

type completePayload struct {
	Completed   bool   `json:"completed"`
	CompletedBy string `json:"completedBy"`
}

type imagePayload struct {
	URI     string `json:"uri"`
	Tag     string `json:"tag"`
	Caption string `json:"caption"`
}

type logPayload struct {
	Type        string   `json:"type"`
	Text        string   `json:"text"`
	Tags        []string `json:"tags"`
	IsImportant bool     `json:"isImportant"`
}

func registerServiceCaseRoutes() {
	webserver.ApiGET("/service-cases", listServiceCases)
	webserver.ApiGET("/service-cases/stats", serviceCaseStats)
	webserver.ApiGET("/service-cases/:id", getServiceCase)
	webserver.ApiPOST("/service-cases", createServiceCase)
	webserver.ApiPUT("/service-cases/:id", updateServiceCase)
	webserver.ApiDELETE("/service-cases/:id", deleteServiceCase)

	webserver.ApiGET("/service-cases/:id/checklist", listChecklist)
	webserver.ApiPOST("/service-cases/:id/checklist", createChecklistItem)
	webserver.ApiPOST("/checklist-items/:id/complete", completeChecklistItem)
	webserver.ApiPUT("/checklist-items/:id", updateChecklistItem)
	webserver.ApiDELETE("/checklist-items/:id", deleteChecklistItem)

	webserver.ApiGET("/service-cases/:id/images", listImages)
	webserver.ApiPOST("/service-cases/:id/images", createImage)
	webserver.ApiDELETE("/service-images/:id", deleteImage)

	webserver.ApiGET("/service-cases/:id/logs", listLogEntries)
	webserver.ApiPOST("/service-cases/:id/logs", createLogEntry)
	webserver.ApiDELETE("/service-logs/:id", deleteLogEntry)
}

func listServiceCases(c echo.Context) error {
	page, pageSize := parsePagination(c)
	cases := getStorage(c).Cases

	if c.QueryParam("withCustomers") == "true" {
		rows := cases.GetAllWithCustomers()
		return paged(c, pageSlice(rows, page, pageSize), len(rows), page, pageSize)
	}

	var rows []domain.ServiceCase
	switch {
	case c.QueryParam("customerId") != "":
		rows = cases.GetByCustomerID(c.QueryParam("customerId"))
	case c.QueryParam("productId") != "":
		rows = cases.GetByProductID(c.QueryParam("productId"))
	default:
		rows = cases.GetAll()
	}
	if status := c.QueryParam("status"); status != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Status == status {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}
	return paged(c, pageSlice(rows, page, pageSize), len(rows), page, pageSize)
}

func serviceCaseStats(c echo.Context) error {
	return ok(c, getStorage(c).Cases.CountByStatus())
}

func getServiceCase(c echo.Context) error {
	sc := getStorage(c).Cases.GetByID(c.Param("id"))
	if sc == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Service case not found", nil)
	}
	return ok(c, sc)
}

func createServiceCase(c echo.Context) error {
	var payload serviceCasePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse service case", nil)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Service case title is required", nil)
	}
	if payload.CustomerID == "" {
		return fail(c, http.StatusBadRequest, "MISSING_CUSTOMER", "customerId is required", nil)
	}
	if payload.Status == "" {
		payload.Status = domain.CaseStatusPending
	}
	if payload.Priority == "" {
		payload.Priority = domain.PriorityMedium
	}
	if !domain.ValidCaseStatus(payload.Status) {
		return fail(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status value", payload.Status)
	}
	if !domain.ValidPriority(payload.Priority) {
		return fail(c, http.StatusBadRequest, "INVALID_PRIORITY", "Unknown priority value", payload.Priority)
	}

	sc := &domain.ServiceCase{
		Title:         strings.TrimSpace(payload.Title),
		Description:   payload.Description,
		CustomerID:    payload.CustomerID,
		ProductID:     payload.ProductID,
		Status:        payload.Status,
		Priority:      payload.Priority,
		ScheduledDate: payload.ScheduledDate,
	}
	sc, err := getStorage(c).Cases.Save(sc)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save service case", err.Error())
	}
	return ok(c, sc)
}

func updateServiceCase(c echo.Context) error {
	id := c.Param("id")
	cases := getStorage(c).Cases
	if cases.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Service case not found", nil)
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse service case fields", nil)
	}
	if status, found := fields["status"]; found {
		s, _ := status.(string)
		if !domain.ValidCaseStatus(s) {
			return fail(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown status value", status)
		}
	}
	if priority, found := fields["priority"]; found {
		p, _ := priority.(string)
		if !domain.ValidPriority(p) {
			return fail(c, http.StatusBadRequest, "INVALID_PRIORITY", "Unknown priority value", priority)
		}
	}
	if err := cases.Update(id, fields); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update service case", err.Error())
	}
	return ok(c, cases.GetByID(id))
}

func deleteServiceCase(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Cases.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete service case", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

func listChecklist(c echo.Context) error {
	return ok(c, getStorage(c).Checklists.GetByServiceCaseID(c.Param("id")))
}

func createChecklistItem(c echo.Context) error {
	var payload checklistPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse checklist item", nil)
	}
	if strings.TrimSpace(payload.Text) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TEXT", "Checklist text is required", nil)
	}
	item := &domain.ChecklistItem{
		ServiceCaseID: c.Param("id"),
		Text:          strings.TrimSpace(payload.Text),
		Order:         payload.Order,
	}
	item, err := getStorage(c).Checklists.Save(item)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save checklist item", err.Error())
	}
	return ok(c, item)
}

func completeChecklistItem(c echo.Context) error {
	id := c.Param("id")
	var payload completePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse completion", nil)
	}
	checklists := getStorage(c).Checklists
	if checklists.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Checklist item not found", nil)
	}
	if err := checklists.SetCompleted(id, payload.Completed, payload.CompletedBy); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update checklist item", err.Error())
	}
	return ok(c, checklists.GetByID(id))
}

func updateChecklistItem(c echo.Context) error {
	id := c.Param("id")
	checklists := getStorage(c).Checklists
	if checklists.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Checklist item not found", nil)
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse checklist fields", nil)
	}
	if err := checklists.Update(id, fields); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update checklist item", err.Error())
	}
	return ok(c, checklists.GetByID(id))
}

func deleteChecklistItem(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Checklists.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete checklist item", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

func listImages(c echo.Context) error {
	images := getStorage(c).Images
	if tag := c.QueryParam("tag"); tag != "" {
		return ok(c, images.GetByTag(c.Param("id"), tag))
	}
	return ok(c, images.GetByServiceCaseID(c.Param("id")))
}

func createImage(c echo.Context) error {
	var payload imagePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse image", nil)
	}
	if payload.URI == "" {
		return fail(c, http.StatusBadRequest, "MISSING_URI", "Image uri is required", nil)
	}
	if payload.Tag == "" {
		payload.Tag = domain.ImageTagOther
	}
	img := &domain.ServiceImage{
		ServiceCaseID: c.Param("id"),
		URI:           payload.URI,
		Tag:           payload.Tag,
		Caption:       payload.Caption,
	}
	img, err := getStorage(c).Images.Save(img)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save image", err.Error())
	}
	return ok(c, img)
}

func deleteImage(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Images.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete image", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}

func listLogEntries(c echo.Context) error {
	logs := getStorage(c).Logs
	if c.QueryParam("important") == "true" {
		return ok(c, logs.GetImportant(c.Param("id")))
	}
	return ok(c, logs.GetByServiceCaseID(c.Param("id")))
}

func createLogEntry(c echo.Context) error {
	var payload logPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse log entry", nil)
	}
	if strings.TrimSpace(payload.Text) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TEXT", "Log text is required", nil)
	}
	if payload.Type == "" {
		payload.Type = domain.LogTypeNote
	}
	entry := &domain.ServiceLogEntry{
		ServiceCaseID: c.Param("id"),
		Type:          payload.Type,
		Text:          payload.Text,
		Tags:          payload.Tags,
		IsImportant:   payload.IsImportant,
	}
	entry, err := getStorage(c).Logs.Save(entry)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save log entry", err.Error())
	}
	return ok(c, entry)
}

func deleteLogEntry(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Logs.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete log entry", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
