package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/webserver"
)

type reminderPayload struct {
	CustomerID    string     `json:"customerId"`
	ServiceCaseID string     `json:"serviceCaseId"`
	Title         string     `json:"title"`
	Notes         string     `json:"notes"`
	DueDate       *time.Time `json:"dueDate"`
	Priority      string     `json:"priority"`
}

func registerReminderRoutes() {
	webserver.ApiGET("/reminders", listReminders)
	webserver.ApiGET("/reminders/:id", getReminder)
	webserver.ApiPOST("/reminders", createReminder)
	webserver.ApiPUT("/reminders/:id", updateReminder)
	webserver.ApiPOST("/reminders/:id/complete", completeReminder)
	webserver.ApiDELETE("/reminders/:id", deleteReminder)
}

func listReminders(c echo.Context) error {
	reminders := getStorage(c).Reminders

	if due := c.QueryParam("dueBefore"); due != "" {
		t, err := dateparse.ParseAny(due)
		if err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_DATE", "Unable to parse dueBefore", due)
		}
		return ok(c, reminders.GetDueBefore(t))
	}

	switch {
	case c.QueryParam("customerId") != "":
		return ok(c, reminders.GetByCustomerID(c.QueryParam("customerId")))
	case c.QueryParam("open") == "true":
		return ok(c, reminders.GetOpen())
	default:
		return ok(c, reminders.GetAll())
	}
}

func getReminder(c echo.Context) error {
	reminder := getStorage(c).Reminders.GetByID(c.Param("id"))
	if reminder == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Reminder not found", nil)
	}
	return ok(c, reminder)
}

func createReminder(c echo.Context) error {
	var payload reminderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse reminder", nil)
	}
	if strings.TrimSpace(payload.Title) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Reminder title is required", nil)
	}
	if payload.CustomerID == "" {
		return fail(c, http.StatusBadRequest, "MISSING_CUSTOMER", "customerId is required", nil)
	}
	if payload.DueDate == nil {
		return fail(c, http.StatusBadRequest, "MISSING_DUE_DATE", "dueDate is required", nil)
	}
	if payload.Priority != "" && !domain.ValidPriority(payload.Priority) {
		return fail(c, http.StatusBadRequest, "INVALID_PRIORITY", "Unknown priority value", payload.Priority)
	}

	reminder := &domain.ServiceReminder{
		CustomerID:    payload.CustomerID,
		ServiceCaseID: payload.ServiceCaseID,
		Title:         strings.TrimSpace(payload.Title),
		Notes:         payload.Notes,
		DueDate:       *payload.DueDate,
		Priority:      payload.Priority,
	}
	reminder, err := getStorage(c).Reminders.Save(reminder)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to save reminder", err.Error())
	}
	return ok(c, reminder)
}

func updateReminder(c echo.Context) error {
	id := c.Param("id")
	reminders := getStorage(c).Reminders
	if reminders.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Reminder not found", nil)
	}
	fields := map[string]interface{}{}
	if err := c.Bind(&fields); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse reminder fields", nil)
	}
	if err := reminders.Update(id, fields); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to update reminder", err.Error())
	}
	return ok(c, reminders.GetByID(id))
}

func completeReminder(c echo.Context) error {
	id := c.Param("id")
	reminders := getStorage(c).Reminders
	if reminders.GetByID(id) == nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Reminder not found", nil)
	}
	if err := reminders.Complete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to complete reminder", err.Error())
	}
	return ok(c, reminders.GetByID(id))
}

func deleteReminder(c echo.Context) error {
	id := c.Param("id")
	if err := getStorage(c).Reminders.Delete(id); err != nil {
		return fail(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to delete reminder", err.Error())
	}
	return ok(c, map[string]interface{}{"id": id})
}
