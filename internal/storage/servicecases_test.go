package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

func newTestStorage() *Storage {
	return New(kvstore.NewMemStore(), nil)
}

func TestServiceCaseWithCustomers(t *testing.T) {
	s := newTestStorage()

	acme, err := s.Customers.Save(&domain.Customer{Name: "Acme"})
	require.NoError(t, err)

	_, err = s.Cases.Save(&domain.ServiceCase{
		Title:      "Årlig service",
		CustomerID: acme.ID,
		Status:     domain.CaseStatusPending,
	})
	require.NoError(t, err)

	joined := s.Cases.GetAllWithCustomers()
	require.Len(t, joined, 1)
	require.NotNil(t, joined[0].Customer)
	assert.Equal(t, acme.ID, joined[0].Customer.ID)
	assert.Equal(t, "Acme", joined[0].Customer.Name)
}

func TestServiceCaseDanglingCustomerTolerated(t *testing.T) {
	s := newTestStorage()

	saved, err := s.Cases.Save(&domain.ServiceCase{
		Title:      "Okänd kund",
		CustomerID: "no-such-customer",
	})
	require.NoError(t, err)
	require.NotNil(t, s.Cases.GetByID(saved.ID), "dangling reference stored without validation")

	joined := s.Cases.GetAllWithCustomers()
	require.Len(t, joined, 1)
	assert.Nil(t, joined[0].Customer, "unresolved reference yields nil customer")
}

func TestServiceCaseQueries(t *testing.T) {
	s := newTestStorage()

	_, err := s.Cases.Save(&domain.ServiceCase{Title: "a", CustomerID: "c-1", ProductID: "p-1", Status: domain.CaseStatusPending})
	require.NoError(t, err)
	_, err = s.Cases.Save(&domain.ServiceCase{Title: "b", CustomerID: "c-1", Status: domain.CaseStatusCompleted})
	require.NoError(t, err)
	_, err = s.Cases.Save(&domain.ServiceCase{Title: "c", CustomerID: "c-2", Status: domain.CaseStatusPending})
	require.NoError(t, err)

	assert.Len(t, s.Cases.GetByCustomerID("c-1"), 2)
	assert.Len(t, s.Cases.GetByProductID("p-1"), 1)

	counts := s.Cases.CountByStatus()
	assert.Equal(t, 2, counts[domain.CaseStatusPending])
	assert.Equal(t, 1, counts[domain.CaseStatusCompleted])
}

func TestChecklistOrderingAndCompletion(t *testing.T) {
	s := newTestStorage()

	_, err := s.Checklists.Save(&domain.ChecklistItem{ServiceCaseID: "sc-1", Text: "Kontrollera batteri", Order: 2})
	require.NoError(t, err)
	first, err := s.Checklists.Save(&domain.ChecklistItem{ServiceCaseID: "sc-1", Text: "Inspektera lyftband", Order: 1})
	require.NoError(t, err)
	_, err = s.Checklists.Save(&domain.ChecklistItem{ServiceCaseID: "sc-2", Text: "Annat ärende", Order: 0})
	require.NoError(t, err)

	items := s.Checklists.GetByServiceCaseID("sc-1")
	require.Len(t, items, 2)
	assert.Equal(t, "Inspektera lyftband", items[0].Text, "sorted by display order")

	require.NoError(t, s.Checklists.SetCompleted(first.ID, true, "tekniker-1"))
	got := s.Checklists.GetByID(first.ID)
	require.NotNil(t, got)
	assert.True(t, got.IsCompleted)
	assert.Equal(t, "tekniker-1", got.CompletedBy)
	require.NotNil(t, got.CompletedAt)

	require.NoError(t, s.Checklists.SetCompleted(first.ID, false, ""))
	got = s.Checklists.GetByID(first.ID)
	assert.False(t, got.IsCompleted)
	assert.Nil(t, got.CompletedAt)
	assert.Empty(t, got.CompletedBy)
}

func TestLogEntryTimestampImmutable(t *testing.T) {
	s := newTestStorage()

	entry, err := s.Logs.Save(&domain.ServiceLogEntry{
		ServiceCaseID: "sc-1",
		Type:          domain.LogTypeNote,
		Text:          "Första anteckningen",
	})
	require.NoError(t, err)
	stamp := entry.Timestamp
	require.False(t, stamp.IsZero(), "timestamp assigned at save")

	require.NoError(t, s.Logs.Update(entry.ID, map[string]interface{}{
		"text":      "Redigerad",
		"timestamp": "1999-01-01T00:00:00Z",
	}))

	got := s.Logs.GetByID(entry.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Redigerad", got.Text)
	assert.True(t, stamp.Equal(got.Timestamp), "timestamp never changes after first save")
}

func TestLogEntriesNewestFirst(t *testing.T) {
	s := newTestStorage()

	older, err := s.Logs.Save(&domain.ServiceLogEntry{ServiceCaseID: "sc-1", Type: domain.LogTypeWork, Text: "old"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	newer, err := s.Logs.Save(&domain.ServiceLogEntry{ServiceCaseID: "sc-1", Type: domain.LogTypeWork, Text: "new", IsImportant: true})
	require.NoError(t, err)

	entries := s.Logs.GetByServiceCaseID("sc-1")
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].ID)
	assert.Equal(t, older.ID, entries[1].ID)

	important := s.Logs.GetImportant("sc-1")
	require.Len(t, important, 1)
	assert.Equal(t, newer.ID, important[0].ID)
}

func TestReminderQueriesAndComplete(t *testing.T) {
	s := newTestStorage()

	soon := time.Now().Add(24 * time.Hour)
	later := time.Now().Add(30 * 24 * time.Hour)

	due, err := s.Reminders.Save(&domain.ServiceReminder{CustomerID: "c-1", Title: "Filterbyte", DueDate: soon})
	require.NoError(t, err)
	_, err = s.Reminders.Save(&domain.ServiceReminder{CustomerID: "c-2", Title: "Årskontroll", DueDate: later})
	require.NoError(t, err)

	assert.Len(t, s.Reminders.GetByCustomerID("c-1"), 1)
	assert.Len(t, s.Reminders.GetOpen(), 2)

	dueSoon := s.Reminders.GetDueBefore(time.Now().Add(48 * time.Hour))
	require.Len(t, dueSoon, 1)
	assert.Equal(t, due.ID, dueSoon[0].ID)

	require.NoError(t, s.Reminders.Complete(due.ID))
	got := s.Reminders.GetByID(due.ID)
	require.NotNil(t, got)
	assert.True(t, got.IsCompleted)
	require.NotNil(t, got.CompletedAt)
	assert.Len(t, s.Reminders.GetOpen(), 1)
	assert.Len(t, s.Reminders.GetDueBefore(time.Now().Add(48*time.Hour)), 0)
}

func TestProductQueries(t *testing.T) {
	s := newTestStorage()

	standalone, err := s.Products.Save(&domain.Product{Name: "Taklyft X2", CategoryID: "cat-1", IsStandalone: true, IsActive: true})
	require.NoError(t, err)
	_, err = s.Products.Save(&domain.Product{Name: "Rullstol R1", CategoryID: "cat-2", CustomerID: "c-1", IsActive: true})
	require.NoError(t, err)
	inactive, err := s.Products.Save(&domain.Product{Name: "Utgången", CategoryID: "cat-1", IsActive: false})
	require.NoError(t, err)

	assert.Len(t, s.Products.GetAll(), 3)
	assert.Len(t, s.Products.GetActive(), 2, "inactive products hidden from active listing")
	assert.NotNil(t, s.Products.GetByID(inactive.ID), "inactive still present, not deleted")
	assert.Len(t, s.Products.GetByCustomerID("c-1"), 1)

	stand := s.Products.GetStandalone()
	require.Len(t, stand, 1)
	assert.Equal(t, standalone.ID, stand[0].ID)

	require.NoError(t, s.Products.AssignToCustomer(standalone.ID, "c-2"))
	got := s.Products.GetByID(standalone.ID)
	require.NotNil(t, got)
	assert.Equal(t, "c-2", got.CustomerID)
	assert.False(t, got.IsStandalone)
	assert.Len(t, s.Products.GetStandalone(), 0)
}
