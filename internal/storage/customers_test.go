package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

func TestCustomerLifecycle(t *testing.T) {
	customers := NewCustomerStorage(kvstore.NewMemStore(), nil)

	a, err := customers.Save(&domain.Customer{Name: "Acme"})
	require.NoError(t, err)

	all := customers.GetAll()
	require.Len(t, all, 1)
	assert.Equal(t, "Acme", all[0].Name)

	require.NoError(t, customers.Archive(a.ID))
	assert.Len(t, customers.GetAll(), 0, "archived customer excluded from default listing")

	archived := customers.GetArchived()
	require.Len(t, archived, 1)
	assert.True(t, archived[0].IsArchived)
	require.NotNil(t, archived[0].ArchivedAt)

	including := customers.GetAllIncludingArchived()
	require.Len(t, including, 1)
	assert.True(t, including[0].IsArchived)

	require.NoError(t, customers.Unarchive(a.ID))
	restored := customers.GetAll()
	require.Len(t, restored, 1)
	assert.False(t, restored[0].IsArchived)
	assert.Nil(t, restored[0].ArchivedAt)
}

func TestCustomerPermanentDelete(t *testing.T) {
	customers := NewCustomerStorage(kvstore.NewMemStore(), nil)

	a, err := customers.Save(&domain.Customer{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, customers.Archive(a.ID))

	require.NoError(t, customers.DeletePermanently(a.ID))
	assert.Len(t, customers.GetAllIncludingArchived(), 0, "permanent delete is irreversible")
}

func TestCustomerArchivedSortedNewestFirst(t *testing.T) {
	customers := NewCustomerStorage(kvstore.NewMemStore(), nil)

	first, err := customers.Save(&domain.Customer{Name: "First"})
	require.NoError(t, err)
	second, err := customers.Save(&domain.Customer{Name: "Second"})
	require.NoError(t, err)

	require.NoError(t, customers.Archive(first.ID))
	require.NoError(t, customers.Archive(second.ID))

	archived := customers.GetArchived()
	require.Len(t, archived, 2)
	assert.False(t, archived[0].ArchivedAt.Before(*archived[1].ArchivedAt),
		"most recently archived first")
}

func TestCustomerPersistsThroughBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.db")

	store, err := kvstore.NewBoltStore(path)
	require.NoError(t, err)
	customers := NewCustomerStorage(store, nil)

	saved, err := customers.Save(&domain.Customer{Name: "Vårdboende Björken", City: "Umeå"})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := kvstore.NewBoltStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got := NewCustomerStorage(reopened, nil).GetByID(saved.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Vårdboende Björken", got.Name)
	assert.Equal(t, "Umeå", got.City)
	assert.True(t, saved.CreatedAt.Equal(got.CreatedAt), "timestamps survive the encode cycle")
}
