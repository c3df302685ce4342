package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/riizpect/ServiceApp-sub000/internal/domain"
	"github.com/riizpect/ServiceApp-sub000/internal/kvstore"
)

const testSecret = "test-secret"

func TestRegisterAndLogin(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, testSecret)

	session, err := svc.Register("Demo", "demo@x.se", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "demo@x.se", session.User.Email)
	assert.Empty(t, session.User.Password, "session copy never carries the hash")
	assert.True(t, svc.IsAuthenticated())

	// fresh service over the same store: credential check against persisted list
	svc2 := NewService(store, testSecret)
	session2, err := svc2.Login("demo@x.se", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, session2.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewService(kvstore.NewMemStore(), testSecret)

	_, err := svc.Register("Demo", "demo@x.se", "pw123456")
	require.NoError(t, err)

	_, err = svc.Register("Annan", "demo@x.se", "annanpw")
	require.ErrorIs(t, err, ErrDuplicateEmail)

	// exact case-sensitive match: different casing is a different email
	_, err = svc.Register("Annan", "Demo@x.se", "annanpw")
	require.NoError(t, err)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := NewService(kvstore.NewMemStore(), testSecret)

	_, err := svc.Register("Demo", "demo@x.se", "pw123456")
	require.NoError(t, err)

	_, wrongPw := svc.Login("demo@x.se", "wrong")
	require.ErrorIs(t, wrongPw, ErrInvalidCredential)

	_, noUser := svc.Login("nobody@x.se", "pw123456")
	require.ErrorIs(t, noUser, ErrInvalidCredential)

	assert.Equal(t, wrongPw.Error(), noUser.Error(),
		"unknown email and wrong password must fail with the same message")
}

func TestLogoutClearsSession(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, testSecret)

	_, err := svc.Register("Demo", "demo@x.se", "pw123456")
	require.NoError(t, err)
	require.True(t, svc.IsAuthenticated())

	svc.Logout()
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Token())

	// users list survives logout
	svc2 := NewService(store, testSecret)
	_, err = svc2.Login("demo@x.se", "pw123456")
	require.NoError(t, err)
}

func TestLogoutSurvivesStoreFault(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, testSecret)

	_, err := svc.Register("Demo", "demo@x.se", "pw123456")
	require.NoError(t, err)

	store.FailWrites = assert.AnError
	svc.Logout() // must not panic; failure is logged and swallowed
}

func TestPlaintextPasswordMigration(t *testing.T) {
	store := kvstore.NewMemStore()

	// seed a legacy user with a plaintext password
	require.NoError(t, store.Set(domain.KeyUsers,
		`[{"id":"u-1","name":"Gammal","email":"old@x.se","password":"abc123"}]`))

	svc := NewService(store, testSecret)

	// any users-loading path triggers the migration
	session, err := svc.Login("old@x.se", "abc123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	raw, ok, err := store.Get(domain.KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotContains(t, raw, `"password":"abc123"`, "plaintext replaced in storage")

	stored := svc.GetUserByID("u-1")
	require.NotNil(t, stored)
	assert.NotEqual(t, "abc123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("abc123")),
		"migrated hash verifies against the original plaintext")
}

func TestMigrationIdempotent(t *testing.T) {
	store := kvstore.NewMemStore()
	svc := NewService(store, testSecret)

	_, err := svc.Register("Demo", "demo@x.se", "pw123456")
	require.NoError(t, err)

	id := mustUserID(t, svc, "demo@x.se")
	first := NewService(store, testSecret).GetUserByID(id)
	require.NotNil(t, first)
	second := NewService(store, testSecret).GetUserByID(id)
	require.NotNil(t, second)
	assert.Equal(t, first.Password, second.Password, "already-hashed passwords left untouched")
}

func mustUserID(t *testing.T, svc *Service, email string) string {
	t.Helper()
	users, err := svc.loadUsers()
	require.NoError(t, err)
	for _, u := range users {
		if u.Email == email {
			return u.ID
		}
	}
	t.Fatalf("no user with email %s", email)
	return ""
}
