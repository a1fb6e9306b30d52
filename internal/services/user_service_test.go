package services

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/secureauth/secure-auth-be/internal/database"
	"github.com/secureauth/secure-auth-be/internal/models"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))
	return db
}

func countUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM users").Scan(&n))
	return n
}

func TestCreateUser_NormalizesAndPersists(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.CreateUser("  Ada ", " Ada@Example.COM ", "secret1")
	require.NoError(t, err)
	require.Equal(t, "Ada", user.Name)
	require.Equal(t, "ada@example.com", user.Email)
	require.NotEmpty(t, user.ID)
	require.False(t, user.CreatedAt.IsZero())
	require.Empty(t, user.PasswordHash, "hash must not be returned")

	got, err := svc.GetUserByID(user.ID)
	require.NoError(t, err)
	require.Equal(t, user.Email, got.Email)
	require.Empty(t, got.PasswordHash, "hash must not be selected by GetUserByID")
}

func TestCreateUser_DuplicateEmailNormalized(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser("Ada", "A@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.CreateUser("Other Ada", "a@x.com ", "secret2")
	require.ErrorIs(t, err, models.ErrDuplicateEmail)
	require.Equal(t, 1, countUsers(t, db))
}

func TestCreateUser_Validation(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		field    string
	}{
		{"empty fields", "", "", "", "body"},
		{"short name", "A", "ada@x.com", "secret1", "name"},
		{"long name", "Ada Ada Ada Ada Ada Ada Ada Ada Ada Ada Ada Ada Ada", "ada@x.com", "secret1", "name"},
		{"bad email", "Ada", "not-an-email", "secret1", "email"},
		{"email with spaces", "Ada", "a b@x.com", "secret1", "email"},
		{"short password", "Ada", "ada@x.com", "abc", "password"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateUser(tc.userName, tc.email, tc.password)
			var vErr *models.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Equal(t, tc.field, vErr.Field)
		})
	}

	require.Equal(t, 0, countUsers(t, db), "no record may persist on validation failure")
}

func TestAuthenticateUser_Success(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	created, err := svc.CreateUser("Ada", "ada@x.com", "secret1")
	require.NoError(t, err)

	// Email lookup is case-insensitive and trims whitespace.
	user, err := svc.AuthenticateUser(" ADA@X.COM ", "secret1")
	require.NoError(t, err)
	require.Equal(t, created.ID, user.ID)
	require.Empty(t, user.PasswordHash)
}

func TestAuthenticateUser_EnumerationResistance(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser("Ada", "ada@x.com", "secret1")
	require.NoError(t, err)

	_, wrongPwErr := svc.AuthenticateUser("ada@x.com", "wrong-password")
	_, noUserErr := svc.AuthenticateUser("nobody@x.com", "secret1")

	require.ErrorIs(t, wrongPwErr, models.ErrInvalidCredentials)
	require.ErrorIs(t, noUserErr, models.ErrInvalidCredentials)
	require.Equal(t, wrongPwErr.Error(), noUserErr.Error(), "both failures must be indistinguishable")
}

func TestAuthenticateUser_MissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.AuthenticateUser("", "secret1")
	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = svc.AuthenticateUser("ada@x.com", "")
	require.ErrorAs(t, err, &vErr)
}

func TestGetUserByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetUserByID("no-such-id")
	require.ErrorIs(t, err, models.ErrUserNotFound)
}
