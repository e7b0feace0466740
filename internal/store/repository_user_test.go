package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/migrations"
	"github.com/MKhiriev/go-recipe-share/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, migrations.DialectPostgres, logger.Nop()), mock
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return &userRepository{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var userRowColumns = []string{"id", "name", "email", "password", "role", "reset_token", "reset_token_expires", "created_at", "updated_at"}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := models.User{Name: "John", Email: "john@example.com", PasswordHash: "hash", Role: models.RoleViewer}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,password,role) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("John", "john@example.com", "hash", "Viewer").
		WillReturnRows(sqlmock.NewRows([]string{"id", "role", "created_at", "updated_at"}).
			AddRow(1, "Viewer", fixedNow, fixedNow))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, models.RoleViewer, created.Role)
	assert.Equal(t, "hash", created.PasswordHash)
	assert.Equal(t, fixedNow, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_Errors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "duplicate email", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrEmailAlreadyExists},
		{name: "unknown role", dbErr: pgError(pgerrcode.CheckViolation), wantErr: ErrConstraintViolation},
		{name: "network error", dbErr: errors.New("db network error"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.dbErr)

			_, err := repo.CreateUser(context.Background(), models.User{Email: "john@example.com"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password, role, reset_token, reset_token_expires, created_at, updated_at FROM users WHERE email = $1")).
		WithArgs("john@example.com").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(7, "John", "john@example.com", "hash", "Admin", nil, nil, fixedNow, fixedNow))

	found, err := repo.FindUserByEmail(context.Background(), "john@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(7), found.UserID)
	assert.Equal(t, models.RoleAdmin, found.Role)
	assert.Equal(t, "hash", found.PasswordHash)
	assert.Nil(t, found.ResetToken)
	assert.Nil(t, found.ResetTokenExpires)
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindAllUsers(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id").
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "A", "a@example.com", "h1", "Admin", nil, nil, fixedNow, fixedNow).
			AddRow(2, "B", "b@example.com", "h2", "Viewer", "tok", fixedNow.Add(time.Hour), fixedNow, fixedNow))

	users, err := repo.FindAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "a@example.com", users[0].Email)
	require.NotNil(t, users[1].ResetToken)
	assert.Equal(t, "tok", *users[1].ResetToken)
}

func TestFindAllUsers_Empty(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := repo.FindAllUsers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUpdateUserRole(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET role = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("Contributor", fixedNow, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(3, "C", "c@example.com", "h", "Contributor", nil, nil, fixedNow, fixedNow))

	user, err := repo.UpdateUserRole(context.Background(), 3, models.RoleContributor)
	require.NoError(t, err)
	assert.Equal(t, models.RoleContributor, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserRole_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUserRole(context.Background(), 3, models.RoleAdmin)
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestDeleteUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteUser(context.Background(), 5))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 6), ErrNoUserWasFound)
}

func TestSetResetToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expires := fixedNow.Add(time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET reset_token = $1, reset_token_expires = $2, updated_at = $3 WHERE id = $4")).
		WithArgs("tok", expires, fixedNow, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetResetToken(context.Background(), 1, "tok", expires))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByResetToken(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	expires := fixedNow.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE (reset_token = $1 AND reset_token_expires > $2)")).
		WithArgs("tok", fixedNow).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(1, "A", "a@example.com", "h", "Viewer", "tok", expires, fixedNow, fixedNow))

	user, err := repo.FindUserByResetToken(context.Background(), "tok", fixedNow)
	require.NoError(t, err)
	assert.True(t, user.HasActiveResetToken(fixedNow))
}

func TestFindUserByResetToken_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("FROM users WHERE").WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByResetToken(context.Background(), "tok", fixedNow)
	assert.ErrorIs(t, err, ErrResetTokenNotFound)
}

func TestConsumeResetToken(t *testing.T) {
	const query = "UPDATE users SET password = $1, reset_token = $2, reset_token_expires = $3, updated_at = $4 WHERE (reset_token = $5 AND reset_token_expires > $6)"

	t.Run("consumed", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(query)).
			WithArgs("new-hash", nil, nil, fixedNow, "tok", fixedNow).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.ConsumeResetToken(context.Background(), "tok", fixedNow, "new-hash"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already used or expired", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(query)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.ConsumeResetToken(context.Background(), "tok", fixedNow, "new-hash")
		assert.ErrorIs(t, err, ErrResetTokenNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(query)).WillReturnError(errors.New("boom"))

		err := repo.ConsumeResetToken(context.Background(), "tok", fixedNow, "new-hash")
		assert.ErrorIs(t, err, ErrExecutingStatement)
	})
}
