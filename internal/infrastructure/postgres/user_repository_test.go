package postgres

import (
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pommyhq/accounts-api/internal/domain/entity"
	"github.com/pommyhq/accounts-api/internal/domain/repository"
)

func testUser() *entity.User {
	now := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	return &entity.User{
		ID:        "a81bc81b-dead-4e5d-abff-90865d1e13b1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Password:  "$2a$10$somehash",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "users_email_key"}
}

func TestUserRepository_Save(t *testing.T) {
	u := testUser()

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "inserts the row",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(u.ID, u.Name, u.Email, u.Password, u.CreatedAt, u.UpdatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "unique index trip becomes duplicate email",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(u.ID, u.Name, u.Email, u.Password, u.CreatedAt, u.UpdatedAt).
					WillReturnError(uniqueViolation())
			},
			wantErr: repository.ErrDuplicateEmail,
		},
		{
			name: "other errors pass through raw",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO users`).
					WithArgs(u.ID, u.Name, u.Email, u.Password, u.CreatedAt, u.UpdatedAt).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			tt.setupMock(mock)

			repo := NewUserRepository(mock)
			err = repo.Save(u)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, repository.ErrDuplicateEmail) {
					assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindByID(t *testing.T) {
	u := testUser()
	cols := []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

	t.Run("returns the user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
			WithArgs(u.ID).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(u.ID, u.Name, u.Email, u.Password, u.CreatedAt, u.UpdatedAt))

		repo := NewUserRepository(mock)
		got, err := repo.FindByID(u.ID)
		require.NoError(t, err)
		assert.Equal(t, u, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
			WithArgs(u.ID).
			WillReturnError(pgx.ErrNoRows)

		repo := NewUserRepository(mock)
		_, err = repo.FindByID(u.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	u := testUser()
	cols := []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}

	t.Run("returns the user", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
			WithArgs(u.Email).
			WillReturnRows(pgxmock.NewRows(cols).
				AddRow(u.ID, u.Name, u.Email, u.Password, u.CreatedAt, u.UpdatedAt))

		repo := NewUserRepository(mock)
		got, err := repo.FindByEmail(u.Email)
		require.NoError(t, err)
		assert.Equal(t, u, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent email maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(`SELECT id, name, email, password_hash, created_at, updated_at`).
			WithArgs(u.Email).
			WillReturnError(pgx.ErrNoRows)

		repo := NewUserRepository(mock)
		_, err = repo.FindByEmail(u.Email)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("updates and bumps updated_at", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		u := testUser()
		before := u.UpdatedAt

		mock.ExpectExec(`UPDATE users`).
			WithArgs(u.Name, u.Email, u.Password, pgxmock.AnyArg(), u.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		repo := NewUserRepository(mock)
		require.NoError(t, repo.Update(u))
		assert.True(t, u.UpdatedAt.After(before))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		u := testUser()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(u.Name, u.Email, u.Password, pgxmock.AnyArg(), u.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		repo := NewUserRepository(mock)
		assert.ErrorIs(t, repo.Update(u), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique index trip becomes duplicate email", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		u := testUser()
		mock.ExpectExec(`UPDATE users`).
			WithArgs(u.Name, u.Email, u.Password, pgxmock.AnyArg(), u.ID).
			WillReturnError(uniqueViolation())

		repo := NewUserRepository(mock)
		assert.ErrorIs(t, repo.Update(u), repository.ErrDuplicateEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Delete(t *testing.T) {
	id := "a81bc81b-dead-4e5d-abff-90865d1e13b1"

	t.Run("deletes the row", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM users`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		repo := NewUserRepository(mock)
		require.NoError(t, repo.Delete(id))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to not found", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec(`DELETE FROM users`).
			WithArgs(id).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		repo := NewUserRepository(mock)
		assert.ErrorIs(t, repo.Delete(id), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
