package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airdash/airdash/internal/logger"
	"github.com/airdash/airdash/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		logger:             logger.Nop(),
		errorClassificator: NewPostgresErrorClassifier(),
	}, mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	createdAt := time.Unix(300, 0).UTC()

	tests := []struct {
		name     string
		mockErr  error
		wantErr  error
		wantUser models.User
	}{
		{
			name:     "success",
			wantUser: models.User{UserID: 1, Login: "dashboard", PasswordHash: "$2a$10$hash", CreatedAt: createdAt},
		},
		{
			name:    "duplicate login",
			mockErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name:    "driver failure",
			mockErr: errors.New("connection reset"),
			wantErr: errors.New("unexpected DB error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewUserRepository(db, logger.Nop())

			expect := mock.ExpectQuery(regexp.QuoteMeta(createUser)).
				WithArgs("dashboard", "$2a$10$hash")
			if tt.mockErr != nil {
				expect.WillReturnError(tt.mockErr)
			} else {
				expect.WillReturnRows(
					sqlmock.NewRows([]string{"user_id", "login", "password_hash", "created_at"}).
						AddRow(tt.wantUser.UserID, tt.wantUser.Login, tt.wantUser.PasswordHash, tt.wantUser.CreatedAt))
			}

			got, err := repo.CreateUser(context.Background(), models.User{Login: "dashboard", PasswordHash: "$2a$10$hash"})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_FindUserByLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	createdAt := time.Unix(300, 0).UTC()
	mock.ExpectQuery(regexp.QuoteMeta(findUserByLogin)).
		WithArgs("dashboard").
		WillReturnRows(
			sqlmock.NewRows([]string{"user_id", "login", "password_hash", "created_at"}).
				AddRow(int64(7), "dashboard", "$2a$10$hash", createdAt))

	got, err := repo.FindUserByLogin(context.Background(), "dashboard")
	require.NoError(t, err)
	assert.Equal(t, models.User{UserID: 7, Login: "dashboard", PasswordHash: "$2a$10$hash", CreatedAt: createdAt}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByLogin_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(findUserByLogin)).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "password_hash", "created_at"}))

	_, err := repo.FindUserByLogin(context.Background(), "ghost")
	require.ErrorIs(t, err, ErrNoUserWasFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
