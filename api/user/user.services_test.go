package user

import (
	"testing"

	"fitstack.dev/api/utils/testutils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetUserByID(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		mockDB, mock := testutils.SetupMockDB(t)
		service := &UserService{DB: mockDB}

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))

		_, err := service.GetUserByID("missing-id")
		assert.ErrorIs(t, err, ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestChangePassword(t *testing.T) {
	t.Run("WrongCurrentPassword", func(t *testing.T) {
		mockDB, mock := testutils.SetupMockDB(t)
		service := &UserService{DB: mockDB}

		hashed, err := bcrypt.GenerateFromPassword([]byte("Correct123*"), bcrypt.MinCost)
		require.NoError(t, err)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password"}).
				AddRow("user-id", "test@example.com", string(hashed)))

		err = service.ChangePassword("user-id", ChangePasswordDTO{
			CurrentPassword: "Wrong123*",
			NewPassword:     "NewPass123*",
		})
		assert.ErrorIs(t, err, ErrWrongPassword)
	})
}

func TestUpdateProfileNoFields(t *testing.T) {
	mockDB, mock := testutils.SetupMockDB(t)
	service := &UserService{DB: mockDB}

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).
			AddRow("user-id", "test@example.com"))

	// An all-nil DTO is a no-op, no UPDATE is issued.
	updated, err := service.UpdateProfile("user-id", UpdateProfileDTO{})
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", updated.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}
