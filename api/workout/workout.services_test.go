package workout

import (
	"testing"
	"time"

	"fitstack.dev/api/utils/testutils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEntry() CreateSetEntry {
	return CreateSetEntry{
		ExerciseID: "2b8e1d4a-0000-0000-0000-000000000001",
		SetNumber:  1,
		Reps:       10,
		WeightKg:   60,
	}
}

func TestCreateLogValidation(t *testing.T) {
	service := &WorkoutService{}

	t.Run("NoEntries", func(t *testing.T) {
		_, err := service.CreateLog("user-id", CreateLogDTO{})
		assert.ErrorIs(t, err, ErrNoEntries)
	})

	t.Run("FuturePerformedAt", func(t *testing.T) {
		_, err := service.CreateLog("user-id", CreateLogDTO{
			PerformedAt: time.Now().Add(48 * time.Hour),
			Entries:     []CreateSetEntry{validEntry()},
		})
		assert.ErrorIs(t, err, ErrFuturePerformed)
	})

	t.Run("ZeroSetNumber", func(t *testing.T) {
		entry := validEntry()
		entry.SetNumber = 0
		_, err := service.CreateLog("user-id", CreateLogDTO{
			Entries: []CreateSetEntry{entry},
		})
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("ZeroReps", func(t *testing.T) {
		entry := validEntry()
		entry.Reps = 0
		_, err := service.CreateLog("user-id", CreateLogDTO{
			Entries: []CreateSetEntry{entry},
		})
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})
}

func TestDeleteLogInvalidatesStreak(t *testing.T) {
	mockDB, mock := testutils.SetupMockDB(t)
	service := &WorkoutService{DB: mockDB}

	var invalidatedFor string
	OnLogDeleted = func(userID string) { invalidatedFor = userID }
	t.Cleanup(func() { OnLogDeleted = nil })

	logID := "3f6a0d2c-0000-0000-0000-000000000002"
	mock.ExpectQuery(`SELECT (.+) FROM "workout_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}).AddRow(logID, "user-id"))
	mock.ExpectQuery(`SELECT (.+) FROM "set_entries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "set_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "workout_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, service.DeleteLog("user-id", logID))
	assert.Equal(t, "user-id", invalidatedFor,
		"deleting a log must drop the owner's cached streak")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLogUnknownExercise(t *testing.T) {
	mockDB, mock := testutils.SetupMockDB(t)
	service := &WorkoutService{DB: mockDB}

	mock.ExpectQuery(`SELECT count\(\*\) FROM "exercises"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := service.CreateLog("user-id", CreateLogDTO{
		Entries: []CreateSetEntry{validEntry()},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do not exist")
	assert.NoError(t, mock.ExpectationsWereMet())
}
