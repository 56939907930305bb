package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"fitstack.dev/api/api/workout"
	database "fitstack.dev/api/db"
	"fitstack.dev/api/utils/testutils"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStreak(t *testing.T) {
	t.Run("CacheMissComputesAndCaches", func(t *testing.T) {
		mr := testutils.SetupTestRedis(t)
		mockDB, mock := testutils.SetupMockDB(t)

		service := &StatsService{
			WorkoutService: &workout.WorkoutService{DB: mockDB},
		}

		now := time.Now().UTC()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT DISTINCT date_trunc`).
			WillReturnRows(sqlmock.NewRows([]string{"day"}).
				AddRow(today).
				AddRow(today.AddDate(0, 0, -1)))

		streak, err := service.GetStreak(context.Background(), "user-id")
		require.NoError(t, err)
		assert.Equal(t, 2, streak.Current)
		assert.Equal(t, 2, streak.Longest)
		assert.NoError(t, mock.ExpectationsWereMet())

		assert.True(t, mr.Exists(fmt.Sprintf(streakCacheKey, "user-id")))
	})

	t.Run("CacheHitSkipsDB", func(t *testing.T) {
		testutils.SetupTestRedis(t)

		cached := Streak{Current: 4, Longest: 9}
		payload, err := json.Marshal(cached)
		require.NoError(t, err)
		require.NoError(t, database.RDB.Client.Set(context.Background(),
			fmt.Sprintf(streakCacheKey, "user-id"), payload, 0).Err())

		// No DB wired at all, a query would panic.
		service := &StatsService{}

		streak, err := service.GetStreak(context.Background(), "user-id")
		require.NoError(t, err)
		assert.Equal(t, cached, streak)
	})

	t.Run("DroppedOnLogDelete", func(t *testing.T) {
		mr := testutils.SetupTestRedis(t)

		key := fmt.Sprintf(streakCacheKey, "user-id")
		require.NoError(t, database.RDB.Client.Set(context.Background(), key, "x", 0).Err())

		service := &StatsService{}
		service.HandleWorkoutDeleted("user-id")

		assert.False(t, mr.Exists(key))
	})

	t.Run("InvalidateDropsKey", func(t *testing.T) {
		mr := testutils.SetupTestRedis(t)

		key := fmt.Sprintf(streakCacheKey, "user-id")
		require.NoError(t, database.RDB.Client.Set(context.Background(), key, "x", 0).Err())

		service := &StatsService{}
		service.InvalidateStreak(context.Background(), "user-id")

		assert.False(t, mr.Exists(key))
	})
}
