package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(now time.Time, daysAgo int) time.Time {
	return now.AddDate(0, 0, -daysAgo)
}

func TestComputeStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("NoDays", func(t *testing.T) {
		streak := ComputeStreak(nil, now)
		assert.Equal(t, 0, streak.Current)
		assert.Equal(t, 0, streak.Longest)
		assert.Nil(t, streak.LastActiveDay)
	})

	t.Run("SingleDayToday", func(t *testing.T) {
		streak := ComputeStreak([]time.Time{now}, now)
		assert.Equal(t, 1, streak.Current)
		assert.Equal(t, 1, streak.Longest)
	})

	t.Run("SingleDayLastWeek", func(t *testing.T) {
		streak := ComputeStreak([]time.Time{day(now, 7)}, now)
		assert.Equal(t, 0, streak.Current)
		assert.Equal(t, 1, streak.Longest)
	})

	t.Run("RunEndingToday", func(t *testing.T) {
		days := []time.Time{day(now, 2), now, day(now, 1)}
		streak := ComputeStreak(days, now)
		assert.Equal(t, 3, streak.Current)
		assert.Equal(t, 3, streak.Longest)
	})

	t.Run("RunEndingYesterdayStillCurrent", func(t *testing.T) {
		days := []time.Time{day(now, 1), day(now, 2), day(now, 3)}
		streak := ComputeStreak(days, now)
		assert.Equal(t, 3, streak.Current)
		assert.Equal(t, 3, streak.Longest)
	})

	t.Run("RunEndingThreeDaysAgoIsBroken", func(t *testing.T) {
		days := []time.Time{day(now, 3), day(now, 4), day(now, 5), day(now, 6)}
		streak := ComputeStreak(days, now)
		assert.Equal(t, 0, streak.Current)
		assert.Equal(t, 4, streak.Longest)
	})

	t.Run("GapAfterLeadRun", func(t *testing.T) {
		// A longer historical run must not leak into the current streak.
		days := []time.Time{
			now,
			day(now, 5), day(now, 6), day(now, 7), day(now, 8), day(now, 9),
		}
		streak := ComputeStreak(days, now)
		assert.Equal(t, 1, streak.Current)
		assert.Equal(t, 5, streak.Longest)
	})

	t.Run("DuplicateLogsSameDay", func(t *testing.T) {
		days := []time.Time{
			now, now.Add(-2 * time.Hour),
			day(now, 1), day(now, 1).Add(3 * time.Hour),
		}
		streak := ComputeStreak(days, now)
		assert.Equal(t, 2, streak.Current)
		assert.Equal(t, 2, streak.Longest)
	})

	t.Run("MidnightBoundaryNormalization", func(t *testing.T) {
		// 23:59 and 00:01 around the same midnight are adjacent calendar days.
		late := time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC)
		early := time.Date(2025, 6, 15, 0, 1, 0, 0, time.UTC)
		streak := ComputeStreak([]time.Time{late, early}, now)
		assert.Equal(t, 2, streak.Current)
		assert.Equal(t, 2, streak.Longest)
	})

	t.Run("LastActiveDay", func(t *testing.T) {
		streak := ComputeStreak([]time.Time{day(now, 1), day(now, 4)}, now)
		if assert.NotNil(t, streak.LastActiveDay) {
			assert.Equal(t, toUTCDate(day(now, 1)), *streak.LastActiveDay)
		}
	})
}
