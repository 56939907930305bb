package stats

import (
	"sort"
	"time"
)

type Streak struct {
	Current       int        `json:"current"`
	Longest       int        `json:"longest"`
	LastActiveDay *time.Time `json:"last_active_day,omitempty"`
}

func toUTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeStreak walks the user's distinct training days (any order,
// duplicates tolerated) and derives the current and longest run of
// consecutive calendar days. The current streak only counts when the
// most recent day is today or yesterday relative to now; an older
// streak is already broken no matter how long it was.
func ComputeStreak(days []time.Time, now time.Time) Streak {
	if len(days) == 0 {
		return Streak{}
	}

	seen := make(map[time.Time]struct{}, len(days))
	for _, d := range days {
		seen[toUTCDate(d)] = struct{}{}
	}

	sorted := make([]time.Time, 0, len(seen))
	for d := range seen {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	latest := sorted[0]
	yesterday := toUTCDate(now).AddDate(0, 0, -1)

	current := 0
	inLeadRun := !latest.Before(yesterday)
	if inLeadRun {
		current = 1
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Sub(sorted[i]) == 24*time.Hour {
			run++
			if inLeadRun {
				current = run
			}
		} else {
			run = 1
			inLeadRun = false
		}
		if run > longest {
			longest = run
		}
	}

	return Streak{
		Current:       current,
		Longest:       longest,
		LastActiveDay: &latest,
	}
}
