package constants

import "time"

// Streak results are cached per user and dropped whenever the user
// writes or deletes a workout log, so a short TTL only bounds staleness for
// the midnight rollover case.
const StreakCacheTTL = 15 * time.Minute

const ExerciseCatalogCacheTTL = 5 * time.Minute

// Stub subscriptions renew nothing; every paid period is a flat 30 days.
const SubscriptionPeriod = 30 * 24 * time.Hour
