// Package bucketing classifies policies into renewal-urgency buckets by
// time to expiry. Classification is pure and always takes "now" as a
// parameter; buckets are derived at query time, never stored on rows.
package bucketing

import (
	"time"

	"renewal-server/internal/store"
)

// Bucket is a named urgency category derived from a policy's expiry.
type Bucket string

const (
	BucketOverdue       Bucket = "Overdue"
	BucketCritical      Bucket = "Critical"
	BucketMidMonth      Bucket = "MidMonth"
	BucketUpcomingMonth Bucket = "UpcomingMonth"
	BucketNotYetDue     Bucket = "NotYetDue"
	// BucketNeedsFix holds policies whose expiry date is missing or
	// unparsable. They are excluded from every date-driven bucket rather
	// than silently dropped or treated as overdue.
	BucketNeedsFix Bucket = "NeedsFix"
	// BucketNone marks policies excluded from the actionable queue
	// entirely (Renewed, Lost, NotInterested).
	BucketNone Bucket = ""
)

// Day boundaries, inclusive. A policy expiring in exactly criticalDays
// days is still Critical.
const (
	criticalDays = 7
	midMonthDays = 15
	upcomingDays = 30
)

// ParseBucket maps the wire name to a Bucket.
func ParseBucket(s string) (Bucket, bool) {
	switch Bucket(s) {
	case BucketOverdue, BucketCritical, BucketMidMonth, BucketUpcomingMonth,
		BucketNotYetDue, BucketNeedsFix:
		return Bucket(s), true
	}
	return BucketNone, false
}

// Classify maps a policy's expiry date and status to its bucket at the
// given instant. First match wins in priority order: closed statuses fall
// out of every bucket, a missing date is NeedsFix, then the day windows
// apply.
func Classify(endDate *time.Time, status store.RenewalStatus, now time.Time) Bucket {
	if status.IsClosed() {
		return BucketNone
	}
	if endDate == nil {
		return BucketNeedsFix
	}

	days := daysUntil(now, *endDate)
	switch {
	case days < 0:
		return BucketOverdue
	case days <= criticalDays:
		return BucketCritical
	case days <= midMonthDays:
		return BucketMidMonth
	case days <= upcomingDays:
		return BucketUpcomingMonth
	default:
		return BucketNotYetDue
	}
}

// Window is the end-date predicate a bucket corresponds to, for SQL-side
// filtering. Derived from the same day constants as Classify so the two
// projections cannot drift.
type Window struct {
	EndFrom   *time.Time // inclusive
	EndTo     *time.Time // inclusive
	EndBefore *time.Time // exclusive
	NeedsFix  bool
}

// WindowFor translates a bucket into its end-date window at the given
// instant. The ok result is false for BucketNone.
func WindowFor(b Bucket, now time.Time) (Window, bool) {
	today := truncateToDate(now)
	day := func(offset int) *time.Time {
		d := today.AddDate(0, 0, offset)
		return &d
	}

	switch b {
	case BucketOverdue:
		return Window{EndBefore: &today}, true
	case BucketCritical:
		return Window{EndFrom: &today, EndTo: day(criticalDays)}, true
	case BucketMidMonth:
		return Window{EndFrom: day(criticalDays + 1), EndTo: day(midMonthDays)}, true
	case BucketUpcomingMonth:
		return Window{EndFrom: day(midMonthDays + 1), EndTo: day(upcomingDays)}, true
	case BucketNotYetDue:
		return Window{EndFrom: day(upcomingDays + 1)}, true
	case BucketNeedsFix:
		return Window{NeedsFix: true}, true
	}
	return Window{}, false
}

// daysUntil counts whole civil days from now to the expiry. A policy
// expiring later today is day 0.
func daysUntil(now, end time.Time) int {
	from := truncateToDate(now)
	to := truncateToDate(end)
	return int(to.Sub(from).Hours() / 24)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
