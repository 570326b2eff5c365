package bucketing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renewal-server/internal/store"
)

var now = time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

func expiry(days int) *time.Time {
	d := now.AddDate(0, 0, days)
	return &d
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		days int
		want Bucket
	}{
		{0, BucketCritical},
		{7, BucketCritical},
		{8, BucketMidMonth},
		{15, BucketMidMonth},
		{16, BucketUpcomingMonth},
		{30, BucketUpcomingMonth},
		{31, BucketNotYetDue},
		{-1, BucketOverdue},
		{-400, BucketOverdue},
		{365, BucketNotYetDue},
	}

	for _, tt := range tests {
		got := Classify(expiry(tt.days), store.RenewalStatusPending, now)
		assert.Equal(t, tt.want, got, "expiry in %d days", tt.days)
	}
}

func TestClassifyExpiringLaterTodayIsDayZero(t *testing.T) {
	// 23:59 tonight is still day 0, not overdue.
	end := time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, BucketCritical, Classify(&end, store.RenewalStatusPending, now))
}

func TestClassifyClosedStatusesExcluded(t *testing.T) {
	for _, status := range []store.RenewalStatus{
		store.RenewalStatusRenewed,
		store.RenewalStatusLost,
		store.RenewalStatusNotInterested,
	} {
		assert.Equal(t, BucketNone, Classify(expiry(-10), status, now), "status %s", status)
		assert.Equal(t, BucketNone, Classify(expiry(5), status, now), "status %s", status)
	}
}

func TestClassifyMissingDateIsNeedsFixNotOverdue(t *testing.T) {
	assert.Equal(t, BucketNeedsFix, Classify(nil, store.RenewalStatusPending, now))
	assert.Equal(t, BucketNeedsFix, Classify(nil, store.RenewalStatusInProgress, now))
}

func TestClassifyIsPure(t *testing.T) {
	end := expiry(12)
	first := Classify(end, store.RenewalStatusInProgress, now)
	second := Classify(end, store.RenewalStatusInProgress, now)
	assert.Equal(t, first, second)
	assert.Equal(t, BucketMidMonth, first)
}

func TestClassifyFiveDayPolicyIsCritical(t *testing.T) {
	// Policy PM-2025-001 from HDFC expiring in 5 days must land in the
	// 7-day bucket.
	execNow := time.Now()
	end := execNow.AddDate(0, 0, 5)
	assert.Equal(t, BucketCritical, Classify(&end, store.RenewalStatusPending, execNow))
}

func TestParseBucket(t *testing.T) {
	b, ok := ParseBucket("Critical")
	require.True(t, ok)
	assert.Equal(t, BucketCritical, b)

	_, ok = ParseBucket("critical")
	assert.False(t, ok)

	_, ok = ParseBucket("")
	assert.False(t, ok)
}

// WindowFor must agree with Classify: a policy inside a bucket's window
// classifies into that bucket, one just outside does not.
func TestWindowForAgreesWithClassify(t *testing.T) {
	buckets := []Bucket{BucketOverdue, BucketCritical, BucketMidMonth, BucketUpcomingMonth, BucketNotYetDue}

	for days := -40; days <= 60; days++ {
		end := expiry(days)
		classified := Classify(end, store.RenewalStatusPending, now)

		for _, b := range buckets {
			w, ok := WindowFor(b, now)
			require.True(t, ok)
			inWindow := true
			if w.EndFrom != nil && end.Before(*w.EndFrom) {
				inWindow = false
			}
			if w.EndTo != nil && truncate(*end).After(*w.EndTo) {
				inWindow = false
			}
			if w.EndBefore != nil && !truncate(*end).Before(*w.EndBefore) {
				inWindow = false
			}
			assert.Equal(t, classified == b, inWindow, "bucket %s, expiry in %d days", b, days)
		}
	}
}

func TestWindowForNeedsFix(t *testing.T) {
	w, ok := WindowFor(BucketNeedsFix, now)
	require.True(t, ok)
	assert.True(t, w.NeedsFix)
	assert.Nil(t, w.EndFrom)
	assert.Nil(t, w.EndTo)

	_, ok = WindowFor(BucketNone, now)
	assert.False(t, ok)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
