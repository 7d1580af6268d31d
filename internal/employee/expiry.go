package employee

import "time"

// Bucket is the urgency class of a work permit expiry date.
type Bucket int

const (
	BucketNone      Bucket = 0
	BucketWeek      Bucket = 1
	BucketMonth     Bucket = 2
	BucketSixMonths Bucket = 3
	BucketExpired   Bucket = 4
)

// Windows holds the upper bounds of every bucket, computed once per request.
type Windows struct {
	Now       time.Time
	Week      time.Time
	Month     time.Time
	SixMonths time.Time
}

func NewWindows(now time.Time) Windows {
	return Windows{
		Now:       now,
		Week:      endOfDay(now.AddDate(0, 0, 7)),
		Month:     endOfDay(addMonths(now, 1)),
		SixMonths: endOfDay(addMonths(now, 6)),
	}
}

// Classify returns the bucket of an expiry date. The first matching bucket
// wins, in the order expired, week, month, six months.
func (w Windows) Classify(expiry *time.Time) Bucket {
	if expiry == nil || expiry.IsZero() {
		return BucketNone
	}

	switch at := *expiry; {
	case !at.After(w.Now):
		return BucketExpired
	case !at.After(w.Week):
		return BucketWeek
	case !at.After(w.Month):
		return BucketMonth
	case !at.After(w.SixMonths):
		return BucketSixMonths
	default:
		return BucketNone
	}
}

// Upper returns the inclusive upper bound of a positive bucket.
func (w Windows) Upper(b Bucket) (time.Time, bool) {
	switch b {
	case BucketWeek:
		return w.Week, true
	case BucketMonth:
		return w.Month, true
	case BucketSixMonths:
		return w.SixMonths, true
	default:
		return time.Time{}, false
	}
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}

// addMonths moves t by n calendar months, clamping the day to the end of
// the target month (Jan 31 + 1 month is Feb 28 or 29).
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}

	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
