// Package listing holds the pure equipment list logic: next-service-date
// derivation, sort modes, and the archive/status/search filters. Nothing in
// this package touches the store or mutates its inputs.
package listing

import (
	"time"

	"github.com/EduardoVisconti/AssetOps/internal/models"
)

// parseDay parses a yyyy-MM-dd string at local midnight. Empty or
// unparsable input counts as absent.
func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(models.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// NextServiceMillis derives the millisecond timestamp when the asset is
// next due for service:
//
//  1. a valid stored next service date wins,
//  2. otherwise last service date plus the service interval (default 180 days),
//  3. otherwise 0, meaning unknown; sorts last.
func NextServiceMillis(e models.Equipment) int64 {
	if t, ok := parseDay(e.NextServiceDate); ok {
		return t.UnixMilli()
	}
	if t, ok := parseDay(e.LastServiceDate); ok {
		interval := e.ServiceIntervalDays
		if interval <= 0 {
			interval = models.DefaultServiceIntervalDays
		}
		return t.AddDate(0, 0, interval).UnixMilli()
	}
	return 0
}

// NextServiceDateString derives the next service date as a yyyy-MM-dd
// string, for writes that materialize the derived value (create, update,
// add-maintenance). Empty when no date is derivable.
func NextServiceDateString(lastServiceDate string, intervalDays int) string {
	t, ok := parseDay(lastServiceDate)
	if !ok {
		return ""
	}
	if intervalDays <= 0 {
		intervalDays = models.DefaultServiceIntervalDays
	}
	return t.AddDate(0, 0, intervalDays).Format(models.DateLayout)
}
