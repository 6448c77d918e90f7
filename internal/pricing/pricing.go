// Package pricing quotes a rental from a daily rate and a date range.
package pricing

import "time"

type Quote struct {
	Days    int   `json:"days"`
	Total   int64 `json:"total"`
	Deposit int64 `json:"deposit"`
}

// Calculate prices a [pickup, return] range at dailyRate whole currency
// units per day. Days is the ceiling of the range length in whole days,
// deposit is depositPercent of the total rounded up to the next whole
// unit, so it never under-collects.
//
// An invalid range (zero dates, or return not after pickup) yields the
// zero Quote. That is the "not yet a valid range" sentinel, not an error.
func Calculate(dailyRate int64, pickup, ret time.Time, depositPercent int64) Quote {
	if pickup.IsZero() || ret.IsZero() || !ret.After(pickup) {
		return Quote{}
	}

	days := int(ret.Sub(pickup) / (24 * time.Hour))
	if ret.Sub(pickup)%(24*time.Hour) != 0 {
		days++
	}

	total := int64(days) * dailyRate
	deposit := (total*depositPercent + 99) / 100

	return Quote{Days: days, Total: total, Deposit: deposit}
}
