package variant

import (
	"math"
	"time"
)

// oleEpochOffsetDays is the number of days between the OLE Automation date
// epoch (1899-12-30) and the Unix epoch (1970-01-01).
const oleEpochOffsetDays = 25569.0

const secondsPerDay = 24 * 60 * 60

// DateToOLE converts t to a VT_DATE value: whole days since 1899-12-30 UTC,
// fractional part is the fraction of a 24-hour day (§3, §8).
func DateToOLE(t time.Time) float64 {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return secs/secondsPerDay + oleEpochOffsetDays
}

// OLEToDate is the inverse of DateToOLE, always returning a UTC time.
func OLEToDate(vntDate float64) time.Time {
	secs := (vntDate - oleEpochOffsetDays) * secondsPerDay
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(math.Round(frac*1e9))).UTC()
}
