// Package forecast turns a provider's packed daily time series into dated entries
package forecast

import (
	"math"
	"time"
)

// TimeRange is a packed series of instants: Start, Start+Step, ... up to End (exclusive)
// values are epoch seconds
type TimeRange struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
	Step  int64 `json:"step"`
}

// Valid reports whether Step is positive and End-Start is a non negative multiple of Step
func (r TimeRange) Valid() bool {
	span, ok := r.span()
	return ok && span%uint64(r.Step) == 0
}

// ExpectedCount is the number of whole steps in r, 0 for a malformed range
// and math.MaxInt when the count does not fit an int
func ExpectedCount(r TimeRange) int {
	span, ok := r.span()
	if !ok {
		return 0
	}
	if n := span / uint64(r.Step); n <= math.MaxInt {
		return int(n)
	}
	return math.MaxInt
}

// span is End-Start computed in uint64 so extreme epochs cannot wrap
func (r TimeRange) span() (uint64, bool) {
	if r.Step <= 0 || r.End < r.Start {
		return 0, false
	}
	return uint64(r.End) - uint64(r.Start), true
}

// Describer resolves a weather code to text, wmo.Catalog satisfies it
type Describer interface {
	Describe(code int) string
}

// Entry is one forecast day
// Date is a calendar date held as midnight UTC, the offset is already applied
type Entry struct {
	Date        time.Time
	Code        int
	Description string
}

// Decode pairs each step of r with codes[i] and its description
//
// The instant for step i is Start + i*Step + utcOffsetSeconds and only its
// calendar date is kept. Output order is input order. When len(codes) and the
// range disagree the result is truncated to the shorter of the two; a
// malformed range yields an empty result.
func Decode(r TimeRange, utcOffsetSeconds int64, codes []int, d Describer) []Entry {
	n := min(ExpectedCount(r), len(codes))
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		t := r.Start + int64(i)*r.Step + utcOffsetSeconds
		out = append(out, Entry{
			Date:        dateOf(t),
			Code:        codes[i],
			Description: d.Describe(codes[i]),
		})
	}
	return out
}

func dateOf(unix int64) time.Time {
	y, m, d := time.Unix(unix, 0).UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
