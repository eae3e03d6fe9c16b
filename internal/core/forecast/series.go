package forecast

import (
	"context"
	"math"
)

// MissingCode stands in for a null or non finite value in a code series
const MissingCode = -1

// Series is the slice of a provider response the decoder reads
// variables are positional, in the order they were requested
type Series interface {
	UTCOffsetSeconds() int64
	Daily() TimeRange
	Variable(i int) ([]float64, bool)
}

// Source fetches one Series, implementations own the transport and its query
type Source interface {
	Fetch(ctx context.Context) (Series, error)
}

// SourceFunc adapts a plain function to Source
type SourceFunc func(ctx context.Context) (Series, error)

// Fetch calls f
func (f SourceFunc) Fetch(ctx context.Context) (Series, error) { return f(ctx) }

// Codes truncates each value toward zero, NaN and infinities become MissingCode
func Codes(vals []float64) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = MissingCode
			continue
		}
		out[i] = int(v)
	}
	return out
}

// Static is an in memory Series, handy for callers that already hold decoded columns
type Static struct {
	Offset int64
	Range  TimeRange
	Vars   [][]float64
}

// UTCOffsetSeconds implements Series
func (s Static) UTCOffsetSeconds() int64 { return s.Offset }

// Daily implements Series
func (s Static) Daily() TimeRange { return s.Range }

// Variable implements Series
func (s Static) Variable(i int) ([]float64, bool) {
	if i < 0 || i >= len(s.Vars) {
		return nil, false
	}
	return s.Vars[i], true
}
