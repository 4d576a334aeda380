// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"time"
)

// Series represents a time series with timestamps and values. Positions may
// be marked missing (for example after a shift); missing entries are skipped
// by the summary statistics and exported as NaN by Float64s.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
	Category   string

	missing []bool // nil when every position is observed
}

// New creates a new time series from values.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Missing reports whether the value at position i is missing.
func (s *Series) Missing(i int) bool {
	if s.missing == nil || i < 0 || i >= len(s.missing) {
		return false
	}
	return s.missing[i]
}

// SetMissing marks the value at position i as missing.
func (s *Series) SetMissing(i int) {
	if i < 0 || i >= len(s.Values) {
		return
	}
	if s.missing == nil {
		s.missing = make([]bool, len(s.Values))
	}
	s.missing[i] = true
}

// MissingCount returns the number of missing positions.
func (s *Series) MissingCount() int {
	count := 0
	for i := range s.missing {
		if s.missing[i] {
			count++
		}
	}
	return count
}

// Float64s returns a copy of the values with NaN at missing positions.
func (s *Series) Float64s() []float64 {
	out := make([]float64, len(s.Values))
	copy(out, s.Values)
	for i := range s.missing {
		if s.missing[i] {
			out[i] = math.NaN()
		}
	}
	return out
}

// observed collects the values at non-missing positions.
func (s *Series) observed() []float64 {
	if s.missing == nil {
		return s.Values
	}
	out := make([]float64, 0, len(s.Values))
	for i, v := range s.Values {
		if !s.missing[i] {
			out = append(out, v)
		}
	}
	return out
}

// Mean calculates the arithmetic mean of the observed values.
func (s *Series) Mean() float64 {
	obs := s.observed()
	if len(obs) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range obs {
		sum += v
	}
	return sum / float64(len(obs))
}

// Variance calculates the sample variance of the observed values.
func (s *Series) Variance() float64 {
	obs := s.observed()
	if len(obs) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range obs {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(obs)-1)
}

// Std calculates the standard deviation of the observed values.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Min returns the minimum observed value in the series.
func (s *Series) Min() float64 {
	obs := s.observed()
	if len(obs) == 0 {
		return math.NaN()
	}
	min := obs[0]
	for _, v := range obs[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum observed value in the series.
func (s *Series) Max() float64 {
	obs := s.observed()
	if len(obs) == 0 {
		return math.NaN()
	}
	max := obs[0]
	for _, v := range obs[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Shift returns a copy of the series with values moved k positions along the
// index: k > 0 moves values toward later positions and marks the first k
// positions missing, k < 0 moves values toward earlier positions and marks
// the last |k| positions missing. The timestamps stay in place. |k| >= Len
// yields an all-missing series.
func (s *Series) Shift(k int) *Series {
	out := s.Copy()
	if k == 0 {
		return out
	}

	n := len(s.Values)
	if out.missing == nil {
		out.missing = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		src := i - k
		if src < 0 || src >= n {
			out.Values[i] = 0
			out.missing[i] = true
			continue
		}
		out.Values[i] = s.Values[src]
		out.missing[i] = s.Missing(src)
	}

	return out
}

// FillValue replaces every missing position with v, in place.
func (s *Series) FillValue(v float64) {
	for i := range s.missing {
		if s.missing[i] {
			s.Values[i] = v
			s.missing[i] = false
		}
	}
}

// FillForward propagates the last observed value into subsequent missing
// positions, in place. Missing positions before the first observed value
// stay missing.
func (s *Series) FillForward() {
	seen := false
	last := 0.0
	for i := range s.missing {
		if !s.missing[i] {
			seen = true
			last = s.Values[i]
			continue
		}
		if seen {
			s.Values[i] = last
			s.missing[i] = false
		}
	}
}

// FillBackward propagates the next observed value into preceding missing
// positions, in place. Missing positions after the last observed value
// stay missing.
func (s *Series) FillBackward() {
	seen := false
	next := 0.0
	for i := len(s.missing) - 1; i >= 0; i-- {
		if !s.missing[i] {
			seen = true
			next = s.Values[i]
			continue
		}
		if seen {
			s.Values[i] = next
			s.missing[i] = false
		}
	}
}

// Diff calculates the first difference of the series (d=1).
func (s *Series) Diff() *Series {
	return s.DiffN(1)
}

// DiffN calculates the n-th order difference of the series. Missing
// positions are not supported; fill the series first.
func (s *Series) DiffN(n int) *Series {
	if n <= 0 || len(s.Values) <= n {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-n)
	for i := n; i < len(s.Values); i++ {
		result[i-n] = s.Values[i] - s.Values[i-n]
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) > n {
		copy(timestamps, s.Timestamps[n:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_diff",
	}
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	timestamps := make([]time.Time, len(values))
	if len(s.Timestamps) >= end {
		copy(timestamps, s.Timestamps[start:end])
	}

	out := &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
		Category:   s.Category,
	}
	if s.missing != nil {
		out.missing = make([]bool, len(values))
		copy(out.missing, s.missing[start:end])
	}
	return out
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	out := &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
		Category:   s.Category,
	}
	if s.missing != nil {
		out.missing = make([]bool, len(s.missing))
		copy(out.missing, s.missing)
	}
	return out
}
