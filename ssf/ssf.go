// Package ssf implements Ehler's Super Smoother Filter.
package ssf

import (
	"fmt"
	"math"
	"time"

	"github.com/quantfell/gosmooth/timeseries"
)

// Ehler's truncated constants. Both can be overridden through Config for
// more precision, e.g. math.Pi and math.Sqrt2 for Everget's TradingView
// formulation.
const (
	DefaultLength = 20
	DefaultPi     = 3.14159
	DefaultSqrt2  = 1.414
)

// FillMethod selects how missing positions introduced by an offset shift
// are resolved.
type FillMethod string

const (
	FillNone     FillMethod = ""
	FillForward  FillMethod = "forward"
	FillBackward FillMethod = "backward"
)

// Config holds the filter parameters. Invalid values are never rejected:
// non-positive Length, Pi and Sqrt2 are silently replaced by their defaults,
// matching the permissive argument handling of the original indicator.
type Config struct {
	Length     int        // recursion window controlling the cutoff
	Everget    bool       // use Everget's radians-argument formulation
	Pi         float64    // substitute for pi in the coefficient derivation
	Sqrt2      float64    // substitute for sqrt(2)
	Offset     int        // post-hoc shift of the output along its index
	FillValue  *float64   // optional constant fill for missing positions
	FillMethod FillMethod // optional directional fill, applied after FillValue
}

// DefaultConfig returns the standard two-pole filter configuration.
func DefaultConfig() Config {
	return Config{
		Length: DefaultLength,
		Pi:     DefaultPi,
		Sqrt2:  DefaultSqrt2,
	}
}

// normalize applies default substitution for out-of-range parameters.
func (c Config) normalize() Config {
	if c.Length <= 0 {
		c.Length = DefaultLength
	}
	if c.Pi <= 0 {
		c.Pi = DefaultPi
	}
	if c.Sqrt2 <= 0 {
		c.Sqrt2 = DefaultSqrt2
	}
	return c
}

// standard computes the two-pole recurrence with the degrees-style cosine
// argument (the literal constant 180).
//
// http://traders.com/documentation/feedbk_docs/2014/01/traderstips.html
func standard(x []float64, n int, pi, sqrt2 float64) []float64 {
	result := make([]float64, len(x))
	copy(result, x)

	ratio := sqrt2 / float64(n)
	a := math.Exp(-pi * ratio)
	b := 2 * a * math.Cos(180*ratio)
	c := a*a - b + 1

	for i := 2; i < len(x); i++ {
		result[i] = 0.5*c*(x[i]+x[i-1]) + b*result[i-1] - a*a*result[i-2]
	}
	return result
}

// everget computes the two-pole recurrence with the radians cosine argument,
// Everget's TradingView formulation.
//
// https://www.tradingview.com/script/VdJy0yBJ-Ehlers-Super-Smoother-Filter/
func everget(x []float64, n int, pi, sqrt2 float64) []float64 {
	result := make([]float64, len(x))
	copy(result, x)

	arg := pi * sqrt2 / float64(n)
	a := math.Exp(-arg)
	b := 2 * a * math.Cos(arg)

	for i := 2; i < len(x); i++ {
		result[i] = 0.5*(a*a-b+1)*(x[i]+x[i-1]) + b*result[i-1] - a*a*result[i-2]
	}
	return result
}

// New applies the filter to close with the default configuration.
func New(close *timeseries.Series) *timeseries.Series {
	return SSF(close, DefaultConfig())
}

// SSF applies Ehler's Super Smoother Filter to the close series and returns
// a new series aligned to the same timestamps. The first two output values
// are the unfiltered seeds; every later value follows the two-pole
// recurrence selected by cfg.Everget.
//
// The result is nil when close is nil or shorter than the configured length;
// no partial output is produced. Degenerate constants (NaN, Inf) are not
// guarded and propagate through the recurrence.
func SSF(close *timeseries.Series, cfg Config) *timeseries.Series {
	cfg = cfg.normalize()

	if close == nil || close.Len() < cfg.Length {
		return nil
	}

	var raw []float64
	if cfg.Everget {
		raw = everget(close.Values, cfg.Length, cfg.Pi, cfg.Sqrt2)
	} else {
		raw = standard(close.Values, cfg.Length, cfg.Pi, cfg.Sqrt2)
	}

	timestamps := make([]time.Time, len(close.Timestamps))
	copy(timestamps, close.Timestamps)
	out, err := timeseries.NewWithTimestamps(timestamps, raw)
	if err != nil {
		return nil
	}

	if cfg.Offset != 0 {
		out = out.Shift(cfg.Offset)
	}
	if cfg.FillValue != nil {
		out.FillValue(*cfg.FillValue)
	}
	switch cfg.FillMethod {
	case FillForward:
		out.FillForward()
	case FillBackward:
		out.FillBackward()
	}

	if cfg.Everget {
		out.Name = fmt.Sprintf("SSFe_%d", cfg.Length)
	} else {
		out.Name = fmt.Sprintf("SSF_%d", cfg.Length)
	}
	out.Category = "overlap"

	return out
}
