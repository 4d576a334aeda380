// Package stats provides correlation and error measures for time series.
package stats

import (
	"github.com/quantfell/gosmooth/timeseries"
)

// ACF calculates the Autocorrelation Function for the given series.
// Returns ACF values for lags 0 to maxLag, or nil when the series has
// missing positions, is constant, or maxLag is negative. Fill the series
// before analysing it.
func ACF(series *timeseries.Series, maxLag int) []float64 {
	if series == nil || series.MissingCount() > 0 {
		return nil
	}

	n := series.Len()
	if maxLag >= n {
		maxLag = n - 1
	}
	if maxLag < 0 {
		return nil
	}

	mean := series.Mean()
	variance := 0.0
	for _, v := range series.Values {
		diff := v - mean
		variance += diff * diff
	}

	if variance == 0 {
		return nil
	}

	acf := make([]float64, maxLag+1)
	for k := 0; k <= maxLag; k++ {
		sum := 0.0
		for i := k; i < n; i++ {
			sum += (series.Values[i] - mean) * (series.Values[i-k] - mean)
		}
		acf[k] = sum / variance
	}

	return acf
}
