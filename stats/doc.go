// Package stats provides autocorrelation, correlation and error measures
// for time series.
//
// These functions support regression comparisons between smoothed and
// reference series.
//
// # Autocorrelation
//
// Analyze autocorrelation patterns:
//
//	acf := stats.ACF(series, 20)
//	// acf[0] == 1; acf[k] is the autocorrelation at lag k
//
// A low-pass filter raises low-lag autocorrelation, so comparing
// stats.ACF(input, 1) against stats.ACF(smoothed, 1) is a quick check that
// smoothing actually happened.
//
// # Correlation and Error Measures
//
// Compare two series:
//
//	corr := stats.Correlation(smoothed, reference)
//	rmse := stats.RMSE(smoothed.Values, reference.Values)
//	mae := stats.MAE(smoothed.Values, reference.Values)
//
// Correlation is the Pearson coefficient; a threshold near 0.99 is a
// reasonable floor when regressing one smoother against another of similar
// cutoff.
package stats
