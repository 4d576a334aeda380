package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/quantfell/gosmooth/timeseries"
)

// Correlation returns the Pearson correlation between two series of equal
// length, or NaN when the inputs are unusable.
func Correlation(a, b *timeseries.Series) float64 {
	if a == nil || b == nil || a.Len() != b.Len() || a.Len() < 2 {
		return math.NaN()
	}
	return stat.Correlation(a.Values, b.Values, nil)
}

// RMSE returns the root mean squared error between two equal-length slices.
func RMSE(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.NaN()
	}
	diff := make([]float64, len(a))
	copy(diff, a)
	floats.Sub(diff, b)
	return math.Sqrt(floats.Dot(diff, diff) / float64(len(a)))
}

// MAE returns the mean absolute error between two equal-length slices.
func MAE(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum / float64(len(a))
}
