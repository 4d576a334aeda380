// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing indexed time series
// data, along with functions for data loading, transformation and missing
// value handling.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "close")
//
//	// Load daily OHLCV price bars
//	bars, err := timeseries.LoadBarsCSV("SPY_D.csv")
//	close := bars.CloseSeries()
//
// # Basic Statistics
//
// Calculate summary statistics over the observed (non-missing) values:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//
// # Shifting and Missing Values
//
// Shift moves values along the index and marks the vacated positions
// missing; the fill operations resolve them:
//
//	shifted := series.Shift(2)   // first two positions become missing
//	shifted.FillValue(0)         // replace missing with a constant
//	shifted.FillForward()        // or carry the last observed value
//	shifted.FillBackward()       // or pull the next observed value back
//
//	shifted.Missing(0)           // query a single position
//	shifted.Float64s()           // export with NaN at missing positions
//
// # Slicing and Manipulation
//
// Work with subsets of the data:
//
//	subset := series.Slice(10, 50)
//	copy := series.Copy()
package timeseries
