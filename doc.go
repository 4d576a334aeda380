// Package gosmooth provides Ehler's Super Smoother Filter for financial
// time series.
//
// The Super Smoother is a two-pole recursive digital low-pass filter from
// John F. Ehlers's work on applying aerospace analog filter design to market
// data. This module implements the filter with both of its published
// coefficient derivations, along with the series container and sample-data
// plumbing needed to apply it to daily price bars.
//
// # Quick Start
//
// Smooth a close series:
//
//	bars, _ := timeseries.LoadBarsCSV("SPY_D.csv")
//	smoothed := ssf.New(bars.CloseSeries())
//	fmt.Println(smoothed.Name) // "SSF_20"
//
// Configure the filter:
//
//	cfg := ssf.DefaultConfig()
//	cfg.Length = 10
//	cfg.Everget = true
//	smoothed := ssf.SSF(bars.CloseSeries(), cfg)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - ssf: the Super Smoother filter and its configuration
//   - timeseries: time series data structures, CSV loading, shift and fill
//   - stats: autocorrelation, correlation and error measures
//
// # References
//
//   - http://traders.com/documentation/feedbk_docs/2014/01/traderstips.html
//   - https://www.tradingview.com/script/VdJy0yBJ-Ehlers-Super-Smoother-Filter/
package gosmooth
