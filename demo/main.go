// Package main demonstrates the Super Smoother Filter on daily price data.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/quantfell/gosmooth/ssf"
	"github.com/quantfell/gosmooth/stats"
	"github.com/quantfell/gosmooth/timeseries"
)

func main() {
	dataPath := flag.String("data", "testdata/SPY_D.csv", "daily OHLCV bars CSV")
	length := flag.Int("length", 20, "filter length")
	flag.Parse()

	bars, err := timeseries.LoadBarsCSV(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load bars: %v\n", err)
		os.Exit(1)
	}
	close := bars.CloseSeries()
	fmt.Printf("Loaded %d bars from %s (close %.2f .. %.2f)\n\n",
		bars.Len(), *dataPath, close.Min(), close.Max())

	cfg := ssf.DefaultConfig()
	cfg.Length = *length
	standard := ssf.SSF(close, cfg)
	if standard == nil {
		fmt.Fprintf(os.Stderr, "series too short for length %d\n", *length)
		os.Exit(1)
	}

	cfg.Everget = true
	cfg.Pi = math.Pi
	cfg.Sqrt2 = math.Sqrt2
	everget := ssf.SSF(close, cfg)

	fmt.Printf("%-12s %10s %10s %10s\n", "date", close.Name, standard.Name, everget.Name)
	show := func(i int) {
		fmt.Printf("%-12s %10.2f %10.2f %10.2f\n",
			close.Timestamps[i].Format("2006-01-02"),
			close.Values[i], standard.Values[i], everget.Values[i])
	}
	for i := 0; i < 3 && i < close.Len(); i++ {
		show(i)
	}
	fmt.Println("...")
	for i := close.Len() - 3; i < close.Len(); i++ {
		if i >= 3 {
			show(i)
		}
	}

	fmt.Printf("\nVariant correlation: %.6f\n", stats.Correlation(standard, everget))
	fmt.Printf("Variant RMSE:        %.4f\n", stats.RMSE(standard.Values, everget.Values))
	fmt.Printf("Raw close std:       %.4f\n", close.Diff().Std())
	fmt.Printf("Smoothed std:        %.4f\n", standard.Diff().Std())
}
