package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Bars holds daily OHLCV price bars loaded from a CSV file, one slice per
// column, all the same length.
type Bars struct {
	Dates  []time.Time
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []float64
}

// Len returns the number of bars.
func (b *Bars) Len() int {
	return len(b.Close)
}

// series builds a named series over one of the bar columns, sharing the
// dates but copying the values.
func (b *Bars) series(name string, column []float64) *Series {
	timestamps := make([]time.Time, len(b.Dates))
	copy(timestamps, b.Dates)
	values := make([]float64, len(column))
	copy(values, column)
	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       name,
	}
}

// OpenSeries returns the open column as a series named "open".
func (b *Bars) OpenSeries() *Series { return b.series("open", b.Open) }

// HighSeries returns the high column as a series named "high".
func (b *Bars) HighSeries() *Series { return b.series("high", b.High) }

// LowSeries returns the low column as a series named "low".
func (b *Bars) LowSeries() *Series { return b.series("low", b.Low) }

// CloseSeries returns the close column as a series named "close".
func (b *Bars) CloseSeries() *Series { return b.series("close", b.Close) }

// VolumeSeries returns the volume column as a series named "volume".
func (b *Bars) VolumeSeries() *Series { return b.series("volume", b.Volume) }

// LoadBarsCSV loads daily OHLCV bars from a CSV file with a header row
// containing date, open, high, low, close and volume columns.
func LoadBarsCSV(filename string) (*Bars, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadBarsCSVFromReader(file)
}

// LoadBarsCSVFromReader loads daily OHLCV bars from an io.Reader. Rows whose
// price cells do not parse as numbers are skipped.
func LoadBarsCSVFromReader(r io.Reader) (*Bars, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	cols := map[string]int{}
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.Trim(h, "\"")))] = i
	}
	for _, required := range []string{"date", "open", "high", "low", "close", "volume"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("bars CSV missing %q column", required)
		}
	}

	bars := &Bars{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		date, err := parseDate(record[cols["date"]], "2006-01-02")
		if err != nil {
			continue
		}

		row := make([]float64, 0, 5)
		ok := true
		for _, name := range []string{"open", "high", "low", "close", "volume"} {
			v, valid := parseValue(record[cols[name]])
			if !valid {
				ok = false
				break
			}
			row = append(row, v)
		}
		if !ok {
			continue
		}

		bars.Dates = append(bars.Dates, date)
		bars.Open = append(bars.Open, row[0])
		bars.High = append(bars.High, row[1])
		bars.Low = append(bars.Low, row[2])
		bars.Close = append(bars.Close, row[3])
		bars.Volume = append(bars.Volume, row[4])
	}

	if bars.Len() == 0 {
		return nil, errors.New("no valid bars found in CSV")
	}
	return bars, nil
}
