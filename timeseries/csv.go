package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "close")
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "close",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// dateFormats are tried in order when parsing date cells, starting with the
// format configured in CSVOptions.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
	"2006",
}

func parseDate(cell, preferred string) (time.Time, error) {
	cell = strings.TrimSpace(strings.Trim(cell, "\""))
	ts, err := time.Parse(preferred, cell)
	if err == nil {
		return ts, nil
	}
	for _, format := range dateFormats {
		ts, err = time.Parse(format, cell)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

func parseValue(cell string) (float64, bool) {
	cell = strings.TrimSpace(strings.Trim(cell, "\""))
	if cell == "" || cell == "NA" || cell == "NaN" || cell == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	valueIdx, dateIdx := -1, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			h = strings.TrimSpace(strings.Trim(h, "\""))
			switch {
			case strings.EqualFold(h, opts.ValueColumn):
				valueIdx = i
			case opts.DateColumn != "" && h == opts.DateColumn:
				dateIdx = i
			case h == "ds" || strings.EqualFold(h, "date"):
				if dateIdx == -1 {
					dateIdx = i
				}
			}
		}
		if valueIdx == -1 {
			valueIdx = len(header) - 1
		}
	} else {
		dateIdx = 0
		valueIdx = 1
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if valueIdx < 0 || valueIdx >= len(record) {
			continue
		}

		v, ok := parseValue(record[valueIdx])
		if !ok {
			continue // skip blank and non-numeric cells
		}
		values = append(values, v)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, err := parseDate(record[dateIdx], opts.DateFormat); err == nil {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, errors.New("no valid data found in CSV")
	}

	if len(timestamps) == len(values) {
		return &Series{
			Timestamps: timestamps,
			Values:     values,
			Name:       opts.ValueColumn,
		}, nil
	}

	out := New(values)
	out.Name = opts.ValueColumn
	return out, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}
