package timeseries

import (
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	// Test basic CSV loading
	csvData := `date,close
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}

	if series.Name != "close" {
		t.Errorf("Expected series name 'close', got %q", series.Name)
	}

	// Check values
	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}

	t.Logf("Loaded %d values: %v", series.Len(), series.Values)
}

func TestLoadCSVWithNAValues(t *testing.T) {
	// NA and NaN rows should be skipped, not loaded as missing
	csvData := `date,close
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	reader := strings.NewReader(csvData)
	series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations (NA values skipped), got %d", series.Len())
	}

	expected := []float64{100, 102, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	// Test loading a specific column
	csvData := `date,open,close,volume
2020-01-01,99,100,5000
2020-01-02,100,110,5100
2020-01-03,111,120,5200`

	reader := strings.NewReader(csvData)
	opts := DefaultCSVOptions()
	opts.ValueColumn = "open"

	series, err := LoadCSVFromReader(reader, opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{99, 100, 111}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVFallsBackToLastColumn(t *testing.T) {
	// Unknown value column: the last column is used
	csvData := `ds,observations
2020-01-01,7
2020-01-02,8`

	reader := strings.NewReader(csvData)
	series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 2 || series.Values[0] != 7 {
		t.Errorf("Expected fallback to last column, got %v", series.Values)
	}
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"date","close"
"2020-01-01","1000000"
"2020-01-02","1000100"
"2020-01-03","1000200"`

	reader := strings.NewReader(csvData)
	series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 3 {
		t.Errorf("Expected 3 observations, got %d", series.Len())
	}
}

func TestLoadCSVDateFormats(t *testing.T) {
	testCases := []struct {
		name    string
		csvData string
	}{
		{
			"ISO format",
			`date,close
2020-01-01,100
2020-01-02,101`,
		},
		{
			"Year only",
			`date,close
2020,100
2021,101`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reader := strings.NewReader(tc.csvData)
			series, err := LoadCSVFromReader(reader, DefaultCSVOptions())
			if err != nil {
				t.Fatalf("Failed to load CSV: %v", err)
			}

			if series.Len() != 2 {
				t.Errorf("Expected 2 observations, got %d", series.Len())
			}
		})
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if opts.ValueColumn != "close" {
		t.Errorf("Expected default value column 'close', got '%s'", opts.ValueColumn)
	}

	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Expected default date format '2006-01-02', got '%s'", opts.DateFormat)
	}

	if !opts.HasHeader {
		t.Error("Expected HasHeader to be true by default")
	}

	if opts.Delimiter != ',' {
		t.Errorf("Expected default delimiter ',', got '%c'", opts.Delimiter)
	}
}
