package export

import (
	"path/filepath"
	"reflect"
	"strconv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/isee3s/floodcontrolph/internal/project"
)

func sampleRecords() []*project.Record {
	return []*project.Record{
		{
			Title:      "Road Widening",
			Contractor: "ACME Builders Inc.",
			StartDate:  "March 2024",
			Cost:       75000000,
			Latitude:   10.0,
			Longitude:  123.0,
			Location:   "Brgy. Tagpuro, Tacloban City (10.0, 123.0)",
		},
		{
			Title:      "Slope Protection",
			Contractor: "N/A",
			StartDate:  "Unknown",
			Cost:       25000000,
			Latitude:   7.1,
			Longitude:  125.6,
			Location:   "(7.1, 125.6)",
		},
	}
}

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading rows: %v", err)
	}
	return rows
}

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "projects.xlsx")
	records := sampleRecords()

	if err := WriteExcel(records, path); err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != len(records)+1 {
		t.Fatalf("expected %d rows including header, got %d", len(records)+1, len(rows))
	}

	if !reflect.DeepEqual(rows[0], Header) {
		t.Errorf("header = %v, expected %v", rows[0], Header)
	}

	first := rows[1]
	if first[0] != "Road Widening" || first[1] != "ACME Builders Inc." || first[2] != "March 2024" {
		t.Errorf("unexpected text fields in first row: %v", first)
	}
	if first[6] != "Brgy. Tagpuro, Tacloban City (10.0, 123.0)" {
		t.Errorf("location = %q", first[6])
	}

	// Numeric cells render differently across writers; compare as numbers.
	for col, want := range map[int]float64{3: 75000000, 4: 10.0, 5: 123.0} {
		got, err := strconv.ParseFloat(first[col], 64)
		if err != nil {
			t.Fatalf("column %d is not numeric: %q", col, first[col])
		}
		if got != want {
			t.Errorf("column %d = %v, expected %v", col, got, want)
		}
	}
}

func TestWriteExcelIdempotent(t *testing.T) {
	dir := t.TempDir()
	records := sampleRecords()

	pathA := filepath.Join(dir, "a.xlsx")
	pathB := filepath.Join(dir, "b.xlsx")
	if err := WriteExcel(records, pathA); err != nil {
		t.Fatalf("first WriteExcel failed: %v", err)
	}
	if err := WriteExcel(records, pathB); err != nil {
		t.Fatalf("second WriteExcel failed: %v", err)
	}

	if !reflect.DeepEqual(readRows(t, pathA), readRows(t, pathB)) {
		t.Error("two exports of the same records produced different rows")
	}
}

func TestWriteExcelEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	if err := WriteExcel(nil, path); err != nil {
		t.Fatalf("WriteExcel failed: %v", err)
	}

	rows := readRows(t, path)
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}
	if !reflect.DeepEqual(rows[0], Header) {
		t.Errorf("header = %v, expected %v", rows[0], Header)
	}
}

func TestWriteExcelBadPath(t *testing.T) {
	// A path whose parent is a file cannot be created.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker.xlsx")
	if err := WriteExcel(sampleRecords(), blocker); err != nil {
		t.Fatalf("setup write failed: %v", err)
	}

	if err := WriteExcel(sampleRecords(), filepath.Join(blocker, "projects.xlsx")); err == nil {
		t.Error("expected error writing under a file path, got nil")
	}
}
