package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// PopulationFile is the CSV file name written inside the output directory.
const PopulationFile = "population.csv"

// Output appends generation records to population.csv. A nil *Output is a
// valid, disabled output.
type Output struct {
	path          string
	file          *os.File
	headerWritten bool
}

// NewOutput creates the output directory and CSV file. It returns nil when
// dir is empty (output disabled).
func NewOutput(dir string) (*Output, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, PopulationFile)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", PopulationFile, err)
	}
	return &Output{path: path, file: f}, nil
}

// Path returns the CSV file path, or "" for a disabled output.
func (o *Output) Path() string {
	if o == nil {
		return ""
	}
	return o.path
}

// Write appends one record, emitting the header with the first row.
func (o *Output) Write(rec Record) error {
	if o == nil {
		return nil
	}
	records := []Record{rec}
	if !o.headerWritten {
		if err := gocsv.Marshal(records, o.file); err != nil {
			return fmt.Errorf("writing population: %w", err)
		}
		o.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, o.file); err != nil {
		return fmt.Errorf("writing population: %w", err)
	}
	return nil
}

// Close closes the CSV file.
func (o *Output) Close() error {
	if o == nil || o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return err
}
