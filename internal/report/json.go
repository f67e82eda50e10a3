package report

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONFormatter formats scoring results as indented JSON.
type JSONFormatter struct {
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter(outputFile string) *JSONFormatter {
	return &JSONFormatter{outputFile: outputFile}
}

// Format renders the summary as JSON to the output file or stdout.
func (f *JSONFormatter) Format(summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling summary: %w", err)
	}
	data = append(data, '\n')

	if f.outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(f.outputFile, data, 0644); err != nil {
		return fmt.Errorf("error writing JSON report: %w", err)
	}
	return nil
}
