// Package stub reproduces the generated placeholder program that wrapped the
// FinancialMetricsAnalyzer project: a fixed banner, one processing
// line per converted file and a completion line.
package stub

import (
	"fmt"
	"io"
)

const (
	Banner     = "=== Python to C++ Converted Application ==="
	Completion = "Application completed successfully!"
)

// processedFiles lists the converted files in output order. Only three of the
// eight project files are named; the subset is kept exactly as generated.
var processedFiles = [...]string{
	"FinancialMetricsAnalyzer/.streamlit/config.toml",
	"FinancialMetricsAnalyzer/app.py",
	"FinancialMetricsAnalyzer/components/calculator.py",
}

// omittedFiles are the project files the generator never mentions.
var omittedFiles = [...]string{
	"education.py",
	"simulator.py",
	"pyproject.toml",
	"calculations.py",
	"visualizations.py",
}

// ProcessedFiles returns a copy of the processed file list.
func ProcessedFiles() []string { return append([]string(nil), processedFiles[:]...) }

// OmittedFiles returns a copy of the omitted file list.
func OmittedFiles() []string { return append([]string(nil), omittedFiles[:]...) }

// Lines returns the full output sequence without trailing newlines.
func Lines() []string {
	out := make([]string, 0, len(processedFiles)+2)
	out = append(out, Banner)
	for _, name := range processedFiles {
		out = append(out, "Processing "+name+"...")
	}
	return append(out, Completion)
}

// Run writes the output sequence to w, one line per entry.
func Run(w io.Writer) error {
	for _, ln := range Lines() {
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
	return nil
}
