package export

import (
	"encoding/csv"
	"io"
	"os"

	"causalbench/internal/analysis"
	"causalbench/internal/errors"
)

// WriteCSV writes a grid-search report as CSV: one row per trial, one
// column per parameter, one per metric, and an error column.
func WriteCSV(w io.Writer, rep *analysis.Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(headerRow(rep)); err != nil {
		return errors.Wrap(err, "writing CSV header")
	}
	for _, trial := range rep.Trials {
		if err := writer.Write(trialRow(rep, trial)); err != nil {
			return errors.Wrapf(err, "writing CSV row %d", trial.Index)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCSVFile writes the report to a file path.
func WriteCSVFile(path string, rep *analysis.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating CSV file")
	}
	defer f.Close()
	return WriteCSV(f, rep)
}
