package export

import (
	"encoding/csv"
	"io"
	"os"

	"causalbench/domain/dataset"
	"causalbench/internal/errors"
)

// WriteCategoricalCSV writes a discretized table as CSV with string
// labels, one header row of feature names.
func WriteCategoricalCSV(w io.Writer, table *dataset.CategoricalTable) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.FeatureNames()); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for i := 0; i < table.NSamples(); i++ {
		row := make([]string, table.NFeatures())
		for j := range row {
			row[j] = table.Label(i, j)
		}
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "writing row %d", i)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCategoricalCSVFile writes the table to a file path.
func WriteCategoricalCSVFile(path string, table *dataset.CategoricalTable) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating file")
	}
	defer f.Close()
	return WriteCategoricalCSV(f, table)
}
