package ingest

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"causalbench/domain/dataset"
	"causalbench/internal/errors"
)

// DataReader loads a numeric dataset from a CSV or XLSX file. The
// first row holds the feature names; every other cell must parse as a
// number, with empty cells becoming NaN.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader picks the format from the file extension.
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "csv"
	if ext == ".xlsx" {
		fileType = "xlsx"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// Read loads the file into a continuous Dataset named after the file.
func (r *DataReader) Read(dataType dataset.DataType) (*dataset.Dataset, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound(r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readXLSXRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.InvalidInput("file needs a header row and at least one data row")
	}

	features := rows[0]
	data := make([][]float64, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) > len(features) {
			return nil, errors.InvalidInput(fmt.Sprintf(
				"row %d has %d cells but the header has %d columns", i+2, len(row), len(features)))
		}
		values := make([]float64, len(features))
		for j := range features {
			cell := ""
			if j < len(row) {
				cell = strings.TrimSpace(row[j])
			}
			if cell == "" {
				values[j] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d column %q is not numeric", i+2, features[j])
			}
			values[j] = v
		}
		data = append(data, values)
	}

	name := strings.TrimSuffix(filepath.Base(r.filePath), filepath.Ext(r.filePath))
	return dataset.New(name, data, features, dataType)
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing CSV file")
	}
	return rows, nil
}

func (r *DataReader) readXLSXRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "opening XLSX file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.InvalidInput("XLSX file has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "reading XLSX rows")
	}
	return rows, nil
}
