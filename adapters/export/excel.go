package export

import (
	"github.com/xuri/excelize/v2"

	"causalbench/internal/analysis"
	"causalbench/internal/errors"
)

const trialsSheet = "Trials"

// WriteXLSX writes a grid-search report as an XLSX workbook with one
// "Trials" sheet. Scores are written as numbers so spreadsheet sorting
// and filtering work on them.
func WriteXLSX(path string, rep *analysis.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trialsSheet); err != nil {
		return errors.Wrap(err, "renaming sheet")
	}

	for col, name := range headerRow(rep) {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return errors.Wrap(err, "computing header cell")
		}
		if err := f.SetCellValue(trialsSheet, cell, name); err != nil {
			return errors.Wrap(err, "writing header cell")
		}
	}

	for rowIdx, trial := range rep.Trials {
		col := 1
		setCell := func(v interface{}) error {
			cell, err := excelize.CoordinatesToCellName(col, rowIdx+2)
			if err != nil {
				return err
			}
			col++
			return f.SetCellValue(trialsSheet, cell, v)
		}

		for _, name := range rep.ParamNames {
			if err := setCell(formatParam(trial.Params[name])); err != nil {
				return errors.Wrapf(err, "writing row %d", trial.Index)
			}
		}
		for _, name := range rep.MetricNames {
			var v interface{}
			if score, ok := trial.Score(name); ok {
				v = score
			} else {
				v = ""
			}
			if err := setCell(v); err != nil {
				return errors.Wrapf(err, "writing row %d", trial.Index)
			}
		}
		if err := setCell(trial.Error); err != nil {
			return errors.Wrapf(err, "writing row %d", trial.Index)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrap(err, "saving XLSX file")
	}
	return nil
}
