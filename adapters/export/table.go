package export

import (
	"fmt"
	"strconv"

	"causalbench/domain/run"
	"causalbench/internal/analysis"
)

// headerRow returns the report's column names: parameters in grid
// order, metrics in metric order, then the error column.
func headerRow(rep *analysis.Report) []string {
	header := make([]string, 0, len(rep.ParamNames)+len(rep.MetricNames)+1)
	header = append(header, rep.ParamNames...)
	header = append(header, rep.MetricNames...)
	header = append(header, "error")
	return header
}

// trialRow renders one trial in the header's column order. Missing
// scores and a missing error stay empty.
func trialRow(rep *analysis.Report, t run.Trial) []string {
	row := make([]string, 0, len(rep.ParamNames)+len(rep.MetricNames)+1)
	for _, name := range rep.ParamNames {
		row = append(row, formatParam(t.Params[name]))
	}
	for _, name := range rep.MetricNames {
		if v, ok := t.Score(name); ok {
			row = append(row, strconv.FormatFloat(v, 'f', 4, 64))
		} else {
			row = append(row, "")
		}
	}
	row = append(row, t.Error)
	return row
}

func formatParam(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
