package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"causalbench/domain/dataset"
	"causalbench/domain/run"
	"causalbench/internal/analysis"
)

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Algorithm:   "pc",
		Dataset:     "chain",
		ParamNames:  []string{"alpha", "depth"},
		MetricNames: []string{"f1", "shd"},
		Trials: []run.Trial{
			{
				Index:  0,
				Params: map[string]interface{}{"alpha": 0.01, "depth": 2},
				Scores: map[string]float64{"f1": 0.875, "shd": 1},
			},
			{
				Index:  1,
				Params: map[string]interface{}{"alpha": 0.05, "depth": 2},
				Error:  "singular covariance",
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleReport()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "alpha,depth,f1,shd,error" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0.01,2,0.8750,1.0000," {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[2] != "0.05,2,,,singular covariance" {
		t.Errorf("row 1 = %q", lines[2])
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteCSVFile(path, sampleReport()); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}
}

func TestMarkdown(t *testing.T) {
	md := string(Markdown(sampleReport()))

	for _, want := range []string{
		"# Grid search: pc",
		"Dataset **chain**: 2 trials, 1 failed.",
		"| alpha | depth | f1 | shd | error |",
		"| 0.01 | 2 | 0.8750 | 1.0000 |  |",
		"singular covariance",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	out := string(RenderHTML(sampleReport()))
	if !strings.Contains(out, "<table>") {
		t.Errorf("expected an HTML table:\n%s", out)
	}
	if !strings.Contains(out, "Grid search: pc") {
		t.Errorf("expected the heading text:\n%s", out)
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := WriteXLSX(path, sampleReport()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Trials")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if rows[0][0] != "alpha" || rows[0][4] != "error" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][2] != "0.875" {
		t.Errorf("f1 cell = %q, want numeric 0.875", rows[1][2])
	}
	if rows[2][4] != "singular covariance" {
		t.Errorf("error cell = %q", rows[2][4])
	}
}

func TestWriteCategoricalCSV(t *testing.T) {
	table := dataset.NewCategoricalTable(
		[]string{"a", "b"},
		[][]int{{0, 1}, {1, 0}, {2, 1}},
		[]int{3, 2},
	)

	var buf bytes.Buffer
	if err := WriteCategoricalCSV(&buf, table); err != nil {
		t.Fatalf("WriteCategoricalCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{"a,b", "0,1", "1,0", "2,1"}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}
