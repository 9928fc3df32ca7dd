package ingest

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"causalbench/domain/dataset"
	"causalbench/internal/errors"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDataReader_CSV(t *testing.T) {
	path := writeTempCSV(t, "sachs.csv", "raf,mek,erk\n1.5,2.0,3.25\n4.0,,6.0\n")

	ds, err := NewDataReader(path).Read(dataset.Continuous)
	require.NoError(t, err)

	assert.Equal(t, "sachs", ds.Name())
	assert.Equal(t, []string{"raf", "mek", "erk"}, ds.FeatureNames())
	assert.Equal(t, 2, ds.NSamples())
	assert.Equal(t, dataset.Continuous, ds.DataType())

	assert.Equal(t, 1.5, ds.Value(0, 0))
	assert.Equal(t, 3.25, ds.Value(0, 2))
	assert.True(t, math.IsNaN(ds.Value(1, 1)), "empty cell should load as NaN")
}

func TestDataReader_MissingFile(t *testing.T) {
	_, err := NewDataReader("/nonexistent/data.csv").Read(dataset.Continuous)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound), "err = %v", err)
}

func TestDataReader_NonNumericCell(t *testing.T) {
	path := writeTempCSV(t, "bad.csv", "a,b\n1.0,oops\n")

	_, err := NewDataReader(path).Read(dataset.Continuous)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestDataReader_HeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "empty.csv", "a,b\n")

	_, err := NewDataReader(path).Read(dataset.Continuous)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput), "err = %v", err)
}

func TestDataReader_ShortRowPadsNaN(t *testing.T) {
	path := writeTempCSV(t, "ragged.csv", "a,b,c\n1,2\n")

	ds, err := NewDataReader(path).Read(dataset.Continuous)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(ds.Value(0, 2)))
}

func TestDataReader_WideRowRejected(t *testing.T) {
	path := writeTempCSV(t, "wide.csv", "a,b\n1,2,3\n")

	_, err := NewDataReader(path).Read(dataset.Continuous)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput), "err = %v", err)
	assert.Contains(t, err.Error(), "3 cells")
}

func TestReadStructureCSV(t *testing.T) {
	path := writeTempCSV(t, "golden.csv", "from,to,type\nraf,mek,arc\nmek,erk,edge\n")

	s, err := ReadStructureCSV(path, []string{"raf", "mek", "erk"})
	require.NoError(t, err)

	assert.Equal(t, 1, s.ArcCount())
	assert.Equal(t, 1, s.EdgeCount())
	assert.True(t, s.HasArc(0, 1))
	assert.True(t, s.HasEdge(1, 2))
}

func TestReadStructureCSV_NoHeader(t *testing.T) {
	path := writeTempCSV(t, "golden.csv", "raf,mek,arc\n")

	s, err := ReadStructureCSV(path, []string{"raf", "mek"})
	require.NoError(t, err)
	assert.True(t, s.HasArc(0, 1))
}

func TestReadStructureCSV_UnknownFeature(t *testing.T) {
	path := writeTempCSV(t, "golden.csv", "raf,akt,arc\n")

	_, err := ReadStructureCSV(path, []string{"raf", "mek"})
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput), "err = %v", err)
}

func TestReadStructureCSV_BadLinkType(t *testing.T) {
	path := writeTempCSV(t, "golden.csv", "raf,mek,cycle\n")

	_, err := ReadStructureCSV(path, []string{"raf", "mek"})
	assert.True(t, errors.HasCode(err, errors.CodeInvalidInput), "err = %v", err)
}
