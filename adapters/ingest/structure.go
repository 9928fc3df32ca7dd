package ingest

import (
	"encoding/csv"
	"os"
	"strings"

	"causalbench/domain/graph"
	"causalbench/internal/errors"
)

// ReadStructureCSV loads a ground-truth CPDAG from a CSV file with
// rows "from,to,type", where type is "arc" (directed from->to) or
// "edge" (undirected), and endpoints are feature names resolved
// against the given ordered feature list. A header row reading
// "from,to,type" is skipped.
func ReadStructureCSV(path string, features []string) (*graph.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening structure file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parsing structure file")
	}

	index := make(map[string]graph.NodeID, len(features))
	for i, name := range features {
		index[name] = graph.NodeID(i)
	}

	builder := graph.NewBuilder(len(features))
	for i, row := range rows {
		if i == 0 && strings.EqualFold(row[0], "from") {
			continue
		}
		from, ok := index[strings.TrimSpace(row[0])]
		if !ok {
			return nil, errors.InvalidInput("unknown feature " + row[0])
		}
		to, ok := index[strings.TrimSpace(row[1])]
		if !ok {
			return nil, errors.InvalidInput("unknown feature " + row[1])
		}
		switch strings.ToLower(strings.TrimSpace(row[2])) {
		case "arc":
			builder.AddArc(from, to)
		case "edge":
			builder.AddEdge(from, to)
		default:
			return nil, errors.InvalidInput("link type must be arc or edge, got " + row[2])
		}
	}
	return builder.Build()
}
