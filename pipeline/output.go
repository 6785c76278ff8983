package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/kbi/rdf"
	"github.com/katalvlaran/kbi/rdfio"
)

// WorkbookName is the file that receives every curve of a run.
const WorkbookName = "curves.xlsx"

// writeOutputs stores one JSON record per pair and the workbook in dir.
func writeOutputs(dir string, report *Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	files := make([]string, 0, len(report.Pairs)+1)
	curves := make([]*rdf.RDF, 0, len(report.Pairs))
	used := make(map[string]int, len(report.Pairs))
	for _, p := range report.Pairs {
		name := FileName(p.Name)
		if used[name]++; used[name] > 1 {
			name = fmt.Sprintf("%s-%d", name, used[name])
		}

		rec, err := rdfio.NewRecord(p.RDF, report.RunID)
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p.Name, err)
		}
		path, err := rdfio.SaveJSON(filepath.Join(dir, name), rec)
		if err != nil {
			return nil, fmt.Errorf("pair %q: %w", p.Name, err)
		}
		files = append(files, path)
		curves = append(curves, p.RDF)
	}

	book := filepath.Join(dir, WorkbookName)
	if err := rdfio.WriteWorkbook(book, curves); err != nil {
		return nil, err
	}
	return append(files, book), nil
}

// FileName maps a pair name to a file name: characters outside
// [A-Za-z0-9._-] become '_'.
func FileName(name string) string {
	out := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
	if out == "" {
		return "pair"
	}
	return out
}
