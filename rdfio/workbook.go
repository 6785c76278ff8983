package rdfio

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/kbi/rdf"
)

const opWriteWorkbook = "WriteWorkbook"

// maxSheetName is the Excel limit on sheet name length.
const maxSheetName = 31

// WorkbookHeader is the first row of every sheet.
var WorkbookHeader = []interface{}{"r", "g(r)", "R", "G(R)", "1/R"}

// WriteWorkbook stores one sheet per RDF in an .xlsx file at path.
// Columns are r and g(r) on the sampling grid followed by R, G(R) and 1/R on
// the integration grid; the latter stay empty for RDFs not yet integrated.
// Sheets are named after the labels, made unique and Excel-safe.
func WriteWorkbook(path string, xs []*rdf.RDF) error {
	if len(xs) == 0 {
		return rdfioErrorf(opWriteWorkbook, ErrNoCurves)
	}
	for i, x := range xs {
		if x == nil {
			return rdfioErrorf(opWriteWorkbook, fmt.Errorf("rdf %d: %w", i, ErrNoCurves))
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	used := make(map[string]bool, len(xs))
	for i, x := range xs {
		name := sheetName(x.Label(), i, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return rdfioErrorf(opWriteWorkbook, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return rdfioErrorf(opWriteWorkbook, err)
		}
		if err := writeSheet(f, name, x); err != nil {
			return rdfioErrorf(opWriteWorkbook, fmt.Errorf("sheet %q: %w", name, err))
		}
	}

	if err := f.SaveAs(path); err != nil {
		return rdfioErrorf(opWriteWorkbook, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, x *rdf.RDF) error {
	if err := f.SetSheetRow(sheet, "A1", &WorkbookHeader); err != nil {
		return err
	}

	r, gr := x.R(), x.GR()
	rint, kbi := x.IntegrationRadii(), x.Curve()
	for i := range r {
		row := []interface{}{r[i], gr[i]}
		if i < len(rint) {
			row = append(row, rint[i], kbi[i], 1.0/rint[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// sheetName derives a unique, valid sheet name from label.
func sheetName(label string, i int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(label))
	name = strings.Trim(name, "'")
	if name == "" {
		name = fmt.Sprintf("rdf%d", i+1)
	}
	name = truncateRunes(name, maxSheetName)

	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func truncateRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n])
}
