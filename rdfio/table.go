package rdfio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	opReadTable  = "ReadTable"
	opLoadTable  = "LoadTable"
	opWriteTable = "WriteTable"
	opColumn     = "Column"
)

// commentPrefixes start lines that carry no data: shell/gnuplot comments,
// xmgrace directives and LAMMPS-style remarks.
const commentPrefixes = "#@;"

// Table is a rectangular block of numbers stored column by column.
type Table struct {
	cols [][]float64
}

// ReadTable parses whitespace-delimited numeric rows from r.
// Blank lines and lines whose first non-blank character is '#', '@' or ';'
// are skipped. Every data row must have as many fields as the first one.
func ReadTable(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var cols [][]float64
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.ContainsRune(commentPrefixes, rune(text[0])) {
			continue
		}
		fields := strings.Fields(text)
		if cols == nil {
			cols = make([][]float64, len(fields))
		}
		if len(fields) != len(cols) {
			return nil, rdfioErrorf(opReadTable,
				fmt.Errorf("line %d: %d fields, want %d: %w", line, len(fields), len(cols), ErrRaggedRow))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, rdfioErrorf(opReadTable,
					fmt.Errorf("line %d field %d %q: %w", line, i+1, f, ErrParse))
			}
			cols[i] = append(cols[i], v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, rdfioErrorf(opReadTable, err)
	}
	if cols == nil {
		return nil, rdfioErrorf(opReadTable, ErrEmptyTable)
	}
	return &Table{cols: cols}, nil
}

// LoadTable reads the table stored at path.
func LoadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rdfioErrorf(opLoadTable, err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteTable writes equally long columns as whitespace-delimited rows,
// preceded by a '#' comment line holding header when it is not empty.
// The output reads back with ReadTable.
func WriteTable(w io.Writer, header string, cols ...[]float64) error {
	if len(cols) == 0 {
		return rdfioErrorf(opWriteTable, ErrEmptyTable)
	}
	n := len(cols[0])
	for i, c := range cols {
		if len(c) != n {
			return rdfioErrorf(opWriteTable,
				fmt.Errorf("column %d has %d rows, want %d: %w", i, len(c), n, ErrRaggedRow))
		}
	}

	bw := bufio.NewWriter(w)
	if header != "" {
		fmt.Fprintf(bw, "# %s\n", header)
	}
	buf := make([]byte, 0, 32)
	for row := 0; row < n; row++ {
		for i, c := range cols {
			if i > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], c[row], 'g', -1, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return rdfioErrorf(opWriteTable, err)
	}
	return nil
}

// NumColumns reports the column count.
func (t *Table) NumColumns() int { return len(t.cols) }

// NumRows reports the number of data rows.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

// Column returns a copy of column i (0-based).
func (t *Table) Column(i int) ([]float64, error) {
	if i < 0 || i >= len(t.cols) {
		return nil, rdfioErrorf(opColumn, fmt.Errorf("index %d of %d: %w", i, len(t.cols), ErrNoColumn))
	}
	return append([]float64(nil), t.cols[i]...), nil
}
