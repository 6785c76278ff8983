package rdfio

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedRow indicates a data row whose column count differs from the first.
	ErrRaggedRow = errors.New("rdfio: ragged row")

	// ErrParse indicates a field that is not a number.
	ErrParse = errors.New("rdfio: cannot parse number")

	// ErrEmptyTable indicates input without data rows.
	ErrEmptyTable = errors.New("rdfio: no data rows")

	// ErrNoColumn indicates a column index outside the table.
	ErrNoColumn = errors.New("rdfio: no such column")

	// ErrNoReadout indicates an RDF without a readout; there is nothing to save.
	ErrNoReadout = errors.New("rdfio: rdf has no readout, call FindValues first")

	// ErrFieldMismatch indicates a record whose readout fields do not belong
	// to its boundary.
	ErrFieldMismatch = errors.New("rdfio: readout fields do not match boundary")

	// ErrNoCurves indicates an empty or nil input to WriteWorkbook.
	ErrNoCurves = errors.New("rdfio: no rdfs to write")
)

func rdfioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
