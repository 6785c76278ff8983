package rdfio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/kbi/rdf"
)

const (
	opNewRecord  = "NewRecord"
	opSaveJSON   = "SaveJSON"
	opReadRecord = "ReadRecord"
)

// OpenFields are the readout fields of an open-boundary record.
type OpenFields struct {
	RintValue float64 `json:"rint_value"`
	Index     int     `json:"index"`
}

// ClosedFields are the readout fields of a closed-boundary record.
type ClosedFields struct {
	Slope             float64    `json:"slope"`
	RValue            float64    `json:"r_value"`
	PValue            float64    `json:"p_value"`
	StdError          float64    `json:"std_error"`
	InterceptStdError float64    `json:"intercept_std_error"`
	IndexLimit        [2]int     `json:"index_limit"`
	ValueLimit        [2]float64 `json:"value_limit"`
}

// Record is the persisted form of an evaluated RDF. Exactly one of
// OpenFields and ClosedFields is set; their fields are inlined in the JSON.
type Record struct {
	RunID    uuid.UUID `json:"run_id"`
	Label    string    `json:"label,omitempty"`
	Boundary string    `json:"boundary"`
	G        float64   `json:"G"`

	*OpenFields
	*ClosedFields

	R    []float64 `json:"r"`
	GR   []float64 `json:"gr"`
	Rint []float64 `json:"rint"`
	KBI  []float64 `json:"kbi"`
}

// NewRecord captures x together with its current readout.
func NewRecord(x *rdf.RDF, runID uuid.UUID) (*Record, error) {
	ro := x.Readout()
	if ro == nil {
		return nil, rdfioErrorf(opNewRecord, ErrNoReadout)
	}

	rec := &Record{
		RunID:    runID,
		Label:    x.Label(),
		Boundary: ro.Boundary().String(),
		G:        ro.KBI(),
		R:        x.R(),
		GR:       x.GR(),
		Rint:     x.IntegrationRadii(),
		KBI:      x.Curve(),
	}
	switch v := ro.(type) {
	case rdf.OpenReadout:
		rec.OpenFields = &OpenFields{RintValue: v.Radius, Index: v.Index}
	case rdf.ClosedReadout:
		rec.ClosedFields = &ClosedFields{
			Slope:             v.Slope,
			RValue:            v.RValue,
			PValue:            v.PValue,
			StdError:          v.StdError,
			InterceptStdError: v.InterceptStdError,
			IndexLimit:        v.IndexLimit,
			ValueLimit:        v.ValueLimit,
		}
	}
	return rec, nil
}

// Readout rebuilds the readout stored in the record, or nil when the record
// carries neither field set.
func (r *Record) Readout() rdf.Readout {
	switch {
	case r.OpenFields != nil:
		return rdf.OpenReadout{Value: r.G, Radius: r.RintValue, Index: r.Index}
	case r.ClosedFields != nil:
		return rdf.ClosedReadout{
			Value:             r.G,
			Slope:             r.Slope,
			RValue:            r.RValue,
			PValue:            r.PValue,
			StdError:          r.StdError,
			InterceptStdError: r.InterceptStdError,
			IndexLimit:        r.IndexLimit,
			ValueLimit:        r.ValueLimit,
		}
	default:
		return nil
	}
}

// WriteJSON encodes rec as indented JSON.
func WriteJSON(w io.Writer, rec *Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}

// SaveJSON writes rec to path, appending ".json" when the name lacks it.
// It returns the path actually written.
func SaveJSON(path string, rec *Record) (string, error) {
	if !strings.HasSuffix(path, ".json") {
		path += ".json"
	}
	f, err := os.Create(path)
	if err != nil {
		return "", rdfioErrorf(opSaveJSON, err)
	}
	if err := WriteJSON(f, rec); err != nil {
		_ = f.Close()
		return "", rdfioErrorf(opSaveJSON, err)
	}
	if err := f.Close(); err != nil {
		return "", rdfioErrorf(opSaveJSON, err)
	}
	return path, nil
}

// ReadRecord decodes a record written by WriteJSON or SaveJSON. The readout
// fields present must be exactly those of the record's boundary.
func ReadRecord(r io.Reader) (*Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, rdfioErrorf(opReadRecord, err)
	}
	b, err := rdf.ParseBoundary(rec.Boundary)
	if err != nil {
		return nil, rdfioErrorf(opReadRecord, fmt.Errorf("boundary %q: %w", rec.Boundary, err))
	}

	hasOpen, hasClosed := rec.OpenFields != nil, rec.ClosedFields != nil
	var ok bool
	switch b {
	case rdf.Open:
		ok = hasOpen && !hasClosed
	case rdf.Closed:
		ok = hasClosed && !hasOpen
	}
	if !ok {
		return nil, rdfioErrorf(opReadRecord,
			fmt.Errorf("%s record (open fields %t, closed fields %t): %w", b, hasOpen, hasClosed, ErrFieldMismatch))
	}
	return &rec, nil
}
