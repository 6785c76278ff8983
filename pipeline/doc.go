// Package pipeline runs a KBI job end to end.
//
// For every configured pair it loads the table, builds the RDF, optionally
// truncates and corrects it, integrates and reads out the KBI. Pairs are
// independent and run in parallel under a worker limit. The resulting
// integrals may then feed a fluctuation-theory evaluation, and the curves
// are written out as JSON records and an .xlsx workbook.
//
// The pipeline is the only layer besides the command line that logs.
package pipeline
