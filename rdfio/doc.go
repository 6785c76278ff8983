// Package rdfio moves RDF data in and out of files.
//
//   - ReadTable / LoadTable parse whitespace-delimited numeric columns as written
//     by MD analysis tools (gmx rdf, VMD, LAMMPS), skipping comment lines.
//   - Record is the JSON document of an evaluated RDF: grid, curve and readout.
//   - WriteWorkbook exports curves to an .xlsx workbook, one sheet per RDF.
package rdfio
