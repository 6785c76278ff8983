// Package fct computes fluctuation-theory properties of two- and
// three-component mixtures from Kirkwood-Buff integrals and number densities.
package fct
