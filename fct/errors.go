package fct

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrBadConcentration indicates a non-positive or non-finite density.
	ErrBadConcentration = errors.New("fct: concentrations must be positive and finite")

	// ErrSingular indicates a vanishing denominator in the closed-form expressions.
	ErrSingular = errors.New("fct: singular system")
)

func fctErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// checkConcentrations validates every density.
func checkConcentrations(cs ...float64) error {
	for i, c := range cs {
		if !(c > 0) || math.IsInf(c, 0) {
			return fmt.Errorf("c%d=%v: %w", i+1, c, ErrBadConcentration)
		}
	}
	return nil
}

type denominator struct {
	name  string
	value float64
}

// checkDenominators rejects zero or non-finite denominators, in order.
func checkDenominators(ds ...denominator) error {
	for _, d := range ds {
		if d.value == 0 || math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			return fmt.Errorf("%s=%v: %w", d.name, d.value, ErrSingular)
		}
	}
	return nil
}
