package config

import (
	"fmt"
)

// Check enforces the rules that span several fields. It assumes the
// struct-tag rules already hold.
func (j *Job) Check() error {
	seen := make(map[string]bool, len(j.Pairs))
	for _, p := range j.Pairs {
		if seen[p.Name] {
			return fmt.Errorf("pair %q is defined twice", p.Name)
		}
		seen[p.Name] = true

		if err := p.check(); err != nil {
			return fmt.Errorf("pair %q: %w", p.Name, err)
		}
	}

	if j.Thermo != nil {
		if err := j.Thermo.check(seen); err != nil {
			return fmt.Errorf("thermo: %w", err)
		}
	}
	return nil
}

func (p Pair) check() error {
	corr := p.EffectiveCorrection()
	if corr != CorrectionNone && p.Boundary == "open" {
		return fmt.Errorf("correction %q yields a closed rdf, boundary must not be open", corr)
	}

	switch corr {
	case CorrectionInverseN:
		if p.Partner == nil {
			return fmt.Errorf("correction invn needs a partner")
		}
		if p.Particles == 0 || p.Partner.Particles == 0 {
			return fmt.Errorf("correction invn needs particles on the pair and its partner")
		}
		if p.Particles == p.Partner.Particles {
			return fmt.Errorf("correction invn needs different particle counts, both are %d", p.Particles)
		}
	case CorrectionVanDerVegt:
		if p.Particles == 0 || p.BoxLength == 0 || p.SameSpecies == nil {
			return fmt.Errorf("correction vdv needs particles, box_length and same_species")
		}
	}
	if corr != CorrectionInverseN && p.Partner != nil {
		return fmt.Errorf("partner is only used by correction invn")
	}

	ro := p.Readout
	switch p.EffectiveBoundary() {
	case "open":
		if ro.Lower != nil || ro.Upper != nil {
			return fmt.Errorf("open readout takes radius, not lower/upper")
		}
		if ro.Radius != nil && p.MaxRadius > 0 && *ro.Radius > p.MaxRadius {
			return fmt.Errorf("readout radius %v beyond max_radius %v", *ro.Radius, p.MaxRadius)
		}
	case "closed":
		if ro.Radius != nil {
			return fmt.Errorf("closed readout takes lower/upper, not radius")
		}
		if ro.Upper == nil {
			return fmt.Errorf("closed readout needs upper")
		}
		if ro.Lower != nil && *ro.Lower >= *ro.Upper {
			return fmt.Errorf("readout lower %v must be below upper %v", *ro.Lower, *ro.Upper)
		}
	}
	return nil
}

func (t *Thermo) check(pairs map[string]bool) error {
	keys := t.Keys()
	if len(t.Pairs) != len(keys) {
		return fmt.Errorf("%d components need %d pairs %v, got %d", len(t.Concentrations), len(keys), keys, len(t.Pairs))
	}
	for _, k := range keys {
		name, ok := t.Pairs[k]
		if !ok {
			return fmt.Errorf("missing pair for G%s", k)
		}
		if !pairs[name] {
			return fmt.Errorf("G%s refers to unknown pair %q", k, name)
		}
	}
	return nil
}
