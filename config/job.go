package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidJob is wrapped by every validation failure.
var ErrInvalidJob = errors.New("config: invalid job")

// Correction names a finite-size correction.
type Correction string

// Accepted corrections. An empty value means CorrectionNone.
const (
	CorrectionNone       Correction = "none"
	CorrectionVanDerVegt Correction = "vdv"
	CorrectionInverseN   Correction = "invn"
)

// DefaultColumns are the r and g(r) columns used when a source omits them.
var DefaultColumns = []int{0, 1}

// Job is the decoded job file.
type Job struct {
	Name  string `yaml:"name" validate:"required"`
	Pairs []Pair `yaml:"pairs" validate:"required,min=1,dive"`

	// Thermo optionally turns pair KBIs into mixture properties.
	Thermo *Thermo `yaml:"thermo" validate:"omitempty"`

	// Workers bounds parallel pair processing; 0 means one per CPU.
	Workers int `yaml:"workers" validate:"gte=0"`

	// OutputDir receives JSON records and curves.xlsx. Empty disables output.
	OutputDir string `yaml:"output_dir"`
}

// Source locates an RDF inside a whitespace-delimited table.
type Source struct {
	// Table is the file path, relative to the job file unless absolute.
	Table string `yaml:"table" validate:"required"`

	Columns []int `yaml:"columns" validate:"omitempty,len=2,dive,gte=0"`

	Particles int     `yaml:"particles" validate:"gte=0"`
	BoxLength float64 `yaml:"box_length" validate:"gte=0"`
}

// Pair is one RDF to integrate.
type Pair struct {
	Name string `yaml:"name" validate:"required"`

	Source `yaml:",inline"`

	Boundary    string `yaml:"boundary" validate:"omitempty,oneof=open closed"`
	SameSpecies *bool  `yaml:"same_species"`

	// MaxRadius truncates the grid before correction and integration.
	MaxRadius float64 `yaml:"max_radius" validate:"gte=0"`

	Correction Correction `yaml:"correction" validate:"omitempty,oneof=none vdv invn"`

	// Partner is the second system of an inverse-N correction.
	Partner *Source `yaml:"partner" validate:"omitempty"`

	Readout Readout `yaml:"readout"`
}

// Readout selects the readout window. Radius applies to open pairs,
// Lower/Upper (in 1/R) to closed ones.
type Readout struct {
	Radius *float64 `yaml:"radius" validate:"omitempty,gte=0"`
	Lower  *float64 `yaml:"lower" validate:"omitempty,gt=0"`
	Upper  *float64 `yaml:"upper" validate:"omitempty,gt=0"`
}

// Thermo maps pair KBIs onto a two- or three-component mixture.
type Thermo struct {
	// Concentrations are the number densities c1, c2[, c3].
	Concentrations []float64 `yaml:"concentrations" validate:"required,min=2,max=3,dive,gt=0"`

	// Pairs maps "11", "22", "12" (and "33", "13", "23" for three
	// components) to pair names.
	Pairs map[string]string `yaml:"pairs" validate:"required"`
}

// Keys returns the KBI indices a mixture of n components needs.
func (t *Thermo) Keys() []string {
	if len(t.Concentrations) == 3 {
		return []string{"11", "22", "33", "12", "13", "23"}
	}
	return []string{"11", "22", "12"}
}

// Load reads, resolves and validates the job file at path.
func Load(path string) (*Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var j Job
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&j); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	j.resolve(filepath.Dir(path))
	if err := j.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &j, nil
}

// resolve makes table paths absolute against dir and fills defaults.
func (j *Job) resolve(dir string) {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	for i := range j.Pairs {
		p := &j.Pairs[i]
		p.Table = abs(p.Table)
		if p.Partner != nil {
			p.Partner.Table = abs(p.Partner.Table)
		}
	}
	if j.OutputDir != "" {
		j.OutputDir = abs(j.OutputDir)
	}
}

// Validate runs the struct-tag rules and then Check.
func (j *Job) Validate() error {
	if err := validator.New().Struct(j); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	if err := j.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}
	return nil
}

func (j *Job) Pair(name string) (Pair, bool) {
	for _, p := range j.Pairs {
		if p.Name == name {
			return p, true
		}
	}
	return Pair{}, false
}

func (s Source) RColumn() int {
	if len(s.Columns) == 2 {
		return s.Columns[0]
	}
	return DefaultColumns[0]
}

func (s Source) GColumn() int {
	if len(s.Columns) == 2 {
		return s.Columns[1]
	}
	return DefaultColumns[1]
}

// EffectiveCorrection maps the empty value to CorrectionNone.
func (p Pair) EffectiveCorrection() Correction {
	if p.Correction == "" {
		return CorrectionNone
	}
	return p.Correction
}

// EffectiveBoundary returns the configured boundary, "closed" when empty.
// Corrected RDFs are always closed.
func (p Pair) EffectiveBoundary() string {
	if p.Boundary == "" || p.EffectiveCorrection() != CorrectionNone {
		return "closed"
	}
	return p.Boundary
}
