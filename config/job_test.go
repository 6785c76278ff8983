package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbi/config"
)

const jobYAML = `
name: water-methanol
workers: 2
output_dir: out
pairs:
  - name: O-O
    table: oo.xvg
    particles: 500
    box_length: 3.2
    same_species: true
    max_radius: 1.5
    correction: vdv
    readout:
      lower: 0.7
      upper: 1.0
  - name: M-M
    table: /data/mm.xvg
    columns: [0, 2]
    particles: 200
    correction: invn
    partner:
      table: mm_big.xvg
      particles: 1600
    readout:
      upper: 1.0
  - name: O-M
    table: om.xvg
    boundary: open
    readout:
      radius: 1.2
thermo:
  concentrations: [30.0, 10.0]
  pairs:
    "11": O-O
    "22": M-M
    "12": O-M
`

func writeJob(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeJob(t, jobYAML)
	dir := filepath.Dir(path)

	j, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "water-methanol", j.Name)
	assert.Equal(t, 2, j.Workers)
	assert.Equal(t, filepath.Join(dir, "out"), j.OutputDir)
	require.Len(t, j.Pairs, 3)

	oo := j.Pairs[0]
	assert.Equal(t, filepath.Join(dir, "oo.xvg"), oo.Table)
	assert.Equal(t, 0, oo.RColumn())
	assert.Equal(t, 1, oo.GColumn())
	assert.Equal(t, 500, oo.Particles)
	require.NotNil(t, oo.SameSpecies)
	assert.True(t, *oo.SameSpecies)
	assert.Equal(t, config.CorrectionVanDerVegt, oo.EffectiveCorrection())
	assert.Equal(t, "closed", oo.EffectiveBoundary())
	require.NotNil(t, oo.Readout.Lower)
	assert.Equal(t, 0.7, *oo.Readout.Lower)

	mm, ok := j.Pair("M-M")
	require.True(t, ok)
	assert.Equal(t, "/data/mm.xvg", mm.Table)
	assert.Equal(t, 2, mm.GColumn())
	require.NotNil(t, mm.Partner)
	assert.Equal(t, filepath.Join(dir, "mm_big.xvg"), mm.Partner.Table)

	om, _ := j.Pair("O-M")
	assert.Equal(t, config.CorrectionNone, om.EffectiveCorrection())
	assert.Equal(t, "open", om.EffectiveBoundary())

	require.NotNil(t, j.Thermo)
	assert.Equal(t, []string{"11", "22", "12"}, j.Thermo.Keys())

	_, ok = j.Pair("missing")
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeJob(t, "name: x\npairs: [\n"))
	assert.Error(t, err)

	_, err = config.Load(writeJob(t, "name: x\nunknown_key: 1\npairs:\n  - name: a\n    table: a\n    readout: {upper: 1}\n"))
	assert.Error(t, err)
}

func TestValidate_Tags(t *testing.T) {
	_, err := config.Load(writeJob(t, `
name: bad
pairs:
  - name: a
    table: a.xvg
    boundary: sideways
`))
	require.ErrorIs(t, err, config.ErrInvalidJob)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Boundary", verrs[0].Field())

	_, err = config.Load(writeJob(t, "name: empty\npairs: []\n"))
	assert.ErrorIs(t, err, config.ErrInvalidJob)
}

func ptr(v float64) *float64 { return &v }

func TestCheck(t *testing.T) {
	yes := true
	closed := config.Readout{Upper: ptr(1)}

	tests := []struct {
		name string
		job  config.Job
		msg  string
	}{
		{
			name: "duplicate names",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t"}, Readout: closed},
				{Name: "a", Source: config.Source{Table: "t"}, Readout: closed},
			}},
			msg: "defined twice",
		},
		{
			name: "open with bounds",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t"}, Boundary: "open", Readout: closed},
			}},
			msg: "open readout takes radius",
		},
		{
			name: "closed without upper",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t"}},
			}},
			msg: "closed readout needs upper",
		},
		{
			name: "closed with radius",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t"}, Readout: config.Readout{Radius: ptr(1), Upper: ptr(1)}},
			}},
			msg: "not radius",
		},
		{
			name: "inverted window",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t"}, Readout: config.Readout{Lower: ptr(2), Upper: ptr(1)}},
			}},
			msg: "must be below upper",
		},
		{
			name: "corrected open",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t", Particles: 1, BoxLength: 1}, SameSpecies: &yes,
					Boundary: "open", Correction: config.CorrectionVanDerVegt, Readout: closed},
			}},
			msg: "yields a closed rdf",
		},
		{
			name: "vdv without box",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t", Particles: 1}, SameSpecies: &yes,
					Correction: config.CorrectionVanDerVegt, Readout: closed},
			}},
			msg: "needs particles, box_length and same_species",
		},
		{
			name: "invn without partner",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t", Particles: 1},
					Correction: config.CorrectionInverseN, Readout: closed},
			}},
			msg: "needs a partner",
		},
		{
			name: "invn equal sizes",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t", Particles: 10},
					Partner:    &config.Source{Table: "u", Particles: 10},
					Correction: config.CorrectionInverseN, Readout: closed},
			}},
			msg: "different particle counts",
		},
		{
			name: "stray partner",
			job: config.Job{Name: "j", Pairs: []config.Pair{
				{Name: "a", Source: config.Source{Table: "t"}, Partner: &config.Source{Table: "u"}, Readout: closed},
			}},
			msg: "only used by correction invn",
		},
		{
			name: "thermo unknown pair",
			job: config.Job{Name: "j",
				Pairs: []config.Pair{{Name: "a", Source: config.Source{Table: "t"}, Readout: closed}},
				Thermo: &config.Thermo{Concentrations: []float64{1, 1},
					Pairs: map[string]string{"11": "a", "22": "a", "12": "b"}},
			},
			msg: `unknown pair "b"`,
		},
		{
			name: "thermo missing key",
			job: config.Job{Name: "j",
				Pairs: []config.Pair{{Name: "a", Source: config.Source{Table: "t"}, Readout: closed}},
				Thermo: &config.Thermo{Concentrations: []float64{1, 1, 1},
					Pairs: map[string]string{"11": "a", "22": "a", "12": "a"}},
			},
			msg: "3 components need 6 pairs",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.job.Validate()
			require.ErrorIs(t, err, config.ErrInvalidJob)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestCheck_Valid(t *testing.T) {
	j := config.Job{Name: "j", Pairs: []config.Pair{
		{Name: "a", Source: config.Source{Table: "t"}, Boundary: "open"},
		{Name: "b", Source: config.Source{Table: "t"}, Readout: config.Readout{Upper: ptr(1)}},
	}}
	assert.NoError(t, j.Validate())
}
