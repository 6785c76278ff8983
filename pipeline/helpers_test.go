package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbi/odf"
	"github.com/katalvlaran/kbi/rdfio"
)

// writeTable stores r and every g column as a table in dir.
func writeTable(t *testing.T, dir, name string, r []float64, gs ...[]float64) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, rdfio.WriteTable(f, "r g(r)", append([][]float64{r}, gs...)...))
	return path
}

// idealTable writes r = 0.1..2.0 (step 0.1) with g ≡ 1.
func idealTable(t *testing.T, dir, name string) string {
	t.Helper()
	r := odf.Linspace(0.1, 2.0, 20)
	g := make([]float64, len(r))
	for i := range g {
		g[i] = 1
	}
	return writeTable(t, dir, name, r, g)
}

// odfTable writes the oscillatory decaying function for chi = 2.
func odfTable(t *testing.T, dir, name string) string {
	t.Helper()
	r := odf.Linspace(0.01, 20, 2000)
	g, err := odf.Generate(r, 2.0, 1.0)
	require.NoError(t, err)
	return writeTable(t, dir, name, r, g)
}

func ptr(v float64) *float64 { return &v }
