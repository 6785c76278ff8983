package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kbi/config"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("KBI_WORKERS", "8")
	t.Setenv("KBI_OUTPUT_DIR", "/tmp/kbi")
	t.Setenv("KBI_LOG_LEVEL", "debug")

	env, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Env{Workers: 8, OutputDir: "/tmp/kbi", LogLevel: "debug"}, env)

	j := config.Job{Workers: 2, OutputDir: "out"}
	env.Apply(&j)
	assert.Equal(t, 8, j.Workers)
	assert.Equal(t, "/tmp/kbi", j.OutputDir)
}

func TestLoadEnv_Defaults(t *testing.T) {
	for _, k := range []string{"KBI_WORKERS", "KBI_OUTPUT_DIR", "KBI_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	env, err := config.LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Env{LogLevel: "info"}, env)

	j := config.Job{Workers: 3, OutputDir: "out"}
	env.Apply(&j)
	assert.Equal(t, 3, j.Workers)
	assert.Equal(t, "out", j.OutputDir)
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv("KBI_WORKERS", "many")
	_, err := config.LoadEnv()
	assert.Error(t, err)

	t.Setenv("KBI_WORKERS", "-1")
	_, err = config.LoadEnv()
	assert.ErrorIs(t, err, config.ErrInvalidJob)
}
