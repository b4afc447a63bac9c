package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/j-dobrzanski/Slitherlink/render"
)

func TestLoad_File(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "slitherhex.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Generate.Layers)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.Equal(t, 0.25, cfg.Generate.HideRatio)
	assert.Equal(t, 0.5, cfg.Generate.Coverage, "absent keys keep defaults")
	assert.Equal(t, 6.0, cfg.Render.Scale)
	assert.True(t, cfg.Render.ShowIDs)
	assert.Equal(t, render.DefaultStyle().SolutionColor, cfg.Render.SolutionColor)
}

func TestLoad_EnvFallback(t *testing.T) {
	t.Setenv(EnvPath, filepath.Join("testdata", "slitherhex.yaml"))
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Generate.Layers)

	t.Setenv(EnvPath, "")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "absent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	dir := t.TempDir()
	cases := map[string]struct {
		body string
		want error
	}{
		"layers":   {"generate: {layers: 0}", ErrInvalid},
		"coverage": {"generate: {coverage: 1.5}", ErrInvalid},
		"hide":     {"generate: {hide_ratio: -1}", ErrInvalid},
		"color":    {"render: {edge_color: grey}", render.ErrBadColor},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o600))
			_, err := Load(path)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("generate: [1, 2"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate_NamesYAMLKey(t *testing.T) {
	cfg := Default()
	cfg.Generate.Coverage = 1.5
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "generate.coverage=1.5 violates lte=1")

	cfg = Default()
	cfg.Generate.Layers = 0
	err = cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "generate.layers=0 violates gte=1")
}
