// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/origami/internal/config"
	"github.com/katalvlaran/origami/spherical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	in := `
seed = 2
self_check = true

[tolerances]
consistency = 1e-5

[svg]
labels = false

[log]
logfile = "fold.log"
max_log_size = 5

[[known]]
a = 0
b = 4
angle = 90.0

[[known]]
a = 1
b = 4
angle = 180.0
`
	c, err := config.Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Seed)
	assert.True(t, c.SelfCheck)
	assert.True(t, c.Renormalize, "default kept")
	assert.Equal(t, 1e-5, c.Tol().Consistency)
	assert.Equal(t, spherical.DefaultZero, c.Tol().Zero, "default kept")
	assert.False(t, c.SVG.Labels)
	assert.Equal(t, 0.05, c.SVG.Margin)

	known, err := c.KnownCreases()
	require.NoError(t, err)
	v, ok := known.Lookup(4, 0)
	assert.True(t, ok)
	assert.Equal(t, 90.0, v)
	assert.Equal(t, 4, known.Len())

	assert.Len(t, c.FoldOptions(), 2)
	assert.Len(t, c.RenderOptions(), 3)

	w := c.Log.LogWriter()
	require.NotNil(t, w)
	assert.NoError(t, w.Close())
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":    "seed = ",
		"unknown":   "seeds = 1",
		"tolerance": "[tolerances]\nzero = -1",
		"seed":      "seed = -1",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Decode(strings.NewReader(in))
			assert.ErrorIs(t, err, config.ErrConfig)
		})
	}
}

func TestKnownCreases_Conflict(t *testing.T) {
	c := config.Default()
	c.Known = []config.KnownCrease{{A: 0, B: 1, Angle: 90}, {A: 1, B: 0, Angle: 100}}
	_, err := c.KnownCreases()
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "origami.toml")
	require.NoError(t, os.WriteFile(path, []byte("renormalize = false\n"), 0o644))
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.False(t, c.Renormalize)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	assert.Nil(t, config.Default().Log.LogWriter())
}
