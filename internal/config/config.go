// SPDX-License-Identifier: MIT

// Package config loads the TOML settings of the origami command and turns
// them into package options.
//
//	seed = 0
//	renormalize = true
//
//	[tolerances]
//	consistency = 1e-6
//
//	[svg]
//	labels = true
//
//	[log]
//	logfile = "origami.log"
//	max_log_size = 10
//
//	[[known]]
//	a = 0
//	b = 4
//	angle = 90.0
//
// Omitted keys keep the values of Default. Unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/natefinch/lumberjack"

	"github.com/katalvlaran/origami/fold"
	"github.com/katalvlaran/origami/frame"
	"github.com/katalvlaran/origami/pattern"
	"github.com/katalvlaran/origami/render"
	"github.com/katalvlaran/origami/spherical"
	"github.com/katalvlaran/origami/vertex"
)

// ErrConfig is returned for undecodable or invalid settings.
var ErrConfig = errors.New("config: invalid configuration")

// Config is the full command configuration.
type Config struct {
	Seed        int           `toml:"seed"`
	Renormalize bool          `toml:"renormalize"`
	SelfCheck   bool          `toml:"self_check"`
	Tolerances  Tolerances    `toml:"tolerances"`
	SVG         SVGConfig     `toml:"svg"`
	Log         LogConfig     `toml:"log"`
	Known       []KnownCrease `toml:"known"`
}

// Tolerances mirrors spherical.Tolerances with TOML keys.
type Tolerances struct {
	Zero          float64 `toml:"zero"`
	TriangleSlack float64 `toml:"triangle_slack"`
	LawOfSines    float64 `toml:"law_of_sines"`
	Consistency   float64 `toml:"consistency"`
}

// SVGConfig holds render settings.
type SVGConfig struct {
	Labels bool    `toml:"labels"`
	Margin float64 `toml:"margin"`
	Stroke float64 `toml:"stroke"`
}

// LogConfig selects a rotating log file. An empty Logfile keeps stderr.
type LogConfig struct {
	Logfile string `toml:"logfile"`
	MaxSize int    `toml:"max_log_size"`
	MaxAge  int    `toml:"max_log_age"`
}

// KnownCrease fixes the dihedral angle of the crease (A, B).
type KnownCrease struct {
	A     int     `toml:"a"`
	B     int     `toml:"b"`
	Angle float64 `toml:"angle"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	t := spherical.DefaultTolerances()
	r := render.DefaultOptions()
	return &Config{
		Renormalize: true,
		Tolerances: Tolerances{
			Zero:          t.Zero,
			TriangleSlack: t.TriangleSlack,
			LawOfSines:    t.LawOfSines,
			Consistency:   t.Consistency,
		},
		SVG: SVGConfig{Labels: r.Labels, Margin: r.Margin, Stroke: r.Stroke},
	}
}

// Load reads a TOML file over Default.
func Load(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads TOML from r over Default and validates the result.
func Decode(r io.Reader) (*Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if extra := md.Undecoded(); len(extra) > 0 {
		keys := make([]string, len(extra))
		for i, k := range extra {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrConfig, strings.Join(keys, ", "))
	}
	if err = c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks ranges that the packages would otherwise reject later.
func (c *Config) Validate() error {
	if err := c.Tol().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.Seed < 0 {
		return fmt.Errorf("%w: seed %d", ErrConfig, c.Seed)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("%w: negative log limits", ErrConfig)
	}
	return nil
}

// Tol returns the configured tolerances.
func (c *Config) Tol() spherical.Tolerances {
	return spherical.Tolerances{
		Zero:          c.Tolerances.Zero,
		TriangleSlack: c.Tolerances.TriangleSlack,
		LawOfSines:    c.Tolerances.LawOfSines,
		Consistency:   c.Tolerances.Consistency,
	}
}

// KnownCreases returns the fixed angles as a crease map.
func (c *Config) KnownCreases() (*pattern.Creases, error) {
	out := pattern.NewCreases()
	out.Tol = c.Tol()
	for i, k := range c.Known {
		if err := out.Set(k.A, k.B, k.Angle); err != nil {
			return nil, fmt.Errorf("%w: known[%d]: %v", ErrConfig, i, err)
		}
	}
	return out, nil
}

// FoldOptions returns the fold options for these settings, with the
// caller's extra options appended.
func (c *Config) FoldOptions(extra ...fold.Option) []fold.Option {
	opts := []fold.Option{
		fold.WithVertexOptions(vertex.WithTolerances(c.Tol()), vertex.WithSelfCheck(c.SelfCheck)),
		fold.WithFrameOptions(frame.WithTolerances(c.Tol()), frame.WithRenormalize(c.Renormalize)),
	}
	return append(opts, extra...)
}

// RenderOptions returns the SVG options for these settings.
func (c *Config) RenderOptions() []render.Option {
	return []render.Option{
		render.WithLabels(c.SVG.Labels),
		render.WithMargin(c.SVG.Margin),
		render.WithStroke(c.SVG.Stroke),
	}
}

// LogWriter returns a rotating log file, or nil when no file is configured.
func (c *LogConfig) LogWriter() io.WriteCloser {
	if c == nil || c.Logfile == "" {
		return nil
	}
	return &lumberjack.Logger{
		Filename: c.Logfile,
		MaxSize:  c.MaxSize, // megabytes
		MaxAge:   c.MaxAge,  // days
	}
}
