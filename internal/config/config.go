// Package config loads render settings from YAML or TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	mandel "github.com/marben/smooth_mandel"
	"gopkg.in/yaml.v3"
)

type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%s: unknown config format, want .yaml, .yml or .toml", path)
}

// File is the on-disk shape of the settings. Every field is required, except
// that Region may name a preset in place of both corners.
type File struct {
	Region        string      `yaml:"region" toml:"region"`
	TopLeft       *[2]float64 `yaml:"top_left" toml:"top_left"`
	BottomRight   *[2]float64 `yaml:"bottom_right" toml:"bottom_right"`
	Width         *uint32     `yaml:"width" toml:"width"`
	Height        *uint32     `yaml:"height" toml:"height"`
	MaxIterations *uint32     `yaml:"max_iterations" toml:"max_iterations"`
	EscapeRadius  *float64    `yaml:"escape_radius" toml:"escape_radius"`
}

// Settings resolves f into validated settings.
func (f File) Settings() (mandel.Settings, error) {
	var s mandel.Settings

	switch {
	case f.Region != "":
		if f.TopLeft != nil || f.BottomRight != nil {
			return s, &mandel.ConfigError{Field: "region", Reason: "mutually exclusive with top_left/bottom_right"}
		}
		r, ok := mandel.LookupRegion(f.Region)
		if !ok {
			return s, &mandel.ConfigError{
				Field:  "region",
				Reason: fmt.Sprintf("unknown region %q, known: %s", f.Region, strings.Join(mandel.RegionNames(), ", ")),
			}
		}
		s.TopLeft, s.BottomRight = r.TopLeft(), r.BottomRight()
	case f.TopLeft == nil:
		return s, missing("top_left")
	case f.BottomRight == nil:
		return s, missing("bottom_right")
	default:
		s.TopLeft = mandel.Complex{Re: f.TopLeft[0], Im: f.TopLeft[1]}
		s.BottomRight = mandel.Complex{Re: f.BottomRight[0], Im: f.BottomRight[1]}
	}

	if f.Width == nil {
		return s, missing("width")
	}
	if f.Height == nil {
		return s, missing("height")
	}
	if f.MaxIterations == nil {
		return s, missing("max_iterations")
	}
	if f.EscapeRadius == nil {
		return s, missing("escape_radius")
	}
	s.Width, s.Height = *f.Width, *f.Height
	s.MaxIterations = *f.MaxIterations
	s.EscapeRadius = *f.EscapeRadius

	if err := s.Validate(); err != nil {
		return mandel.Settings{}, err
	}
	return s, nil
}

func missing(field string) error {
	return &mandel.ConfigError{Field: field, Reason: "missing"}
}

// Parse decodes and validates settings. Unknown keys are errors.
func Parse(data []byte, format Format) (mandel.Settings, error) {
	var f File
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			if errors.Is(err, io.EOF) {
				return mandel.Settings{}, errors.New("yaml: empty document")
			}
			return mandel.Settings{}, fmt.Errorf("yaml: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return mandel.Settings{}, fmt.Errorf("toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return mandel.Settings{}, fmt.Errorf("toml: unknown keys %v", undecoded)
		}
	default:
		return mandel.Settings{}, fmt.Errorf("unsupported format %v", format)
	}
	return f.Settings()
}

// Load reads settings from a .yaml, .yml or .toml file.
func Load(path string) (mandel.Settings, error) {
	format, err := FormatOf(path)
	if err != nil {
		return mandel.Settings{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return mandel.Settings{}, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return mandel.Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Default returns the classic full-set frame: 10240×10240 pixels, 18
// iterations, escape radius 3.
func Default() mandel.Settings {
	return mandel.FullSet.Settings(1024*10, 1024*10, 18, 3.0)
}
