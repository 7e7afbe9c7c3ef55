// Package config loads and validates the world configuration document.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"terraforge.dev/internal/terrain/gen"
)

// Normalization mode names accepted in the config document.
const (
	NormalizeChunk  = "chunk"
	NormalizeGlobal = "global"
)

// World is the on-disk world configuration.
type World struct {
	ChunkSize         int          `yaml:"chunk_size"`
	Seed              int64        `yaml:"seed"`
	SeedGradient      bool         `yaml:"seed_gradient"`
	WaterLevel        float64      `yaml:"water_level"`
	MaxChunksInMemory int          `yaml:"max_chunks_in_memory"`
	Normalize         string       `yaml:"normalize,omitempty"`
	Octaves           []OctaveSpec `yaml:"octaves,omitempty"`
}

// OctaveSpec is one (scale, weight) band of the octave table.
type OctaveSpec struct {
	Scale  float64 `yaml:"scale"`
	Weight float64 `yaml:"weight"`
}

// Load reads the configuration at path, fills defaults and validates. An
// empty path yields the defaults.
func Load(path string) (World, error) {
	cfg := defaults()
	if strings.TrimSpace(path) == "" {
		cfg.normalize()
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("world.yaml: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("world.yaml: %w", err)
	}
	return cfg, nil
}

func defaults() World {
	return World{
		ChunkSize:         512,
		Seed:              1337,
		SeedGradient:      true,
		WaterLevel:        0.4,
		MaxChunksInMemory: 100,
		Normalize:         NormalizeChunk,
	}
}

func (c *World) normalize() {
	if strings.TrimSpace(c.Normalize) == "" {
		c.Normalize = NormalizeChunk
	}
	if len(c.Octaves) == 0 {
		for _, o := range gen.DefaultOctaves() {
			c.Octaves = append(c.Octaves, OctaveSpec{Scale: o.Scale, Weight: o.Weight})
		}
	}
}

// Validate checks the configuration for values the terrain core would
// reject or silently misbehave on.
func (c World) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be > 0")
	}
	if c.WaterLevel < 0 || c.WaterLevel > 1 {
		return fmt.Errorf("water_level must be in [0,1]")
	}
	if c.MaxChunksInMemory <= 0 {
		return fmt.Errorf("max_chunks_in_memory must be > 0")
	}
	if c.Normalize != NormalizeChunk && c.Normalize != NormalizeGlobal {
		return fmt.Errorf("normalize must be %q or %q", NormalizeChunk, NormalizeGlobal)
	}
	if len(c.Octaves) == 0 {
		return fmt.Errorf("octaves must not be empty")
	}
	for i, o := range c.Octaves {
		if o.Scale <= 0 {
			return fmt.Errorf("octaves[%d] scale must be > 0", i)
		}
		if o.Weight <= 0 {
			return fmt.Errorf("octaves[%d] weight must be > 0", i)
		}
	}
	return nil
}

// GenParams translates the document into generator parameters.
func (c World) GenParams() gen.Params {
	octaves := make([]gen.Octave, 0, len(c.Octaves))
	for _, o := range c.Octaves {
		octaves = append(octaves, gen.Octave{Scale: o.Scale, Weight: o.Weight})
	}
	mode := gen.NormalizeChunk
	if c.Normalize == NormalizeGlobal {
		mode = gen.NormalizeGlobal
	}
	return gen.Params{
		ChunkSize:    c.ChunkSize,
		Seed:         c.Seed,
		SeedGradient: c.SeedGradient,
		WaterLevel:   c.WaterLevel,
		Octaves:      octaves,
		Normalize:    mode,
	}
}
