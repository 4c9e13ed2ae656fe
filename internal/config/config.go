// Package config handles terrain engine configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all engine settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Query   QueryConfig   `yaml:"query"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds height-field generation settings.
type TerrainConfig struct {
	Type         string       `yaml:"type"`          // flat, random, image or perlin
	DimX         int          `yaml:"dim_x"`         // Support points along X
	DimY         int          `yaml:"dim_y"`         // Support points along Y
	MaxDeviation float64      `yaml:"max_deviation"` // Random generator spread in world units
	Seed         int64        `yaml:"seed"`
	Heightmap    string       `yaml:"heightmap"` // Image used by the image generator
	Perlin       PerlinConfig `yaml:"perlin"`
}

// PerlinConfig holds noise generator parameters.
type PerlinConfig struct {
	Alpha     float64 `yaml:"alpha"`
	Beta      float64 `yaml:"beta"`
	Octaves   int32   `yaml:"octaves"`
	Frequency float64 `yaml:"frequency"` // Noise units per grid step
	Amplitude float64 `yaml:"amplitude"` // World units
}

// QueryConfig holds runtime query settings.
type QueryConfig struct {
	Budget     time.Duration `yaml:"budget"`      // Soft limit for a single height query
	DrawBudget time.Duration `yaml:"draw_budget"` // Soft limit for collecting visible triangles
	DrawRadius float64       `yaml:"draw_radius"`
}

// ExportConfig holds mesh and image export settings.
type ExportConfig struct {
	OutputDir   string `yaml:"output_dir"`
	ImageFormat string `yaml:"image_format"` // png or bmp
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Validation errors.
var (
	ErrInvalidDimensions = errors.New("terrain dimensions must be at least 2x2")
	ErrInvalidDeviation  = errors.New("max deviation must not be negative")
	ErrInvalidBudget     = errors.New("query budgets must not be negative")
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Type:         "flat",
			DimX:         101,
			DimY:         101,
			MaxDeviation: 3.0,
			Seed:         5489,
			Heightmap:    "images/terrain/heightmap.jpeg",
			Perlin: PerlinConfig{
				Alpha:     2.0,
				Beta:      2.0,
				Octaves:   3,
				Frequency: 0.05,
				Amplitude: 40.0,
			},
		},
		Query: QueryConfig{
			Budget:     time.Millisecond,
			DrawBudget: 16 * time.Millisecond,
			DrawRadius: 100,
		},
		Export: ExportConfig{
			OutputDir:   "export",
			ImageFormat: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the settings the engine cannot recover from.
func (c *Config) Validate() error {
	if c.Terrain.DimX < 2 || c.Terrain.DimY < 2 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Terrain.DimX, c.Terrain.DimY)
	}
	if c.Terrain.MaxDeviation < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDeviation, c.Terrain.MaxDeviation)
	}
	if c.Query.Budget < 0 || c.Query.DrawBudget < 0 {
		return ErrInvalidBudget
	}
	return nil
}
