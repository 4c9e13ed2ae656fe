package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagType      = flag.String("type", "", "Terrain generator: flat, random, image, perlin")
	flagSeed      = flag.Int64("seed", 0, "Random seed (non-zero overrides config)")
	flagHeightmap = flag.String("heightmap", "", "Heightmap image for the image generator")
	flagDimX      = flag.Int("dimx", 0, "Support points along X")
	flagDimY      = flag.Int("dimy", 0, "Support points along Y")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagType != "" {
		cfg.Terrain.Type = *flagType
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagHeightmap != "" {
		cfg.Terrain.Heightmap = *flagHeightmap
		if *flagType == "" {
			cfg.Terrain.Type = "image"
		}
	}
	if *flagDimX > 0 {
		cfg.Terrain.DimX = *flagDimX
	}
	if *flagDimY > 0 {
		cfg.Terrain.DimY = *flagDimY
	}
}
