// landscape generates terrain and answers height queries from the command line.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/landscape/internal/config"
	"github.com/Faultbox/landscape/internal/landscape"
	"github.com/Faultbox/landscape/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	if args[0] == "help" {
		printUsage()
		return
	}

	logger.Sugar.Debugf("Config: %+v", cfg)

	l, err := landscape.New(landscape.OptionsFromConfig(cfg))
	if err != nil {
		logger.Error("failed to create landscape", zap.Error(err))
		os.Exit(1)
	}

	kind, err := landscape.ParseType(cfg.Terrain.Type)
	if err != nil {
		logger.Warn("unknown terrain type, using flat", zap.Error(err))
	}
	rep := l.Generate(kind)

	if err := run(os.Stdout, cfg, l, rep, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`landscape - procedural terrain generator and height query tool

Usage:
  landscape [flags] <command> [args]

Commands:
  info                         Show the generated terrain
  query <x> <y>                Height and normal at a world position
  profile <x0> <y0> <x1> <y1> <n>
                               Heights at n points along a segment
  export-stl [-radius r] [-cx x] [-cy y] [file]
                               Write the mesh as STL
  export-image [file]          Write the height field as png or bmp

Flags:
  -config <file>   Config file (default ./landscape.yaml)
  -type <name>     flat, random, image or perlin
  -seed <n>        Random seed
  -heightmap <f>   Height image, implies -type image
  -dimx, -dimy     Grid size
  -debug           Debug logging

Examples:
  landscape -type random -seed 7 info
  landscape -heightmap terrain.png query 40 25.5
  landscape -type perlin export-stl -radius 200 -cx 500 -cy 500 hill.stl`)
}
