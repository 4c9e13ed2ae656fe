package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/landscape/internal/landscape"
)

// Exporter writes terrain files into a directory under timestamped names.
type Exporter struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewExporter creates an exporter. An empty outputDir writes to the working
// directory.
func NewExporter(outputDir, prefix string) *Exporter {
	return &Exporter{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// SetOutputDir sets the output directory.
func (e *Exporter) SetOutputDir(dir string) {
	e.outputDir = dir
}

// Filename generates an output path with the given extension without
// writing anything.
func (e *Exporter) Filename(ext string) string {
	timestamp := e.now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("%s_%s.%s", e.prefix, timestamp, ext)
	if e.outputDir != "" {
		filename = filepath.Join(e.outputDir, filename)
	}
	return filename
}

func (e *Exporter) ensureDir() error {
	if e.outputDir == "" {
		return nil
	}
	if err := os.MkdirAll(e.outputDir, 0755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	return nil
}

// ExportSTL writes tris and returns the file path.
func (e *Exporter) ExportSTL(tris []landscape.Triangle) (string, error) {
	if err := e.ensureDir(); err != nil {
		return "", err
	}
	path := e.Filename("stl")
	if err := WriteSTL(path, tris); err != nil {
		return "", err
	}
	return path, nil
}

// ExportHeightImage writes the grid as a png or bmp image and returns the
// file path.
func (e *Exporter) ExportHeightImage(g *landscape.SupportGrid, format string) (string, error) {
	if err := e.ensureDir(); err != nil {
		return "", err
	}
	path := e.Filename(format)
	if err := WriteHeightImage(path, g); err != nil {
		return "", err
	}
	return path, nil
}
