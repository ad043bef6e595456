// Command lith turns an image into a printable lithophane.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rneatherway/lith/gen"
	"github.com/rneatherway/lith/internal/config"
	"github.com/rneatherway/lith/internal/logger"
	"github.com/rneatherway/lith/internal/raster"
)

func realMain() error {
	cfgFlags := config.RegisterFlags(flag.CommandLine)
	output := flag.String("output", "", "output .stl or .png file (default: the input with a .stl extension)")
	useGDAL := flag.Bool("gdal", false, "read the input with GDAL (GeoTIFF and other rasters)")
	visualize := flag.Bool("v", false, "open the result in the viewer")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s [OPTIONS] <input image>:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.NArg() {
	case 0:
		flag.Usage()
		return fmt.Errorf("no input file given")
	case 1:
	default:
		flag.Usage()
		return fmt.Errorf("unrecognised arguments %s", strings.Join(flag.Args()[1:], ", "))
	}
	input := flag.Arg(0)

	cfg, err := config.Load(cfgFlags)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("initialising logger: %w", err)
	}
	defer logger.Sync()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".stl"
	}
	if ext := filepath.Ext(out); ext != ".stl" && ext != ".png" {
		return fmt.Errorf("unsupported output format %q", ext)
	}

	img, err := load(input, *useGDAL)
	if err != nil {
		return err
	}
	if err := convert(img, opts, out, cfg.Output.ASCII); err != nil {
		return err
	}

	if *visualize {
		logger.Info("launching viewer", zap.String("viewer", cfg.Output.Viewer))
		return exec.Command(cfg.Output.Viewer, out).Run()
	}
	return nil
}

func load(path string, useGDAL bool) (image.Image, error) {
	if useGDAL {
		logger.Info("reading raster with GDAL", zap.String("path", path))
		return raster.LoadGDAL(path)
	}
	img, format, err := raster.Load(path)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	logger.Info("read image", zap.String("path", path), zap.String("format", format),
		zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	return img, nil
}

// convert writes either the lithophane mesh or, for a .png output, a
// preview of its height field.
func convert(img image.Image, opts gen.Options, output string, ascii bool) error {
	hf, err := gen.Prepare(opts, img)
	if err != nil {
		return err
	}
	logger.Debug("built height field",
		zap.Int("width", hf.Width()), zap.Int("height", hf.Height()),
		zap.Float32("min", hf.Min()), zap.Float32("max", hf.Max()), zap.Float32("floor", hf.Floor()))

	if filepath.Ext(output) == ".png" {
		logger.Info("writing height preview", zap.String("path", output))
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		if err := png.Encode(f, hf.ToImage()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	mesh, err := gen.FromHeightField(opts, hf)
	if err != nil {
		return err
	}
	logger.Info("generated mesh", zap.Stringer("generator", opts.Kind), zap.Int("triangles", mesh.TriangleCount()))

	// Binary solids stay unnamed so the header is zero.
	var name string
	if ascii {
		name = strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	}
	solid, err := mesh.Solid(name)
	if err != nil {
		return err
	}
	solid.IsAscii = ascii
	logger.Info("writing STL", zap.String("path", output), zap.Bool("ascii", ascii))
	return solid.WriteFile(output)
}

func main() {
	if err := realMain(); err != nil {
		logger.Error("lith failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
