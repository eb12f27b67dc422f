// vtkconv converts a raw PCL-style point buffer, described by a YAML
// manifest, into a legacy VTK ASCII POLYDATA file.
//
// Usage:
//
//	vtkconv -config scan.yaml [-output scan.vtk] [-compression zstd] [-lenient]
//
// The manifest names the data file, the point fields and optionally a list
// of polygons; with polygons the output is a mesh, otherwise a point cloud.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/arloliu/vtkio/internal/config"
	"github.com/arloliu/vtkio/internal/logger"
	"github.com/arloliu/vtkio/vtk"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("vtkconv", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if flags.ConfigPath() == "" {
		fmt.Fprintln(stderr, "Usage: vtkconv -config <manifest.yaml> [options]")
		fs.PrintDefaults()
		return 2
	}

	cfg, err := config.Load(flags.ConfigPath(), flags)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if *flags.DumpConfig {
		if err := cfg.Encode(stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if err := convert(cfg, logger.Log); err != nil {
		logger.Log.Error("conversion failed", zap.Error(err))
		return 1
	}

	return 0
}

func convert(cfg *config.Config, log *zap.Logger) error {
	opts, err := cfg.WriterOptions()
	if err != nil {
		return err
	}

	w, err := vtk.NewWriter(append(opts, vtk.WithLogger(log))...)
	if err != nil {
		return err
	}

	out := cfg.OutputPath()
	var stats vtk.Stats
	if cfg.IsMesh() {
		mesh, err := cfg.LoadMesh()
		if err != nil {
			return err
		}
		stats, err = w.SaveMeshFile(out, &mesh)
		if err != nil {
			return err
		}
	} else {
		pc, err := cfg.LoadCloud()
		if err != nil {
			return err
		}
		stats, err = w.SaveCloudFile(out, &pc)
		if err != nil {
			return err
		}
	}

	log.Info("conversion complete",
		zap.String("data", cfg.DataPath()),
		zap.String("output", out),
		zap.Int("points", stats.Points),
		zap.Int("polygons", stats.Polygons),
		zap.Strings("skipped", stats.Skipped),
		zap.String("checksum", fmt.Sprintf("%016x", stats.Checksum)))

	return nil
}
