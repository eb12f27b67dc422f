package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/vtkio/errs"
	"github.com/arloliu/vtkio/format"
	"github.com/arloliu/vtkio/vtk"
)

// Load loads configuration with priority: defaults < file < flags.
//
// path is the manifest to read; flags may be nil.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if flags != nil {
		flags.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return err
	}
	cfg.dir = filepath.Dir(path)

	return nil
}

// Validate checks the manifest without touching the data file.
func (c *Config) Validate() error {
	if c.Data == "" {
		return fmt.Errorf("%w: data path is required", errs.ErrInvalidConfig)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output path is required", errs.ErrInvalidConfig)
	}
	if c.Height == 0 {
		return fmt.Errorf("%w: height must be positive", errs.ErrInvalidConfig)
	}
	if c.Stride < 0 {
		return fmt.Errorf("%w: negative stride %d", errs.ErrInvalidConfig, c.Stride)
	}
	if c.Precision < 0 || c.Precision > vtk.MaxPrecision {
		return fmt.Errorf("%w: precision %d not in [0, %d]", errs.ErrInvalidConfig, c.Precision, vtk.MaxPrecision)
	}
	if _, err := format.ParseCompressionType(c.Compression); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrInvalidConfig, err)
	}
	if _, err := c.PointFields(); err != nil {
		return err
	}

	return nil
}

// DataPath returns the data file path, resolved against the manifest
// directory when relative.
func (c *Config) DataPath() string {
	if filepath.IsAbs(c.Data) || c.dir == "" {
		return c.Data
	}

	return filepath.Join(c.dir, c.Data)
}
