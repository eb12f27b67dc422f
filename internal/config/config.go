// Package config handles the vtkconv manifest: the description of a raw point
// buffer on disk plus the output settings used to convert it.
package config

import (
	"github.com/arloliu/vtkio/vtk"
)

// Config holds all converter settings.
//
// A minimal manifest:
//
//	data: scan.bin
//	width: 640
//	height: 480
//	fields:
//	  - {name: x, type: float32}
//	  - {name: y, type: float32}
//	  - {name: z, type: float32}
//	  - {name: rgb, type: F4, offset: 16}
//	output: scan.vtk
type Config struct {
	Data      string        `yaml:"data"`   // Path to the raw point buffer, relative to the manifest
	Width     uint32        `yaml:"width"`  // 0 derives the width from the buffer size
	Height    uint32        `yaml:"height"` // Rows of an organised cloud
	Stride    int           `yaml:"stride"` // Row size; 0 means the end of the last field
	BigEndian bool          `yaml:"big_endian"`
	Fields    []FieldConfig `yaml:"fields"`
	Polygons  [][]uint32    `yaml:"polygons"` // Non-empty selects mesh output

	Output           string `yaml:"output"`
	Precision        int    `yaml:"precision"`
	Compression      string `yaml:"compression"`
	StrictFieldTypes bool   `yaml:"strict_field_types"`
	FileMode         uint32 `yaml:"file_mode"`

	Logging LoggingConfig `yaml:"logging"`

	// dir is the directory of the manifest file, used to resolve Data.
	dir string
}

// FieldConfig describes one point field.
type FieldConfig struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"` // float32, uint32, F4, U4, ...
	// Offset places the field explicitly. Fields without one follow the
	// previous field.
	Offset *uint32 `yaml:"offset,omitempty"`
	Count  uint32  `yaml:"count,omitempty"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Height:           1,
		Output:           "out.vtk",
		Precision:        vtk.DefaultPrecision,
		Compression:      "none",
		StrictFieldTypes: true,
		FileMode:         0o644,
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// IsMesh reports whether the manifest describes a polygon mesh.
func (c *Config) IsMesh() bool {
	return len(c.Polygons) > 0
}
