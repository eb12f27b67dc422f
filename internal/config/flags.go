package config

import "flag"

// Flags holds command-line overrides.
type Flags struct {
	Config      *string
	Debug       *bool
	Output      *string
	Data        *string
	Precision   *int
	Compression *string
	Lenient     *bool
	LogFile     *string
	DumpConfig  *bool
}

// RegisterFlags defines the converter flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		Config:      fs.String("config", "", "Path to the manifest file"),
		Debug:       fs.Bool("debug", false, "Enable debug logging"),
		Output:      fs.String("output", "", "Output .vtk path"),
		Data:        fs.String("data", "", "Raw point buffer path"),
		Precision:   fs.Int("precision", -1, "Significant digits for floats (0-17)"),
		Compression: fs.String("compression", "", "Output compression: none, zstd, s2, lz4"),
		Lenient:     fs.Bool("lenient", false, "Skip attribute fields with unexpected datatypes"),
		LogFile:     fs.String("log-file", "", "Write logs to this file as well"),
		DumpConfig:  fs.Bool("dump-config", false, "Print the effective configuration and exit"),
	}
}

// ConfigPath returns the explicit config path if provided via --config flag.
func (f *Flags) ConfigPath() string {
	return *f.Config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if *f.Debug {
		cfg.Logging.Level = "debug"
	}
	if *f.Output != "" {
		cfg.Output = *f.Output
	}
	if *f.Data != "" {
		// Paths given on the command line are relative to the working
		// directory, not the manifest.
		cfg.Data = *f.Data
		cfg.dir = ""
	}
	if *f.Precision >= 0 {
		cfg.Precision = *f.Precision
	}
	if *f.Compression != "" {
		cfg.Compression = *f.Compression
	}
	if *f.Lenient {
		cfg.StrictFieldTypes = false
	}
	if *f.LogFile != "" {
		cfg.Logging.LogFile = *f.LogFile
	}
}
