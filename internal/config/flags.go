package config

import "flag"

// Flags are the command line overrides. Only flags that were actually set
// on the command line are applied.
type Flags struct {
	fs *flag.FlagSet

	Config    *string
	Debug     *bool
	Generator *string
	Width     *int
	Scale     *float64
	Filter    *string
	Radius    *float64
	Height    *float64
	ASCII     *bool
	LogFile   *string
}

// RegisterFlags defines the configuration flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		fs:        fs,
		Config:    fs.String("config", "", "path to config file"),
		Debug:     fs.Bool("debug", false, "enable debug logging"),
		Generator: fs.String("g", "", "generator: flat, flat-image or cylinder"),
		Width:     fs.Int("w", 0, "target width in pixels"),
		Scale:     fs.Float64("s", 0, "relief depth"),
		Filter:    fs.String("filter", "", "resize filter: nearest, linear, gaussian, catmullrom or lanczos3"),
		Radius:    fs.Float64("radius", 0, "cylinder radius"),
		Height:    fs.Float64("height", 0, "cylinder height"),
		ASCII:     fs.Bool("ascii", false, "write ASCII STL"),
		LogFile:   fs.String("log", "", "also log to this file"),
	}
}

// apply copies the flags that were set into cfg.
func (f *Flags) apply(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			if *f.Debug {
				cfg.Logging.Level = "debug"
			}
		case "g":
			cfg.Lithophane.Generator = *f.Generator
		case "w":
			cfg.Lithophane.Width = *f.Width
		case "s":
			cfg.Lithophane.Scale = float32(*f.Scale)
		case "filter":
			cfg.Lithophane.Filter = *f.Filter
		case "radius":
			cfg.Lithophane.CylinderRadius = float32(*f.Radius)
		case "height":
			cfg.Lithophane.CylinderHeight = float32(*f.Height)
		case "ascii":
			cfg.Output.ASCII = *f.ASCII
		case "log":
			cfg.Logging.LogFile = *f.LogFile
		}
	})
}
