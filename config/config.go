// Package config resolves the tracker CLI's parameters: a companion INI
// file's [tracker] section supplies defaults, command-line flags override
// them, grounded on the teacher's video.go use of gopkg.in/ini.v1 to read
// seqinfo.ini (Section/Key().MustString() style).
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tracker "github.com/bboxtrack/tracker"
	"gopkg.in/ini.v1"
)

// Config is the fully resolved set of CLI parameters, per spec.md §6.
type Config struct {
	Input   string
	Output  string
	VisDir  string
	MaxDist float64
	MaxAge  int
	Alpha   float64
}

// TrackerConfig adapts Config to the engine's Config type.
func (c Config) TrackerConfig() tracker.Config {
	return tracker.Config{MaxDist: c.MaxDist, MaxAge: c.MaxAge, Alpha: c.Alpha}
}

// defaults holds the values read from defaults.ini's [tracker] section
// before flag overrides are applied.
type defaults struct {
	Input   string
	Output  string
	VisDir  string
	MaxDist float64
	MaxAge  int
	Alpha   float64
}

// loadDefaults reads the [tracker] section of an INI file at path. A
// missing file is not an error: defaults simply stay at their zero values,
// so that every parameter can still be supplied entirely via flags. A
// present-but-unparseable file is reported as an IOFailureError.
func loadDefaults(path string) (defaults, error) {
	var d defaults
	if path == "" {
		return d, nil
	}
	if _, statErr := os.Stat(path); errors.Is(statErr, os.ErrNotExist) {
		return d, nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return d, &tracker.IOFailureError{Path: path, Err: err}
	}
	sec := cfg.Section("tracker")
	d.Input = sec.Key("input").MustString("")
	d.Output = sec.Key("output").MustString("")
	d.VisDir = sec.Key("vis-dir").MustString("")
	d.MaxDist = sec.Key("max-dist").MustFloat64(0)
	d.MaxAge = sec.Key("max-age").MustInt(0)
	d.Alpha = sec.Key("alpha").MustFloat64(0)
	return d, nil
}

// Parse resolves Config from defaultsPath (a defaults.ini, may be empty to
// skip it) and args (as would be passed to flag.FlagSet.Parse, i.e.
// os.Args[1:]). Non-empty / non-zero flag values override the INI
// defaults; flags left at (or explicitly set to) their zero value fall back to
// the INI file, and then to spec.md's engine defaults for the tracker
// parameters only (Input/Output/VisDir have no engine-level default: they
// are required).
func Parse(defaultsPath string, args []string) (Config, error) {
	d, err := loadDefaults(defaultsPath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("bbox-tracker", flag.ContinueOnError)
	input := fs.String("input", "", "path to the input JSON frame stream (required)")
	output := fs.String("output", "", "path to write the output JSON document (required)")
	visDir := fs.String("vis-dir", "", "directory to write per-frame PNG visualizations (required)")
	maxDist := fs.Float64("max-dist", 0, "centre-distance gate (default 0.15 if unset and absent from defaults.ini)")
	maxAge := fs.Int("max-age", 0, "longest coasting duration in frames (default 5 if unset and absent from defaults.ini)")
	alpha := fs.Float64("alpha", 0, "IoU/centre-distance cost weight (default 0.7 if unset and absent from defaults.ini)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	c := Config{
		Input:   firstNonEmpty(*input, d.Input),
		Output:  firstNonEmpty(*output, d.Output),
		VisDir:  firstNonEmpty(*visDir, d.VisDir),
		MaxDist: firstNonZero(*maxDist, d.MaxDist),
		MaxAge:  firstNonZeroInt(*maxAge, d.MaxAge),
		Alpha:   firstNonZero(*alpha, d.Alpha),
	}

	if c.Input == "" || c.Output == "" || c.VisDir == "" {
		return Config{}, fmt.Errorf("--input, --output and --vis-dir are required (directly or via defaults.ini's [tracker] section)")
	}
	return c, nil
}

func firstNonEmpty(flagVal, iniVal string) string {
	if flagVal != "" {
		return flagVal
	}
	return iniVal
}

func firstNonZero(flagVal, iniVal float64) float64 {
	if flagVal != 0 {
		return flagVal
	}
	return iniVal
}

func firstNonZeroInt(flagVal, iniVal int) int {
	if flagVal != 0 {
		return flagVal
	}
	return iniVal
}
