package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/ipfkey/symmetry"
)

const (
	ExampleViewerFile = `[Viewer]

#######################
# Required Parameters #
#######################

# Laue class to draw the inverse pole figure for. Must be one of
# [ Ci | C2h | D2h | S6 | D3d | C4h | D4h | C6h | D6h | Th | Oh ].
Symmetry = Oh

# What to compute. Must be one of:
# Legend:      the colour key, sampled on a grid over the fundamental sector.
# Orientation: the IPF points of the sample X, Y and Z axes for the Euler
#              angles below.
# Sample:      the IPF points of randomly drawn orientations.
Mode = Sample

#######################
# Optional Parameters #
#######################

# Bunge Euler angles in degrees. Each must be in the range [0, 360].
# Phi1 = 0
# Phi  = 0
# Phi2 = 0

# Number of random orientations drawn in Sample mode. Must be in the range
# [1, 100000]. Default is 100.
# Points = 100

# Seed for the random orientations. Runs with the same seed give identical
# output.
# Seed = 42

# Number of goroutines used in Sample mode. Defaults to GOMAXPROCS.
# Workers = 4

# Width, in grid points, of the grid the legend is sampled on. Default is 128.
# LegendResolution = 128

# Progress and diagnostic messages are written here instead of stderr.
# LogFile = log.out`
)

const (
	MaxAngle  = 360
	MaxPoints = 100000
)

type ViewerConfig struct {
	// Required
	Symmetry, Mode string

	// Optional
	Phi1, Phi, Phi2  float64
	Points           int
	Seed             int64
	Workers          int
	LegendResolution int
	LogFile          string
}

type ViewerWrapper struct {
	Viewer ViewerConfig
}

func DefaultViewerWrapper() *ViewerWrapper {
	con := ViewerConfig{}
	con.Points = 100
	con.Seed = 42
	con.LegendResolution = 128
	return &ViewerWrapper{con}
}

func (con *ViewerConfig) ValidSymmetry() bool {
	_, err := symmetry.Parse(con.Symmetry)
	return err == nil
}
func (con *ViewerConfig) ValidMode() bool {
	_, ok := modes[strings.ToLower(con.Mode)]
	return ok
}
func (con *ViewerConfig) ValidAngles() bool {
	for _, a := range []float64{con.Phi1, con.Phi, con.Phi2} {
		if a < 0 || a > MaxAngle {
			return false
		}
	}
	return true
}
func (con *ViewerConfig) ValidPoints() bool {
	return con.Points >= 1 && con.Points <= MaxPoints
}
func (con *ViewerConfig) ValidWorkers() bool {
	return con.Workers >= 0
}
func (con *ViewerConfig) ValidLegendResolution() bool {
	return con.LegendResolution > 0
}
func (con *ViewerConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// Mode is the kind of output a viewer config asks for.
type Mode int

const (
	Legend Mode = iota
	Orientation
	Sample
)

var modes = map[string]Mode{
	"legend":      Legend,
	"orientation": Orientation,
	"sample":      Sample,
}

func (m Mode) String() string {
	switch m {
	case Legend:
		return "Legend"
	case Orientation:
		return "Orientation"
	case Sample:
		return "Sample"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParsedMode returns the config's Mode. It should only be called on a
// config which passed CheckInit.
func (con *ViewerConfig) ParsedMode() Mode {
	return modes[strings.ToLower(con.Mode)]
}

// Label returns the config's symmetry label. It should only be called on a
// config which passed CheckInit.
func (con *ViewerConfig) Label() symmetry.Label {
	l, _ := symmetry.Parse(con.Symmetry)
	return l
}

// CheckInit validates every field, returning an error describing the first
// invalid one.
func (con *ViewerConfig) CheckInit() error {
	if !con.ValidSymmetry() {
		_, err := symmetry.Parse(con.Symmetry)
		return fmt.Errorf("Invalid/non-existent 'Symmetry' value: %w", err)
	} else if !con.ValidMode() {
		return fmt.Errorf(
			"Invalid/non-existent 'Mode' value, '%s'. Accepted modes are "+
				"Legend, Orientation, and Sample.", con.Mode,
		)
	} else if !con.ValidAngles() {
		return fmt.Errorf(
			"Euler angles must be in the range [0, %d], but are (%g, %g, %g).",
			MaxAngle, con.Phi1, con.Phi, con.Phi2,
		)
	} else if !con.ValidPoints() {
		return fmt.Errorf(
			"'Points' must be in the range [1, %d], but is %d.",
			MaxPoints, con.Points,
		)
	} else if !con.ValidWorkers() {
		return fmt.Errorf("'Workers' must be non-negative, but is %d.", con.Workers)
	} else if !con.ValidLegendResolution() {
		return fmt.Errorf(
			"'LegendResolution' must be positive, but is %d.",
			con.LegendResolution,
		)
	}
	return nil
}

// ReadViewerConfig reads and validates a [Viewer] config file.
func ReadViewerConfig(fname string) (*ViewerConfig, error) {
	wrap := DefaultViewerWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return checked(wrap)
}

// ParseViewerConfig is ReadViewerConfig for a config held in memory.
func ParseViewerConfig(text string) (*ViewerConfig, error) {
	wrap := DefaultViewerWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	return checked(wrap)
}

func checked(wrap *ViewerWrapper) (*ViewerConfig, error) {
	con := &wrap.Viewer
	if err := con.CheckInit(); err != nil {
		return nil, err
	}
	return con, nil
}
