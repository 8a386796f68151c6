package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/aerotab"
)

const (
	ExampleSplineFile = `[Spline]

#######################
# Optional Parameters #
#######################

# Header included before the namespace is opened. This should be the header
# which declares TypeName.
# Include = xefis/support/aerodynamics/airfoil_spline.h

# Type and name of the generated constant.
# TypeName = xf::AirfoilSpline
# VariableName = kSpline

# Format of the input file. Selig files (the default) have the airfoil name on
# the first line and one "x y" pair on every line after that. Table files are
# plain whitespace-separated columns with '#' comments and no name line. For
# Table files XColumn and YColumn select which (zero-indexed) columns hold the
# coordinates.
# InputFormat = Selig
# XColumn = 0
# YColumn = 1

# If set, the airfoil is resampled along its chord length to exactly this many
# points before being written out. The first and last points are preserved.
# Leave this unset (or 0) to write the input points unchanged.
# ResamplePoints = 120`

	ExamplePolarFile = `[Polar]

#######################
# Optional Parameters #
#######################

# Header included before the namespace is opened. This should be the header
# which declares TypeName.
# Include = neutrino/math/field.h

# Type of all four generated fields. Each field maps Reynolds number and angle
# of attack to a coefficient.
# TypeName = nu::Field<double, si::Angle, double>

# Names of the generated constants.
# LiftVariable = kLiftField
# DragVariable = kDragField
# PitchingMomentVariable = kPitchingMomentField
# CenterOfPressureOffsetVariable = kCenterOfPressureOffsetField

# User-defined literal appended to every angle of attack.
# AngleSuffix = _deg`
)

// Recognized InputFormat values.
const (
	SeligFormat = "selig"
	TableFormat = "table"
)

type SharedConfig struct {
	// Optional
	Include, TypeName string
}

func (con *SharedConfig) ValidInclude() bool {
	return con.Include != "" && !strings.ContainsAny(con.Include, "<>\"\n")
}
func (con *SharedConfig) ValidTypeName() bool {
	return con.TypeName != "" && !strings.ContainsAny(con.TypeName, "{};\n")
}

type SplineConfig struct {
	SharedConfig

	// Optional
	VariableName string
	InputFormat string
	XColumn, YColumn int
	ResamplePoints int
}

func DefaultSplineWrapper() *SplineWrapper {
	con := SplineConfig{}
	con.Include = "xefis/support/aerodynamics/airfoil_spline.h"
	con.TypeName = "xf::AirfoilSpline"
	con.VariableName = "kSpline"
	con.InputFormat = SeligFormat
	con.XColumn, con.YColumn = 0, 1
	return &SplineWrapper{con}
}

func (con *SplineConfig) ValidVariableName() bool {
	return aerotab.IsIdentifier(con.VariableName)
}
func (con *SplineConfig) ValidInputFormat() bool {
	f := con.Format()
	return f == SeligFormat || f == TableFormat
}
func (con *SplineConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *SplineConfig) ValidResamplePoints() bool {
	return con.ResamplePoints == 0 || con.ResamplePoints >= 2
}

// Format returns the normalized InputFormat.
func (con *SplineConfig) Format() string {
	return strings.ToLower(strings.TrimSpace(con.InputFormat))
}

// Check returns a descriptive error for the first invalid field in con.
func (con *SplineConfig) Check() error {
	switch {
	case !con.ValidInclude():
		return fmt.Errorf("Invalid 'Include' value, '%s'.", con.Include)
	case !con.ValidTypeName():
		return fmt.Errorf("Invalid 'TypeName' value, '%s'.", con.TypeName)
	case !con.ValidVariableName():
		return fmt.Errorf(
			"Invalid 'VariableName' value, '%s'.", con.VariableName,
		)
	case !con.ValidInputFormat():
		return fmt.Errorf(
			"Unrecognized 'InputFormat' value, '%s'. Only 'Selig' and "+
				"'Table' are supported.", con.InputFormat,
		)
	case !con.ValidColumns():
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, "+
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	case !con.ValidResamplePoints():
		return fmt.Errorf(
			"'ResamplePoints' must be 0 or at least 2, but is %d.",
			con.ResamplePoints,
		)
	}
	return nil
}

type PolarConfig struct {
	SharedConfig

	// Optional
	LiftVariable, DragVariable string
	PitchingMomentVariable string
	CenterOfPressureOffsetVariable string
	AngleSuffix string
}

func DefaultPolarWrapper() *PolarWrapper {
	con := PolarConfig{}
	con.Include = "neutrino/math/field.h"
	con.TypeName = "nu::Field<double, si::Angle, double>"
	con.LiftVariable = "kLiftField"
	con.DragVariable = "kDragField"
	con.PitchingMomentVariable = "kPitchingMomentField"
	con.CenterOfPressureOffsetVariable = "kCenterOfPressureOffsetField"
	con.AngleSuffix = "_deg"
	return &PolarWrapper{con}
}

func (con *PolarConfig) ValidVariables() bool {
	names := []string{
		con.LiftVariable, con.DragVariable,
		con.PitchingMomentVariable, con.CenterOfPressureOffsetVariable,
	}
	seen := map[string]bool{}
	for _, name := range names {
		if !aerotab.IsIdentifier(name) || seen[name] {
			return false
		}
		seen[name] = true
	}
	return true
}

// ValidAngleSuffix allows an empty suffix, which leaves the angles as plain
// floating point literals.
func (con *PolarConfig) ValidAngleSuffix() bool {
	return con.AngleSuffix == "" || aerotab.IsIdentifier(con.AngleSuffix)
}

// Check returns a descriptive error for the first invalid field in con.
func (con *PolarConfig) Check() error {
	switch {
	case !con.ValidInclude():
		return fmt.Errorf("Invalid 'Include' value, '%s'.", con.Include)
	case !con.ValidTypeName():
		return fmt.Errorf("Invalid 'TypeName' value, '%s'.", con.TypeName)
	case !con.ValidVariables():
		return fmt.Errorf(
			"The four field variable names must be distinct identifiers.",
		)
	case !con.ValidAngleSuffix():
		return fmt.Errorf(
			"Invalid 'AngleSuffix' value, '%s'.", con.AngleSuffix,
		)
	}
	return nil
}

type SplineWrapper struct {
	Spline SplineConfig
}

type PolarWrapper struct {
	Polar PolarConfig
}

// ReadSplineConfig reads the [Spline] section of fname on top of the default
// values. An empty fname returns the defaults.
func ReadSplineConfig(fname string) (*SplineConfig, error) {
	wrap := DefaultSplineWrapper()
	if fname != "" {
		if err := gcfg.ReadFileInto(wrap, fname); err != nil {
			return nil, err
		}
	}
	if err := wrap.Spline.Check(); err != nil {
		return nil, err
	}
	return &wrap.Spline, nil
}

// ReadPolarConfig reads the [Polar] section of fname on top of the default
// values. An empty fname returns the defaults.
func ReadPolarConfig(fname string) (*PolarConfig, error) {
	wrap := DefaultPolarWrapper()
	if fname != "" {
		if err := gcfg.ReadFileInto(wrap, fname); err != nil {
			return nil, err
		}
	}
	if err := wrap.Polar.Check(); err != nil {
		return nil, err
	}
	return &wrap.Polar, nil
}
