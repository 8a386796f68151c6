package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gcfg.v1"
)

func writeConfig(t *testing.T, body string) string {
	fname := filepath.Join(t.TempDir(), "config.txt")
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestDefaultConfigs(t *testing.T) {
	sc, err := ReadSplineConfig("")
	require.NoError(t, err)
	assert.Equal(t, "xefis/support/aerodynamics/airfoil_spline.h", sc.Include)
	assert.Equal(t, "xf::AirfoilSpline", sc.TypeName)
	assert.Equal(t, "kSpline", sc.VariableName)
	assert.Equal(t, SeligFormat, sc.Format())
	assert.Equal(t, 0, sc.ResamplePoints)

	pc, err := ReadPolarConfig("")
	require.NoError(t, err)
	assert.Equal(t, "neutrino/math/field.h", pc.Include)
	assert.Equal(t, "nu::Field<double, si::Angle, double>", pc.TypeName)
	assert.Equal(t, "kCenterOfPressureOffsetField",
		pc.CenterOfPressureOffsetVariable)
	assert.Equal(t, "_deg", pc.AngleSuffix)
}

func TestExampleConfigsParse(t *testing.T) {
	sw := DefaultSplineWrapper()
	assert.NoError(t, gcfg.ReadStringInto(sw, ExampleSplineFile))
	assert.Equal(t, DefaultSplineWrapper().Spline, sw.Spline)

	pw := DefaultPolarWrapper()
	assert.NoError(t, gcfg.ReadStringInto(pw, ExamplePolarFile))
	assert.Equal(t, DefaultPolarWrapper().Polar, pw.Polar)
}

func TestReadSplineConfig(t *testing.T) {
	fname := writeConfig(t, `[Spline]
VariableName = kWingSpline
InputFormat = Table
XColumn = 1
YColumn = 2
ResamplePoints = 80`)

	con, err := ReadSplineConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "kWingSpline", con.VariableName)
	assert.Equal(t, TableFormat, con.Format())
	assert.Equal(t, 1, con.XColumn)
	assert.Equal(t, 2, con.YColumn)
	assert.Equal(t, 80, con.ResamplePoints)
	// Untouched values keep their defaults.
	assert.Equal(t, "xf::AirfoilSpline", con.TypeName)
}

func TestReadPolarConfig(t *testing.T) {
	fname := writeConfig(t, `[Polar]
TypeName = xf::AirfoilCharacteristics::LiftField
LiftVariable = kCl
AngleSuffix = _rad`)

	con, err := ReadPolarConfig(fname)
	require.NoError(t, err)
	assert.Equal(t, "xf::AirfoilCharacteristics::LiftField", con.TypeName)
	assert.Equal(t, "kCl", con.LiftVariable)
	assert.Equal(t, "kDragField", con.DragVariable)
	assert.Equal(t, "_rad", con.AngleSuffix)
}

func TestInvalidConfigs(t *testing.T) {
	table := []struct {
		body string
	}{
		{"[Spline]\nInputFormat = Lednicer"},
		{"[Spline]\nXColumn = 1\nYColumn = 1"},
		{"[Spline]\nResamplePoints = 1"},
		{"[Spline]\nVariableName = 2fast"},
		{"[Spline]\nNoSuchOption = 1"},
	}

	for i, test := range table {
		_, err := ReadSplineConfig(writeConfig(t, test.body))
		assert.Error(t, err, "%d) %q", i, test.body)
	}

	table = []struct {
		body string
	}{
		{"[Polar]\nDragVariable = kLiftField"},
		{"[Polar]\nAngleSuffix = deg rees"},
		{"[Polar]\nTypeName = foo{}"},
	}

	for i, test := range table {
		_, err := ReadPolarConfig(writeConfig(t, test.body))
		assert.Error(t, err, "%d) %q", i, test.body)
	}

	_, err := ReadPolarConfig(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
