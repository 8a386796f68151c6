package spline

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/phil-mansfield/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/aerotab/io"
)

const naca0012 = `NACA 0012 AIRFOILS
  1.0000     0.0013
  0.5000	0.0331
0.0000   0.0000
  0.5000    -0.0331
  1.0000    -0.0013
`

func defaultConfig(t *testing.T) *io.SplineConfig {
	con, err := io.ReadSplineConfig("")
	require.NoError(t, err)
	return con
}

func TestRead(t *testing.T) {
	sp, err := Read(strings.NewReader(naca0012))
	require.NoError(t, err)

	assert.Equal(t, "NACA 0012 AIRFOILS", sp.Name)
	assert.Equal(t, []Point{
		{1, 0.0013}, {0.5, 0.0331}, {0, 0}, {0.5, -0.0331}, {1, -0.0013},
	}, sp.Points)
}

func TestReadEdgeCases(t *testing.T) {
	sp, err := Read(strings.NewReader("only a name\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, sp.Len())

	sp, err = Read(strings.NewReader("name\n\n 0.1 0.2 \n\n"))
	require.NoError(t, err)
	assert.Equal(t, []Point{{0.1, 0.2}}, sp.Points)

	_, err = Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Read(strings.NewReader("name\n0.1 0.2 0.3\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("name\n0.1\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("name\n0.1 abc\n"))
	assert.Error(t, err)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

func TestEmit(t *testing.T) {
	sp := &Spline{Points: []Point{{1, 0.0013}, {0, 0}, {0.5, -0.0331}}}
	buf := &bytes.Buffer{}
	require.NoError(t, Emit(buf, sp, "sim1::wing", defaultConfig(t)))

	expected := `#include <xefis/support/aerodynamics/airfoil_spline.h>

namespace sim1::wing {

xf::AirfoilSpline const kSpline {
	{   1.000000,   0.001300 },
	{   0.000000,   0.000000 },
	{   0.500000,  -0.033100 },
};

} // namespace sim1::wing
`
	assert.Equal(t, expected, buf.String())
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEmitWriteError(t *testing.T) {
	sp := &Spline{Points: make([]Point, 1000)}
	err := Emit(failingWriter{}, sp, "sim1::wing", defaultConfig(t))
	assert.ErrorIs(t, err, errWrite)
}

var pointLine = regexp.MustCompile(`^\t\{ +(\S+), +(\S+) \},$`)

// literalPoints strips the C++ syntax from emitted output, leaving one
// "x y" line per point.
func literalPoints(out string) []string {
	lines := []string{}
	for _, line := range strings.Split(out, "\n") {
		if m := pointLine.FindStringSubmatch(line); m != nil {
			lines = append(lines, m[1]+" "+m[2])
		}
	}
	return lines
}

func TestEmitRoundTrip(t *testing.T) {
	body := &strings.Builder{}
	body.WriteString("round trip\n")
	orig := []Point{}
	for i := 0; i < 50; i++ {
		x := math.Cos(float64(i)/7) / 3
		y := math.Sin(float64(i)/7) * 1e-3 * float64(i)
		orig = append(orig, Point{x, y})
		fmt.Fprintf(body, "%.12g %.12g\n", x, y)
	}

	sp, err := Read(strings.NewReader(body.String()))
	require.NoError(t, err)
	require.Equal(t, len(orig), sp.Len())

	buf := &bytes.Buffer{}
	require.NoError(t, Emit(buf, sp, "rt", defaultConfig(t)))

	lines := literalPoints(buf.String())
	assert.Equal(t, len(orig), len(lines))

	fname := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(
		fname, []byte(strings.Join(lines, "\n")+"\n"), 0644,
	))
	cols, err := table.ReadTable(fname, []int{0, 1}, nil)
	require.NoError(t, err)

	for i, p := range orig {
		assert.InDelta(t, p.X, cols[0][i], 5e-7, "x %d", i)
		assert.InDelta(t, p.Y, cols[1][i], 5e-7, "y %d", i)
	}
}

func TestReadTableFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "airfoil.txt")
	body := `# id x y
0 1.0 0.001
1 0.5 0.030
2 0.0 0.000
`
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))

	sp, err := ReadTableFile(fname, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 0.001}, {0.5, 0.03}, {0, 0}}, sp.Points)

	_, err = ReadTableFile(filepath.Join(t.TempDir(), "missing.txt"), 0, 1)
	assert.Error(t, err)
}

func TestResample(t *testing.T) {
	// A straight line is reproduced exactly by the chord-length splines.
	sp := &Spline{Name: "line"}
	for i := 0; i <= 10; i++ {
		x := float64(i) / 10
		sp.Points = append(sp.Points, Point{x, 2 * x})
	}

	out, err := Resample(sp, 31)
	require.NoError(t, err)
	assert.Equal(t, 31, out.Len())
	assert.Equal(t, sp.Points[0], out.Points[0])
	assert.Equal(t, sp.Points[10], out.Points[30])
	for i, p := range out.Points {
		assert.InDelta(t, float64(i)/30, p.X, 1e-9, "x %d", i)
		assert.InDelta(t, 2*p.X, p.Y, 1e-9, "y %d", i)
	}
}

func TestResampleAirfoil(t *testing.T) {
	sp, err := Read(strings.NewReader(naca0012))
	require.NoError(t, err)

	out, err := Resample(sp, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, out.Len())
	assert.Equal(t, sp.Points[0], out.Points[0])
	assert.Equal(t, sp.Points[4], out.Points[8])

	// The middle sample is at half the chord length, which is the leading
	// edge for a symmetric airfoil.
	assert.InDelta(t, 0, out.Points[4].X, 1e-9)
	assert.InDelta(t, 0, out.Points[4].Y, 1e-9)

	_, err = Resample(&Spline{Points: []Point{{0, 0}, {0, 0}, {1, 1}}}, 5)
	assert.Error(t, err)
	_, err = Resample(sp, 1)
	assert.Error(t, err)
}
