/*
Package spline reads airfoil coordinate files and writes them out as C++
brace-initialized point lists.

Two input layouts are supported. Selig files have the airfoil name on the
first line followed by one "x y" pair per line:

    NACA 2412
    1.0000     0.0013
    0.9500     0.0114
    ...

Table files are plain whitespace-separated columns (with '#' comments) and are
read through github.com/phil-mansfield/table.
*/
package spline

import (
	"bufio"
	"errors"
	"fmt"
	goio "io"
	"os"
	"strings"

	"github.com/phil-mansfield/table"
	"github.com/spf13/cast"
)

// ErrEmpty is returned when a Selig file does not even contain a name line.
var ErrEmpty = errors.New("spline: input is empty")

// Point is a single airfoil coordinate in chord-relative units.
type Point struct {
	X, Y float64
}

// Spline is an ordered list of airfoil coordinates. The order is
// geometrically meaningful and is never changed.
type Spline struct {
	// Name is the first line of a Selig file. It is only used for
	// diagnostics.
	Name   string
	Points []Point
}

// Len returns the number of points in the spline.
func (sp *Spline) Len() int { return len(sp.Points) }

// XYs returns the coordinates of sp as two parallel slices.
func (sp *Spline) XYs() (xs, ys []float64) {
	xs, ys = make([]float64, len(sp.Points)), make([]float64, len(sp.Points))
	for i, p := range sp.Points {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// Read parses a Selig-format airfoil from r. The first line is taken as the
// airfoil name. Every non-blank line after it must contain exactly two
// floating point numbers.
func Read(r goio.Reader) (*Spline, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, ErrEmpty
	}

	sp := &Spline{Name: strings.TrimSpace(sc.Text())}
	for lineNum := 2; sc.Scan(); lineNum++ {
		// strings.Fields trims and collapses runs of whitespace in one go.
		toks := strings.Fields(sc.Text())
		if len(toks) == 0 {
			continue
		} else if len(toks) != 2 {
			return nil, fmt.Errorf(
				"Line %d of airfoil '%s' has %d tokens, but should have 2.",
				lineNum, sp.Name, len(toks),
			)
		}

		p, err := parsePoint(toks[0], toks[1])
		if err != nil {
			return nil, fmt.Errorf("Line %d of airfoil '%s': %w",
				lineNum, sp.Name, err)
		}
		sp.Points = append(sp.Points, p)
	}

	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sp, nil
}

// ReadFile is identical to Read, but reads from the file fname.
func ReadFile(fname string) (*Spline, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sp, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return sp, nil
}

// ReadTableFile reads the xCol and yCol columns of a whitespace-separated
// text table. Lines starting with '#' are skipped.
func ReadTableFile(fname string, xCol, yCol int) (*Spline, error) {
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	xs, ys := cols[0], cols[1]
	sp := &Spline{Name: fname, Points: make([]Point, len(xs))}
	for i := range xs {
		sp.Points[i] = Point{xs[i], ys[i]}
	}
	return sp, nil
}

func parsePoint(xTok, yTok string) (Point, error) {
	x, err := parseFloat(xTok)
	if err != nil {
		return Point{}, err
	}
	y, err := parseFloat(yTok)
	if err != nil {
		return Point{}, err
	}
	return Point{x, y}, nil
}

func parseFloat(tok string) (float64, error) {
	x, err := cast.ToFloat64E(tok)
	if err != nil {
		return 0, fmt.Errorf("'%s' is not a number", tok)
	}
	return x, nil
}
