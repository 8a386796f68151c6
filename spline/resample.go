package spline

import (
	"fmt"
	"math"
	"sort"
)

// curve is a natural cubic spline y(s) over a strictly increasing table of s
// values.
type curve struct {
	ss, ys, y2s []float64
}

func newCurve(ss, ys []float64) (*curve, error) {
	n := len(ss)
	c := &curve{ss: ss, ys: ys, y2s: make([]float64, n)}

	// The boundaries have zero curvature, so only the interior second
	// derivatives need to be solved for.
	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)
	for i := range rs {
		j := i + 1
		as[i] = (ss[j] - ss[j-1]) / 6
		bs[i] = (ss[j+1] - ss[j-1]) / 3
		cs[i] = (ss[j+1] - ss[j]) / 6
		rs[i] = (ys[j+1]-ys[j])/(ss[j+1]-ss[j]) -
			(ys[j]-ys[j-1])/(ss[j]-ss[j-1])
	}

	if err := triDiag(as, bs, cs, rs, c.y2s[1:n-1]); err != nil {
		return nil, err
	}
	return c, nil
}

// eval returns y(s). s values outside the table are clamped to its ends.
func (c *curve) eval(s float64) float64 {
	n := len(c.ss)
	if s <= c.ss[0] {
		return c.ys[0]
	} else if s >= c.ss[n-1] {
		return c.ys[n-1]
	}

	// Index of the last knot at or below s.
	i := sort.SearchFloat64s(c.ss, s)
	if c.ss[i] != s {
		i--
	}

	h := c.ss[i+1] - c.ss[i]
	t := s - c.ss[i]
	slope := (c.ys[i+1]-c.ys[i])/h - h*(2*c.y2s[i]+c.y2s[i+1])/6
	return c.ys[i] + slope*t + c.y2s[i]/2*t*t +
		(c.y2s[i+1]-c.y2s[i])/(6*h)*t*t*t
}

// triDiag solves the system of equations
//
// | b0 c0 ..    |   | u0 |   | r0 |
// | a1 b1 c1 .. |   | u1 |   | r1 |
// | ..          | * | .. | = | .. |
// | ..    an bn |   | un |   | rn |
//
// for u0 .. un and writes the result to out.
func triDiag(as, bs, cs, rs, out []float64) error {
	if len(out) == 0 {
		return nil
	}

	tmp := make([]float64, len(out))
	beta := bs[0]
	if beta == 0 {
		return fmt.Errorf("Singular spline system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			return fmt.Errorf("Singular spline system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
	return nil
}

// Resample returns a new spline with n points spaced evenly along the
// chord length of sp. The outline is interpolated with separate cubic
// splines for x and y, both parameterized by cumulative chord length. The
// first and last points of sp are kept exactly.
func Resample(sp *Spline, n int) (*Spline, error) {
	if n < 2 {
		return nil, fmt.Errorf("Cannot resample airfoil to %d points.", n)
	}

	// Repeated points would make the parameterization non-increasing.
	pts := make([]Point, 0, len(sp.Points))
	for i, p := range sp.Points {
		if i > 0 && p == pts[len(pts)-1] {
			continue
		}
		pts = append(pts, p)
	}
	if len(pts) < 3 {
		return nil, fmt.Errorf(
			"Airfoil '%s' has %d distinct points, but resampling needs "+
				"at least 3.", sp.Name, len(pts),
		)
	}

	ss := make([]float64, len(pts))
	xs, ys := make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
		if i > 0 {
			ss[i] = ss[i-1] + math.Hypot(p.X-xs[i-1], p.Y-ys[i-1])
		}
	}

	xc, err := newCurve(ss, xs)
	if err != nil {
		return nil, err
	}
	yc, err := newCurve(ss, ys)
	if err != nil {
		return nil, err
	}

	out := &Spline{Name: sp.Name, Points: make([]Point, n)}
	length := ss[len(ss)-1]
	for i := range out.Points {
		s := length * float64(i) / float64(n-1)
		out.Points[i] = Point{xc.eval(s), yc.eval(s)}
	}
	out.Points[0], out.Points[n-1] = pts[0], pts[len(pts)-1]

	return out, nil
}
