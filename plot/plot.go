// Package plot draws quick-look figures of converter inputs so that bad
// coordinate files or polars can be spotted before they're compiled in.
package plot

import (
	"fmt"
	"math"
	"os"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/aerotab/polar"
	"github.com/phil-mansfield/aerotab/spline"
)

var colors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f",
}

const (
	figWidth, figHeight = 10, 4
)

// Figures queued by Spline and Polars and not yet written by Execute.
var queued []string

// Spline queues a figure of the airfoil outline, saved to fname. The y range
// is chosen so that the outline isn't distorted.
func Spline(fname string, sp *spline.Spline) error {
	if sp.Len() == 0 {
		return fmt.Errorf("Airfoil '%s' has no points to plot.", sp.Name)
	}

	xs, ys := sp.XYs()
	xLow, xHigh := bounds(xs)
	yLow, yHigh := bounds(ys)
	pad := (xHigh - xLow) * 0.05
	xLow, xHigh = xLow-pad, xHigh+pad
	yMid := (yLow + yHigh) / 2
	yHalf := (xHigh - xLow) * figHeight / figWidth / 2

	plt.Figure(plt.FigSize(figWidth, figHeight))
	plt.Plot(xs, ys, "k", plt.LW(2))
	plt.Plot(xs, ys, "ok")
	plt.Title(fmt.Sprintf("%s (%d points)", sp.Name, sp.Len()))
	plt.XLabel(`$x/c$`, plt.FontSize(16))
	plt.YLabel(`$y/c$`, plt.FontSize(16))
	plt.XLim(xLow, xHigh)
	plt.YLim(yMid-yHalf, yMid+yHalf)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
	queued = append(queued, fname)
	return nil
}

// Polars queues a figure of q against angle of attack, one curve per Reynolds
// number, saved to fname.
func Polars(fname string, c polar.Collection, q polar.Quantity) error {
	if len(c) == 0 {
		return fmt.Errorf("No polars to plot.")
	}

	alphas, vals := make([][]float64, len(c)), make([][]float64, len(c))
	for i, t := range c {
		var err error
		if alphas[i], err = t.Column(polar.AlphaColumn); err != nil {
			return err
		}
		if vals[i], err = t.Column(q.Column()); err != nil {
			return err
		}
	}

	plt.Figure(plt.FigSize(8, 8))
	for i := range c {
		plt.Plot(alphas[i], vals[i], plt.LW(2), plt.C(colors[i%len(colors)]))
	}

	plt.Title(fmt.Sprintf(
		`%s: $Re$ = %.3g to %.3g`, q, c[0].Reynolds, c[len(c)-1].Reynolds,
	))
	plt.XLabel(`$\alpha$ [deg]`, plt.FontSize(16))
	plt.YLabel(q.Column(), plt.FontSize(16))
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"))
	plt.SaveFig(fname)
	queued = append(queued, fname)
	return nil
}

// Execute runs every queued figure and returns an error if any of them wasn't
// written. Whatever python prints goes to stderr.
func Execute() error {
	if len(queued) == 0 {
		return nil
	}
	fnames := queued
	queued = nil
	for _, fname := range fnames {
		if err := os.Remove(fname); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	runPython()
	return checkFigures(fnames)
}

// runPython runs the queued pyplot script with stdout pointed at stderr.
func runPython() {
	stdout := os.Stdout
	os.Stdout = os.Stderr
	defer func() {
		os.Stdout = stdout
		plt.Reset()
	}()
	plt.Execute()
}

func checkFigures(fnames []string) error {
	for _, fname := range fnames {
		if _, err := os.Stat(fname); err != nil {
			return fmt.Errorf(
				"Figure '%s' was not written. Are python and matplotlib "+
					"installed?", fname,
			)
		}
	}
	return nil
}

func bounds(xs []float64) (low, high float64) {
	low, high = math.Inf(+1), math.Inf(-1)
	for _, x := range xs {
		low, high = math.Min(low, x), math.Max(high, x)
	}
	return low, high
}
