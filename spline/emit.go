package spline

import (
	"bufio"
	"fmt"
	goio "io"

	"github.com/phil-mansfield/aerotab"
	"github.com/phil-mansfield/aerotab/io"
)

// PointFormat is the layout of a single emitted point. It is part of the
// contract with the code which compiles the output.
const PointFormat = "\t{ %10.6f, %10.6f },\n"

// Emit writes sp to w as a constant named con.VariableName inside the
// namespace ns. The points are written in order with no transformation.
func Emit(w goio.Writer, sp *Spline, ns string, con *io.SplineConfig) error {
	bw := bufio.NewWriter(w)

	if err := aerotab.BeginUnit(bw, con.Include, ns); err != nil {
		return err
	}

	fmt.Fprintf(bw, "%s const %s {\n", con.TypeName, con.VariableName)
	for _, p := range sp.Points {
		fmt.Fprintf(bw, PointFormat, p.X, p.Y)
	}
	fmt.Fprint(bw, "};\n\n")

	if err := aerotab.EndUnit(bw, ns); err != nil {
		return err
	}
	return bw.Flush()
}
