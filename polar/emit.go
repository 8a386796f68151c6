package polar

import (
	"bufio"
	"fmt"
	goio "io"
	"strconv"
	"strings"

	"github.com/phil-mansfield/aerotab"
	"github.com/phil-mansfield/aerotab/io"
)

const (
	// ReynoldsFormat opens the block of a single polar table. The %s is the
	// Reynolds number as written by FormatReynolds.
	ReynoldsFormat = "\t{ %s, {\n"
	// RowFormat is the layout of a single (alpha, value) pair. The %s is
	// the angle suffix.
	RowFormat = "\t\t{ %8.3f%s, %.4f },\n"
)

// FormatReynolds returns the shortest decimal literal which reads back as re.
// It always contains a decimal point, so the compiler sees a double.
func FormatReynolds(re float64) string {
	s := strconv.FormatFloat(re, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// EmitField writes the column for q from every table in c as a constant field
// named after q. c must already be sorted by Reynolds number.
func EmitField(
	w goio.Writer, c Collection, q Quantity, con *io.PolarConfig,
) error {
	if !Sorted(c) {
		return fmt.Errorf("Polars must be sorted by Reynolds number.")
	}

	// Find missing columns before anything is written.
	alphas, vals := make([][]float64, len(c)), make([][]float64, len(c))
	for i, t := range c {
		var err error
		if alphas[i], err = t.Column(AlphaColumn); err != nil {
			return err
		}
		if vals[i], err = t.Column(q.Column()); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s const %s {\n", con.TypeName, q.Variable(con))
	for i, t := range c {
		fmt.Fprintf(bw, ReynoldsFormat, FormatReynolds(t.Reynolds))
		for j := range alphas[i] {
			fmt.Fprintf(bw, RowFormat, alphas[i][j], con.AngleSuffix, vals[i][j])
		}
		fmt.Fprint(bw, "\t} },\n")
	}
	fmt.Fprint(bw, "};\n")
	return bw.Flush()
}

// Emit writes every quantity in c to w inside the namespace ns, in the order
// they're declared.
func Emit(w goio.Writer, c Collection, ns string, con *io.PolarConfig) error {
	if err := aerotab.BeginUnit(w, con.Include, ns); err != nil {
		return err
	}

	for q := Lift; q < EndQuantity; q++ {
		if err := EmitField(w, c, q, con); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return aerotab.EndUnit(w, ns)
}
