/*
Package polar reads XFLR5/XFOIL polar files and writes the lift, drag,
pitching moment and center of pressure columns out as C++ field literals
indexed by Reynolds number and angle of attack.

A polar file has free-form header text containing a line of the form

    Mach =   0.000     Re =     0.200 e 6     Ncrit =   9.000

followed, eventually, by a comma-separated column header containing at least
"alpha" and "Top Xtr" and then by comma-separated rows of numbers.
*/
package polar

import (
	"fmt"
	"sort"
)

// AlphaColumn is the name of the angle of attack column, in degrees.
const AlphaColumn = "alpha"

// Table is the data from a single polar file.
type Table struct {
	// File is the name the table was read from. It's only used for
	// diagnostics.
	File string `yaml:"file"`

	Reynolds float64 `yaml:"reynolds"`
	Mach     float64 `yaml:"mach"`
	NCrit    float64 `yaml:"ncrit"`

	// Header lists the lower-cased column names in file order. Every
	// slice in Columns has the same length.
	Header  []string             `yaml:"header,flow"`
	Columns map[string][]float64 `yaml:"columns"`
}

// Len returns the number of data rows in the table.
func (t *Table) Len() int { return len(t.Columns[AlphaColumn]) }

// Column returns the named column, or an error if the file didn't have it.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.Columns[name]
	if !ok {
		return nil, fmt.Errorf(
			"Polar file '%s' (Re = %g) has no '%s' column.",
			t.File, t.Reynolds, name,
		)
	}
	return col, nil
}

// Collection is a set of polar tables for the same airfoil.
type Collection []*Table

// byKey allows a Collection to be sorted by any numeric property of its
// tables.
type byKey struct {
	c   Collection
	key func(*Table) float64
}

func (b byKey) Len() int           { return len(b.c) }
func (b byKey) Less(i, j int) bool { return b.key(b.c[i]) < b.key(b.c[j]) }
func (b byKey) Swap(i, j int)      { b.c[i], b.c[j] = b.c[j], b.c[i] }

func reynolds(t *Table) float64 { return t.Reynolds }

// Sort sorts c by increasing Reynolds number. Tables with equal Reynolds
// numbers keep their relative order.
func Sort(c Collection) {
	sort.Stable(byKey{c, reynolds})
}

// Sorted returns true if c is in increasing Reynolds number order.
func Sorted(c Collection) bool {
	return sort.IsSorted(byKey{c, reynolds})
}
