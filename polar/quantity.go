package polar

import (
	"strings"

	"github.com/phil-mansfield/aerotab/io"
)

// Quantity is one of the physical quantities which are written out as a
// separate field.
type Quantity int

const (
	Lift Quantity = iota
	Drag
	PitchingMoment
	CenterOfPressureOffset
	EndQuantity
)

// QuantityFromString returns the Quantity named by s, ignoring case.
func QuantityFromString(s string) (q Quantity, ok bool) {
	switch strings.ToLower(s) {
	case "lift", "cl":
		return Lift, true
	case "drag", "cd":
		return Drag, true
	case "pitchingmoment", "moment", "cm":
		return PitchingMoment, true
	case "centerofpressureoffset", "centerofpressure", "xcp":
		return CenterOfPressureOffset, true
	}
	return Lift, false
}

func (q Quantity) String() string {
	switch q {
	case Lift:
		return "Lift"
	case Drag:
		return "Drag"
	case PitchingMoment:
		return "PitchingMoment"
	case CenterOfPressureOffset:
		return "CenterOfPressureOffset"
	}
	panic("Impossible")
}

// Column returns the name of the polar file column which holds q.
func (q Quantity) Column() string {
	switch q {
	case Lift:
		return "cl"
	case Drag:
		return "cd"
	case PitchingMoment:
		return "cm"
	case CenterOfPressureOffset:
		return "xcp"
	}
	panic("Impossible")
}

// Variable returns the name of the constant q is written to.
func (q Quantity) Variable(con *io.PolarConfig) string {
	switch q {
	case Lift:
		return con.LiftVariable
	case Drag:
		return con.DragVariable
	case PitchingMoment:
		return con.PitchingMomentVariable
	case CenterOfPressureOffset:
		return con.CenterOfPressureOffsetVariable
	}
	panic("Impossible")
}
