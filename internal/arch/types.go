package arch

import "fmt"

// Coord addresses a location in the fabric's 2-D grid.
// Both fields are non-negative by caller contract.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Side identifies one border of a grid position or of the device.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

// NumSides is the number of valid Side values.
const NumSides = 4

// String returns the canonical short name used inside identifiers.
func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Valid reports whether s is one of the four enumerated sides.
func (s Side) Valid() bool {
	return s >= Top && s <= Left
}

// ChanType distinguishes horizontal from vertical routing channels.
type ChanType int

const (
	ChanX ChanType = iota // horizontal channel
	ChanY                 // vertical channel
)

func (c ChanType) String() string {
	switch c {
	case ChanX:
		return "chanx"
	case ChanY:
		return "chany"
	}
	return fmt.Sprintf("chan(%d)", int(c))
}

// PortDirection selects the in/out prefix of a routing-track port.
type PortDirection int

const (
	In PortDirection = iota
	Out
)

func (d PortDirection) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// SramOrgz is the configuration-storage organization of a fabric.
// A fabric instance is fixed to one organization for its lifetime.
type SramOrgz int

const (
	SramStandalone SramOrgz = iota
	SramScanChain
	SramMemoryBank
)

func (o SramOrgz) String() string {
	switch o {
	case SramStandalone:
		return "standalone"
	case SramScanChain:
		return "scan_chain"
	case SramMemoryBank:
		return "memory_bank"
	}
	return fmt.Sprintf("sram_orgz(%d)", int(o))
}

// ParseSramOrgz converts the serialized organization token.
func ParseSramOrgz(s string) (SramOrgz, error) {
	switch s {
	case "standalone":
		return SramStandalone, nil
	case "scan_chain":
		return SramScanChain, nil
	case "memory_bank":
		return SramMemoryBank, nil
	}
	return 0, fmt.Errorf("unknown sram organization %q", s)
}

// PortKind is the port flavor of a circuit model in the simulation netlist.
type PortKind int

const (
	PortInput PortKind = iota
	PortOutput
	PortInout
	PortBL  // bit line
	PortWL  // word line
	PortBLB // inverted bit line
	PortWLB // inverted word line
)

func (k PortKind) String() string {
	switch k {
	case PortInput:
		return "input"
	case PortOutput:
		return "output"
	case PortInout:
		return "inout"
	case PortBL:
		return "bl"
	case PortWL:
		return "wl"
	case PortBLB:
		return "blb"
	case PortWLB:
		return "wlb"
	}
	return fmt.Sprintf("port_kind(%d)", int(k))
}
