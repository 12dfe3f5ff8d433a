package naming

import (
	"strconv"

	"github.com/mosaic-eda/netname/internal/arch"
)

// Fixed port tokens shared by every configuration organization.
const (
	// ConfigChainHead is the head port of a configuration chain.
	ConfigChainHead = "ccff_head"
	// ConfigChainTail is the tail port of a configuration chain.
	ConfigChainTail = "ccff_tail"
	// ConfigChainDataOut is the memory output of a configuration chain.
	ConfigChainDataOut = "mem_out"
	// ConfigChainDataOutInv is the inverted memory output of a
	// configuration chain.
	ConfigChainDataOutInv = "mem_outb"
	// DecoderAddrPort is the address input of a mux local decoder.
	DecoderAddrPort = "addr"
	// DecoderDataPort is the data output of a mux local decoder.
	DecoderDataPort = "data"
	// DecoderDataInvPort is the inverted data output of a mux local
	// decoder.
	DecoderDataInvPort = "data_inv"
	// LocalConfigBus is the local configuration bus port of a module.
	LocalConfigBus = "config_bus"
)

// SramPortName names an externally visible SRAM port of a module. The
// grammar depends entirely on the configuration organization:
//
//	standalone:  <cell>_out / <cell>_outb
//	scan chain:  <cell>_ccff_head / <cell>_ccff_tail
//	memory bank: <cell>_bl / _wl / _blb / _wlb
//
// Any port kind outside the active organization's row is a contract
// violation.
func SramPortName(lib *arch.Library, sramModel arch.ModelID, orgz arch.SramOrgz, kind arch.PortKind) (string, error) {
	name := lib.ModelName(sramModel) + "_"

	switch orgz {
	case arch.SramStandalone:
		switch kind {
		case arch.PortInput:
			return name + "out", nil
		case arch.PortOutput:
			return name + "outb", nil
		}
	case arch.SramScanChain:
		switch kind {
		case arch.PortInput:
			return name + "ccff_head", nil
		case arch.PortOutput:
			return name + "ccff_tail", nil
		}
	case arch.SramMemoryBank:
		switch kind {
		case arch.PortBL:
			return name + "bl", nil
		case arch.PortWL:
			return name + "wl", nil
		case arch.PortBLB:
			return name + "blb", nil
		case arch.PortWLB:
			return name + "wlb", nil
		}
	default:
		return "", invalidf("sram organization %d", int(orgz))
	}

	return "", invalidf("port kind %s is not valid under %s organization", kind, orgz)
}

// SramLocalPortName names the block-internal local-bus wire of an SRAM
// port. The scan-chain organization distinguishes a third, inverted
// output bus selected by the inout kind.
func SramLocalPortName(lib *arch.Library, sramModel arch.ModelID, orgz arch.SramOrgz, kind arch.PortKind) (string, error) {
	name := lib.ModelName(sramModel) + "_"

	switch orgz {
	case arch.SramStandalone, arch.SramMemoryBank:
		switch kind {
		case arch.PortInput:
			return name + "out_local_bus", nil
		case arch.PortOutput:
			return name + "outb_local_bus", nil
		}
	case arch.SramScanChain:
		switch kind {
		case arch.PortInput:
			return name + "ccff_in_local_bus", nil
		case arch.PortOutput:
			return name + "ccff_out_local_bus", nil
		case arch.PortInout:
			return name + "ccff_outb_local_bus", nil
		}
	default:
		return "", invalidf("sram organization %d", int(orgz))
	}

	return "", invalidf("port kind %s has no local bus under %s organization", kind, orgz)
}

// ReservedSramPortName names a reserved BLB/WL port. These exist only on
// the resistive-memory wiring path and are independent of the
// configuration organization; do not mix this with the memory-bank
// grammar.
func ReservedSramPortName(kind arch.PortKind) (string, error) {
	switch kind {
	case arch.PortBLB:
		return "reserved_blb", nil
	case arch.PortWL:
		return "reserved_wl", nil
	}
	return "", invalidf("port kind %s has no reserved sram port", kind)
}

// FormalVerificationSramPortName names the SRAM port used by the formal
// verification harness, after the cell name in the catalog.
func FormalVerificationSramPortName(lib *arch.Library, sramModel arch.ModelID) string {
	return lib.ModelName(sramModel) + "_out_fm"
}

// LocalSramPortName names a local wire connecting the SRAM ports of one
// circuit instance inside a module. The convention is shared by all
// configuration organizations.
func LocalSramPortName(portPrefix string, instanceID int, kind arch.PortKind) (string, error) {
	name := portPrefix + "_" + strconv.Itoa(instanceID) + "_"
	switch kind {
	case arch.PortInput:
		return name + "out", nil
	case arch.PortOutput:
		return name + "outb", nil
	}
	return "", invalidf("port kind %s has no local sram wire", kind)
}
