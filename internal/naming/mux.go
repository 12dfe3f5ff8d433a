// Package naming generates module, port and netlist names for the fabric
// netlist writers. Names must stay generic across both emitted formats
// (structural hardware description and circuit simulation), so every
// generator here is a pure function over its descriptors: same inputs,
// same string, no hidden state.
package naming

import (
	"strconv"

	"github.com/mosaic-eda/netname/internal/arch"
)

// MuxNodeName names a node inside a multiplexing structure.
// With an intermediate buffer following the node the name is
// mux_l<level>_in_buf, without one it is mux_l<level>_in.
func MuxNodeName(nodeLevel int, addBufferPostfix bool) string {
	name := "mux_l" + strconv.Itoa(nodeLevel) + "_in"
	if addBufferPostfix {
		name += "_buf"
	}
	return name
}

// MuxSubcktName names a multiplexer sub-circuit.
// MUX models are named <model_name>_size<num_inputs>; LUT models reuse
// their internal multiplexer and are named <model_name>_mux.
func MuxSubcktName(lib *arch.Library, model arch.ModelID, muxSize int, postfix string) (string, error) {
	name := lib.ModelName(model)
	switch lib.ModelType(model) {
	case arch.ModelMux:
		name += "_size" + strconv.Itoa(muxSize)
	case arch.ModelLUT:
		name += "_mux"
	default:
		return "", invalidf("model %q: type %s cannot name a multiplexer", lib.ModelName(model), lib.ModelType(model))
	}
	if postfix != "" {
		name += postfix
	}
	return name, nil
}

// MuxBranchSubcktName names one branch of a multiplexer tree.
// When the pass-gate logic model of the mux is a MUX2 standard cell the
// branch is that cell itself and its catalog name is returned directly.
func MuxBranchSubcktName(lib *arch.Library, model arch.ModelID, muxSize, branchSize int, postfix string) (string, error) {
	passGate := lib.PassGateLogicModel(model)
	if passGate != arch.InvalidModel && lib.ModelType(passGate) == arch.ModelGate {
		if lib.GateType(passGate) != arch.GateMux2 {
			return "", invalidf("model %q: pass-gate logic model %q is a %s gate, want mux2",
				lib.ModelName(model), lib.ModelName(passGate), lib.GateType(passGate))
		}
		return lib.ModelName(passGate), nil
	}
	return MuxSubcktName(lib, model, muxSize, postfix+"_size"+strconv.Itoa(branchSize))
}

// MuxLocalDecoderSubcktName names the local decoder of a multiplexer.
func MuxLocalDecoderSubcktName(addrSize, dataSize int) string {
	return "decoder" + strconv.Itoa(addrSize) + "to" + strconv.Itoa(dataSize)
}

// MemoryModuleName names a memory sub-circuit after its host model and
// the SRAM cell it stores configuration in.
func MemoryModuleName(lib *arch.Library, model, sramModel arch.ModelID, postfix string) string {
	return lib.ModelName(model) + "_" + lib.ModelName(sramModel) + postfix
}

// SegmentWireSubcktName names the sub-circuit of a routing track wire.
func SegmentWireSubcktName(wireModelName string, segmentID int) string {
	return wireModelName + "_seg" + strconv.Itoa(segmentID)
}

// SegmentWireMidOutputName names the tap between a wire segment and its
// downstream connection-block multiplexer. It must never collide with the
// regular output name of the same track, hence the fixed mid_ prefix.
func SegmentWireMidOutputName(regularOutputName string) string {
	return "mid_" + regularOutputName
}

// ConstValueModuleName names a constant (tie-off) source module.
func ConstValueModuleName(constVal int) string {
	return "const" + strconv.Itoa(constVal)
}

// ConstValueModuleOutputPortName names the output port of a constant
// source. The port is named after the module so both are re-derivable
// from the logical value alone.
func ConstValueModuleOutputPortName(constVal int) string {
	return ConstValueModuleName(constVal)
}

// MuxInputBusPortName names the bus port that collects the datapath
// inputs of one routing-multiplexer instance. The instance id keeps the
// bus unique per instance inside a module.
func MuxInputBusPortName(lib *arch.Library, muxModel arch.ModelID, muxSize, muxInstanceID int) (string, error) {
	postfix := "_" + strconv.Itoa(muxInstanceID) + "_inbus"
	return MuxSubcktName(lib, muxModel, muxSize, postfix)
}

// MuxConfigBusPortName names the bus wired to the configuration ports of
// a routing multiplexer inside a module. Inverted buses carry a _b tail.
func MuxConfigBusPortName(lib *arch.Library, muxModel arch.ModelID, muxSize, busID int, inverted bool) (string, error) {
	postfix := "_configbus" + strconv.Itoa(busID)
	if inverted {
		postfix += "_b"
	}
	return MuxSubcktName(lib, muxModel, muxSize, postfix)
}

// MuxSramPortName names the local wire connecting the SRAM ports of one
// routing-multiplexer instance. The convention is shared by all
// configuration organizations.
func MuxSramPortName(lib *arch.Library, muxModel arch.ModelID, muxSize, muxInstanceID int, kind arch.PortKind) (string, error) {
	prefix, err := MuxSubcktName(lib, muxModel, muxSize, "")
	if err != nil {
		return "", err
	}
	return LocalSramPortName(prefix, muxInstanceID, kind)
}
