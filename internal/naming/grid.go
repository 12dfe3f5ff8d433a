package naming

import (
	"strconv"

	"github.com/mosaic-eda/netname/internal/arch"
)

// TopModuleName is the module name of the full fabric.
const TopModuleName = "fpga_top"

// TopNetlistName names the netlist holding the full fabric.
func TopNetlistName(postfix string) string {
	return TopModuleName + postfix
}

// GlobalIOPortName names a global I/O port of the fabric after the pad
// circuit model driving it.
func GlobalIOPortName(prefix string, lib *arch.Library, model arch.ModelID) string {
	return prefix + lib.ModelName(model)
}

// GridBlockNetlistName names the netlist of a grid block. I/O blocks on
// the fabric border carry their side so the four flavors stay distinct.
func GridBlockNetlistName(blockName string, isBlockIO bool, ioSide arch.Side, postfix string) string {
	name := blockName
	if isBlockIO {
		name += "_" + ioSide.String()
	}
	return name + postfix
}

// GridBlockModuleName names the module of a grid block.
func GridBlockModuleName(prefix, blockName string, isBlockIO bool, ioSide arch.Side) string {
	return prefix + GridBlockNetlistName(blockName, isBlockIO, ioSide, "")
}

// GridPortName names a pin port of a grid block. The top netlist keys
// ports by coordinate, height, side and pin; block-level netlists key by
// side, height and pin only.
func GridPortName(coord arch.Coord, height int, side arch.Side, pinID int, forTopNetlist bool) string {
	if forTopNetlist {
		name := "grid_" + strconv.Itoa(coord.X) + "__" + strconv.Itoa(coord.Y) + "__pin_"
		name += strconv.Itoa(height) + "__" + strconv.Itoa(int(side)) + "__" + strconv.Itoa(pinID) + "_"
		return name
	}
	return side.String() + "_height_" + strconv.Itoa(height) + "__pin_" + strconv.Itoa(pinID) + "_"
}

// PhysicalBlockModuleName names a physical-block-type module uniquely
// over the block hierarchy. Starting at the given node it walks the
// child-to-parent chain, prepending mode[<mode>]_ and then the parent
// block-type name for each edge, so distinct tree positions always yield
// distinct token sequences. The root gets a _mode[<root>] suffix to keep
// the token shape uniform despite having no enclosing mode.
func PhysicalBlockModuleName(prefix string, tree *arch.BlockTree, pbType arch.PbTypeID) string {
	name := tree.PbTypeName(pbType)

	current := pbType
	for {
		parentMode := tree.ParentMode(current)
		if parentMode == arch.NoMode {
			break
		}

		name = "mode[" + tree.ModeName(parentMode) + "]_" + name

		current = tree.ParentPbType(parentMode)
		if current == arch.NoPbType {
			break
		}

		name = tree.PbTypeName(current) + "_" + name
	}

	if tree.ParentMode(pbType) == arch.NoMode {
		name += "_mode[" + tree.PbTypeName(pbType) + "]"
	}

	return prefix + name
}

// GridBorderSide returns the device border a grid coordinate sits on.
// Core coordinates are a contract violation: only the I/O ring has a
// border side.
func GridBorderSide(deviceSize arch.Coord, coord arch.Coord) (arch.Side, error) {
	switch {
	case coord.Y == deviceSize.Y-1:
		return arch.Top, nil
	case coord.X == deviceSize.X-1:
		return arch.Right, nil
	case coord.Y == 0:
		return arch.Bottom, nil
	case coord.X == 0:
		return arch.Left, nil
	}
	return 0, invalidf("grid (%d,%d) is not on the border of a %dx%d device",
		coord.X, coord.Y, deviceSize.X, deviceSize.Y)
}

// IsCoreGridOnBorderSide reports whether a core grid coordinate touches
// the given device border, i.e. sits in the outermost core ring on that
// side.
func IsCoreGridOnBorderSide(deviceSize arch.Coord, coord arch.Coord, side arch.Side) bool {
	switch side {
	case arch.Top:
		return coord.Y == deviceSize.Y-2
	case arch.Right:
		return coord.X == deviceSize.X-2
	case arch.Bottom:
		return coord.Y == 1
	case arch.Left:
		return coord.X == 1
	}
	return false
}
