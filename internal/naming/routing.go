package naming

import (
	"strconv"

	"github.com/mosaic-eda/netname/internal/arch"
)

func chanPrefix(chanType arch.ChanType) (string, error) {
	switch chanType {
	case arch.ChanX:
		return "chanx", nil
	case arch.ChanY:
		return "chany", nil
	}
	return "", invalidf("routing channel type %d", int(chanType))
}

func cbPrefix(cbType arch.ChanType) (string, error) {
	switch cbType {
	case arch.ChanX:
		return "cbx_", nil
	case arch.ChanY:
		return "cby_", nil
	}
	return "", invalidf("connection block type %d", int(cbType))
}

// RoutingBlockNetlistName names the netlist of a unique routing block
// (channel, connection block or switch block) by its flat sequence id.
func RoutingBlockNetlistName(prefix string, blockID int, postfix string) string {
	return prefix + strconv.Itoa(blockID) + postfix
}

// RoutingBlockNetlistNameAt names the netlist of a routing block by its
// grid coordinate.
func RoutingBlockNetlistNameAt(prefix string, coord arch.Coord, postfix string) string {
	return prefix + strconv.Itoa(coord.X) + "_" + strconv.Itoa(coord.Y) + postfix
}

// ConnectionBlockNetlistName names the netlist of a connection block at a
// grid coordinate.
func ConnectionBlockNetlistName(cbType arch.ChanType, coord arch.Coord, postfix string) (string, error) {
	name, err := ConnectionBlockModuleName(cbType, coord)
	if err != nil {
		return "", err
	}
	return name + postfix, nil
}

// RoutingChannelModuleName names a unique routing channel by its flat
// sequence id. The sequence form and the coordinate form address
// mutually exclusive netlist targets; keeping the two disjoint is a
// caller-level invariant.
func RoutingChannelModuleName(chanType arch.ChanType, blockID int) (string, error) {
	prefix, err := chanPrefix(chanType)
	if err != nil {
		return "", err
	}
	return prefix + "_" + strconv.Itoa(blockID) + "_", nil
}

// RoutingChannelModuleNameAt names a routing channel by its grid
// coordinate.
func RoutingChannelModuleNameAt(chanType arch.ChanType, coord arch.Coord) (string, error) {
	prefix, err := chanPrefix(chanType)
	if err != nil {
		return "", err
	}
	return prefix + "_" + strconv.Itoa(coord.X) + "_" + strconv.Itoa(coord.Y) + "_", nil
}

// RoutingTrackPortName names one track port of a routing channel.
func RoutingTrackPortName(chanType arch.ChanType, coord arch.Coord, trackID int, direction arch.PortDirection) (string, error) {
	prefix, err := chanPrefix(chanType)
	if err != nil {
		return "", err
	}

	name := prefix + "_" + strconv.Itoa(coord.X) + "__" + strconv.Itoa(coord.Y) + "__"

	switch direction {
	case arch.In:
		name += "in_"
	case arch.Out:
		name += "out_"
	default:
		return "", invalidf("routing track port direction %d", int(direction))
	}

	return name + strconv.Itoa(trackID) + "_", nil
}

// RoutingTrackMidOutputPortName names the middle output of a routing
// track: the tap feeding the connection-block multiplexer, distinct from
// the regular in/out ports of the same track.
func RoutingTrackMidOutputPortName(chanType arch.ChanType, coord arch.Coord, trackID int) (string, error) {
	prefix, err := chanPrefix(chanType)
	if err != nil {
		return "", err
	}
	name := prefix + "_" + strconv.Itoa(coord.X) + "__" + strconv.Itoa(coord.Y) + "__midout_"
	return name + strconv.Itoa(trackID) + "_", nil
}

// SwitchBlockModuleName names a switch block at a grid coordinate.
func SwitchBlockModuleName(coord arch.Coord) string {
	return "sb_" + strconv.Itoa(coord.X) + "__" + strconv.Itoa(coord.Y) + "_"
}

// ConnectionBlockModuleName names a connection block at a grid
// coordinate.
func ConnectionBlockModuleName(cbType arch.ChanType, coord arch.Coord) (string, error) {
	prefix, err := cbPrefix(cbType)
	if err != nil {
		return "", err
	}
	return prefix + strconv.Itoa(coord.X) + "__" + strconv.Itoa(coord.Y) + "_", nil
}
