// Package manifest builds the relational name tables for one fabric
// target: every module, port and instance name the netlist writers will
// emit, produced by the generators and nothing else. Downstream passes
// audit these tables instead of parsing netlist text.
package manifest

import (
	"fmt"
	"sort"

	"github.com/mosaic-eda/netname/internal/arch"
	"github.com/mosaic-eda/netname/internal/fabric"
	"github.com/mosaic-eda/netname/internal/naming"
)

// Tables is the relational name model. Each slice is a relation with
// flat rows.
type Tables struct {
	Modules   []ModuleRow   `json:"modules"`
	Ports     []PortRow     `json:"ports"`
	Instances []InstanceRow `json:"instances"`
}

// ModuleRow is one module definition. Coordinate-addressed modules carry
// their grid position; the rest use -1.
type ModuleRow struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// PortRow is one port of a module.
type PortRow struct {
	Module string `json:"module"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
}

// InstanceRow is one instantiation in the top-level netlist.
type InstanceRow struct {
	Name   string `json:"name"`
	Module string `json:"module"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// gridPrefix starts every grid and physical-block module name.
const gridPrefix = "grid_"

// Build produces the complete name manifest for a fabric description.
// The walk is deterministic: two builds of the same description yield
// identical tables.
func Build(desc *fabric.Description) (Tables, error) {
	var t Tables

	lib, err := desc.BuildLibrary()
	if err != nil {
		return t, err
	}
	tree, err := desc.BuildBlockTree()
	if err != nil {
		return t, err
	}
	orgz, err := desc.Orgz()
	if err != nil {
		return t, err
	}
	sramModel, ok := lib.ModelByName(desc.SramModel)
	if !ok {
		return t, fmt.Errorf("fabric references unknown sram model %q", desc.SramModel)
	}

	t.addTop(lib, sramModel, orgz)
	t.addConstSources()
	if err := t.addCircuitModules(desc, lib, sramModel, orgz); err != nil {
		return t, err
	}
	if err := t.addRouting(desc); err != nil {
		return t, err
	}
	t.addGrids(desc, tree)

	sort.Slice(t.Modules, func(i, j int) bool { return t.Modules[i].Name < t.Modules[j].Name })
	sort.Slice(t.Ports, func(i, j int) bool {
		if t.Ports[i].Module != t.Ports[j].Module {
			return t.Ports[i].Module < t.Ports[j].Module
		}
		return t.Ports[i].Name < t.Ports[j].Name
	})
	sort.Slice(t.Instances, func(i, j int) bool { return t.Instances[i].Name < t.Instances[j].Name })

	return t, nil
}

func (t *Tables) addModule(name, kind string) {
	t.Modules = append(t.Modules, ModuleRow{Name: name, Kind: kind, X: -1, Y: -1})
}

func (t *Tables) addModuleAt(name, kind string, coord arch.Coord) {
	t.Modules = append(t.Modules, ModuleRow{Name: name, Kind: kind, X: coord.X, Y: coord.Y})
}

func (t *Tables) addPort(module, name, kind string) {
	t.Ports = append(t.Ports, PortRow{Module: module, Name: name, Kind: kind})
}

func (t *Tables) addTop(lib *arch.Library, sramModel arch.ModelID, orgz arch.SramOrgz) {
	t.addModule(naming.TopModuleName, "top")

	switch orgz {
	case arch.SramScanChain:
		t.addPort(naming.TopModuleName, naming.ConfigChainHead, "config")
		t.addPort(naming.TopModuleName, naming.ConfigChainTail, "config")
	case arch.SramStandalone:
		for _, kind := range []arch.PortKind{arch.PortInput, arch.PortOutput} {
			name, err := naming.SramPortName(lib, sramModel, orgz, kind)
			if err == nil {
				t.addPort(naming.TopModuleName, name, "config")
			}
		}
	case arch.SramMemoryBank:
		for _, kind := range []arch.PortKind{arch.PortBL, arch.PortWL, arch.PortBLB, arch.PortWLB} {
			name, err := naming.SramPortName(lib, sramModel, orgz, kind)
			if err == nil {
				t.addPort(naming.TopModuleName, name, "config")
			}
		}
	}
}

func (t *Tables) addConstSources() {
	for _, v := range []int{0, 1} {
		module := naming.ConstValueModuleName(v)
		t.addModule(module, "const")
		t.addPort(module, naming.ConstValueModuleOutputPortName(v), "output")
	}
}

func (t *Tables) addCircuitModules(desc *fabric.Description, lib *arch.Library, sramModel arch.ModelID, orgz arch.SramOrgz) error {
	localKinds := []arch.PortKind{arch.PortInput, arch.PortOutput}
	if orgz == arch.SramScanChain {
		localKinds = append(localKinds, arch.PortInout)
	}

	for _, mux := range desc.Muxes {
		model, ok := lib.ModelByName(mux.Model)
		if !ok {
			return fmt.Errorf("mux entry references unknown model %q", mux.Model)
		}
		for _, size := range mux.Sizes {
			module, err := naming.MuxSubcktName(lib, model, size, "")
			if err != nil {
				return err
			}
			t.addModule(module, "mux")

			memory := naming.MemoryModuleName(lib, model, sramModel,
				fmt.Sprintf("_size%d_mem", size))
			t.addModule(memory, "memory")

			inbus, err := naming.MuxInputBusPortName(lib, model, size, 0)
			if err != nil {
				return err
			}
			t.addPort(module, inbus, "inbus")

			for _, inverted := range []bool{false, true} {
				bus, err := naming.MuxConfigBusPortName(lib, model, size, 0, inverted)
				if err != nil {
					return err
				}
				t.addPort(module, bus, "configbus")
			}

			for _, kind := range []arch.PortKind{arch.PortInput, arch.PortOutput} {
				wire, err := naming.MuxSramPortName(lib, model, size, 0, kind)
				if err != nil {
					return err
				}
				t.addPort(module, wire, "sram_wire")
			}

			for _, kind := range localKinds {
				bus, err := naming.SramLocalPortName(lib, sramModel, orgz, kind)
				if err != nil {
					return err
				}
				t.addPort(module, bus, "local_bus")
			}
		}
	}

	for _, dec := range desc.Decoders {
		module := naming.MuxLocalDecoderSubcktName(dec.AddrSize, dec.DataSize)
		t.addModule(module, "decoder")
		t.addPort(module, naming.DecoderAddrPort, "input")
		t.addPort(module, naming.DecoderDataPort, "output")
		t.addPort(module, naming.DecoderDataInvPort, "output")
	}

	for _, seg := range desc.Segments {
		for id := 0; id < seg.Count; id++ {
			t.addModule(naming.SegmentWireSubcktName(seg.Model, id), "segment")
		}
	}

	return nil
}

// addRouting emits the coordinate-addressed routing modules: switch
// blocks at every channel crossing, connection blocks and channels in
// the core region, with per-track ports on each channel.
func (t *Tables) addRouting(desc *fabric.Description) error {
	instanceID := 0

	for x := 0; x < desc.DeviceWidth-1; x++ {
		for y := 0; y < desc.DeviceHeight-1; y++ {
			coord := arch.Coord{X: x, Y: y}
			module := naming.SwitchBlockModuleName(coord)
			t.addModuleAt(module, "sb", coord)
			t.Instances = append(t.Instances, InstanceRow{
				Name:   naming.RoutingBlockNetlistNameAt("sb_", coord, "_"),
				Module: module,
				X:      coord.X,
				Y:      coord.Y,
			})
		}
	}

	for _, chanType := range []arch.ChanType{arch.ChanX, arch.ChanY} {
		cbKind := "cbx"
		if chanType == arch.ChanY {
			cbKind = "cby"
		}

		for x := 1; x < desc.DeviceWidth-1; x++ {
			for y := 1; y < desc.DeviceHeight-1; y++ {
				coord := arch.Coord{X: x, Y: y}

				module, err := naming.RoutingChannelModuleNameAt(chanType, coord)
				if err != nil {
					return err
				}
				t.addModuleAt(module, chanType.String(), coord)

				seqName, err := naming.RoutingChannelModuleName(chanType, instanceID)
				if err != nil {
					return err
				}
				instanceID++
				t.Instances = append(t.Instances, InstanceRow{
					Name:   seqName,
					Module: module,
					X:      coord.X,
					Y:      coord.Y,
				})

				for track := 0; track < desc.ChannelWidth; track++ {
					for _, dir := range []arch.PortDirection{arch.In, arch.Out} {
						port, err := naming.RoutingTrackPortName(chanType, coord, track, dir)
						if err != nil {
							return err
						}
						t.addPort(module, port, "track_"+dir.String())
					}
					mid, err := naming.RoutingTrackMidOutputPortName(chanType, coord, track)
					if err != nil {
						return err
					}
					t.addPort(module, mid, "track_midout")
				}

				cb, err := naming.ConnectionBlockModuleName(chanType, coord)
				if err != nil {
					return err
				}
				t.addModuleAt(cb, cbKind, coord)

				cbNetlist, err := naming.ConnectionBlockNetlistName(chanType, coord, "_cb")
				if err != nil {
					return err
				}
				t.Instances = append(t.Instances, InstanceRow{
					Name:   cbNetlist,
					Module: cb,
					X:      coord.X,
					Y:      coord.Y,
				})
			}
		}
	}

	return nil
}

// addGrids emits one module per distinct grid flavor (core block plus
// the four border I/O flavors), per-coordinate instances, and the
// physical-block hierarchy modules.
func (t *Tables) addGrids(desc *fabric.Description, tree *arch.BlockTree) {
	deviceSize := desc.DeviceSize()

	coreModule := naming.GridBlockModuleName(gridPrefix, desc.CoreBlock, false, arch.Top)
	t.addModule(coreModule, "grid")
	for _, side := range []arch.Side{arch.Top, arch.Right, arch.Bottom, arch.Left} {
		t.addPort(coreModule, naming.GridPortName(arch.Coord{}, 0, side, 0, false), "pin")
	}

	ioModules := make(map[arch.Side]string)
	for _, side := range []arch.Side{arch.Top, arch.Right, arch.Bottom, arch.Left} {
		module := naming.GridBlockModuleName(gridPrefix, desc.IOBlock, true, side)
		ioModules[side] = module
		t.addModule(module, "grid_io")
	}

	for x := 0; x < desc.DeviceWidth; x++ {
		for y := 0; y < desc.DeviceHeight; y++ {
			coord := arch.Coord{X: x, Y: y}

			side, err := naming.GridBorderSide(deviceSize, coord)
			if err != nil {
				// Core position.
				t.Instances = append(t.Instances, InstanceRow{
					Name:   naming.RoutingBlockNetlistNameAt(coreModule+"_", coord, "_"),
					Module: coreModule,
					X:      coord.X,
					Y:      coord.Y,
				})
				pinSide := arch.Top
				for _, s := range []arch.Side{arch.Top, arch.Right, arch.Bottom, arch.Left} {
					if naming.IsCoreGridOnBorderSide(deviceSize, coord, s) {
						pinSide = s
						break
					}
				}
				t.addPort(naming.TopModuleName, naming.GridPortName(coord, 0, pinSide, 0, true), "grid_pin")
				continue
			}

			// Corners stay empty; the I/O ring covers the four edges.
			if isCorner(deviceSize, coord) {
				continue
			}
			module := ioModules[side]
			t.Instances = append(t.Instances, InstanceRow{
				Name:   naming.RoutingBlockNetlistNameAt(module+"_", coord, "_"),
				Module: module,
				X:      coord.X,
				Y:      coord.Y,
			})
		}
	}

	for id := 0; id < tree.NumPbTypes(); id++ {
		t.addModule(naming.PhysicalBlockModuleName(gridPrefix, tree, arch.PbTypeID(id)), "pb")
	}
}

func isCorner(deviceSize arch.Coord, coord arch.Coord) bool {
	onX := coord.X == 0 || coord.X == deviceSize.X-1
	onY := coord.Y == 0 || coord.Y == deviceSize.Y-1
	return onX && onY
}
