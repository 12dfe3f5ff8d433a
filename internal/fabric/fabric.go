// Package fabric defines the serializable fabric description that
// drives name generation for a whole device. The description is owned by
// the architecture-loading side of the tool; this package only loads it
// and converts it into the read-only arenas the generators consume.
package fabric

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mosaic-eda/netname/internal/arch"
	"github.com/mosaic-eda/netname/internal/config"
)

// Description captures everything the naming engine needs about one
// fabric target: device geometry, configuration organization, the
// circuit-model catalog and the block hierarchy.
type Description struct {
	DeviceWidth  int    `json:"device_width" yaml:"device_width"`
	DeviceHeight int    `json:"device_height" yaml:"device_height"`
	ChannelWidth int    `json:"channel_width" yaml:"channel_width"`
	SramOrgz     string `json:"sram_orgz" yaml:"sram_orgz"`
	SramModel    string `json:"sram_model" yaml:"sram_model"`

	// CoreBlock and IOBlock name the block filling the core grid and
	// the block ringing the border.
	CoreBlock string `json:"core_block" yaml:"core_block"`
	IOBlock   string `json:"io_block" yaml:"io_block"`

	// Options optionally embeds the writer option record so one file can
	// carry a whole run's inputs.
	Options *config.Options `json:"options,omitempty" yaml:"options,omitempty"`

	Models   []ModelEntry   `json:"models" yaml:"models"`
	PbTypes  []PbTypeEntry  `json:"pb_types,omitempty" yaml:"pb_types,omitempty"`
	Modes    []ModeEntry    `json:"modes,omitempty" yaml:"modes,omitempty"`
	Segments []SegmentEntry `json:"segments,omitempty" yaml:"segments,omitempty"`
	Muxes    []MuxEntry     `json:"muxes,omitempty" yaml:"muxes,omitempty"`
	Decoders []DecoderEntry `json:"decoders,omitempty" yaml:"decoders,omitempty"`
}

// ModelEntry declares one circuit model of the catalog.
type ModelEntry struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
	// Gate refines gate models: "and", "or" or "mux2".
	Gate string `json:"gate,omitempty" yaml:"gate,omitempty"`
	// PassGate names the branch implementation model of a mux model.
	PassGate string `json:"pass_gate,omitempty" yaml:"pass_gate,omitempty"`
}

// PbTypeEntry declares a physical-block-type node. ParentMode refers to
// an earlier ModeEntry by name; the root leaves it empty.
type PbTypeEntry struct {
	Name       string `json:"name" yaml:"name"`
	ParentMode string `json:"parent_mode,omitempty" yaml:"parent_mode,omitempty"`
}

// ModeEntry declares a mode node under an earlier pb-type.
type ModeEntry struct {
	Name         string `json:"name" yaml:"name"`
	ParentPbType string `json:"parent_pb_type" yaml:"parent_pb_type"`
}

// SegmentEntry declares routing wire segments of one wire model.
type SegmentEntry struct {
	Model string `json:"model" yaml:"model"`
	Count int    `json:"count" yaml:"count"`
}

// MuxEntry declares the routing multiplexer flavors built from a model.
type MuxEntry struct {
	Model string `json:"model" yaml:"model"`
	Sizes []int  `json:"sizes" yaml:"sizes"`
}

// DecoderEntry declares a mux local decoder.
type DecoderEntry struct {
	AddrSize int `json:"addr_size" yaml:"addr_size"`
	DataSize int `json:"data_size" yaml:"data_size"`
}

// Load reads a fabric description from a JSON or YAML file, selected by
// extension.
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fabric description: %w", err)
	}

	var desc Description
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("parsing fabric description: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("parsing fabric description: %w", err)
		}
	}

	if err := desc.check(); err != nil {
		return nil, err
	}
	return &desc, nil
}

func (d *Description) check() error {
	if d.DeviceWidth < 3 || d.DeviceHeight < 3 {
		return fmt.Errorf("device size %dx%d: need at least 3x3 for an I/O ring around a core",
			d.DeviceWidth, d.DeviceHeight)
	}
	if d.ChannelWidth < 1 {
		return fmt.Errorf("channel width %d: need at least one track", d.ChannelWidth)
	}
	if _, err := arch.ParseSramOrgz(d.SramOrgz); err != nil {
		return err
	}
	return nil
}

// Orgz returns the parsed configuration organization.
func (d *Description) Orgz() (arch.SramOrgz, error) {
	return arch.ParseSramOrgz(d.SramOrgz)
}

// DeviceSize returns the grid extent as a coordinate.
func (d *Description) DeviceSize() arch.Coord {
	return arch.Coord{X: d.DeviceWidth, Y: d.DeviceHeight}
}

// BuildLibrary converts the model entries into a catalog, resolving
// pass-gate references by name.
func (d *Description) BuildLibrary() (*arch.Library, error) {
	lib := arch.NewLibrary()

	for _, entry := range d.Models {
		typ, err := arch.ParseModelType(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", entry.Name, err)
		}
		if typ == arch.ModelGate {
			gate, err := arch.ParseGateType(entry.Gate)
			if err != nil {
				return nil, fmt.Errorf("model %q: %w", entry.Name, err)
			}
			lib.AddGateModel(entry.Name, gate)
			continue
		}
		lib.AddModel(entry.Name, typ)
	}

	// Second pass: pass-gate links may point at models declared later.
	for _, entry := range d.Models {
		if entry.PassGate == "" {
			continue
		}
		mux, _ := lib.ModelByName(entry.Name)
		passGate, ok := lib.ModelByName(entry.PassGate)
		if !ok {
			return nil, fmt.Errorf("model %q: unknown pass-gate model %q", entry.Name, entry.PassGate)
		}
		lib.SetPassGateLogicModel(mux, passGate)
	}

	return lib, nil
}

// BuildBlockTree converts the pb-type and mode entries into the
// hierarchy arenas. Entries must be listed parents-first.
func (d *Description) BuildBlockTree() (*arch.BlockTree, error) {
	tree := arch.NewBlockTree()
	pbByName := make(map[string]arch.PbTypeID)
	modeByName := make(map[string]arch.ModeID)

	// pb-types and modes interleave in a real hierarchy; resolve them
	// in declaration order so each parent is already known.
	modeIdx := 0
	for _, entry := range d.PbTypes {
		parent := arch.NoMode
		if entry.ParentMode != "" {
			// Admit any modes declared before this pb-type.
			for modeIdx < len(d.Modes) {
				me := d.Modes[modeIdx]
				parentPb, ok := pbByName[me.ParentPbType]
				if !ok {
					break
				}
				modeByName[me.Name] = tree.AddMode(me.Name, parentPb)
				modeIdx++
			}
			id, ok := modeByName[entry.ParentMode]
			if !ok {
				return nil, fmt.Errorf("pb_type %q: unknown parent mode %q", entry.Name, entry.ParentMode)
			}
			parent = id
		}
		pbByName[entry.Name] = tree.AddPbType(entry.Name, parent)
	}

	for ; modeIdx < len(d.Modes); modeIdx++ {
		me := d.Modes[modeIdx]
		parentPb, ok := pbByName[me.ParentPbType]
		if !ok {
			return nil, fmt.Errorf("mode %q: unknown parent pb_type %q", me.Name, me.ParentPbType)
		}
		modeByName[me.Name] = tree.AddMode(me.Name, parentPb)
	}

	return tree, nil
}
