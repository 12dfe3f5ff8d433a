package naming

import (
	"errors"
	"testing"

	"github.com/mosaic-eda/netname/internal/arch"
)

func TestGridBlockNames(t *testing.T) {
	if got := GridBlockNetlistName("clb", false, arch.Top, "_1__2_"); got != "clb_1__2_" {
		t.Fatalf("core netlist: got %q", got)
	}
	if got := GridBlockNetlistName("io", true, arch.Left, ""); got != "io_left" {
		t.Fatalf("io netlist: got %q", got)
	}
	if got := GridBlockModuleName("grid_", "io", true, arch.Bottom); got != "grid_io_bottom" {
		t.Fatalf("io module: got %q", got)
	}
	if got := GridBlockModuleName("grid_", "clb", false, arch.Top); got != "grid_clb" {
		t.Fatalf("core module: got %q", got)
	}
}

func TestGridPortName(t *testing.T) {
	got := GridPortName(arch.Coord{X: 2, Y: 3}, 1, arch.Right, 6, true)
	if got != "grid_2__3__pin_1__1__6_" {
		t.Fatalf("top form: got %q", got)
	}

	got = GridPortName(arch.Coord{X: 2, Y: 3}, 1, arch.Right, 6, false)
	if got != "right_height_1__pin_6_" {
		t.Fatalf("block form: got %q", got)
	}
}

func TestPhysicalBlockModuleNameRoot(t *testing.T) {
	tree := arch.NewBlockTree()
	root := tree.AddPbType("clb", arch.NoMode)

	if got := PhysicalBlockModuleName("", tree, root); got != "clb_mode[clb]" {
		t.Fatalf("root symmetry: got %q", got)
	}
}

func TestPhysicalBlockModuleNameHierarchy(t *testing.T) {
	tree := arch.NewBlockTree()
	root := tree.AddPbType("clb", arch.NoMode)
	modeA := tree.AddMode("arith", root)
	modeB := tree.AddMode("logic", root)
	childX := tree.AddPbType("adder", modeA)
	childY := tree.AddPbType("ble", modeB)

	nameX := PhysicalBlockModuleName("pfx_", tree, childX)
	nameY := PhysicalBlockModuleName("pfx_", tree, childY)
	nameRoot := PhysicalBlockModuleName("pfx_", tree, root)

	if nameX != "pfx_clb_mode[arith]_adder" {
		t.Fatalf("childX: got %q", nameX)
	}
	if nameY != "pfx_clb_mode[logic]_ble" {
		t.Fatalf("childY: got %q", nameY)
	}
	if nameX == nameY || nameX == nameRoot || nameY == nameRoot {
		t.Fatalf("hierarchy names must be pairwise distinct: %q %q %q", nameX, nameY, nameRoot)
	}
}

func TestPhysicalBlockModuleNameDeepHierarchy(t *testing.T) {
	tree := arch.NewBlockTree()
	root := tree.AddPbType("clb", arch.NoMode)
	fle := tree.AddPbType("fle", tree.AddMode("default", root))
	lut := tree.AddPbType("lut4", tree.AddMode("n1_lut4", fle))

	got := PhysicalBlockModuleName("grid_", tree, lut)
	want := "grid_clb_mode[default]_fle_mode[n1_lut4]_lut4"
	if got != want {
		t.Fatalf("deep hierarchy: got %q, want %q", got, want)
	}
}

func TestGridBorderSide(t *testing.T) {
	device := arch.Coord{X: 6, Y: 5}

	cases := []struct {
		coord arch.Coord
		side  arch.Side
	}{
		{arch.Coord{X: 2, Y: 4}, arch.Top},
		{arch.Coord{X: 5, Y: 2}, arch.Right},
		{arch.Coord{X: 3, Y: 0}, arch.Bottom},
		{arch.Coord{X: 0, Y: 2}, arch.Left},
	}
	for _, tc := range cases {
		side, err := GridBorderSide(device, tc.coord)
		if err != nil {
			t.Fatalf("(%d,%d): %v", tc.coord.X, tc.coord.Y, err)
		}
		if side != tc.side {
			t.Fatalf("(%d,%d): got %s, want %s", tc.coord.X, tc.coord.Y, side, tc.side)
		}
	}

	if _, err := GridBorderSide(device, arch.Coord{X: 2, Y: 2}); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("core coordinate: want ErrInvalidDescriptor, got %v", err)
	}
}

func TestIsCoreGridOnBorderSide(t *testing.T) {
	device := arch.Coord{X: 6, Y: 5}

	if !IsCoreGridOnBorderSide(device, arch.Coord{X: 2, Y: 3}, arch.Top) {
		t.Fatal("y=3 should touch top on a height-5 device")
	}
	if !IsCoreGridOnBorderSide(device, arch.Coord{X: 1, Y: 2}, arch.Left) {
		t.Fatal("x=1 should touch left")
	}
	if IsCoreGridOnBorderSide(device, arch.Coord{X: 2, Y: 2}, arch.Top) {
		t.Fatal("y=2 should not touch top on a height-5 device")
	}
	if IsCoreGridOnBorderSide(device, arch.Coord{X: 2, Y: 2}, arch.Side(7)) {
		t.Fatal("unknown side should never match")
	}
}

func TestTopNames(t *testing.T) {
	if TopModuleName != "fpga_top" {
		t.Fatalf("top module: got %q", TopModuleName)
	}
	if got := TopNetlistName("_formal"); got != "fpga_top_formal" {
		t.Fatalf("top netlist: got %q", got)
	}
}

func TestGlobalIOPortName(t *testing.T) {
	lib := arch.NewLibrary()
	pad := lib.AddModel("iopad", arch.ModelGate)
	if got := GlobalIOPortName("gfpga_pad_", lib, pad); got != "gfpga_pad_iopad" {
		t.Fatalf("got %q", got)
	}
}
