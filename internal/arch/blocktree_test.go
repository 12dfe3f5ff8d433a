package arch

import "testing"

func TestBlockTreeParents(t *testing.T) {
	tree := NewBlockTree()

	clb := tree.AddPbType("clb", NoMode)
	defaultMode := tree.AddMode("default", clb)
	fle := tree.AddPbType("fle", defaultMode)
	lutMode := tree.AddMode("n1_lut4", fle)
	lut := tree.AddPbType("lut4", lutMode)

	if tree.NumPbTypes() != 3 || tree.NumModes() != 2 {
		t.Fatalf("arena sizes = %d pb_types, %d modes", tree.NumPbTypes(), tree.NumModes())
	}
	if tree.ParentMode(clb) != NoMode {
		t.Fatalf("root parent mode = %d", tree.ParentMode(clb))
	}
	if tree.ParentPbType(defaultMode) != clb {
		t.Fatalf("ParentPbType(default) = %d", tree.ParentPbType(defaultMode))
	}
	if tree.ParentMode(fle) != defaultMode {
		t.Fatalf("ParentMode(fle) = %d", tree.ParentMode(fle))
	}
	if tree.PbTypeName(lut) != "lut4" || tree.ModeName(lutMode) != "n1_lut4" {
		t.Fatalf("names = %q, %q", tree.PbTypeName(lut), tree.ModeName(lutMode))
	}
}

func TestBlockTreeUpwardWalk(t *testing.T) {
	tree := NewBlockTree()
	root := tree.AddPbType("io", NoMode)
	mode := tree.AddMode("physical", root)
	leaf := tree.AddPbType("iopad", mode)

	// Walk leaf to root through parent links only.
	var path []string
	for pb := leaf; ; {
		path = append(path, tree.PbTypeName(pb))
		m := tree.ParentMode(pb)
		if m == NoMode {
			break
		}
		path = append(path, tree.ModeName(m))
		pb = tree.ParentPbType(m)
	}
	want := []string{"iopad", "physical", "io"}
	if len(path) != len(want) {
		t.Fatalf("walk visited %v", path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("walk visited %v, want %v", path, want)
		}
	}
}
