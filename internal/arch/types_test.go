package arch

import "testing"

func TestSideString(t *testing.T) {
	want := map[Side]string{Top: "top", Right: "right", Bottom: "bottom", Left: "left"}
	for side, name := range want {
		if side.String() != name {
			t.Fatalf("Side(%d).String() = %q, want %q", int(side), side.String(), name)
		}
		if !side.Valid() {
			t.Fatalf("Side(%d) reported invalid", int(side))
		}
	}
	if Side(NumSides).Valid() {
		t.Fatal("Side(NumSides) reported valid")
	}
	if Side(-1).Valid() {
		t.Fatal("Side(-1) reported valid")
	}
}

func TestParseSramOrgz(t *testing.T) {
	for token, want := range map[string]SramOrgz{
		"standalone":  SramStandalone,
		"scan_chain":  SramScanChain,
		"memory_bank": SramMemoryBank,
	} {
		got, err := ParseSramOrgz(token)
		if err != nil {
			t.Fatalf("ParseSramOrgz(%q): %v", token, err)
		}
		if got != want {
			t.Fatalf("ParseSramOrgz(%q) = %v, want %v", token, got, want)
		}
		if got.String() != token {
			t.Fatalf("%v.String() = %q, want %q", got, got.String(), token)
		}
	}
	if _, err := ParseSramOrgz("frame_based"); err == nil {
		t.Fatal("ParseSramOrgz accepted unknown token")
	}
}

func TestChanTypeString(t *testing.T) {
	if ChanX.String() != "chanx" || ChanY.String() != "chany" {
		t.Fatalf("channel strings = %q, %q", ChanX.String(), ChanY.String())
	}
}
