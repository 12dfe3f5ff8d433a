package naming

import (
	"errors"
	"testing"

	"github.com/mosaic-eda/netname/internal/arch"
)

func sramLibrary(t *testing.T) (*arch.Library, arch.ModelID) {
	t.Helper()
	lib := arch.NewLibrary()
	return lib, lib.AddModel("sram6t", arch.ModelSRAM)
}

// Every organization accepts exactly the port kinds of its row and
// rejects every other kind.
func TestSramPortNameTable(t *testing.T) {
	lib, sram := sramLibrary(t)

	allKinds := []arch.PortKind{
		arch.PortInput, arch.PortOutput, arch.PortInout,
		arch.PortBL, arch.PortWL, arch.PortBLB, arch.PortWLB,
	}

	expected := map[arch.SramOrgz]map[arch.PortKind]string{
		arch.SramStandalone: {
			arch.PortInput:  "sram6t_out",
			arch.PortOutput: "sram6t_outb",
		},
		arch.SramScanChain: {
			arch.PortInput:  "sram6t_ccff_head",
			arch.PortOutput: "sram6t_ccff_tail",
		},
		arch.SramMemoryBank: {
			arch.PortBL:  "sram6t_bl",
			arch.PortWL:  "sram6t_wl",
			arch.PortBLB: "sram6t_blb",
			arch.PortWLB: "sram6t_wlb",
		},
	}

	for orgz, row := range expected {
		for _, kind := range allKinds {
			got, err := SramPortName(lib, sram, orgz, kind)
			want, listed := row[kind]
			if listed {
				if err != nil {
					t.Fatalf("%s/%s: unexpected error %v", orgz, kind, err)
				}
				if got != want {
					t.Fatalf("%s/%s: got %q, want %q", orgz, kind, got, want)
				}
				continue
			}
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Fatalf("%s/%s: want ErrInvalidDescriptor, got %v (%q)", orgz, kind, err, got)
			}
		}
	}

	if _, err := SramPortName(lib, sram, arch.SramOrgz(42), arch.PortInput); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("bad organization: want ErrInvalidDescriptor, got %v", err)
	}
}

func TestSramLocalPortNameTable(t *testing.T) {
	lib, sram := sramLibrary(t)

	allKinds := []arch.PortKind{
		arch.PortInput, arch.PortOutput, arch.PortInout,
		arch.PortBL, arch.PortWL, arch.PortBLB, arch.PortWLB,
	}

	expected := map[arch.SramOrgz]map[arch.PortKind]string{
		arch.SramStandalone: {
			arch.PortInput:  "sram6t_out_local_bus",
			arch.PortOutput: "sram6t_outb_local_bus",
		},
		arch.SramScanChain: {
			arch.PortInput:  "sram6t_ccff_in_local_bus",
			arch.PortOutput: "sram6t_ccff_out_local_bus",
			arch.PortInout:  "sram6t_ccff_outb_local_bus",
		},
		arch.SramMemoryBank: {
			arch.PortInput:  "sram6t_out_local_bus",
			arch.PortOutput: "sram6t_outb_local_bus",
		},
	}

	for orgz, row := range expected {
		for _, kind := range allKinds {
			got, err := SramLocalPortName(lib, sram, orgz, kind)
			want, listed := row[kind]
			if listed {
				if err != nil {
					t.Fatalf("%s/%s: unexpected error %v", orgz, kind, err)
				}
				if got != want {
					t.Fatalf("%s/%s: got %q, want %q", orgz, kind, got, want)
				}
				continue
			}
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Fatalf("%s/%s: want ErrInvalidDescriptor, got %v (%q)", orgz, kind, err, got)
			}
		}
	}
}

func TestReservedSramPortName(t *testing.T) {
	got, err := ReservedSramPortName(arch.PortBLB)
	if err != nil {
		t.Fatalf("blb: %v", err)
	}
	if got != "reserved_blb" {
		t.Fatalf("blb: got %q", got)
	}

	got, err = ReservedSramPortName(arch.PortWL)
	if err != nil {
		t.Fatalf("wl: %v", err)
	}
	if got != "reserved_wl" {
		t.Fatalf("wl: got %q", got)
	}

	// The reserved ports are unrelated to the memory-bank grammar: BL
	// is legal there but not here.
	if _, err := ReservedSramPortName(arch.PortBL); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("bl: want ErrInvalidDescriptor, got %v", err)
	}
}

func TestFormalVerificationSramPortName(t *testing.T) {
	lib, sram := sramLibrary(t)
	if got := FormalVerificationSramPortName(lib, sram); got != "sram6t_out_fm" {
		t.Fatalf("got %q", got)
	}
}

func TestLocalSramPortName(t *testing.T) {
	got, err := LocalSramPortName("mux_tree_size4", 3, arch.PortInput)
	if err != nil {
		t.Fatalf("input: %v", err)
	}
	if got != "mux_tree_size4_3_out" {
		t.Fatalf("input: got %q", got)
	}

	got, err = LocalSramPortName("mux_tree_size4", 3, arch.PortOutput)
	if err != nil {
		t.Fatalf("output: %v", err)
	}
	if got != "mux_tree_size4_3_outb" {
		t.Fatalf("output: got %q", got)
	}

	if _, err := LocalSramPortName("p", 0, arch.PortWL); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("wl: want ErrInvalidDescriptor, got %v", err)
	}
}

func TestFixedConfigTokens(t *testing.T) {
	fixed := map[string]string{
		ConfigChainHead:       "ccff_head",
		ConfigChainTail:       "ccff_tail",
		ConfigChainDataOut:    "mem_out",
		ConfigChainDataOutInv: "mem_outb",
		DecoderAddrPort:       "addr",
		DecoderDataPort:       "data",
		DecoderDataInvPort:    "data_inv",
		LocalConfigBus:        "config_bus",
	}
	for got, want := range fixed {
		if got != want {
			t.Fatalf("fixed token: got %q, want %q", got, want)
		}
	}
}
