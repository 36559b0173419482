package cpu

import (
	"testing"

	"github.com/rlowe/m8/bits"
	"github.com/rlowe/m8/isa"
)

func blankImage() []byte {
	return make([]byte, isa.ProgramMemorySize)
}

func program(words ...uint8) []byte {
	img := blankImage()
	copy(img, words)
	return img
}

func enc(inst isa.Instruction) uint8 {
	return uint8(isa.Encode(inst).Uint64())
}

func TestLdiOutThreeTick(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.LDI, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegZ), Immediate: bits.New(4, 0x7)}),
		enc(isa.Instruction{Mnemonic: isa.OUT, PortID: bits.New(isa.PortIndexBits, 0)}),
		enc(isa.Instruction{Mnemonic: isa.NOP}),
	)
	c := New(img)
	port := c.Port(0)

	c.Tick(0) // LDI Z, 7
	if got := c.Z().Uint64(); got != 7 {
		t.Fatalf("after LDI, Z = %d, want 7", got)
	}
	if got := port.Store().Value().Uint64(); got != 0 {
		t.Fatalf("port store before OUT = %d, want 0", got)
	}
	c.Tick(1) // OUT 0; the CPU's own Tick commits the pending write
	if got := port.Store().Value().Uint64(); got != 7 {
		t.Fatalf("port store after tick 1 = %d, want 7", got)
	}
	c.Tick(2) // NOP
}

func TestBranchNotTakenIsNoop(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.BRN, Immediate: bits.New(6, 0x10)}),
	)
	c := New(img)
	c.Tick(1)
	if got := c.ProgramCounter().Uint64(); got != 1 {
		t.Fatalf("PC after untaken branch = %d, want 1", got)
	}
	if c.PageAddress().Uint64() != 0 {
		t.Fatalf("page_address changed on untaken branch")
	}
}

func TestBranchTakenCommitsPageAndJumps(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.LPB, Immediate: bits.New(4, 0x3)}),
		enc(isa.Instruction{Mnemonic: isa.SSF}),
		enc(isa.Instruction{Mnemonic: isa.BRN, Immediate: bits.New(6, 0x10)}),
	)
	c := New(img)
	c.Tick(1) // LPB 3
	c.Tick(2) // SSF
	c.Tick(3) // BRN 0x10, taken
	if got := c.PageAddress().Uint64(); got != 0x3 {
		t.Fatalf("page_address after taken branch = %#x, want 0x3", got)
	}
	if got := c.ProgramCounter().Uint64(); got != 0x10 {
		t.Fatalf("PC after taken branch = %#x, want 0x10", got)
	}
	if !c.StatusFlag() {
		t.Fatalf("status_flag cleared by BRN, want still set")
	}
}

func TestSubroutineJumpCapturesReturnAddress(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.SSF}),
		enc(isa.Instruction{Mnemonic: isa.SSJ}),
		enc(isa.Instruction{Mnemonic: isa.BRN, Immediate: bits.New(6, 0x20)}),
	)
	c := New(img)
	c.Tick(1) // SSF
	c.Tick(2) // SSJ
	c.Tick(3) // BRN 0x20, taken, subroutine mode
	if got := c.SubroutineRetAddr().Uint64(); got != 3 {
		t.Fatalf("subroutine_ret_addr = %d, want 3 (post-increment PC at the taken BRN)", got)
	}
	if got := c.ProgramCounter().Uint64(); got != 0x20 {
		t.Fatalf("PC after subroutine jump = %#x, want 0x20", got)
	}
	if got := c.PageAddress().Uint64(); got != 0 {
		t.Fatalf("page_address changed during subroutine jump, want unchanged: got %#x", got)
	}
}

func TestRetRestoresProgramCounter(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.SSF}),
		enc(isa.Instruction{Mnemonic: isa.SSJ}),
		enc(isa.Instruction{Mnemonic: isa.BRN, Immediate: bits.New(6, 0x20)}),
	)
	img[0x20] = enc(isa.Instruction{Mnemonic: isa.RET})
	c := New(img)
	c.Tick(1)
	c.Tick(2)
	c.Tick(3)
	c.Tick(4) // RET, at address 0x20
	if got := c.ProgramCounter().Uint64(); got != 3 {
		t.Fatalf("PC after RET = %d, want 3", got)
	}
}

func TestIncWrapsAtWorkingWidth(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.INC, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegX)}),
	)
	c := New(img)
	c.regs.X.Store(bits.New(4, 0xF))
	c.Tick(1)
	if got := c.X().Uint64(); got != 0 {
		t.Fatalf("X after INC from 0xF = %#x, want 0", got)
	}
}

func TestStrLodRoundTrip(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.LDI, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegX), Immediate: bits.New(4, 0x2)}),
		enc(isa.Instruction{Mnemonic: isa.LDI, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegY), Immediate: bits.New(4, 0x5)}),
		enc(isa.Instruction{Mnemonic: isa.LDI, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegZ), Immediate: bits.New(4, 0x9)}),
		enc(isa.Instruction{Mnemonic: isa.STR, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegZ)}),
		enc(isa.Instruction{Mnemonic: isa.LDI, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegZ), Immediate: bits.New(4, 0x0)}),
		enc(isa.Instruction{Mnemonic: isa.LOD, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegZ)}),
	)
	c := New(img)
	for tick := uint32(1); tick <= 6; tick++ {
		c.Tick(tick)
	}
	if got := c.Z().Uint64(); got != 0x9 {
		t.Fatalf("Z after STR/LOD round trip = %#x, want 0x9", got)
	}
}

func TestAddAndCmpDoesNotMutate(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.LDI, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegX), Immediate: bits.New(4, 0xF)}),
		enc(isa.Instruction{Mnemonic: isa.ADD, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegX)}),
		enc(isa.Instruction{Mnemonic: isa.CMP, RegisterID: bits.New(isa.RegisterIndexBits, isa.RegX)}),
	)
	c := New(img)
	c.Tick(1)
	c.Tick(2)
	if got := c.Accumulator().Uint64(); got != 0xF {
		t.Fatalf("accumulator after ADD = %#x, want 0xF", got)
	}
	c.Tick(3)
	if !c.StatusFlag() {
		t.Fatalf("status_flag should be set: accumulator 0xF equals X 0xF")
	}
	if got := c.Accumulator().Uint64(); got != 0xF {
		t.Fatalf("CMP mutated accumulator: got %#x, want 0xF", got)
	}
}

func TestInpReadsPortIntoZ(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.NOP}),
		enc(isa.Instruction{Mnemonic: isa.INP, PortID: bits.New(isa.PortIndexBits, 1)}),
	)
	c := New(img)
	c.Port(1).Write(bits.New(isa.PortBits, 0xA))
	c.Tick(1) // NOP; ticking ports commits the pending write to the store
	c.Tick(2) // INP 1, samples the now-committed store value
	if got := c.Z().Uint64(); got != 0xA {
		t.Fatalf("Z after INP = %#x, want 0xA", got)
	}
}

func TestSepRspDriveAPin(t *testing.T) {
	img := program(
		enc(isa.Instruction{Mnemonic: isa.SEP, PinID: bits.New(isa.PinIndexBits, 2)}),
		enc(isa.Instruction{Mnemonic: isa.NOP}),
		enc(isa.Instruction{Mnemonic: isa.RSP, PinID: bits.New(isa.PinIndexBits, 2)}),
	)
	c := New(img)
	c.Tick(1)
	if !c.Pin(2).ReadBit() {
		t.Fatalf("pin 2 should read true after SEP+Tick")
	}
	c.Tick(2)
	c.Tick(3)
	if c.Pin(2).ReadBit() {
		t.Fatalf("pin 2 should read false after RSP+Tick")
	}
}
