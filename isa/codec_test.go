package isa

import (
	"testing"

	"github.com/rlowe/m8/bits"
)

func TestDecodeExhaustiveTable(t *testing.T) {
	cases := []struct {
		inst Instruction
		want uint8
	}{
		{Instruction{Mnemonic: NOP}, 0x00},
		{Instruction{Mnemonic: SSJ}, 0x01},
		{Instruction{Mnemonic: RSF}, 0x02},
		{Instruction{Mnemonic: SSF}, 0x03},
		{Instruction{Mnemonic: RSJ}, 0x07},
		{Instruction{Mnemonic: RET}, 0x08},
		{Instruction{Mnemonic: LPB, Immediate: bits.New(4, 1)}, 0x11},
		{Instruction{Mnemonic: STR, RegisterID: bits.New(2, 0)}, 0x20},
		{Instruction{Mnemonic: LOD, RegisterID: bits.New(2, 1)}, 0x25},
		{Instruction{Mnemonic: INC, RegisterID: bits.New(2, 1)}, 0x29},
		{Instruction{Mnemonic: DEC, RegisterID: bits.New(2, 0)}, 0x2C},
		{Instruction{Mnemonic: MOV, From: bits.New(2, 1), To: bits.New(2, 2)}, 0x46},
		{Instruction{Mnemonic: ADD, RegisterID: bits.New(2, 0)}, 0x50},
		{Instruction{Mnemonic: SUB, RegisterID: bits.New(2, 0)}, 0x54},
		{Instruction{Mnemonic: BOR, RegisterID: bits.New(2, 0)}, 0x58},
		{Instruction{Mnemonic: AND, RegisterID: bits.New(2, 0)}, 0x5C},
		{Instruction{Mnemonic: GRT, RegisterID: bits.New(2, 0)}, 0x60},
		{Instruction{Mnemonic: LES, RegisterID: bits.New(2, 0)}, 0x64},
		{Instruction{Mnemonic: CMP, RegisterID: bits.New(2, 0)}, 0x68},
		{Instruction{Mnemonic: INP, PortID: bits.New(2, 1)}, 0x71},
		{Instruction{Mnemonic: OUT, PortID: bits.New(2, 1)}, 0x75},
		{Instruction{Mnemonic: RSP, PinID: bits.New(2, 0)}, 0x78},
		{Instruction{Mnemonic: SEP, PinID: bits.New(2, 0)}, 0x7C},
		{Instruction{Mnemonic: BRN, Immediate: bits.New(6, 5)}, 0x85},
		{Instruction{Mnemonic: LDI, RegisterID: bits.New(2, 1), Immediate: bits.New(4, 1)}, 0xD1},
	}

	for _, c := range cases {
		got := Encode(c.inst)
		if uint8(got.Uint64()) != c.want {
			t.Errorf("Encode(%v) = %#02x, want %#02x", c.inst, got.Uint64(), c.want)
		}
		if dec := Decode(bits.New(8, uint64(c.want))); dec != c.inst {
			t.Errorf("Decode(%#02x) = %+v, want %+v", c.want, dec, c.inst)
		}
	}
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	type variant struct {
		inst Instruction
	}
	variants := []variant{
		{Instruction{Mnemonic: NOP}},
		{Instruction{Mnemonic: SSJ}},
		{Instruction{Mnemonic: RSF}},
		{Instruction{Mnemonic: SSF}},
		{Instruction{Mnemonic: RSJ}},
		{Instruction{Mnemonic: RET}},
	}
	for imm := uint64(0); imm < 16; imm++ {
		variants = append(variants, variant{Instruction{Mnemonic: LPB, Immediate: bits.New(4, imm)}})
	}
	for r := uint64(0); r < 4; r++ {
		variants = append(variants,
			variant{Instruction{Mnemonic: STR, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: LOD, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: INC, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: DEC, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: ADD, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: SUB, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: BOR, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: AND, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: GRT, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: LES, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: CMP, RegisterID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: INP, PortID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: OUT, PortID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: RSP, PinID: bits.New(2, r)}},
			variant{Instruction{Mnemonic: SEP, PinID: bits.New(2, r)}},
		)
	}
	for from := uint64(0); from < 4; from++ {
		for to := uint64(0); to < 4; to++ {
			variants = append(variants, variant{Instruction{Mnemonic: MOV, From: bits.New(2, from), To: bits.New(2, to)}})
		}
	}
	for imm := uint64(0); imm < 64; imm++ {
		variants = append(variants, variant{Instruction{Mnemonic: BRN, Immediate: bits.New(6, imm)}})
	}
	for r := uint64(0); r < 4; r++ {
		for imm := uint64(0); imm < 16; imm++ {
			variants = append(variants, variant{Instruction{Mnemonic: LDI, RegisterID: bits.New(2, r), Immediate: bits.New(4, imm)}})
		}
	}

	for _, v := range variants {
		word := Encode(v.inst)
		got := Decode(word)
		if got != v.inst {
			t.Errorf("round trip failed for %+v: encoded %#02x decoded as %+v", v.inst, word.Uint64(), got)
		}
	}
}

func TestDecodeUnknownOpcodeIsNOP(t *testing.T) {
	known := map[uint8]bool{}
	for w := 0; w < 256; w++ {
		for _, p := range patterns {
			if uint8(w)&p.mask == p.match {
				known[uint8(w)] = true
				break
			}
		}
	}
	for w := 0; w < 256; w++ {
		if known[uint8(w)] {
			continue
		}
		inst := Decode(bits.New(8, uint64(w)))
		if inst.Mnemonic != NOP {
			t.Errorf("word %#02x: expected NOP, got %v", w, inst.Mnemonic)
		}
	}
}
