/*
 * m8 - Instruction encoder/decoder compiled from the instruction table.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package isa

import (
	"fmt"
	"strings"

	"github.com/rlowe/m8/bits"
)

// field describes one operand field of a compiled pattern: its name
// (as given in instructionTable), the position of its low bit within
// the instruction word, and its width in bits.
type field struct {
	name   string
	lowBit uint8
	width  uint8
}

// pattern is one compiled row of instructionTable.
type pattern struct {
	mnemonic Mnemonic
	mask     uint8
	match    uint8
	fields   []field
}

var patterns []pattern
var patternByMnemonic [LDI + 1]pattern

func init() {
	patterns = compileTable(instructionTable)
	for _, p := range patterns {
		patternByMnemonic[p.mnemonic] = p
	}
}

func mnemonicFromName(name string) Mnemonic {
	for i, n := range mnemonicNames {
		if n == name {
			return Mnemonic(i)
		}
	}
	panic("isa: unknown mnemonic in instruction table: " + name)
}

// compileTable parses the textual instruction table into the masks,
// match values, and field layouts that Encode and Decode use. Each
// line is "MNEMONIC PATTERN [FIELDNAME...]"; a maximal run of the
// same non-'0'/'1' character in PATTERN is one field, named
// positionally by the trailing tokens in the order the letters first
// appear.
func compileTable(text string) []pattern {
	var compiled []pattern
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			panic("isa: malformed instruction table line: " + line)
		}
		mnemonic := mnemonicFromName(tokens[0])
		pat := tokens[1]
		names := tokens[2:]
		if len(pat) != int(InstructionBits) {
			panic(fmt.Sprintf("isa: pattern %q is not %d bits", pat, InstructionBits))
		}

		var mask, match uint8
		var fields []field
		nextName := 0
		for i := 0; i < len(pat); {
			c := pat[i]
			if c == '0' || c == '1' {
				bit := InstructionBits - 1 - uint8(i)
				mask |= 1 << bit
				if c == '1' {
					match |= 1 << bit
				}
				i++
				continue
			}
			j := i
			for j < len(pat) && pat[j] == c {
				j++
			}
			width := uint8(j - i)
			lowBit := InstructionBits - uint8(j)
			if nextName >= len(names) {
				panic("isa: instruction table line missing field name: " + line)
			}
			fields = append(fields, field{name: names[nextName], lowBit: lowBit, width: width})
			nextName++
			i = j
		}
		compiled = append(compiled, pattern{mnemonic: mnemonic, mask: mask, match: match, fields: fields})
	}
	return compiled
}

func fieldMask(width uint8) uint8 {
	return uint8((1 << width) - 1)
}

// operand reads the named operand field out of inst.
func operand(inst Instruction, name string) bits.Uint {
	switch name {
	case "register_id":
		return inst.RegisterID
	case "from":
		return inst.From
	case "to":
		return inst.To
	case "port_id":
		return inst.PortID
	case "pin_id":
		return inst.PinID
	case "immediate":
		return inst.Immediate
	default:
		panic("isa: unknown operand field: " + name)
	}
}

// setOperand writes value into the named operand field of inst.
func setOperand(inst *Instruction, name string, value bits.Uint) {
	switch name {
	case "register_id":
		inst.RegisterID = value
	case "from":
		inst.From = value
	case "to":
		inst.To = value
	case "port_id":
		inst.PortID = value
	case "pin_id":
		inst.PinID = value
	case "immediate":
		inst.Immediate = value
	default:
		panic("isa: unknown operand field: " + name)
	}
}

// Encode packs inst's operands into its instruction word per the
// pattern the table names for inst.Mnemonic.
func Encode(inst Instruction) bits.Uint {
	p := patternByMnemonic[inst.Mnemonic]
	word := p.match
	for _, f := range p.fields {
		v := operand(inst, f.name)
		word |= (uint8(v.Uint64()) & fieldMask(f.width)) << f.lowBit
	}
	return bits.New(InstructionBits, uint64(word))
}

// Decode tests word against each pattern in table order and returns
// the first match's variant with its operand fields populated. A
// word matching no pattern decodes to NOP.
func Decode(word bits.Uint) Instruction {
	wv := uint8(word.Uint64())
	for _, p := range patterns {
		if wv&p.mask != p.match {
			continue
		}
		inst := Instruction{Mnemonic: p.mnemonic}
		for _, f := range p.fields {
			val := (wv >> f.lowBit) & fieldMask(f.width)
			setOperand(&inst, f.name, bits.New(f.width, uint64(val)))
		}
		return inst
	}
	return Instruction{Mnemonic: NOP}
}
