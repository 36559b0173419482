/*
 * m8 - Instruction table, the single source of truth for the ISA.
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

// instructionTable is the textual source of truth for the ISA. Each
// non-empty line is "MNEMONIC PATTERN [FIELDNAME...]". The pattern is
// InstructionBits characters from {0,1,x,r,k,p,q}; a maximal run of
// the same non-digit letter is one field, named positionally by the
// trailing tokens, in the order the letters first appear reading
// left to right. Lines are tried in order at decode time; the first
// whose literal 0/1 bits match wins. A word matching no pattern
// decodes as NOP.
//
// This is compiled once, at package init, into the patterns and
// patternByMnemonic tables used by Encode and Decode (see codec.go) rather than regenerated by a
// build step; the table is small, fixed, and unlikely to grow, so a
// runtime parse of this string costs nothing an end user would
// notice and keeps the source of truth readable in one place.
const instructionTable = `
NOP 00000000
SSJ 00000001
RSF 00000010
SSF 00000011
RSJ 00000111
RET 00001000
LPB 0001xxxx immediate
STR 001000rr register_id
LOD 001001rr register_id
INC 001010rr register_id
DEC 001011rr register_id
MOV 0100rrkk from to
ADD 010100rr register_id
SUB 010101rr register_id
BOR 010110rr register_id
AND 010111rr register_id
GRT 011000rr register_id
LES 011001rr register_id
CMP 011010rr register_id
INP 011100pp port_id
OUT 011101pp port_id
RSP 011110qq pin_id
SEP 011111qq pin_id
BRN 10xxxxxx immediate
LDI 11rrxxxx register_id immediate
`
