/*
 * m8 - Program and working memory banks.
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

// Package memory implements the machine's two memory banks: a
// read-only program bank loaded once from an image, and a read-write
// working bank that starts zeroed. Both are addressed by bits.Uint so
// an out-of-range address is unrepresentable rather than checked.
package memory

import "github.com/rlowe/m8/bits"

// ReadOnly is a fixed-size bank of cellWidth-bit cells that is never
// mutated after construction.
type ReadOnly struct {
	cells     []uint8
	addrWidth uint8
	cellWidth uint8
}

// NewReadOnly builds a read-only bank from image, which must hold
// exactly 2^addrWidth cells of cellWidth bits or fewer (each stored
// in one byte).
func NewReadOnly(addrWidth, cellWidth uint8, image []uint8) *ReadOnly {
	size := 1 << addrWidth
	if len(image) != size {
		panic("memory: image size does not match 2^addrWidth")
	}
	cells := make([]uint8, size)
	mask := uint8((1 << cellWidth) - 1)
	if cellWidth >= 8 {
		mask = 0xFF
	}
	for i, v := range image {
		cells[i] = v & mask
	}
	return &ReadOnly{cells: cells, addrWidth: addrWidth, cellWidth: cellWidth}
}

// Read returns the cell at addr.
func (m *ReadOnly) Read(addr bits.Uint) bits.Uint {
	return bits.New(m.cellWidth, uint64(m.cells[addr.Uint64()]))
}

// ReadWrite is a fixed-size bank of cellWidth-bit cells, initialized
// to all zero, that can be written after construction.
type ReadWrite struct {
	cells     []uint8
	addrWidth uint8
	cellWidth uint8
}

// NewReadWrite builds a zeroed read-write bank of 2^addrWidth cells.
func NewReadWrite(addrWidth, cellWidth uint8) *ReadWrite {
	size := 1 << addrWidth
	return &ReadWrite{cells: make([]uint8, size), addrWidth: addrWidth, cellWidth: cellWidth}
}

// Read returns the cell at addr.
func (m *ReadWrite) Read(addr bits.Uint) bits.Uint {
	return bits.New(m.cellWidth, uint64(m.cells[addr.Uint64()]))
}

// Write stores value at addr.
func (m *ReadWrite) Write(addr, value bits.Uint) {
	mask := uint8((1 << m.cellWidth) - 1)
	if m.cellWidth >= 8 {
		mask = 0xFF
	}
	m.cells[addr.Uint64()] = uint8(value.Uint64()) & mask
}
