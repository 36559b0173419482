/*
 * m8 - Register file.
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

// Package register implements the machine's named N-bit registers.
package register

import "github.com/rlowe/m8/bits"

// Register is a single N-bit cell with load/store/increment/decrement.
type Register struct {
	width uint8
	value bits.Uint
}

// New returns a width-bit register initialized to zero.
func New(width uint8) *Register {
	return &Register{width: width, value: bits.Zero(width)}
}

// Load returns the register's current value.
func (r *Register) Load() bits.Uint {
	return r.value
}

// Store sets the register's value.
func (r *Register) Store(v bits.Uint) {
	r.value = v.WidenOrNarrow(r.width)
}

// Increment adds one, wrapping modulo 2^width.
func (r *Register) Increment() {
	r.value = r.value.Inc()
}

// Decrement subtracts one, wrapping modulo 2^width.
func (r *Register) Decrement() {
	r.value = r.value.Dec()
}

// File is the three general registers addressed by register_id: 1 is
// X, 2 is Y, 3 is Z. Register id 0 (the accumulator) lives in the ALU
// and is not part of this file; see cpu.Core.RegisterValue.
type File struct {
	X, Y, Z *Register
}

// NewFile returns a register file with X, Y, Z zeroed.
func NewFile(width uint8) *File {
	return &File{X: New(width), Y: New(width), Z: New(width)}
}
