/*
 * m8 - Fixed-width unsigned integers.
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

// Package bits implements Uint, an unsigned integer parametrized at
// construction time by its bit width. The architecture this package
// supports uses widths (2, 4, 6, 8, 10) with no host primitive, so a
// single runtime-width type stands in for what a language with const
// generics would express as U<N>.
package bits

import "fmt"

// MaxWidth is the largest bit width any Uint in this architecture
// needs to hold. 64 covers every combination the CPU forms, including
// the 10-bit page||PC address.
const MaxWidth = 64

// Uint is an unsigned integer with exactly Width value bits. Bits at
// or above position Width never leak through any operation: every
// constructor and every arithmetic or bitwise op masks its result.
type Uint struct {
	value uint64
	width uint8
}

func maskFor(width uint8) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

// New constructs a Uint of the given width from a host value, masking
// away any bits at or above position width.
func New(width uint8, value uint64) Uint {
	return Uint{value: value & maskFor(width), width: width}
}

// Zero returns the zero value of the given width.
func Zero(width uint8) Uint {
	return Uint{width: width}
}

// Max returns 2^width - 1, the largest representable value.
func Max(width uint8) Uint {
	return Uint{value: maskFor(width), width: width}
}

// Width reports the number of value bits.
func (u Uint) Width() uint8 {
	return u.width
}

// Uint64 returns the value widened into a uint64. Since MaxWidth is
// 64 this never discards bits; it exists so callers never need a
// second narrowing operation just to print or compare.
func (u Uint) Uint64() uint64 {
	return u.value
}

// ToHost returns the value zero-extended into a uint64, for a caller
// whose host type holds hostBits bits. It never truncates: it panics
// whenever hostBits < Width, even if the value itself would fit.
func (u Uint) ToHost(hostBits uint8) uint64 {
	if hostBits < u.width {
		panic(fmt.Sprintf("bits: cannot narrow %d-bit value into %d host bits", u.width, hostBits))
	}
	return u.value
}

// WidenOrNarrow reinterprets u as a newWidth-bit value: zero-extends
// when newWidth > Width, truncates when newWidth < Width.
func (u Uint) WidenOrNarrow(newWidth uint8) Uint {
	return New(newWidth, u.value)
}

// Not returns the bitwise complement within Width bits.
func (u Uint) Not() Uint {
	return New(u.width, ^u.value)
}

// And returns the bitwise AND of u and v. Widths must match.
func (u Uint) And(v Uint) Uint {
	return New(u.width, u.value&v.value)
}

// Or returns the bitwise OR of u and v. Widths must match.
func (u Uint) Or(v Uint) Uint {
	return New(u.width, u.value|v.value)
}

// Add returns u + v, wrapping modulo 2^Width.
func (u Uint) Add(v Uint) Uint {
	return New(u.width, u.value+v.value)
}

// Sub returns u - v, wrapping modulo 2^Width. Defined as
// u + (^v + 1) within Width bits, per spec.
func (u Uint) Sub(v Uint) Uint {
	negV := New(u.width, ^v.value+1)
	return u.Add(negV)
}

// Shl returns u shifted left by k bits; vacated bits are zero and any
// k >= Width yields zero.
func (u Uint) Shl(k int) Uint {
	if k < 0 || uint8(k) >= u.width {
		return Zero(u.width)
	}
	return New(u.width, u.value<<uint(k))
}

// Shr returns u shifted right by k bits; vacated bits are zero and
// any k >= Width yields zero.
func (u Uint) Shr(k int) Uint {
	if k < 0 || uint8(k) >= u.width {
		return Zero(u.width)
	}
	return New(u.width, u.value>>uint(k))
}

// Inc returns u + 1, wrapping modulo 2^Width.
func (u Uint) Inc() Uint {
	return u.Add(New(u.width, 1))
}

// Dec returns u - 1, wrapping modulo 2^Width.
func (u Uint) Dec() Uint {
	return u.Sub(New(u.width, 1))
}

// Equal reports whether u and v carry the same value. Widths need
// not match; comparison is by magnitude.
func (u Uint) Equal(v Uint) bool {
	return u.value == v.value
}

// Greater reports whether u > v by magnitude.
func (u Uint) Greater(v Uint) bool {
	return u.value > v.value
}

// Less reports whether u < v by magnitude.
func (u Uint) Less(v Uint) bool {
	return u.value < v.value
}

// Concat joins low (as the low bits) and high (as the high bits) into a
// value of width low.Width()+high.Width(), matching the architecture's
// `(high << N) | low` convention for combining a page with a PC or a
// splitter's two narrow faces.
func Concat(low, high Uint) Uint {
	width := low.width + high.width
	return New(width, (high.value<<low.width)|low.value)
}

// Split divides u into a low lowWidth-bit value and a high
// u.Width()-lowWidth-bit value, the inverse of Concat.
func (u Uint) Split(lowWidth uint8) (low, high Uint) {
	low = New(lowWidth, u.value)
	high = New(u.width-lowWidth, u.value>>lowWidth)
	return low, high
}

func (u Uint) String() string {
	return fmt.Sprintf("U%d(%d)", u.width, u.value)
}
