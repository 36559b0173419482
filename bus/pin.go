/*
 * m8 - Pin: the 1-bit specialization of Port.
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

package bus

import "github.com/rlowe/m8/bits"

// Pin is a Port fixed at width 1, with boolean convenience accessors.
type Pin struct {
	*Port
}

// NewPin returns a 1-bit pin, initially 0.
func NewPin() *Pin {
	return &Pin{Port: NewPort(1)}
}

// WriteBit latches a pending 0 or 1, committed on the next Tick.
func (p *Pin) WriteBit(set bool) {
	if set {
		p.Write(bits.New(1, 1))
	} else {
		p.Write(bits.New(1, 0))
	}
}

// ReadBit samples the pin's current value as a bool.
func (p *Pin) ReadBit() bool {
	return p.Read().Uint64() != 0
}
