/*
 * m8 - Console peripheral.
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

// Package console implements the reference console peripheral: a
// device that reads an 8-bit combined bus store (assembled by a
// splitter from two 4-bit CPU ports) plus a 1-bit write-strobe pin,
// and prints one ASCII byte to a line-buffered writer on every
// rising edge of the strobe.
package console

import (
	"bufio"
	"io"

	"github.com/rlowe/m8/bus"
)

// Console is a bus.Device: every tick it samples the strobe pin and,
// on a rising edge (previous tick 0, this tick 1), writes the low 8
// bits of the combined data store to Out.
type Console struct {
	data   *bus.Port
	strobe *bus.Pin
	out    *bufio.Writer

	prevStrobe bool
}

// New returns a console peripheral reading data (typically a
// splitter's combined 8-bit face) and strobe, writing to out.
func New(data *bus.Port, strobe *bus.Pin, out io.Writer) *Console {
	return &Console{data: data, strobe: strobe, out: bufio.NewWriter(out)}
}

// Tick samples the strobe and, on a rising edge, writes the current
// data byte and flushes it immediately: the contract is a
// best-effort line-buffered write within the tick, not batching
// across ticks.
func (c *Console) Tick(tick uint32) {
	strobe := c.strobe.ReadBit()
	defer func() { c.prevStrobe = strobe }()

	if strobe && !c.prevStrobe {
		b := byte(c.data.Read().Uint64())
		_ = c.out.WriteByte(b)
		_ = c.out.Flush()
	}
}

var _ bus.Device = (*Console)(nil)
