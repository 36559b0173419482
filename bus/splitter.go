/*
 * m8 - Splitter: reconciles one wide shared store with two narrow ones.
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

import (
	"github.com/rlowe/m8/bits"
	"github.com/rlowe/m8/debug"
)

// Splitter joins a low N-bit store and a high M-bit store with a
// combined (N+M)-bit store. It owns all three and never replaces
// them: a device attaches to a face by sharing that face's store (see
// LowPort, HighPort, CombinedPort, and Port.SetStore), not by
// substituting a store of its own.
type Splitter struct {
	lowWidth  uint8
	highWidth uint8
	low       *Store
	high      *Store
	combined  *Store
}

// NewSplitter returns a splitter joining a lowWidth-bit low face and a
// highWidth-bit high face into a combined face of lowWidth+highWidth
// bits, all starting at zero.
func NewSplitter(lowWidth, highWidth uint8) *Splitter {
	return &Splitter{
		lowWidth:  lowWidth,
		highWidth: highWidth,
		low:       NewStore(lowWidth),
		high:      NewStore(highWidth),
		combined:  NewStore(lowWidth + highWidth),
	}
}

// LowPort returns a port backed by the splitter's low face. Devices
// connect to this to drive or sample the low bits directly.
func (s *Splitter) LowPort() *Port {
	p := NewPort(s.lowWidth)
	p.SetStore(s.low)
	return p
}

// HighPort returns a port backed by the splitter's high face.
func (s *Splitter) HighPort() *Port {
	p := NewPort(s.highWidth)
	p.SetStore(s.high)
	return p
}

// CombinedPort returns a port backed by the splitter's combined face.
func (s *Splitter) CombinedPort() *Port {
	p := NewPort(s.lowWidth + s.highWidth)
	p.SetStore(s.combined)
	return p
}

// Tick reconciles the three faces. The side with the strictly newer
// last_write_tick drives the others; combined is authoritative over
// both low and high exactly when it is newer than both of them,
// otherwise low and high (joined) drive combined. Equal ticks leave
// the current combined representation untouched.
func (s *Splitter) Tick(tick uint32) {
	narrowTick := maxTick(s.low.LastWriteTick(), s.high.LastWriteTick())
	combinedTick := s.combined.LastWriteTick()

	switch {
	case combinedTick > narrowTick:
		low, high := s.combined.Value().Split(s.lowWidth)
		debug.Tracef("bus", "tick", "splitter split combined=%#x -> low=%#x high=%#x", s.combined.Value().Uint64(), low.Uint64(), high.Uint64())
		s.low.set(low, tick)
		s.high.set(high, tick)
	case narrowTick > combinedTick:
		joined := bits.Concat(s.low.Value(), s.high.Value())
		debug.Tracef("bus", "tick", "splitter join low=%#x high=%#x -> combined=%#x", s.low.Value().Uint64(), s.high.Value().Uint64(), joined.Uint64())
		s.combined.set(joined, tick)
	}
}

func maxTick(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
