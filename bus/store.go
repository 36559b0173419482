/*
 * m8 - Shared stores: the unit of inter-device communication.
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

// Package bus implements the peripheral bus: shared stores, ports,
// pins, and splitters, all reconciled by a single-threaded tick
// scheduler rather than by pointer graphs between devices. No node
// holds a reference to another node; every participant holds a
// handle to a flat population of shared cells.
package bus

import "github.com/rlowe/m8/bits"

// Device is the tick interface every bus participant and peripheral
// implements. The harness calls Tick once per cycle, in device-list
// order.
type Device interface {
	Tick(tick uint32)
}

// Store is a shared cell carrying a value and the tick of its most
// recent write. It has no notion of who wrote it; reconciliation
// between stores of differing provenance (a splitter's three faces)
// is the owning node's job, not the store's.
type Store struct {
	value         bits.Uint
	lastWriteTick uint32
}

// NewStore returns a store of the given width, value zero, tick zero.
func NewStore(width uint8) *Store {
	return &Store{value: bits.Zero(width)}
}

// Value returns the store's current value.
func (s *Store) Value() bits.Uint {
	return s.value
}

// LastWriteTick returns the tick of the store's most recent write.
func (s *Store) LastWriteTick() uint32 {
	return s.lastWriteTick
}

// set commits value to the store, stamped with tick. It is
// unexported: only a Port (driving on behalf of a device) or a
// Splitter (reconciling its faces) may commit a write; nothing reads
// and writes the same store without going through one of those.
func (s *Store) set(value bits.Uint, tick uint32) {
	s.value = value
	s.lastWriteTick = tick
}
