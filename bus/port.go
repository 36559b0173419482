/*
 * m8 - Port: a device-facing handle onto a shared store.
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

// Port is an N-bit shared value a device can drive or sample. Every
// port starts backed by its own private Store; Connect replaces that
// handle so two ports observe the same cell.
type Port struct {
	width   uint8
	store   *Store
	pending bits.Uint
	writing bool
}

// NewPort returns a width-bit port backed by its own private store.
func NewPort(width uint8) *Port {
	return &Port{width: width, store: NewStore(width)}
}

// Write latches a pending value; it is committed to the shared store
// on the next Tick, stamped with that tick.
func (p *Port) Write(v bits.Uint) {
	p.pending = v.WidenOrNarrow(p.width)
	p.writing = true
}

// Read samples the shared store's current value and stops this port
// from driving it until Write is called again.
func (p *Port) Read() bits.Uint {
	p.writing = false
	return p.store.Value()
}

// Tick commits any pending write to the shared store.
func (p *Port) Tick(tick uint32) {
	if p.writing {
		debug.Tracef("bus", "tick", "port commit value=%#x tick=%d", p.pending.Uint64(), tick)
		p.store.set(p.pending, tick)
	}
}

// Connect replaces p's store handle with other's, so p and other
// observe the same cell from then on. This is a unilateral action:
// it does not affect other's handle.
func (p *Port) Connect(other *Port) {
	p.store = other.store
}

// Store exposes the backing shared store, so wiring code can hand
// this port's cell (for example a splitter face) to another port with
// SetStore.
func (p *Port) Store() *Store {
	return p.store
}

// SetStore replaces p's backing store directly, used when a splitter
// hands over one of its faces.
func (p *Port) SetStore(s *Store) {
	p.store = s
}
