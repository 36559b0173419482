/*
 * m8 - Device harness: the single-threaded tick scheduler.
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

// Package harness runs a fixed device list through the tick scheduler:
// every device's Tick is called once per cycle, in list order, with
// no concurrency within a tick. A Harness can be driven synchronously
// with Run, or wrapped in its own goroutine with Start/Stop.
package harness

import (
	"log/slog"
	"sync"
	"time"

	"github.com/rlowe/m8/bus"
)

// Harness owns the device list and the current tick count.
type Harness struct {
	devices []bus.Device
	tick    uint32

	wg      sync.WaitGroup
	done    chan struct{}
	running bool
}

// New returns a harness that will tick devices in the given order on
// every cycle.
func New(devices []bus.Device) *Harness {
	return &Harness{devices: devices, done: make(chan struct{})}
}

// Tick returns the number of cycles run so far.
func (h *Harness) Tick() uint32 {
	return h.tick
}

// Run advances the harness synchronously. If budget is non-nil, Run
// stops after that many additional ticks; otherwise it runs until
// Stop is called from another goroutine.
func (h *Harness) Run(budget *uint32) {
	h.running = true
	var ran uint32
	for h.running {
		if budget != nil && ran >= *budget {
			return
		}
		for _, d := range h.devices {
			d.Tick(h.tick)
		}
		h.tick++
		ran++
		select {
		case <-h.done:
			h.running = false
		default:
		}
	}
}

// Start runs the harness in its own goroutine, ticking until Stop is
// called. It does not add concurrency within a tick: only one
// goroutine ever calls Device.Tick.
func (h *Harness) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.Run(nil)
	}()
}

// Stop signals the running goroutine to exit and waits for it, up to
// one second.
func (h *Harness) Stop() {
	close(h.done)
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return
	case <-time.After(time.Second):
		slog.Warn("timed out waiting for harness to stop")
		return
	}
}
