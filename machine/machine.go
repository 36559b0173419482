/*
 * m8 - Machine assembly: wires a CPU, its bus, and peripherals from a
 * parsed configuration into a runnable harness.
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

// Package machine assembles a cpu.Core and its attached peripherals
// from a parsed config.Config into a harness.Harness ready to Run.
// Construction is refused outright on any wiring problem (bad port
// index, a console referencing an undeclared split): wiring problems
// are detected before any tick runs, never mid-loop.
package machine

import (
	"fmt"
	"io"

	"github.com/rlowe/m8/bus"
	"github.com/rlowe/m8/config"
	"github.com/rlowe/m8/cpu"
	"github.com/rlowe/m8/debug"
	"github.com/rlowe/m8/harness"
	"github.com/rlowe/m8/isa"
	"github.com/rlowe/m8/peripheral/console"
)

// Machine is an assembled, runnable machine: the CPU core plus the
// harness that ticks it and every wired peripheral.
type Machine struct {
	Core    *cpu.Core
	Harness *harness.Harness
}

// Build constructs a Machine from image and cfg, writing console
// output (if any is wired) to out.
func Build(image []byte, cfg *config.Config, out io.Writer) (*Machine, error) {
	core := cpu.New(image)

	for _, l := range cfg.PortLinks {
		if err := checkPortID(l[0]); err != nil {
			return nil, err
		}
		if err := checkPortID(l[1]); err != nil {
			return nil, err
		}
		core.Port(l[0]).Connect(core.Port(l[1]))
	}
	for _, l := range cfg.PinLinks {
		if err := checkPinID(l[0]); err != nil {
			return nil, err
		}
		if err := checkPinID(l[1]); err != nil {
			return nil, err
		}
		core.Pin(l[0]).Connect(core.Pin(l[1]).Port)
	}

	devices := []bus.Device{core}

	splitters := make([]*bus.Splitter, len(cfg.Splits))
	for i, s := range cfg.Splits {
		if err := checkPortID(s.LowPort); err != nil {
			return nil, fmt.Errorf("split on line %d: %w", s.Line, err)
		}
		if err := checkPortID(s.HighPort); err != nil {
			return nil, fmt.Errorf("split on line %d: %w", s.Line, err)
		}
		lowWidth := isa.PortBits
		highWidth := s.CombinedWidth - lowWidth
		splitter := bus.NewSplitter(lowWidth, highWidth)
		core.Port(s.LowPort).SetStore(splitter.LowPort().Store())
		core.Port(s.HighPort).SetStore(splitter.HighPort().Store())
		splitters[i] = splitter
		devices = append(devices, splitter)
	}

	if cfg.Console != nil {
		if cfg.Console.SplitIndex < 0 || cfg.Console.SplitIndex >= len(splitters) {
			return nil, fmt.Errorf("console on line %d: split index %d is not declared", cfg.Console.Line, cfg.Console.SplitIndex)
		}
		if err := checkPinID(cfg.Console.StrobePin); err != nil {
			return nil, fmt.Errorf("console on line %d: %w", cfg.Console.Line, err)
		}
		data := splitters[cfg.Console.SplitIndex].CombinedPort()
		strobe := core.Pin(cfg.Console.StrobePin)
		devices = append(devices, console.New(data, strobe, out))
	}

	for _, d := range cfg.Debug {
		debug.Enable(d.Component, d.Flag)
	}

	return &Machine{Core: core, Harness: harness.New(devices)}, nil
}

func checkPortID(id int) error {
	if id < 0 || id >= isa.NumPorts {
		return fmt.Errorf("port id %d out of range [0,%d)", id, isa.NumPorts)
	}
	return nil
}

func checkPinID(id int) error {
	if id < 0 || id >= isa.NumPins {
		return fmt.Errorf("pin id %d out of range [0,%d)", id, isa.NumPins)
	}
	return nil
}
