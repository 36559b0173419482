/*
 * m8 - Machine configuration parser.
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

// Package config parses the machine configuration format: a small
// line-oriented, keyword-led text format describing tick budgets and
// bus wiring for a machine. '#' starts a line comment; every
// other non-blank line is "<keyword> <args...>". Parse errors are
// collected with line numbers and returned together; a configuration
// is never partially applied.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SplitSpec is a "split" directive: join two port indices into one
// wider shared store of the given combined width.
type SplitSpec struct {
	LowPort, HighPort int
	CombinedWidth     uint8
	Line              int
}

// ConsoleSpec is a "console" directive: attach the console
// peripheral to a previously declared split's combined store and a
// strobe pin.
type ConsoleSpec struct {
	SplitIndex int
	StrobePin  int
	Line       int
}

// DebugSpec is a "debug" directive: enable tracing for one component.
type DebugSpec struct {
	Component, Flag string
	Line            int
}

// Config is the fully parsed machine configuration.
type Config struct {
	Ticks     *uint32 // nil means run until interrupted.
	PortLinks [][2]int
	PinLinks  [][2]int
	Splits    []SplitSpec
	Console   *ConsoleSpec
	Debug     []DebugSpec
}

// Parse reads a machine configuration from r. Every error encountered
// is collected with its line number; Parse returns a non-nil error
// built from all of them (via errors.Join) rather than stopping at
// the first, and in that case the returned Config is nil: a
// configuration with any bad line is never partially applied.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	var errs []error

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if err := cfg.applyDirective(lineNumber, fields); err != nil {
			errs = append(errs, err)
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return cfg, nil
}

func (cfg *Config) applyDirective(line int, fields []string) error {
	keyword := strings.ToLower(fields[0])
	args := fields[1:]
	switch keyword {
	case "ticks":
		n, err := parseUint(args, line, 1)
		if err != nil {
			return err
		}
		budget := uint32(n[0])
		cfg.Ticks = &budget

	case "port":
		ids, err := parseInts(args, line, 2)
		if err != nil {
			return err
		}
		cfg.PortLinks = append(cfg.PortLinks, [2]int{ids[0], ids[1]})

	case "pin":
		ids, err := parseInts(args, line, 2)
		if err != nil {
			return err
		}
		cfg.PinLinks = append(cfg.PinLinks, [2]int{ids[0], ids[1]})

	case "split":
		ids, err := parseInts(args, line, 3)
		if err != nil {
			return err
		}
		cfg.Splits = append(cfg.Splits, SplitSpec{
			LowPort: ids[0], HighPort: ids[1], CombinedWidth: uint8(ids[2]), Line: line,
		})

	case "console":
		ids, err := parseInts(args, line, 2)
		if err != nil {
			return err
		}
		if cfg.Console != nil {
			return fmt.Errorf("line %d: only one console directive is allowed", line)
		}
		cfg.Console = &ConsoleSpec{SplitIndex: ids[0], StrobePin: ids[1], Line: line}

	case "debug":
		if len(args) != 2 {
			return fmt.Errorf("line %d: debug requires a component and a flag, got %d args", line, len(args))
		}
		cfg.Debug = append(cfg.Debug, DebugSpec{Component: args[0], Flag: args[1], Line: line})

	default:
		return fmt.Errorf("line %d: unknown directive %q", line, fields[0])
	}
	return nil
}

func parseInts(args []string, line, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("line %d: expected %d numeric arguments, got %d", line, want, len(args))
	}
	out := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a number", line, a)
		}
		out[i] = n
	}
	return out, nil
}

func parseUint(args []string, line, want int) ([]uint64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("line %d: expected %d numeric arguments, got %d", line, want, len(args))
	}
	out := make([]uint64, want)
	for i, a := range args {
		n, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not a non-negative number", line, a)
		}
		out[i] = n
	}
	return out, nil
}
