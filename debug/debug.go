/*
 * m8 - Per-component debug tracing.
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

// Package debug implements per-component trace gating: a component
// (e.g. "cpu", "bus") carries a set of named flags, and a trace call
// is a no-op unless that component/flag pair has been enabled (see
// config.DebugSpec for how the machine configuration's "debug"
// directive drives this). Tracing goes through log/slog at Debug
// level, so it is silent by default even with no gating at all.
package debug

import (
	"fmt"
	"log/slog"
	"sync"
)

var (
	mu      sync.Mutex
	enabled = map[string]map[string]bool{}
)

// Enable turns on tracing for component/flag. "*" as flag enables
// every flag for that component.
func Enable(component, flag string) {
	mu.Lock()
	defer mu.Unlock()
	if enabled[component] == nil {
		enabled[component] = map[string]bool{}
	}
	enabled[component][flag] = true
}

// Enabled reports whether component/flag (or component/"*") is
// currently enabled.
func Enabled(component, flag string) bool {
	mu.Lock()
	defer mu.Unlock()
	flags := enabled[component]
	return flags["*"] || flags[flag]
}

// Tracef logs a trace line for component/flag at slog.LevelDebug if
// that pair is enabled; otherwise it costs one map lookup and nothing
// else, so call sites do not need to guard it themselves.
func Tracef(component, flag, format string, args ...any) {
	if !Enabled(component, flag) {
		return
	}
	slog.Debug(component+": "+fmt.Sprintf(format, args...), "flag", flag)
}

// Reset clears all gating; used by tests to avoid cross-test leakage
// of the package-level registry.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	enabled = map[string]map[string]bool{}
}
