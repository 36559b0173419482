/*
 * m8 - Program image loading.
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

// Package image loads a compiled program into the fixed-size byte
// array cpu.New expects. A program image is always exactly
// isa.ProgramMemorySize bytes; anything else is refused before a
// single tick runs.
package image

import (
	"fmt"
	"io"

	"github.com/rlowe/m8/isa"
)

// Load reads exactly isa.ProgramMemorySize bytes from r. A short
// read or any I/O error is returned as an error and the harness must
// not start with a partially-read image.
func Load(r io.Reader) ([isa.ProgramMemorySize]byte, error) {
	var img [isa.ProgramMemorySize]byte
	n, err := io.ReadFull(r, img[:])
	if err != nil {
		return img, fmt.Errorf("image: read %d of %d bytes: %w", n, isa.ProgramMemorySize, err)
	}
	// ReadFull already refuses a trailing short read (ErrUnexpectedEOF)
	// or a completely empty reader (EOF); confirm there isn't more.
	var extra [1]byte
	if m, _ := r.Read(extra[:]); m > 0 {
		return img, fmt.Errorf("image: more than %d bytes available, want exactly %d", isa.ProgramMemorySize, isa.ProgramMemorySize)
	}
	return img, nil
}
