/*
 * m8 - Runs an assembled program image against a machine configuration.
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

// m8run loads an already-assembled program image and a machine
// configuration, runs the harness, and reports final CPU state. It
// is a consumer of a prebuilt image, not an assembler: it never
// lexes, parses, or hardcodes a program.
package main

import (
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rlowe/m8/config"
	"github.com/rlowe/m8/image"
	"github.com/rlowe/m8/logging"
	"github.com/rlowe/m8/machine"
)

func main() {
	optImage := getopt.StringLong("image", 'i', "", "Program image to run (exactly 1024 bytes)")
	optConfig := getopt.StringLong("config", 'c', "", "Machine configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var logFile *os.File
	if *optLogFile != "" {
		var err error
		logFile, err = os.Create(*optLogFile)
		if err != nil {
			slog.Error("create log file", "error", err)
			os.Exit(1)
		}
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelInfo)
	logger := slog.New(logging.NewHandler(logFile, &slog.HandlerOptions{Level: programLevel}))
	slog.SetDefault(logger)

	if *optImage == "" || *optConfig == "" {
		slog.Error("both --image and --config are required")
		os.Exit(1)
	}

	imgFile, err := os.Open(*optImage)
	if err != nil {
		slog.Error("open image", "error", err)
		os.Exit(1)
	}
	defer imgFile.Close()

	img, err := image.Load(imgFile)
	if err != nil {
		slog.Error("load image", "error", err)
		os.Exit(1)
	}

	cfgFile, err := os.Open(*optConfig)
	if err != nil {
		slog.Error("open config", "error", err)
		os.Exit(1)
	}
	defer cfgFile.Close()

	cfg, err := config.Parse(cfgFile)
	if err != nil {
		slog.Error("parse config", "error", err)
		os.Exit(1)
	}
	if len(cfg.Debug) > 0 {
		programLevel.Set(slog.LevelDebug)
	}

	m, err := machine.Build(img[:], cfg, os.Stdout)
	if err != nil {
		slog.Error("build machine", "error", err)
		os.Exit(1)
	}

	slog.Info("m8 starting", "ticks", cfg.Ticks)
	m.Harness.Run(cfg.Ticks)
	slog.Info("m8 finished",
		"tick", m.Harness.Tick(),
		"pc", m.Core.ProgramCounter(),
		"page", m.Core.PageAddress(),
		"accumulator", m.Core.Accumulator(),
		"X", m.Core.X(), "Y", m.Core.Y(), "Z", m.Core.Z(),
	)
}
