// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// wyrandgen prints values drawn from a WyRand generator, one per line.  With
// no seeding options it uses the reference seed lo=0x12345678 hi=0x87654321,
// which makes it suitable for capturing golden vectors.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/decred/slog"
	"github.com/decred/wyrand"
	"github.com/decred/wyrand/internal/version"
	flags "github.com/jessevdk/go-flags"
)

// log is the logger for the tool.  It is replaced in run once the configured
// level is known.
var log = slog.Disabled

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

// generate writes cfg.Count values drawn from r to w, one per line.
func generate(w io.Writer, r *wyrand.Rand, cfg *config) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < cfg.Count; i++ {
		v, err := cfg.draw(r, cfg)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// run loads the configuration, sets up logging and writes the requested values
// to stdout.
func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "wyrandgen version %s\n", version.String())
		return nil
	}

	backend := slog.NewBackend(stderr)
	log = backend.Logger("WYRG")
	log.SetLevel(cfg.level)
	libLog := backend.Logger("WYRN")
	libLog.SetLevel(cfg.level)
	wyrand.UseLogger(libLog)

	r, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	lo, hi := r.State()
	log.Infof("Starting state lo=0x%08x hi=0x%08x", lo, hi)
	log.Debugf("Generating %d values with method %s", cfg.Count, cfg.Method)

	return generate(stdout, r, cfg)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			// go-flags already printed the message.
			if e.Type == flags.ErrHelp {
				os.Exit(0)
			}
			os.Exit(1)
		}
		fatalf("wyrandgen: %v\n", err)
	}
}
