// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wyrand

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decred/slog"
)

// TestUseLogger ensures the package logger is replaced and that seeding from
// an entropy source is logged.
func TestUseLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.NewBackend(&buf).Logger("TEST")
	logger.SetLevel(slog.LevelTrace)
	UseLogger(logger)
	defer UseLogger(slog.Disabled)

	if log != logger {
		t.Fatalf("Expected log to be set to logger, got %v", log)
	}

	NewFromEntropy(EntropyFunc(func() uint32 { return 0xdeadbeef }))
	out := buf.String()
	if !strings.Contains(out, "Seeded generator from wyrand.EntropyFunc") {
		t.Fatalf("missing seeding message in log output %q", out)
	}
	if !strings.Contains(out, "lo=0xdeadbeef hi=0xdeadbeef") {
		t.Fatalf("missing state trace in log output %q", out)
	}
}
