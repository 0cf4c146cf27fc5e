// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_LevelFiltersMessages(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "warning", "Test")

	log.Info("hidden message")
	log.Warningf("visible %v", "message")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message must be filtered at warning level: %q", out)
	}
	if !strings.Contains(out, "visible message") {
		t.Errorf("warning message is missing: %q", out)
	}
}

func TestLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerTo(&buf, "loud", "Test")

	log.Debug("debug message")
	log.Info("info message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Errorf("debug message must be filtered at info level: %q", out)
	}
	if !strings.Contains(out, "info message") {
		t.Errorf("info message is missing: %q", out)
	}
}

func TestLogger_SatisfiesInterface(t *testing.T) {
	var _ Logger = NewLoggerTo(&bytes.Buffer{}, "info", "Test")
}
