// File: logger_test.go
// Title: Logger Unit Tests
// Description: Tests for the structured logger including level filtering,
//              context field propagation, and output formatting.
// Author: kumekay
// Version: v0.1.0
// Created: 2026-08-02
// Modified: 2026-08-02
//
// Change History:
// - 2026-08-02 v0.1.0: Initial test suite

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer, level Level, format Format) *Logger {
	return NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: buf,
		Name:   "test",
	})
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelWarn, FormatText)

	logger.Debug("should not appear")
	logger.Info("should not appear either")
	logger.Warn("visible warning")
	logger.Error("visible error")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("Suppressed levels leaked into output: %q", output)
	}
	if !strings.Contains(output, "visible warning") {
		t.Errorf("Expected warning in output, got %q", output)
	}
	if !strings.Contains(output, "visible error") {
		t.Errorf("Expected error in output, got %q", output)
	}
}

func TestLogger_WithField(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatText)

	child := logger.WithField("component", "parser")
	child.Info("parsing started")

	if !strings.Contains(buf.String(), "component=parser") {
		t.Errorf("Expected context field in output, got %q", buf.String())
	}

	// Parent logger must not have inherited the child's field
	buf.Reset()
	logger.Info("plain message")
	if strings.Contains(buf.String(), "component=parser") {
		t.Errorf("Parent logger mutated by WithField: %q", buf.String())
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelInfo, FormatJSON)

	logger.Info("structured message", Fields{"tokens": 42})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "structured message" {
		t.Errorf("Expected message field, got %v", entry["message"])
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level info, got %v", entry["level"])
	}
	if entry["tokens"] != float64(42) {
		t.Errorf("Expected tokens=42, got %v", entry["tokens"])
	}
	if entry["logger"] != "test" {
		t.Errorf("Expected logger name, got %v", entry["logger"])
	}
}

func TestLogger_WarnWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf, LevelDebug, FormatText)

	logger.WarnWithErr("fallback engaged", &ParseError{Input: "x", Type: "level"})

	output := buf.String()
	if !strings.Contains(output, "fallback engaged") {
		t.Errorf("Expected message in output, got %q", output)
	}
	if !strings.Contains(output, "invalid level: x") {
		t.Errorf("Expected error text in output, got %q", output)
	}
}

func TestFields_Merge(t *testing.T) {
	a := Fields{"x": 1, "y": 2}
	b := Fields{"y": 3, "z": 4}

	merged := a.Merge(b)
	if merged["x"] != 1 || merged["y"] != 3 || merged["z"] != 4 {
		t.Errorf("Unexpected merge result: %v", merged)
	}
	if a["y"] != 2 {
		t.Error("Merge mutated its receiver")
	}
}
