// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the main logger functionality including configuration,
//              context management, and integration with formatters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with logger tests

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	mdocerror "github.com/msto63/mDoc/core/error"
)

func TestNew(t *testing.T) {
	logger := New()

	if logger == nil {
		t.Fatal("New() should not return nil")
	}

	if logger.GetLevel() != DefaultLevel() {
		t.Errorf("New() level = %v, want %v", logger.GetLevel(), DefaultLevel())
	}

	if logger.contextFields == nil {
		t.Error("New() should initialize context fields")
	}
}

func TestNewWithConfig(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelError,
		Format: FormatText,
		Output: &buf,
		Name:   "test-logger",
	}

	logger := NewWithConfig(config)

	if logger.GetLevel() != LevelError {
		t.Errorf("NewWithConfig() level = %v, want %v", logger.GetLevel(), LevelError)
	}

	if logger.name != "test-logger" {
		t.Errorf("NewWithConfig() name = %v, want test-logger", logger.name)
	}

	if logger.output != &buf {
		t.Error("NewWithConfig() should set custom output")
	}
}

func TestLoggerWithLevel(t *testing.T) {
	logger := New()
	newLogger := logger.WithLevel(LevelDebug)

	if newLogger == logger {
		t.Error("WithLevel() should return a new logger instance")
	}

	if newLogger.GetLevel() != LevelDebug {
		t.Errorf("WithLevel() level = %v, want %v", newLogger.GetLevel(), LevelDebug)
	}

	// Original logger should be unchanged
	if logger.GetLevel() != DefaultLevel() {
		t.Error("WithLevel() should not modify original logger")
	}
}

func TestLoggerWithField(t *testing.T) {
	logger := New()
	newLogger := logger.WithField("component", "parser")

	if newLogger == logger {
		t.Error("WithField() should return a new logger instance")
	}

	if newLogger.contextFields["component"] != "parser" {
		t.Error("WithField() should add context field")
	}

	// Original logger should be unchanged
	if _, exists := logger.contextFields["component"]; exists {
		t.Error("WithField() should not modify original logger")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: &buf,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()

	if strings.Contains(output, "debug message") {
		t.Error("Debug message should be filtered at warn level")
	}
	if strings.Contains(output, "info message") {
		t.Error("Info message should be filtered at warn level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Warn message should be logged at warn level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should be logged at warn level")
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: &buf,
		Name:   "json-test",
	})

	logger.Info("document parsed", Field("blocks", 3))

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("JSON output should be valid: %v", err)
	}

	if data["message"] != "document parsed" {
		t.Errorf("message = %v, want 'document parsed'", data["message"])
	}
	if data["level"] != "info" {
		t.Errorf("level = %v, want info", data["level"])
	}
	if data["logger"] != "json-test" {
		t.Errorf("logger = %v, want json-test", data["logger"])
	}
	if data["blocks"] != float64(3) {
		t.Errorf("blocks = %v, want 3", data["blocks"])
	}
}

func TestLoggerContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	}).WithField("component", "tokenizer")

	logger.Info("token produced")

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("JSON output should be valid: %v", err)
	}

	if data["component"] != "tokenizer" {
		t.Errorf("component = %v, want tokenizer", data["component"])
	}
}

func TestLoggerLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatJSON,
		Output: &buf,
	})

	err := mdocerror.New("missing separator").
		WithCode(mdocerror.CodeDictMissingSeparator).
		WithOperation("parse_dict")
	logger.LogError(err)

	var data map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &data); jsonErr != nil {
		t.Fatalf("JSON output should be valid: %v", jsonErr)
	}

	// Low severity errors are logged at info level
	if data["level"] != "info" {
		t.Errorf("level = %v, want info for low severity error", data["level"])
	}
	if data["error_code"] != string(mdocerror.CodeDictMissingSeparator) {
		t.Errorf("error_code = %v, want %v", data["error_code"], mdocerror.CodeDictMissingSeparator)
	}
	if data["error_operation"] != "parse_dict" {
		t.Errorf("error_operation = %v, want parse_dict", data["error_operation"])
	}
}

func TestLoggerLogErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &buf,
	})

	logger.LogError(nil)

	if buf.Len() != 0 {
		t.Error("LogError(nil) should not produce output")
	}
}

func TestDefaultLogger(t *testing.T) {
	logger := GetDefault()
	if logger == nil {
		t.Fatal("GetDefault() should not return nil")
	}

	var buf bytes.Buffer
	custom := NewWithConfig(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: &buf,
	})
	SetDefault(custom)
	defer SetDefault(logger)

	Info("via default logger")

	if !strings.Contains(buf.String(), "via default logger") {
		t.Error("package level Info() should use the default logger")
	}
}

func TestTimer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	})

	timer := logger.StartTimer("parse_document")
	if !timer.IsRunning() {
		t.Error("timer should be running after start")
	}

	elapsed := timer.Stop()
	if elapsed < 0 {
		t.Error("elapsed time should not be negative")
	}
	if timer.IsRunning() {
		t.Error("timer should not be running after Stop()")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("JSON output should be valid: %v", err)
	}
	if data["operation"] != "parse_document" {
		t.Errorf("operation = %v, want parse_document", data["operation"])
	}

	// Second Stop is a no-op
	if timer.Stop() != 0 {
		t.Error("second Stop() should return 0")
	}
}
