// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log level selection. Severity levels help
//              distinguish user-input problems from tool defects.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed input documents, invalid CLI arguments
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable optional config file, oversized input
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unwritable output destination, corrupt configuration
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the tool unusable
	// Examples: internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code.
// Syntax errors come from user-supplied documents and are expected in normal
// operation, so they rank low.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeInvalidConfig, CodeIOError:
		return SeverityHigh

	case CodeMissingConfig, CodeInputTooLarge, CodeValidationFailed, CodeInvalidFormat:
		return SeverityMedium

	case CodeLexical, CodeUnknownTag, CodeUnclosedTag, CodeUnexpectedCloseTag,
		CodeDuplicateHead, CodeDictMissingSeparator, CodeDictDuplicateKey,
		CodeInvalidAttribute, CodeListItemOutOfOrder, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
