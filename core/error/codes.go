// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across mDoc. These codes enable structured
//              error handling, CLI exit code mapping, and precise test
//              assertions on failure modes.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for mDoc
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeIOError      Code = "IO_ERROR"

	// Document syntax (tokenizer and parser)
	CodeLexical              Code = "LEXICAL"
	CodeUnknownTag           Code = "UNKNOWN_TAG"
	CodeUnclosedTag          Code = "UNCLOSED_TAG"
	CodeUnexpectedCloseTag   Code = "UNEXPECTED_CLOSE_TAG"
	CodeDuplicateHead        Code = "DUPLICATE_HEAD"
	CodeDictMissingSeparator Code = "DICT_MISSING_SEPARATOR"
	CodeDictDuplicateKey     Code = "DICT_DUPLICATE_KEY"
	CodeInvalidAttribute     Code = "INVALID_ATTRIBUTE"
	CodeListItemOutOfOrder   Code = "LIST_ITEM_OUT_OF_ORDER"
	CodeInputTooLarge        Code = "INPUT_TOO_LARGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeIOError,
		CodeLexical, CodeUnknownTag, CodeUnclosedTag, CodeUnexpectedCloseTag,
		CodeDuplicateHead, CodeDictMissingSeparator, CodeDictDuplicateKey,
		CodeInvalidAttribute, CodeListItemOutOfOrder, CodeInputTooLarge,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeUnknownTag, CodeUnclosedTag, CodeUnexpectedCloseTag,
		CodeDuplicateHead, CodeDictMissingSeparator, CodeDictDuplicateKey,
		CodeInvalidAttribute, CodeListItemOutOfOrder, CodeInputTooLarge:
		return "syntax"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat:
		return "validation"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}

// IsSyntaxCode returns true for codes produced by the tokenizer or parser.
// The CLI uses this to map parse failures to their dedicated exit code.
func (c Code) IsSyntaxCode() bool {
	return c.Category() == "syntax"
}
