// Package config provides configuration management for the mDoc toolkit.
//
// Package: config
// Title: mDoc Configuration Management
// Description: This package implements configuration loading from TOML and
//              YAML files with environment variable overrides, built-in
//              defaults, and thread-safe dot-notation access. Environment
//              variables use the MDOC_ prefix and override file values
//              (e.g. MDOC_PARSER_STRICT_NESTING overrides
//              parser.strict_nesting).
// Author: msto63 with Claude Opus 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//
//	cfg, err := config.Load("mdoc.toml")
//	if err != nil {
//	  return err
//	}
//
//	level := cfg.GetString("log.level", "info")
//	strict := cfg.GetBool("parser.strict_nesting")
//	maxSize := cfg.GetInt("parser.max_input_size", 1048576)
package config
