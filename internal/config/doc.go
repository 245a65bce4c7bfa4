// Package config provides configuration management for envseek.
//
// This package implements a layered configuration system that lets users
// change how envseek resolves variables without touching call sites.
// Configuration is loaded from multiple sources and merged in a specific
// order, with later sources overriding earlier ones.
//
// # Configuration Layers
//
//  1. Default configuration (embedded in binary)
//  2. User configuration (~/.config/envseek/config.yaml)
//  3. Project configuration (./.envseek.yaml)
//  4. Environment variables (ENVSEEK_* prefix)
//
// # Configuration Structure
//
//	envFile: /path/to/.env     # explicit env file, overrides the locator
//	order: [file, system, input]
//	strictParse: false
//	logLevel: info
//
// The same knobs are reachable through the environment: ENVSEEK_FILE,
// ENVSEEK_ORDER (comma-separated), ENVSEEK_STRICT and ENVSEEK_LOG_LEVEL.
package config
