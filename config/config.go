// Package config holds lifp's tunable runtime defaults: the product
// version string plus the VM sizing knobs (environment capacity, call
// stack depth, source buffer size) the original C runtime passed in as
// repl_opts_t/run_opts_t.
package config

import (
	"fmt"
	"strconv"
)

// Global variables
// ================

// ProductVersion is the current version of lifp.
const ProductVersion = "0.1.0"

// Known configuration options for lifp.
const (
	EnvironmentSize  = "EnvironmentSize"
	MaxCallStackSize = "MaxCallStackSize"
	FileBufferSize   = "FileBufferSize"
	LogLevel         = "LogLevel"
)

// DefaultConfig is the default configuration.
var DefaultConfig = map[string]interface{}{
	EnvironmentSize:  64,
	MaxCallStackSize: 1024,
	FileBufferSize:   1 << 20,
	LogLevel:         "info",
}

// Config is the actual config which is used.
var Config map[string]interface{}

// Initialise the config.
func init() {
	data := make(map[string]interface{})
	for k, v := range DefaultConfig {
		data[k] = v
	}

	Config = data
}

// Helper functions
// ================

// Str reads a config value as a string value.
func Str(key string) string {
	return fmt.Sprint(Config[key])
}

// Int reads a config value as an int value. Configuration keys are a
// closed set under the program's own control, so a bad value is a
// programming error rather than user input to recover from.
func Int(key string) int {
	ret, err := strconv.ParseInt(fmt.Sprint(Config[key]), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("config: could not parse key %v: %v", key, err))
	}

	return int(ret)
}

// Bool reads a config value as a boolean value.
func Bool(key string) bool {
	ret, err := strconv.ParseBool(fmt.Sprint(Config[key]))
	if err != nil {
		panic(fmt.Sprintf("config: could not parse key %v: %v", key, err))
	}

	return ret
}
