// internal/config/config.go
package config

import (
	"os"
	"strings"
)

const (
	// Placeholder is shown in place of any value that cannot be computed
	// from the current inputs.
	Placeholder = "--"

	// OutputEnvVar overrides the default --output format.
	OutputEnvVar = "ASTROCALC_OUTPUT"

	OutputJSON  = "json"
	OutputTable = "table"
	OutputTUI   = "tui"

	DefaultOutput = OutputTable
)

// SupportedOutputs lists the values accepted by --output.
var SupportedOutputs = []string{OutputJSON, OutputTable, OutputTUI}

// DefaultOutputFormat returns the output format from OutputEnvVar when it
// holds a supported value, DefaultOutput otherwise.
func DefaultOutputFormat() string {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(OutputEnvVar)))
	if IsSupportedOutput(v) {
		return v
	}
	return DefaultOutput
}

// IsSupportedOutput reports whether format is one of SupportedOutputs.
func IsSupportedOutput(format string) bool {
	for _, f := range SupportedOutputs {
		if f == format {
			return true
		}
	}
	return false
}
