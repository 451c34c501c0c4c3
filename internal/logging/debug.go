package logging

import (
	"os"
)

// DebugEnv forces debug logging when set to any non-empty value.
const DebugEnv = "TASKS_DEBUG"

// DebugEnabled returns true if debug mode is enabled via TASKS_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}
