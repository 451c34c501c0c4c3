package logging

import (
	"os"
	"testing"
)

func TestDebugEnabled(t *testing.T) {
	t.Setenv(DebugEnv, "")

	// Test with TASKS_DEBUG not set
	os.Unsetenv(DebugEnv)
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TASKS_DEBUG is not set")
	}

	// Test with TASKS_DEBUG set to empty string
	os.Setenv(DebugEnv, "")
	if DebugEnabled() {
		t.Error("DebugEnabled() should return false when TASKS_DEBUG is empty")
	}

	// Test with TASKS_DEBUG set to any value
	os.Setenv(DebugEnv, "1")
	if !DebugEnabled() {
		t.Error("DebugEnabled() should return true when TASKS_DEBUG is set")
	}
}
