package status

import (
	"testing"
)

func TestCommand(t *testing.T) {
	if Command == nil {
		t.Fatal("Command should not be nil")
	}

	if Command.Name != "status" {
		t.Errorf("Command.Name = %q, want status", Command.Name)
	}

	if Command.Action == nil {
		t.Error("Command should have an action")
	}
}
