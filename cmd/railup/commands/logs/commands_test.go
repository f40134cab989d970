package logs

import (
	"testing"
)

func TestCommand(t *testing.T) {
	if Command == nil {
		t.Fatal("Command should not be nil")
	}

	if Command.Name != "logs" {
		t.Errorf("Command.Name = %q, want logs", Command.Name)
	}

	if Command.Action == nil {
		t.Error("Command should have an action")
	}
}
