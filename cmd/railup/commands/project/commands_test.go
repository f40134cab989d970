package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand(t *testing.T) {
	require.NotNil(t, Command)
	assert.Equal(t, "project", Command.Name)

	names := make(map[string]bool)
	for _, sub := range Command.Commands {
		names[sub.Name] = true
	}
	assert.True(t, names["init"])
	assert.True(t, names["link"])
}

func TestSubcommandsHaveActions(t *testing.T) {
	assert.NotNil(t, InitCommand.Action)
	assert.NotNil(t, LinkCommand.Action)
}
