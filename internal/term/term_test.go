package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		want         string
	}{
		{
			name:         "answer given",
			input:        "sk-live\n",
			defaultValue: "sk-default",
			want:         "sk-live",
		},
		{
			name:         "empty answer uses default",
			input:        "\n",
			defaultValue: "gpt-4o-mini",
			want:         "gpt-4o-mini",
		},
		{
			name:         "answer is trimmed",
			input:        "  value  \n",
			defaultValue: "",
			want:         "value",
		},
		{
			name:         "eof without newline still reads answer",
			input:        "value",
			defaultValue: "",
			want:         "value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Prompt("Question", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptShowsDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n"), &out)

	_, err := p.Prompt("Model", "gpt-4o-mini")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Model [gpt-4o-mini]: ")
}

func TestPromptEmptyInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader(""), &out)

	_, err := p.Prompt("Question", "")
	require.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes word", input: "yes\n", want: true},
		{name: "uppercase yes", input: "Y\n", want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty defaults no", input: "\n", want: false},
		{name: "empty defaults yes", input: "\n", defaultYes: true, want: true},
		{name: "garbage is no", input: "maybe\n", defaultYes: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
