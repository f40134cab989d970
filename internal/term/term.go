// Package term handles console interaction: reading interactive input and
// printing color-coded status lines.
package term

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Prompter reads interactive answers from an input stream and echoes
// questions to an output stream. Commands construct one over os.Stdin and
// os.Stdout; tests inject buffers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter over the given streams.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Default returns a Prompter over standard input and output.
func Default() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// Prompt asks a question and returns the trimmed answer, or defaultValue when
// the answer is empty. The default is shown in brackets when non-empty.
func (p *Prompter) Prompt(question, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", question, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", question)
	}

	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return defaultValue, nil
	}

	return input, nil
}

// Confirm asks a yes/no question. Empty input means yes when defaultYes is
// set.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}

	answer, err := p.Prompt(fmt.Sprintf("%s (%s)", question, hint), "")
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "":
		return defaultYes, nil
	default:
		return false, nil
	}
}

// Out returns the prompter's output stream, for callers that interleave their
// own messages with prompts.
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Success prints a green check-marked status line.
func Success(format string, args ...interface{}) {
	successColor.Printf("✓ "+format+"\n", args...)
}

// Warn prints a yellow warning line.
func Warn(format string, args ...interface{}) {
	warnColor.Printf("⚠ "+format+"\n", args...)
}

// Fail prints a red failure line.
func Fail(format string, args ...interface{}) {
	errorColor.Printf("✗ "+format+"\n", args...)
}

// Info prints a plain status line.
func Info(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
