package ship

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
	"github.com/scenariolabs/railup/internal/vars"
)

// scriptedRunner records calls and fails the ones listed in fail.
type scriptedRunner struct {
	calls []string
	fail  map[string]error
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{fail: make(map[string]error)}
}

func (r *scriptedRunner) Run(ctx context.Context, args ...string) error {
	call := strings.Join(args, " ")
	r.calls = append(r.calls, call)
	return r.fail[call]
}

func (r *scriptedRunner) Output(ctx context.Context, args ...string) (string, error) {
	call := strings.Join(args, " ")
	r.calls = append(r.calls, call)
	return "", r.fail[call]
}

func writeEnvFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0600))
	return path
}

func newFlow(t *testing.T, runner *scriptedRunner, envFile, input string) (*railway.Client, *vars.Setter, *term.Prompter, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	client := railway.NewClient(runner)
	prompter := term.NewPrompter(strings.NewReader(input), &out)
	setter := vars.NewSetter(client, prompter, envFile, "OPENAI_API_KEY", nil)
	setter.UseKeyring = false
	return client, setter, prompter, &out
}

func TestRunAlreadyLinkedSkipsChoicePrompt(t *testing.T) {
	runner := newScriptedRunner()
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\n")
	client, setter, prompter, out := newFlow(t, runner, envFile, "")

	require.NoError(t, Run(context.Background(), client, setter, prompter))

	// The init/link choice is never shown when the probe succeeds.
	assert.NotContains(t, out.String(), "Create a new project")
	assert.Equal(t, []string{
		"status",
		"variables --set OPENAI_API_KEY=sk-test",
		"up",
	}, runner.calls)
}

func TestRunUnlinkedPromptsForInit(t *testing.T) {
	runner := newScriptedRunner()
	runner.fail["status"] = errors.New("no linked project")
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\n")
	client, setter, prompter, out := newFlow(t, runner, envFile, "1\n")

	require.NoError(t, Run(context.Background(), client, setter, prompter))

	assert.Contains(t, out.String(), "Create a new project")
	assert.Equal(t, []string{
		"status",
		"init",
		"variables --set OPENAI_API_KEY=sk-test",
		"up",
	}, runner.calls)
}

func TestRunUnlinkedPromptsForLink(t *testing.T) {
	runner := newScriptedRunner()
	runner.fail["status"] = errors.New("no linked project")
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\n")
	client, setter, prompter, _ := newFlow(t, runner, envFile, "2\n")

	require.NoError(t, Run(context.Background(), client, setter, prompter))
	assert.Contains(t, runner.calls, "link")
}

func TestRunUnlinkedInvalidChoice(t *testing.T) {
	runner := newScriptedRunner()
	runner.fail["status"] = errors.New("no linked project")
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\n")
	client, setter, prompter, _ := newFlow(t, runner, envFile, "3\n")

	err := Run(context.Background(), client, setter, prompter)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid choice")
	assert.NotContains(t, runner.calls, "up")
}

func TestRunFailingVariableDoesNotStopFlow(t *testing.T) {
	runner := newScriptedRunner()
	runner.fail["variables --set OPENAI_MODEL=gpt-4o-mini"] = errors.New("exit status 1")
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\nOPENAI_MODEL=gpt-4o-mini\nOPENAI_SEED=42\n")
	client, setter, prompter, _ := newFlow(t, runner, envFile, "")

	require.NoError(t, Run(context.Background(), client, setter, prompter))

	// The failing key is skipped; later keys and the deploy still run.
	assert.Equal(t, []string{
		"status",
		"variables --set OPENAI_API_KEY=sk-test",
		"variables --set OPENAI_MODEL=gpt-4o-mini",
		"variables --set OPENAI_SEED=42",
		"up",
	}, runner.calls)
}

func TestRunFailingDeployIsFatal(t *testing.T) {
	runner := newScriptedRunner()
	runner.fail["up"] = errors.New("exit status 2")
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\n")
	client, setter, prompter, _ := newFlow(t, runner, envFile, "")

	err := Run(context.Background(), client, setter, prompter)
	require.Error(t, err)
}

func TestRunFailingInitIsFatal(t *testing.T) {
	runner := newScriptedRunner()
	runner.fail["status"] = errors.New("no linked project")
	runner.fail["init"] = errors.New("exit status 1")
	envFile := writeEnvFile(t, "OPENAI_API_KEY=sk-test\n")
	client, setter, prompter, _ := newFlow(t, runner, envFile, "1\n")

	err := Run(context.Background(), client, setter, prompter)
	require.Error(t, err)
	assert.NotContains(t, runner.calls, "up")
}

func TestCommand(t *testing.T) {
	assert.Equal(t, "ship", Command.Name)
	assert.NotNil(t, Command.Action)

	flagMap := make(map[string]bool)
	for _, flag := range Command.Flags {
		flagMap[flag.Names()[0]] = true
	}
	assert.True(t, flagMap["env-file"])
	assert.True(t, flagMap["no-keyring"])
}
