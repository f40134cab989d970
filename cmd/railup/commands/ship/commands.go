package ship

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/cmd/railup/commands/deploy"
	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/preflight"
	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
	"github.com/scenariolabs/railup/internal/vars"
)

// Command is the combined end-to-end flow
var Command = &cli.Command{
	Name:  "ship",
	Usage: "Full flow: link, set variables, deploy",
	Description: `Runs the whole deployment in one pass:

  1. Probe project linkage with a quiet status query. When the directory is
     not linked, choose between creating a new project and linking an
     existing one.
  2. Push environment variables (best effort: a failing key is logged and
     skipped).
  3. Deploy. A failing deploy aborts with its exit code.

Examples:
  railup ship`,
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "env-file",
			Aliases: []string{"e"},
			Usage:   "Path to the env file to push",
		},
		&cli.BoolFlag{
			Name:  "no-keyring",
			Usage: "Do not read or save the API key in the OS keyring",
		},
	},
	Action: runShip,
}

func runShip(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	if err := preflight.NewChecker(cfg.Railway.Binary, cfg.App.RequiredFiles).Check(); err != nil {
		return err
	}

	client := railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary))
	if err := preflight.EnsureAuthenticated(ctx, client); err != nil {
		return err
	}

	envFile := cfg.Env.File
	if f := cmd.String("env-file"); f != "" {
		envFile = f
	}

	prompter := term.Default()
	setter := vars.NewSetter(client, prompter, envFile, cfg.Env.RequiredKey, cfg.Env.Defaults)
	if cmd.Bool("no-keyring") {
		setter.UseKeyring = false
	}

	return Run(ctx, client, setter, prompter)
}

// Run sequences the combined flow against an already-authenticated client.
// Shared with the interactive menu.
func Run(ctx context.Context, client *railway.Client, setter *vars.Setter, prompter *term.Prompter) error {
	if err := ensureLinked(ctx, client, prompter); err != nil {
		return err
	}

	if err := setter.Sync(ctx, vars.BestEffort); err != nil {
		return err
	}

	return deploy.Deploy(ctx, client)
}

// ensureLinked probes the project linkage and, only when the probe fails,
// asks whether to create a new project or link an existing one.
func ensureLinked(ctx context.Context, client *railway.Client, prompter *term.Prompter) error {
	if err := client.StatusQuiet(ctx); err == nil {
		term.Success("Project already linked")
		return nil
	}

	term.Warn("No linked Railway project detected")
	choice, err := prompter.Prompt("Create a new project (1) or link an existing one (2)", "1")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return client.Init(ctx)
	case "2":
		return client.Link(ctx)
	default:
		return fmt.Errorf("invalid choice: %q (expected 1 or 2)", choice)
	}
}
