package vars

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/preflight"
	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
	"github.com/scenariolabs/railup/internal/vars"
)

// Command groups environment-variable subcommands
var Command = &cli.Command{
	Name:  "vars",
	Usage: "Manage the remote environment's variables",
	Commands: []*cli.Command{
		SetCommand,
		ListCommand,
		UnsetCommand,
	},
	Action: runList, // plain 'railup vars' lists
}

// SetCommand pushes variables from the env file (or interactive prompts)
var SetCommand = &cli.Command{
	Name:  "set",
	Usage: "Set remote variables from the env file",
	Description: `Reads the local env file and sets each KEY=VALUE pair remotely,
one 'railway variables --set' call per pair, in file order.

When the env file does not exist, the required key is prompted for
interactively (with keyring recall) and the configured defaults are set for
the remaining keys. A failing set call is fatal here; the combined 'ship'
flow tolerates individual failures instead.

Examples:
  railup vars set
  railup vars set --env-file .env.production
  railup vars set --no-keyring`,
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
	Action: runSet,
}

// ListCommand prints the remote variables
var ListCommand = &cli.Command{
	Name:  "list",
	Usage: "List the remote environment's variables",
	Description: `Pass-through to 'railway variables'.

Examples:
  railup vars list`,
	Action: runList,
}

// UnsetCommand removes one remote variable
var UnsetCommand = &cli.Command{
	Name:      "unset",
	Usage:     "Remove a variable from the remote environment",
	ArgsUsage: "<key>",
	Description: `Pass-through to 'railway variables --unset KEY'.

Examples:
  railup vars unset OPENAI_SEED`,
	Action: runUnset,
}

func runSet(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
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

	setter := vars.NewSetter(client, term.Default(), envFile, cfg.Env.RequiredKey, cfg.Env.Defaults)
	if cmd.Bool("no-keyring") {
		setter.UseKeyring = false
	}

	return setter.Sync(ctx, vars.Fatal)
}

func runList(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	return railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary)).Variables(ctx)
}

func runUnset(ctx context.Context, cmd *cli.Command) error {
	key := cmd.Args().Get(0)
	if key == "" {
		return fmt.Errorf("variable key required\n\nUsage: railup vars unset <key>")
	}

	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	return railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary)).UnsetVariable(ctx, key)
}
