package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	dashboardcmd "github.com/scenariolabs/railup/cmd/railup/commands/dashboard"
	deploycmd "github.com/scenariolabs/railup/cmd/railup/commands/deploy"
	logscmd "github.com/scenariolabs/railup/cmd/railup/commands/logs"
	menucmd "github.com/scenariolabs/railup/cmd/railup/commands/menu"
	projectcmd "github.com/scenariolabs/railup/cmd/railup/commands/project"
	shipcmd "github.com/scenariolabs/railup/cmd/railup/commands/ship"
	statuscmd "github.com/scenariolabs/railup/cmd/railup/commands/status"
	varscmd "github.com/scenariolabs/railup/cmd/railup/commands/vars"
	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/preflight"
	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
)

var (
	// Version information (will be set by build flags)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:    "railup",
		Usage:   "Deploy a FastAPI application to Railway",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
				Sources: cli.EnvVars("RAILUP_CONFIG"),
			},
		},
		Commands: []*cli.Command{
			projectcmd.Command,
			deploycmd.Command,
			varscmd.Command,
			logscmd.Command,
			dashboardcmd.Command,
			statuscmd.Command,
			shipcmd.Command,
		},
		// No subcommand: verify preconditions and show the interactive menu.
		Action: runMenu,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(railway.ExitCode(err))
	}
}

func runMenu(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	if err := preflight.NewChecker(cfg.Railway.Binary, cfg.App.RequiredFiles).Check(); err != nil {
		return err
	}

	client := railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary))
	return menucmd.Run(ctx, cfg, client, term.Default())
}
