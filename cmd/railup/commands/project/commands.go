package project

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/preflight"
	"github.com/scenariolabs/railup/internal/railway"
)

// Command groups project linkage subcommands
var Command = &cli.Command{
	Name:  "project",
	Usage: "Create or link a Railway project",
	Commands: []*cli.Command{
		InitCommand,
		LinkCommand,
	},
}

// InitCommand creates a new remote project
var InitCommand = &cli.Command{
	Name:  "init",
	Usage: "Initialize a new Railway project",
	Description: `Creates a new Railway project interactively via 'railway init'.

Examples:
  railup project init`,
	Action: runInit,
}

// LinkCommand links an existing remote project
var LinkCommand = &cli.Command{
	Name:  "link",
	Usage: "Link to an existing Railway project",
	Description: `Attaches the working directory to an existing Railway project
via 'railway link'.

Examples:
  railup project link`,
	Action: runLink,
}

func runInit(ctx context.Context, cmd *cli.Command) error {
	client, err := authenticatedClient(ctx, cmd)
	if err != nil {
		return err
	}
	return client.Init(ctx)
}

func runLink(ctx context.Context, cmd *cli.Command) error {
	client, err := authenticatedClient(ctx, cmd)
	if err != nil {
		return err
	}
	return client.Link(ctx)
}

func authenticatedClient(ctx context.Context, cmd *cli.Command) (*railway.Client, error) {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return nil, err
	}

	client := railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary))
	if err := preflight.EnsureAuthenticated(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}
