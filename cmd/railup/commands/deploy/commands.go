package deploy

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/preflight"
	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
)

// Command is the top-level deploy command
var Command = &cli.Command{
	Name:  "deploy",
	Usage: "Build and deploy the application to Railway",
	Description: `Uploads the working directory and deploys it with 'railway up'.

Preconditions (Railway CLI installed, required project files present,
authenticated session) are verified first. The Railway CLI's exit code is
propagated on failure.

Examples:
  railup deploy`,
	Action: runDeploy,
}

func runDeploy(ctx context.Context, cmd *cli.Command) error {
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

	return Deploy(ctx, client)
}

// Deploy performs the deployment pass-through. Shared with the interactive
// menu and the combined flow.
func Deploy(ctx context.Context, client *railway.Client) error {
	term.Info("Deploying to Railway...")
	if err := client.Up(ctx); err != nil {
		return err
	}
	term.Success("Deployed")
	return nil
}
