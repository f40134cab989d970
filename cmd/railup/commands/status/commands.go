package status

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/railway"
)

// Command is the top-level status command
var Command = &cli.Command{
	Name:  "status",
	Usage: "Show the linked project's status",
	Description: `Shows the current project, environment, and service via
'railway status'. Fails when the working directory is not linked to a
Railway project.

Examples:
  railup status`,
	Action: runStatus,
}

func runStatus(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	return railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary)).Status(ctx)
}
