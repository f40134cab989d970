package logs

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/railway"
)

// Command is the top-level logs command
var Command = &cli.Command{
	Name:  "logs",
	Usage: "View deployment logs",
	Description: `Streams logs from the linked Railway deployment.

This is a direct pass-through to 'railway logs'; its exit code is propagated.

Examples:
  railup logs`,
	Action: runLogs,
}

func runLogs(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	return railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary)).Logs(ctx)
}
