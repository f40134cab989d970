package dashboard

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/railway"
)

// Command is the top-level dashboard command
var Command = &cli.Command{
	Name:  "dashboard",
	Usage: "Open the Railway project dashboard in a browser",
	Description: `Opens the linked project's dashboard via 'railway open'.

Examples:
  railup dashboard`,
	Action: runOpen,
}

func runOpen(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(config.FindConfig(cmd.String("config")))
	if err != nil {
		return err
	}

	return railway.NewClient(railway.NewExecRunner(cfg.Railway.Binary)).Open(ctx)
}
