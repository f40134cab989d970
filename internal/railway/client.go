package railway

import (
	"context"
	"fmt"
)

// Client exposes one method per CLI subcommand the orchestrator needs. All
// methods are blocking pass-throughs: no retries, no argument transformation
// beyond assembling the subcommand's flags.
type Client struct {
	runner Runner
}

// NewClient creates a Client over the given runner.
func NewClient(runner Runner) *Client {
	return &Client{runner: runner}
}

// WhoAmI queries the authenticated identity. Output is captured so an
// unauthenticated session does not splash CLI errors before the login flow.
func (c *Client) WhoAmI(ctx context.Context) (string, error) {
	return c.runner.Output(ctx, "whoami")
}

// Login starts the CLI's interactive browser login flow.
func (c *Client) Login(ctx context.Context) error {
	return c.runner.Run(ctx, "login")
}

// Init creates a new remote project interactively.
func (c *Client) Init(ctx context.Context) error {
	return c.runner.Run(ctx, "init")
}

// Link attaches the working directory to an existing remote project.
func (c *Client) Link(ctx context.Context) error {
	return c.runner.Run(ctx, "link")
}

// Up uploads and deploys the application.
func (c *Client) Up(ctx context.Context) error {
	return c.runner.Run(ctx, "up")
}

// SetVariable sets one environment variable in the remote environment.
func (c *Client) SetVariable(ctx context.Context, key, value string) error {
	return c.runner.Run(ctx, "variables", "--set", fmt.Sprintf("%s=%s", key, value))
}

// UnsetVariable removes one environment variable from the remote environment.
func (c *Client) UnsetVariable(ctx context.Context, key string) error {
	return c.runner.Run(ctx, "variables", "--unset", key)
}

// Variables prints the remote environment's variables.
func (c *Client) Variables(ctx context.Context) error {
	return c.runner.Run(ctx, "variables")
}

// Logs streams deployment logs.
func (c *Client) Logs(ctx context.Context) error {
	return c.runner.Run(ctx, "logs")
}

// Open launches the project dashboard in the browser.
func (c *Client) Open(ctx context.Context) error {
	return c.runner.Run(ctx, "open")
}

// Status prints the linked project's status.
func (c *Client) Status(ctx context.Context) error {
	return c.runner.Run(ctx, "status")
}

// StatusQuiet probes whether the working directory is linked to a remote
// project without printing anything. A non-nil error means not linked (or the
// CLI failed, which the combined flow treats the same way).
func (c *Client) StatusQuiet(ctx context.Context) error {
	_, err := c.runner.Output(ctx, "status")
	return err
}
