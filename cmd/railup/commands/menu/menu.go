// Package menu implements the interactive front-end: a numbered list of
// deployment actions, one selection per run.
package menu

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/scenariolabs/railup/cmd/railup/commands/deploy"
	"github.com/scenariolabs/railup/cmd/railup/commands/ship"
	"github.com/scenariolabs/railup/internal/config"
	"github.com/scenariolabs/railup/internal/preflight"
	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/term"
	"github.com/scenariolabs/railup/internal/vars"
)

// Action is one entry of the interactive menu. The set is closed: every
// value maps to exactly one handler, and anything else is an
// InvalidSelectionError.
type Action int

const (
	ActionInit Action = iota + 1
	ActionLink
	ActionDeploy
	ActionSetVars
	ActionLogs
	ActionDashboard
	ActionStatus
	ActionShip
	ActionExit
)

// labels drive both rendering and the closed-set bound check.
var labels = map[Action]string{
	ActionInit:      "Initialize new Railway project",
	ActionLink:      "Link to existing Railway project",
	ActionDeploy:    "Deploy application",
	ActionSetVars:   "Set environment variables",
	ActionLogs:      "View deployment logs",
	ActionDashboard: "Open project dashboard",
	ActionStatus:    "Check deployment status",
	ActionShip:      "Full flow: link, set variables, deploy",
	ActionExit:      "Exit",
}

// InvalidSelectionError reports a menu token that matches no action.
type InvalidSelectionError struct {
	Token string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %q (expected 1-%d)", e.Token, len(labels))
}

// ParseAction maps a selection token to an Action.
func ParseAction(token string) (Action, error) {
	token = strings.TrimSpace(token)

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, &InvalidSelectionError{Token: token}
	}

	action := Action(n)
	if _, ok := labels[action]; !ok {
		return 0, &InvalidSelectionError{Token: token}
	}

	return action, nil
}

// Run renders the menu, reads one selection, and dispatches it. The program
// performs exactly one action per run; there is no loop back to the menu.
func Run(ctx context.Context, cfg *config.Config, client *railway.Client, prompter *term.Prompter) error {
	render(cfg, prompter)

	token, err := prompter.Prompt("Select an option", "")
	if err != nil {
		return err
	}

	action, err := ParseAction(token)
	if err != nil {
		return err
	}

	return Dispatch(ctx, action, cfg, client, prompter)
}

// Dispatch executes one menu action. Actions that talk to the platform on
// the user's behalf ensure an authenticated session first; pure pass-throughs
// (logs, dashboard, status) let the external CLI report its own state.
func Dispatch(ctx context.Context, action Action, cfg *config.Config, client *railway.Client, prompter *term.Prompter) error {
	switch action {
	case ActionExit:
		return nil
	case ActionLogs:
		return client.Logs(ctx)
	case ActionDashboard:
		return client.Open(ctx)
	case ActionStatus:
		return client.Status(ctx)
	}

	if err := preflight.EnsureAuthenticated(ctx, client); err != nil {
		return err
	}

	switch action {
	case ActionInit:
		return client.Init(ctx)
	case ActionLink:
		return client.Link(ctx)
	case ActionDeploy:
		return deploy.Deploy(ctx, client)
	case ActionSetVars:
		return newSetter(cfg, client, prompter).Sync(ctx, vars.Fatal)
	case ActionShip:
		return ship.Run(ctx, client, newSetter(cfg, client, prompter), prompter)
	default:
		return &InvalidSelectionError{Token: fmt.Sprintf("%d", action)}
	}
}

func newSetter(cfg *config.Config, client *railway.Client, prompter *term.Prompter) *vars.Setter {
	return vars.NewSetter(client, prompter, cfg.Env.File, cfg.Env.RequiredKey, cfg.Env.Defaults)
}

func render(cfg *config.Config, prompter *term.Prompter) {
	out := prompter.Out()
	fmt.Fprintf(out, "\n%s - Railway deployment\n\n", cfg.App.Name)
	for i := 1; i <= len(labels); i++ {
		fmt.Fprintf(out, "  %d) %s\n", i, labels[Action(i)])
	}
	fmt.Fprintln(out)
}
