// Package vars pushes environment variables to the remote deployment
// environment, one external CLI call per key.
package vars

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/scenariolabs/railup/internal/envfile"
	"github.com/scenariolabs/railup/internal/railway"
	"github.com/scenariolabs/railup/internal/secrets"
	"github.com/scenariolabs/railup/internal/term"
)

// Mode controls how a failing per-key set call is treated. The standalone
// set-variables action is fatal on the first failure; the combined deploy
// flow logs the failure and keeps going. The asymmetry is deliberate.
type Mode int

const (
	// Fatal stops on the first failing key.
	Fatal Mode = iota
	// BestEffort logs failing keys and continues with the rest.
	BestEffort
)

// Setter sources key/value pairs from an env file (or prompts when the file
// is absent) and sets each one remotely.
type Setter struct {
	Client      *railway.Client
	Prompter    *term.Prompter
	EnvFile     string
	RequiredKey string
	Defaults    map[string]string
	UseKeyring  bool

	// keyring hooks, swapped out in tests
	loadKey  func() (string, error)
	storeKey func(string) error
}

// NewSetter builds a Setter with keyring-backed API key recall.
func NewSetter(client *railway.Client, prompter *term.Prompter, envFile, requiredKey string, defaults map[string]string) *Setter {
	return &Setter{
		Client:      client,
		Prompter:    prompter,
		EnvFile:     envFile,
		RequiredKey: requiredKey,
		Defaults:    defaults,
		UseKeyring:  true,
		loadKey:     secrets.LoadAPIKey,
		storeKey:    secrets.StoreAPIKey,
	}
}

// Sync reads the env file and sets every pair it contains, in file order.
// When the file does not exist, the required key is prompted for and the
// named defaults are set for the remaining keys.
func (s *Setter) Sync(ctx context.Context, mode Mode) error {
	pairs, err := envfile.Load(s.EnvFile)
	if os.IsNotExist(err) {
		term.Warn("%s not found, falling back to interactive setup", s.EnvFile)
		pairs, err = s.promptPairs()
	}
	if err != nil {
		return err
	}

	if len(pairs) == 0 {
		term.Warn("no variables to set")
		return nil
	}

	return s.Apply(ctx, pairs, mode)
}

// Apply sets each pair remotely. Each invocation is independent; see Mode
// for the failure policy.
func (s *Setter) Apply(ctx context.Context, pairs []envfile.Pair, mode Mode) error {
	for _, pair := range pairs {
		if err := s.Client.SetVariable(ctx, pair.Key, pair.Value); err != nil {
			if mode == BestEffort {
				term.Warn("failed to set %s, skipping: %v", pair.Key, err)
				continue
			}
			return fmt.Errorf("failed to set %s: %w", pair.Key, err)
		}
		term.Success("Set %s", pair.Key)
	}

	return nil
}

// promptPairs builds the minimal variable set interactively: the required
// key from the user (or the keyring), then the configured defaults in sorted
// key order.
func (s *Setter) promptPairs() ([]envfile.Pair, error) {
	value, err := s.promptRequiredKey()
	if err != nil {
		return nil, err
	}

	pairs := []envfile.Pair{{Key: s.RequiredKey, Value: value}}

	keys := make([]string, 0, len(s.Defaults))
	for k := range s.Defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		pairs = append(pairs, envfile.Pair{Key: k, Value: s.Defaults[k]})
	}

	return pairs, nil
}

func (s *Setter) promptRequiredKey() (string, error) {
	if s.UseKeyring && s.loadKey != nil {
		if saved, err := s.loadKey(); err == nil && saved != "" {
			reuse, err := s.Prompter.Confirm(fmt.Sprintf("Use the saved %s", s.RequiredKey), true)
			if err != nil {
				return "", err
			}
			if reuse {
				return saved, nil
			}
		}
	}

	value, err := s.Prompter.Prompt(fmt.Sprintf("Enter %s", s.RequiredKey), "")
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", fmt.Errorf("%s cannot be empty", s.RequiredKey)
	}

	if s.UseKeyring && s.storeKey != nil {
		if err := s.storeKey(value); err != nil {
			term.Warn("could not save %s for next time: %v", s.RequiredKey, err)
		}
	}

	return value, nil
}
