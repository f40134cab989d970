package config

import (
	"fmt"
	"strings"
)

// DefaultPath is the orchestrator config file looked up in the working
// directory. The file is optional; Defaults() applies when it is absent.
const DefaultPath = "railup.yaml"

// Config represents the orchestrator configuration
type Config struct {
	Version string        `yaml:"version"`
	App     AppConfig     `yaml:"app"`
	Railway RailwayConfig `yaml:"railway"`
	Env     EnvConfig     `yaml:"env"`
}

// AppConfig describes the application being deployed
type AppConfig struct {
	Name string `yaml:"name"`
	// RequiredFiles are checked for existence before any deployment action.
	RequiredFiles []string `yaml:"required_files"`
}

// RailwayConfig controls how the external CLI is invoked
type RailwayConfig struct {
	Binary string `yaml:"binary"`
}

// EnvConfig controls where deployment variables come from
type EnvConfig struct {
	// File is the dotenv file pushed to the remote environment.
	File string `yaml:"file"`
	// RequiredKey is prompted for interactively when File is absent.
	RequiredKey string `yaml:"required_key"`
	// Defaults are set alongside the prompted key when File is absent.
	Defaults map[string]string `yaml:"defaults"`
}

// Defaults returns the configuration used when no railup.yaml exists: a
// FastAPI project deployed with the stock railway binary.
func Defaults() *Config {
	return &Config{
		Version: "1",
		App: AppConfig{
			Name: "scenario-api",
			RequiredFiles: []string{
				"requirements.txt",
				"Procfile",
				"railway.json",
				"src/main.py",
			},
		},
		Railway: RailwayConfig{
			Binary: "railway",
		},
		Env: EnvConfig{
			File:        ".env",
			RequiredKey: "OPENAI_API_KEY",
			Defaults: map[string]string{
				"OPENAI_MODEL":       "gpt-4o-mini",
				"OPENAI_TEMPERATURE": "0",
				"OPENAI_SEED":        "42",
			},
		},
	}
}

// Validate performs validation on the Config struct
func (c *Config) Validate() error {
	var errors []string

	if c.Railway.Binary == "" {
		errors = append(errors, "railway.binary cannot be empty")
	}
	if strings.ContainsAny(c.Railway.Binary, " \t") {
		errors = append(errors, "railway.binary cannot contain whitespace")
	}
	if c.Env.File == "" {
		errors = append(errors, "env.file cannot be empty")
	}
	if len(c.App.RequiredFiles) == 0 {
		errors = append(errors, "app.required_files cannot be empty")
	}
	for _, f := range c.App.RequiredFiles {
		if f == "" {
			errors = append(errors, "app.required_files cannot contain empty entries")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
