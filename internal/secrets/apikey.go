// Package secrets stores the OpenAI API key between runs so interactive
// variable setup does not re-prompt for it every time.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService is the service name used in the OS keyring
	KeyringService = "railup"
	// KeyringUser is the account name for the OpenAI API key
	KeyringUser = "openai-api-key"
	// FallbackFileName is the filename for fallback file storage
	FallbackFileName = "credentials"
)

// StoreAPIKey stores the API key in the OS keyring.
// Falls back to file storage if keyring is unavailable.
func StoreAPIKey(key string) error {
	if key == "" {
		return fmt.Errorf("api key cannot be empty")
	}

	err := keyring.Set(KeyringService, KeyringUser, key)
	if err == nil {
		return nil
	}

	return storeKeyInFile(key)
}

// LoadAPIKey retrieves the API key from the OS keyring.
// Falls back to file storage if keyring is unavailable.
func LoadAPIKey() (string, error) {
	key, err := keyring.Get(KeyringService, KeyringUser)
	if err == nil {
		return key, nil
	}

	return loadKeyFromFile()
}

// ClearAPIKey removes the API key from both keyring and file storage.
func ClearAPIKey() error {
	keyringErr := keyring.Delete(KeyringService, KeyringUser)
	fileErr := deleteKeyFile()

	if keyringErr != nil && fileErr != nil {
		return fmt.Errorf("failed to clear api key from keyring (%v) and file (%v)", keyringErr, fileErr)
	}

	return nil
}

func storeKeyInFile(key string) error {
	path, err := keyFilePath()
	if err != nil {
		return fmt.Errorf("failed to get credentials file path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// 0600: the key is a secret
	if err := os.WriteFile(path, []byte(key), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

func loadKeyFromFile() (string, error) {
	path, err := keyFilePath()
	if err != nil {
		return "", fmt.Errorf("failed to get credentials file path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return "", fmt.Errorf("no api key found in keyring or file storage")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

func deleteKeyFile() error {
	path, err := keyFilePath()
	if err != nil {
		return fmt.Errorf("failed to get credentials file path: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(path)
}

func keyFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".railup", FallbackFileName), nil
}
