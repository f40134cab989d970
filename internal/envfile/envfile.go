package envfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Pair is a single KEY=VALUE entry from an env file. Order matters: variables
// are pushed to the platform in file order.
type Pair struct {
	Key   string
	Value string
}

// String returns the pair in KEY=VALUE form, as passed to the external CLI.
func (p Pair) String() string {
	return fmt.Sprintf("%s=%s", p.Key, p.Value)
}

// Parse reads dotenv-style content and returns the key/value pairs in file
// order. Blank lines and lines starting with # are skipped, as are lines
// without an = separator. Whitespace around key and value is trimmed, and one
// pair of surrounding quotes (double or single) is stripped from the value.
func Parse(r io.Reader) ([]Pair, error) {
	var pairs []Pair

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		pairs = append(pairs, Pair{
			Key:   key,
			Value: unquote(strings.TrimSpace(value)),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	return pairs, nil
}

// Load parses the env file at path. A missing file is reported with
// os.IsNotExist so callers can fall back to interactive prompting.
func Load(path string) ([]Pair, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	pairs, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return pairs, nil
}

// unquote strips one pair of matching surrounding quotes from a value.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
