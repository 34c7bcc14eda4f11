// Package envfile reads dotenv-style files so database URLs can fall
// back to the DATABASE_URL entries of .env / .env.production when not
// given on the command line.
package envfile

import (
	"os"
	"strings"
)

// EnvFile holds the key/value pairs of one parsed env file.
type EnvFile struct {
	values map[string]string
}

// Read loads and parses the env file at path.
func Read(path string) (*EnvFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parse(string(b)), nil
}

func parse(content string) *EnvFile {
	values := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}
	return &EnvFile{values: values}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// Lookup returns the value for key, if present.
func (e *EnvFile) Lookup(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}
