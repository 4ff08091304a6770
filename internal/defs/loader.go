// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadBalance reads a JSON file over the built-in tables. Keys missing from
// the file keep their defaults; a weapon or tier present in the file
// replaces that entry entirely.
func LoadBalance(path string) (*Balance, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance file: %w", err)
	}

	b := DefaultBalance()
	if err := json.Unmarshal(file, b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance file %s: %w", path, err)
	}

	slog.Info("loaded balance", "path", path, "weapons", len(b.Weapons), "tiers", len(b.Tiers))
	return b, nil
}

// LoadBalanceOrDefault falls back to the built-in tables when path is empty.
func LoadBalanceOrDefault(path string) (*Balance, error) {
	if path == "" {
		return DefaultBalance(), nil
	}
	return LoadBalance(path)
}
