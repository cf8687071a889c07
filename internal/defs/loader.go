// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptySeedBank is returned when a seed file defines no cards.
var ErrEmptySeedBank = errors.New("seed bank is empty")

// LoadSeedDefinitions reads a JSON seed bank. Order in the file is display order.
func LoadSeedDefinitions(path string) ([]SeedDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed definitions file: %w", err)
	}

	var seeds []SeedDefinition
	if err := json.Unmarshal(file, &seeds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed definitions: %w", err)
	}
	if len(seeds) == 0 {
		return nil, ErrEmptySeedBank
	}

	seen := make(map[string]bool, len(seeds))
	for i, s := range seeds {
		if s.ID == "" || s.Image == "" {
			return nil, fmt.Errorf("seed #%d: id and image are required", i)
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("seed %s: duplicate id", s.ID)
		}
		if s.Price < 0 {
			return nil, fmt.Errorf("seed %s: negative price", s.ID)
		}
		seen[s.ID] = true
	}
	return seeds, nil
}
