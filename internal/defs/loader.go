// internal/defs/loader.go
package defs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// LoadLevels reads a JSON array of levels and validates each of them.
// An empty path returns the built-in levels.
func LoadLevels(path string) ([]Level, error) {
	if path == "" {
		return BuiltinLevels(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels file: %w", err)
	}
	levels, err := ParseLevels(file)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded %d levels from %s", len(levels), path)
	return levels, nil
}

// ParseLevels decodes and validates level data.
func ParseLevels(data []byte) ([]Level, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var levels []Level
	if err := dec.Decode(&levels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal levels: %w", err)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels defined", ErrInvalidLevel)
	}
	for i := range levels {
		if err := levels[i].Validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i+1, err)
		}
	}
	return levels, nil
}
