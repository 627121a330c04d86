package gamedata

import (
	"encoding/json"
	"fmt"
)

// validator is implemented by data files that check their own contents.
type validator interface {
	Validate() error
}

// Load reads and unmarshals a JSON file from the embedded data directory.
// Files whose type implements Validate are checked before being returned.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.Validate(); err != nil {
			return result, fmt.Errorf("invalid data in %s: %w", filename, err)
		}
	}

	return result, nil
}
