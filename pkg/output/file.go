package output

import (
	"fmt"
	"os"
)

// WriteFile replaces the file at path with data. The parent directory must exist.
// On failure the file may be missing, empty or partially written.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
