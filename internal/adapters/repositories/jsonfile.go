package repositories

import (
	"encoding/json"
	"fmt"
	"os"
)

// readCollection loads a whole JSON array document into out. Every read goes
// back to the file; nothing is cached between calls.
func readCollection(path string, out any) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read collection: read %q: %w", path, err)
	}

	if err := json.Unmarshal(bytes, out); err != nil {
		return fmt.Errorf("read collection: parse %q: %w", path, err)
	}

	return nil
}

// writeCollection rewrites the whole JSON array document. There is no
// locking; two concurrent rewrites race and the last writer wins.
func writeCollection(path string, in any) error {
	bytes, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("write collection: marshal %q: %w", path, err)
	}

	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		return fmt.Errorf("write collection: write %q: %w", path, err)
	}

	return nil
}
