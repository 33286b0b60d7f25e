package profile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the profile snapshot as indented JSON.
func Save(path string, p *StudentProfile) error {
	b, err := json.MarshalIndent(p, "", "    ")
	if err != nil {
		return fmt.Errorf("profile: encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("profile: write snapshot: %w", err)
	}
	return nil
}

// Load reads a profile snapshot. Any decode failure is fatal to the
// load; callers fall back to interactive collection or abort.
func Load(path string) (*StudentProfile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("profile: read snapshot: %w", err)
	}
	p := new(StudentProfile)
	if err := json.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("profile: decode snapshot %s: %w", path, err)
	}
	return p, nil
}
