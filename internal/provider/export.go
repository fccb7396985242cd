package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Export writes a snapshot of p as a YAML data file under dir and returns
// its path. The file can be fed back through LoadYAML or seed.
func Export(ctx context.Context, p Provider, dir string, at time.Time) (string, error) {
	ds, err := Snapshot(ctx, p)
	if err != nil {
		return "", err
	}
	raw, err := ds.Encode()
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("conciergerie_export_%s.yaml", at.Format("20060102_150405")))
	if err := os.WriteFile(filename, raw, 0o600); err != nil {
		return "", err
	}
	return filename, nil
}
