package medit

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/gomedit/pkg/fsutil"
	"github.com/yaklabco/gomedit/pkg/mesh"
)

// ReadFile reads and parses the Medit mesh file at path.
func ReadFile(ctx context.Context, path string, opts ...Option) (*mesh.Mesh, error) {
	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}
	m, err := Read(bytes.NewReader(content), opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return m, nil
}

// WriteFile serializes m and writes it to path atomically, so a failed
// write never leaves a truncated mesh file behind.
func WriteFile(ctx context.Context, path string, m *mesh.Mesh, opts ...Option) error {
	var buf bytes.Buffer
	if err := Write(&buf, m, opts...); err != nil {
		return err
	}
	if err := fsutil.WriteAtomic(ctx, path, buf.Bytes(), os.FileMode(0)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
