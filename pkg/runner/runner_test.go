package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gomedit/pkg/runner"
)

const validMesh = `MeshVersionFormatted 1
Dimension 2
Vertices
2
0.0 0.0 1
1.0 0.0 2
Edges
1
1 2 0
End
`

const meshWithAux = `MeshVersionFormatted 1
Dimension 2
Vertices
1
0.0 0.0 1
Corners
1
1
End
`

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("parses discovered files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, dir, "a.mesh", validMesh)
		writeTestFile(t, dir, "b.mesh", meshWithAux)
		writeTestFile(t, dir, "notes.txt", "not a mesh")

		result, err := runner.New().Run(context.Background(), runner.Options{
			Paths:      []string{dir},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if result.Stats.FilesDiscovered != 2 {
			t.Errorf("FilesDiscovered = %d, want 2", result.Stats.FilesDiscovered)
		}
		if result.Stats.FilesParsed != 2 {
			t.Errorf("FilesParsed = %d, want 2", result.Stats.FilesParsed)
		}
		if result.Stats.PointsTotal != 3 {
			t.Errorf("PointsTotal = %d, want 3", result.Stats.PointsTotal)
		}
		if result.Stats.CellsTotal != 1 {
			t.Errorf("CellsTotal = %d, want 1", result.Stats.CellsTotal)
		}
		if result.Stats.WarningsTotal != 1 {
			t.Errorf("WarningsTotal = %d, want 1", result.Stats.WarningsTotal)
		}

		// Outcomes are ordered by path.
		if len(result.Files) != 2 || filepath.Base(result.Files[0].Path) != "a.mesh" {
			t.Errorf("Files = %+v, want a.mesh first", result.Files)
		}
	})

	t.Run("records parse failures", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, dir, "bad.mesh", "MeshVersionFormatted 1\nBogus\n")

		result, err := runner.New().Run(context.Background(), runner.Options{
			Paths:      []string{dir},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}

		if !result.HasFailures() {
			t.Error("HasFailures() = false, want true")
		}
		if result.Files[0].Error == nil {
			t.Error("outcome error is nil, want parse error")
		}
		if result.Files[0].Mesh != nil {
			t.Error("outcome mesh is non-nil alongside error")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		result, err := runner.New().Run(context.Background(), runner.Options{
			Paths:      []string{dir},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if len(result.Files) != 0 {
			t.Errorf("Files = %d, want 0", len(result.Files))
		}
	})
}
