package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/gomedit/pkg/runner"
)

func TestDiscover(t *testing.T) {
	t.Parallel()

	t.Run("filters by extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, dir, "a.mesh", "")
		writeTestFile(t, dir, "b.MESH", "")
		writeTestFile(t, dir, "c.txt", "")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths:      []string{dir},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(files) != 2 {
			t.Errorf("files = %v, want 2 entries", files)
		}
	})

	t.Run("walks subdirectories and skips hidden ones", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sub := filepath.Join(dir, "data")
		hidden := filepath.Join(dir, ".cache")
		for _, d := range []string{sub, hidden} {
			if err := os.MkdirAll(d, 0755); err != nil {
				t.Fatalf("mkdir: %v", err)
			}
		}
		writeTestFile(t, sub, "a.mesh", "")
		writeTestFile(t, hidden, "b.mesh", "")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths:      []string{dir},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(files) != 1 || filepath.Base(files[0]) != "a.mesh" {
			t.Errorf("files = %v, want only data/a.mesh", files)
		}
	})

	t.Run("explicit file bypasses extension filter", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeTestFile(t, dir, "odd.txt", "")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths:      []string{path},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(files) != 1 {
			t.Errorf("files = %v, want the explicit file", files)
		}
	})

	t.Run("exclude globs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeTestFile(t, dir, "keep.mesh", "")
		writeTestFile(t, dir, "skip.mesh", "")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths:        []string{dir},
			WorkingDir:   dir,
			ExcludeGlobs: []string{"skip.*"},
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(files) != 1 || filepath.Base(files[0]) != "keep.mesh" {
			t.Errorf("files = %v, want only keep.mesh", files)
		}
	})

	t.Run("deduplicates overlapping paths", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeTestFile(t, dir, "a.mesh", "")

		files, err := runner.Discover(context.Background(), runner.Options{
			Paths:      []string{dir, path},
			WorkingDir: dir,
		})
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if len(files) != 1 {
			t.Errorf("files = %v, want 1 entry", files)
		}
	})
}
