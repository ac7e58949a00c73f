package configloader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gomedit/internal/configloader"
	"github.com/yaklabco/gomedit/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFindProjectConfig(t *testing.T) {
	t.Parallel()

	t.Run("finds config in working directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		want := writeConfig(t, dir, ".gomedit.yml", "format: text\n")

		got, err := configloader.FindProjectConfig(context.Background(), dir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("searches parent directories", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		want := writeConfig(t, root, ".gomedit.yaml", "format: text\n")
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0755))

		got, err := configloader.FindProjectConfig(context.Background(), nested)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("stops at vcs root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeConfig(t, root, ".gomedit.yml", "format: text\n")
		repo := filepath.Join(root, "repo")
		require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))

		got, err := configloader.FindProjectConfig(context.Background(), repo)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("missing config is not an error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

		got, err := configloader.FindProjectConfig(context.Background(), dir)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is configured", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, config.Default(), result.Config)
		assert.Empty(t, result.LoadedFrom)
	})

	t.Run("project file overrides defaults", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, ".gomedit.yml", "format: json\njobs: 2\n")

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, config.FormatJSON, result.Config.Format)
		assert.Equal(t, 2, result.Config.Jobs)
		assert.Equal(t, path, result.LoadedFrom)
	})

	t.Run("explicit path skips discovery", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".gomedit.yml", "format: json\n")
		explicit := writeConfig(t, dir, "other.yml", "color: never\n")

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			ExplicitPath: explicit,
			IgnoreEnv:    true,
		})
		require.NoError(t, err)
		assert.Equal(t, config.FormatText, result.Config.Format)
		assert.Equal(t, "never", result.Config.Color)
	})

	t.Run("env overrides project file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".gomedit.yml", "format: text\njobs: 2\n")
		t.Setenv("GOMEDIT_FORMAT", "json")
		t.Setenv("GOMEDIT_STRICT", "true")

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
		})
		require.NoError(t, err)
		assert.Equal(t, config.FormatJSON, result.Config.Format)
		assert.True(t, result.Config.Strict)
		assert.Equal(t, 2, result.Config.Jobs)
	})

	t.Run("cli flags override everything", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".gomedit.yml", "format: json\n")
		t.Setenv("GOMEDIT_FORMAT", "json")

		result, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			CLIConfig:  &config.Config{Format: config.FormatText},
		})
		require.NoError(t, err)
		assert.Equal(t, config.FormatText, result.Config.Format)
	})

	t.Run("invalid file value fails", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, ".gomedit.yml", "format: xml\n")

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir: dir,
			IgnoreEnv:  true,
		})
		assert.Error(t, err)
	})

	t.Run("missing explicit path fails", func(t *testing.T) {
		dir := t.TempDir()

		_, err := configloader.Load(context.Background(), configloader.LoadOptions{
			WorkingDir:   dir,
			ExplicitPath: filepath.Join(dir, "nope.yml"),
			IgnoreEnv:    true,
		})
		assert.Error(t, err)
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("parses list and scalar values", func(t *testing.T) {
		t.Setenv("GOMEDIT_COLOR", "never")
		t.Setenv("GOMEDIT_JOBS", "8")
		t.Setenv("GOMEDIT_EXTENSIONS", ".mesh, .medit")

		cfg := config.Default()
		require.NoError(t, configloader.LoadFromEnv(cfg))
		assert.Equal(t, "never", cfg.Color)
		assert.Equal(t, 8, cfg.Jobs)
		assert.Equal(t, []string{".mesh", ".medit"}, cfg.Extensions)
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		t.Setenv("GOMEDIT_JOBS", "lots")

		cfg := config.Default()
		assert.Error(t, configloader.LoadFromEnv(cfg))
	})

	t.Run("blank values are ignored", func(t *testing.T) {
		t.Setenv("GOMEDIT_FORMAT", "  ")

		cfg := config.Default()
		require.NoError(t, configloader.LoadFromEnv(cfg))
		assert.Equal(t, config.FormatText, cfg.Format)
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	dst := config.Default()
	configloader.Merge(dst, &config.Config{
		Format:  config.FormatJSON,
		Jobs:    3,
		Exclude: []string{"tmp/*"},
	})

	assert.Equal(t, config.FormatJSON, dst.Format)
	assert.Equal(t, 3, dst.Jobs)
	assert.Equal(t, []string{"tmp/*"}, dst.Exclude)
	// Fields absent from src keep their values.
	assert.Equal(t, "auto", dst.Color)
	assert.Equal(t, []string{".mesh"}, dst.Extensions)
}
