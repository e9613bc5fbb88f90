package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reskit/reskit/internal/resource"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"resources"}, cfg.Resources)
	assert.Equal(t, "res/res.go", cfg.Output)
	assert.Equal(t, "res", cfg.Package)
	assert.Equal(t, "public", cfg.Access)
	assert.Equal(t, []string{"light", "dark"}, cfg.VariantTags)
	assert.Equal(t, []string{"Debug", "Release"}, cfg.Configurations)
	assert.Empty(t, cfg.TestOutput)

	cats, err := cfg.EnabledCategories()
	require.NoError(t, err)
	assert.Equal(t, resource.AllCategories(), cats)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `resources:
  - assets
  - shared/assets
ignore:
  - "*.bak"
output: internal/res/res.go
test_output: internal/res/res_ids.go
package: res
access: internal
categories:
  - image
  - string
variant_tags:
  - day
  - night
settings_keys:
  - api_url
configurations:
  - Debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reskit.yml"), []byte(content), 0644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"assets", "shared/assets"}, cfg.Resources)
	assert.Equal(t, []string{"*.bak"}, cfg.Ignore)
	assert.Equal(t, "internal/res/res.go", cfg.Output)
	assert.Equal(t, "internal/res/res_ids.go", cfg.TestOutput)
	assert.Equal(t, "internal", cfg.Access)
	assert.Equal(t, []string{"day", "night"}, cfg.VariantTags)
	assert.Equal(t, []string{"api_url"}, cfg.SettingsKeys)

	cats, err := cfg.EnabledCategories()
	require.NoError(t, err)
	assert.Equal(t, []resource.Category{resource.CategoryImage, resource.CategoryString}, cats)
}

func TestLoadRejectsBadAccess(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reskit.yml"), []byte("access: everyone\n"), 0644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access")
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reskit.yml"), []byte("categories:\n  - sound\n"), 0644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sound")
}

func TestInProject(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	assert.False(t, InProject())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "reskit.yml"), []byte("package: res\n"), 0644))
	assert.True(t, InProject())
}
