package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reskit/reskit/internal/cli/config"
	"github.com/reskit/reskit/internal/resource"
)

// stubCollector returns a fixed snapshot, or a fixed error.
type stubCollector struct {
	set *resource.Set
	err error
}

func (s *stubCollector) Collect() (*resource.Set, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func sampleSet() *resource.Set {
	return &resource.Set{
		Images: []resource.ImageDescriptor{
			{Folder: "Assets", Name: "icon_light", Path: "images/Assets/icon_light.png"},
			{Folder: "Assets", Name: "icon_dark", Path: "images/Assets/icon_dark.png"},
			{Folder: "Assets", Name: "logo", Path: "images/Assets/logo.png"},
		},
		Strings: []resource.StringDescriptor{
			{Table: "main", Key: "greeting", Values: map[string]string{"en": "Hello", "fr": "Bonjour"}},
		},
		Colors: []resource.ColorDescriptor{{Name: "accent", Hex: "#FF8800"}},
	}
}

func testConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Output:      filepath.Join(dir, "res", "res.go"),
		TestOutput:  filepath.Join(dir, "res", "res_ids.go"),
		Package:     "res",
		Access:      "public",
		Categories:  []string{"image", "string", "color"},
		VariantTags: []string{"light", "dark"},
	}
}

func TestRunProducesBothArtifacts(t *testing.T) {
	cfg := testConfig(t)
	out, err := New(cfg, &stubCollector{set: sampleSet()}, nil).Run()
	require.NoError(t, err)
	assert.True(t, out.Wrote)
	assert.True(t, out.TestWrote)

	primary, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	text := string(primary)

	// Public tree exposes both tagged accessors unchanged.
	assert.Contains(t, text, "func (rImageAssets) Icon_light() resource.Image {")
	assert.Contains(t, text, "func (rImageAssets) Icon_dark() resource.Image {")

	// Synthesized namespace collapses the pair and keeps the untagged one.
	assert.Contains(t, text, "func (vImageAssets) Icon(code ...string) resource.Image {")
	assert.Contains(t, text, "func (vImageAssets) Logo() resource.Image {")
	assert.NotContains(t, text, "func (vImageAssets) Icon_dark(")
	assert.Contains(t, text, `case "dark":`)

	// String counterpart takes a preferred locale.
	assert.Contains(t, text, "func (vStringMain) Greeting(locale ...string) string {")

	reduced, err := os.ReadFile(cfg.TestOutput)
	require.NoError(t, err)
	assert.Contains(t, string(reduced), `VImageAssetsIcon = "Image.Assets.Icon"`)
	assert.NotContains(t, string(reduced), "var intern")
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(cfg, &stubCollector{set: sampleSet()}, nil).Run()
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	// A second independent run over the same snapshot is a no-op.
	out, err := New(cfg, &stubCollector{set: sampleSet()}, nil).Run()
	require.NoError(t, err)
	assert.False(t, out.Wrote)
	assert.False(t, out.TestWrote)

	again, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(again))
}

func TestRunFatalCollectionLeavesOutputsUntouched(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Output), 0755))
	require.NoError(t, os.WriteFile(cfg.Output, []byte("prior primary"), 0644))
	require.NoError(t, os.WriteFile(cfg.TestOutput, []byte("prior reduced"), 0644))

	collectErr := &resource.UnsupportedExtensionError{
		Path: "images/movie.mov", Extension: ".mov", Supported: []string{".png"},
	}
	_, err := New(cfg, &stubCollector{err: collectErr}, nil).Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".mov")

	primary, readErr := os.ReadFile(cfg.Output)
	require.NoError(t, readErr)
	assert.Equal(t, "prior primary", string(primary))
	reduced, readErr := os.ReadFile(cfg.TestOutput)
	require.NoError(t, readErr)
	assert.Equal(t, "prior reduced", string(reduced))
}

func TestRunForwardsCollectionWarnings(t *testing.T) {
	cfg := testConfig(t)
	set := sampleSet()
	set.Warnings = append(set.Warnings, `settings for configuration "Release" could not be parsed, omitting: bad`)

	out, err := New(cfg, &stubCollector{set: set}, nil).Run()
	require.NoError(t, err, "optional-input omission never aborts the run")
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], `"Release"`)
	assert.True(t, out.Wrote)
}

func TestRunReportsCollisionWarnings(t *testing.T) {
	cfg := testConfig(t)
	set := sampleSet()
	set.Colors = append(set.Colors, resource.ColorDescriptor{Name: "acc-ent", Hex: "#000000"})

	out, err := New(cfg, &stubCollector{set: set}, nil).Run()
	require.NoError(t, err, "naming collisions are warnings, never fatal")
	require.Len(t, out.Warnings, 1)
	assert.Contains(t, out.Warnings[0], "naming collision")

	text, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(text), "func (rColor) Accent() resource.Color {")
	assert.Contains(t, string(text), "func (rColor) Accent2() resource.Color {")
}

func TestRunWithoutTestOutput(t *testing.T) {
	cfg := testConfig(t)
	cfg.TestOutput = ""
	out, err := New(cfg, &stubCollector{set: sampleSet()}, nil).Run()
	require.NoError(t, err)
	assert.True(t, out.Wrote)
	assert.False(t, out.TestWrote)
}

func TestRunGeneratedTextShape(t *testing.T) {
	cfg := testConfig(t)
	_, err := New(cfg, &stubCollector{set: sampleSet()}, nil).Run()
	require.NoError(t, err)

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "// Code generated by reskit; DO NOT EDIT."))
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.False(t, strings.HasSuffix(text, "\n\n"), "single trailing newline")
	assert.Contains(t, text, `"github.com/reskit/reskit/pkg/resource"`)

	// Internal storage is present and bridged, never part of the visible
	// namespace roots.
	assert.Contains(t, text, "var intern = internRoot{")
	assert.Contains(t, text, `icon_light: resource.Image{Name: "icon_light", Path: "images/Assets/icon_light.png"},`)
}
