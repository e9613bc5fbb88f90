// Package collector implements resource.Collector over a project's resource
// directories. Each configured root may contain one subdirectory per
// category (images/, strings/, colors/, fonts/, layouts/, files/,
// settings/); reuse identifiers are declared inside layout files. Walk order
// is lexical, so repeated collections over unchanged input produce the same
// descriptor snapshot.
package collector

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/reskit/reskit/internal/resource"
)

var imageExts = []string{".gif", ".jpeg", ".jpg", ".pdf", ".png", ".svg"}
var fontExts = []string{".otf", ".ttf"}
var yamlExts = []string{".yaml", ".yml"}

// FS collects descriptors from the filesystem.
type FS struct {
	Roots          []string
	Ignore         []string
	SettingsKeys   []string
	Configurations []string
}

// Collect walks every root once and returns the full descriptor snapshot.
// Unsupported extensions and unparseable required inputs are fatal; a build
// configuration's settings file failing to parse is downgraded to a warning
// and that configuration is omitted.
func (c *FS) Collect() (*resource.Set, error) {
	set := &resource.Set{}
	for _, root := range c.Roots {
		if _, err := os.Stat(root); os.IsNotExist(err) {
			set.Warnings = append(set.Warnings, fmt.Sprintf("resource root %q does not exist", root))
			continue
		}
		if err := c.collectImages(root, set); err != nil {
			return nil, err
		}
		if err := c.collectStrings(root, set); err != nil {
			return nil, err
		}
		if err := c.collectColors(root, set); err != nil {
			return nil, err
		}
		if err := c.collectFonts(root, set); err != nil {
			return nil, err
		}
		if err := c.collectLayouts(root, set); err != nil {
			return nil, err
		}
		if err := c.collectFiles(root, set); err != nil {
			return nil, err
		}
		c.collectSettings(root, set)
	}
	return set, nil
}

// walk visits every non-ignored regular file under dir, passing the path
// relative to dir. A missing dir is not an error: the category is simply
// absent from this root.
func (c *FS) walk(dir string, visit func(rel, path string) error) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if c.ignored(rel, d.Name()) {
			return nil
		}
		return visit(rel, path)
	})
}

func (c *FS) ignored(rel, base string) bool {
	for _, pattern := range c.Ignore {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func (c *FS) collectImages(root string, set *resource.Set) error {
	return c.walk(filepath.Join(root, "images"), func(rel, path string) error {
		ext := strings.ToLower(filepath.Ext(rel))
		if !contains(imageExts, ext) {
			return &resource.UnsupportedExtensionError{Path: path, Extension: ext, Supported: imageExts}
		}
		folder := filepath.ToSlash(filepath.Dir(rel))
		if folder == "." {
			folder = ""
		}
		set.Images = append(set.Images, resource.ImageDescriptor{
			Folder: folder,
			Name:   trimExt(filepath.Base(rel)),
			Path:   path,
		})
		return nil
	})
}

func (c *FS) collectStrings(root string, set *resource.Set) error {
	return c.walk(filepath.Join(root, "strings"), func(rel, path string) error {
		ext := strings.ToLower(filepath.Ext(rel))
		if !contains(yamlExts, ext) {
			return &resource.UnsupportedExtensionError{Path: path, Extension: ext, Supported: yamlExts}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return &resource.ParseError{Path: path, Message: "failed to read string table", Err: err}
		}
		var table map[string]interface{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return &resource.ParseError{Path: path, Message: "invalid string table", Err: err}
		}
		name := trimExt(filepath.Base(rel))
		for key, raw := range table {
			values, err := localeValues(raw)
			if err != nil {
				return &resource.ParseError{Path: path, Message: fmt.Sprintf("key %q: %v", key, err)}
			}
			set.Strings = append(set.Strings, resource.StringDescriptor{
				Table:  name,
				Key:    key,
				Values: values,
			})
		}
		return nil
	})
}

// localeValues accepts either a scalar (non-localized, stored under the ""
// locale) or a mapping of locale code to value.
func localeValues(raw interface{}) (map[string]string, error) {
	switch v := raw.(type) {
	case string:
		return map[string]string{"": v}, nil
	case map[string]interface{}:
		out := make(map[string]string, len(v))
		for locale, value := range v {
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("locale %q has non-string value", locale)
			}
			out[locale] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or locale mapping, got %T", raw)
	}
}

func (c *FS) collectColors(root string, set *resource.Set) error {
	return c.walk(filepath.Join(root, "colors"), func(rel, path string) error {
		ext := strings.ToLower(filepath.Ext(rel))
		if !contains(yamlExts, ext) {
			return &resource.UnsupportedExtensionError{Path: path, Extension: ext, Supported: yamlExts}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return &resource.ParseError{Path: path, Message: "failed to read color list", Err: err}
		}
		var colors map[string]string
		if err := yaml.Unmarshal(data, &colors); err != nil {
			return &resource.ParseError{Path: path, Message: "invalid color list", Err: err}
		}
		for name, hex := range colors {
			set.Colors = append(set.Colors, resource.ColorDescriptor{Name: name, Hex: hex})
		}
		return nil
	})
}

func (c *FS) collectFonts(root string, set *resource.Set) error {
	return c.walk(filepath.Join(root, "fonts"), func(rel, path string) error {
		ext := strings.ToLower(filepath.Ext(rel))
		if !contains(fontExts, ext) {
			return &resource.UnsupportedExtensionError{Path: path, Extension: ext, Supported: fontExts}
		}
		set.Fonts = append(set.Fonts, resource.FontDescriptor{
			Name: trimExt(filepath.Base(rel)),
			Path: path,
		})
		return nil
	})
}

type layoutFile struct {
	Identifiers []string `yaml:"identifiers"`
	Transitions []struct {
		Name        string `yaml:"name"`
		Destination string `yaml:"destination"`
	} `yaml:"transitions"`
}

func (c *FS) collectLayouts(root string, set *resource.Set) error {
	return c.walk(filepath.Join(root, "layouts"), func(rel, path string) error {
		ext := strings.ToLower(filepath.Ext(rel))
		if !contains(yamlExts, ext) {
			return &resource.UnsupportedExtensionError{Path: path, Extension: ext, Supported: yamlExts}
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return &resource.ParseError{Path: path, Message: "failed to read layout", Err: err}
		}
		var lf layoutFile
		if err := yaml.Unmarshal(data, &lf); err != nil {
			return &resource.ParseError{Path: path, Message: "invalid layout", Err: err}
		}
		name := trimExt(filepath.Base(rel))
		desc := resource.LayoutDescriptor{Name: name, Path: path, Identifiers: lf.Identifiers}
		for _, t := range lf.Transitions {
			desc.Transitions = append(desc.Transitions, resource.TransitionDescriptor{
				Name:        t.Name,
				Destination: t.Destination,
			})
		}
		set.Layouts = append(set.Layouts, desc)
		for _, id := range lf.Identifiers {
			set.Reuse = append(set.Reuse, resource.ReuseDescriptor{Identifier: id, Layout: name})
		}
		return nil
	})
}

func (c *FS) collectFiles(root string, set *resource.Set) error {
	return c.walk(filepath.Join(root, "files"), func(rel, path string) error {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(rel)), ".")
		set.Files = append(set.Files, resource.FileDescriptor{
			Name: trimExt(filepath.Base(rel)),
			Ext:  ext,
			Path: path,
		})
		return nil
	})
}

// collectSettings loads settings/<Configuration>.yaml for each configured
// build configuration. Configurations are independently optional: a missing
// file is skipped, an unparseable one is reported as a warning and omitted.
func (c *FS) collectSettings(root string, set *resource.Set) {
	for _, cfg := range c.Configurations {
		path := filepath.Join(root, "settings", cfg+".yaml")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			path = filepath.Join(root, "settings", cfg+".yml")
			data, err = os.ReadFile(path)
		}
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			set.Warnings = append(set.Warnings, fmt.Sprintf(
				"settings for configuration %q could not be read, omitting: %v", cfg, err))
			continue
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			set.Warnings = append(set.Warnings, fmt.Sprintf(
				"settings for configuration %q could not be parsed, omitting: %v", cfg, err))
			continue
		}
		values := make(map[string]string)
		for k, v := range raw {
			if len(c.SettingsKeys) > 0 && !contains(c.SettingsKeys, k) {
				continue
			}
			switch v.(type) {
			case string, int, int64, float64, bool:
				values[k] = fmt.Sprintf("%v", v)
			}
		}
		set.Settings = append(set.Settings, resource.SettingsDescriptor{
			Configuration: cfg,
			Values:        values,
		})
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func trimExt(base string) string {
	return strings.TrimSuffix(base, filepath.Ext(base))
}
