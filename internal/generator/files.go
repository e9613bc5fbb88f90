package generator

import (
	"fmt"
	"sort"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

type fileGenerator struct{}

func (fileGenerator) Category() resource.Category { return resource.CategoryFile }

func (fileGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("file", resource.CategoryFile)
	for _, d := range set.Files {
		name := d.Name
		if d.Ext != "" {
			name = d.Name + "_" + d.Ext
		}
		root.Funcs = append(root.Funcs, tree.Accessor{
			Name:   name,
			Doc:    fmt.Sprintf("resource file %q", d.Path),
			Result: "resource.File",
			Stored: &tree.Stored{
				Type:      "resource.File",
				Value:     fmt.Sprintf("resource.File{Name: %q, Ext: %q, Path: %q}", d.Name, d.Ext, d.Path),
				UsedTypes: []string{RuntimeImport},
			},
			UsedTypes: []string{RuntimeImport},
		})
	}
	return root
}

type settingsGenerator struct{}

func (settingsGenerator) Category() resource.Category { return resource.CategorySettings }

func (settingsGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("settings", resource.CategorySettings)
	for _, d := range set.Settings {
		node := root.EnsureChild(d.Configuration)
		keys := make([]string, 0, len(d.Values))
		for k := range d.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			node.Funcs = append(node.Funcs, tree.Accessor{
				Name:   k,
				Doc:    fmt.Sprintf("settings key %q for configuration %q", k, d.Configuration),
				Result: "string",
				Stored: &tree.Stored{
					Type:  "string",
					Value: fmt.Sprintf("%q", d.Values[k]),
				},
			})
		}
	}
	return root
}
