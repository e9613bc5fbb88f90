package generator

import (
	"fmt"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

type colorGenerator struct{}

func (colorGenerator) Category() resource.Category { return resource.CategoryColor }

func (colorGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("color", resource.CategoryColor)
	for _, d := range set.Colors {
		root.Funcs = append(root.Funcs, tree.Accessor{
			Name:   d.Name,
			Doc:    fmt.Sprintf("color %q (%s)", d.Name, d.Hex),
			Result: "resource.Color",
			Stored: &tree.Stored{
				Type:      "resource.Color",
				Value:     fmt.Sprintf("resource.Color{Name: %q, Hex: %q}", d.Name, d.Hex),
				UsedTypes: []string{RuntimeImport},
			},
			UsedTypes: []string{RuntimeImport},
		})
	}
	return root
}

type fontGenerator struct{}

func (fontGenerator) Category() resource.Category { return resource.CategoryFont }

func (fontGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("font", resource.CategoryFont)
	for _, d := range set.Fonts {
		root.Funcs = append(root.Funcs, tree.Accessor{
			Name:   d.Name,
			Doc:    fmt.Sprintf("font %q", d.Name),
			Result: "resource.Font",
			Stored: &tree.Stored{
				Type:      "resource.Font",
				Value:     fmt.Sprintf("resource.Font{Name: %q, Path: %q}", d.Name, d.Path),
				UsedTypes: []string{RuntimeImport},
			},
			UsedTypes: []string{RuntimeImport},
		})
	}
	return root
}
