package generator

import (
	"fmt"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

type layoutGenerator struct{}

func (layoutGenerator) Category() resource.Category { return resource.CategoryLayout }

func (layoutGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("layout", resource.CategoryLayout)
	for _, d := range set.Layouts {
		node := root.EnsureChild(d.Name)
		node.Funcs = append(node.Funcs, tree.Accessor{
			Name:   "layout",
			Doc:    fmt.Sprintf("layout descriptor %q", d.Name),
			Result: "resource.Layout",
			Stored: &tree.Stored{
				Type:      "resource.Layout",
				Value:     fmt.Sprintf("resource.Layout{Name: %q, Path: %q}", d.Name, d.Path),
				UsedTypes: []string{RuntimeImport},
			},
			UsedTypes: []string{RuntimeImport},
		})
		for _, t := range d.Transitions {
			node.Funcs = append(node.Funcs, tree.Accessor{
				Name:   t.Name,
				Doc:    fmt.Sprintf("transition %q to %q", t.Name, t.Destination),
				Result: "resource.Transition",
				Stored: &tree.Stored{
					Type:      "resource.Transition",
					Value:     fmt.Sprintf("resource.Transition{Name: %q, Destination: %q}", t.Name, t.Destination),
					UsedTypes: []string{RuntimeImport},
				},
				UsedTypes: []string{RuntimeImport},
			})
		}
	}
	return root
}

type reuseGenerator struct{}

func (reuseGenerator) Category() resource.Category { return resource.CategoryReuse }

func (reuseGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("reuse", resource.CategoryReuse)
	for _, d := range set.Reuse {
		root.Funcs = append(root.Funcs, tree.Accessor{
			Name:   d.Identifier,
			Doc:    fmt.Sprintf("reuse identifier %q declared by layout %q", d.Identifier, d.Layout),
			Result: "resource.ReuseIdentifier",
			Stored: &tree.Stored{
				Type:      "resource.ReuseIdentifier",
				Value:     fmt.Sprintf("resource.ReuseIdentifier{Value: %q}", d.Identifier),
				UsedTypes: []string{RuntimeImport},
			},
			UsedTypes: []string{RuntimeImport},
		})
	}
	return root
}
