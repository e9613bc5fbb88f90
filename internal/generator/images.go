package generator

import (
	"fmt"
	"strings"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

type imageGenerator struct{}

func (imageGenerator) Category() resource.Category { return resource.CategoryImage }

func (imageGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("image", resource.CategoryImage)
	for _, d := range set.Images {
		node := root
		if d.Folder != "" {
			for _, part := range strings.Split(d.Folder, "/") {
				node = node.EnsureChild(part)
			}
		}
		node.Funcs = append(node.Funcs, tree.Accessor{
			Name:   d.Name,
			Doc:    fmt.Sprintf("image asset %q", d.Name),
			Result: "resource.Image",
			Stored: &tree.Stored{
				Type:      "resource.Image",
				Value:     fmt.Sprintf("resource.Image{Name: %q, Path: %q}", d.Name, d.Path),
				UsedTypes: []string{RuntimeImport},
			},
			UsedTypes: []string{RuntimeImport},
		})
	}
	return root
}
