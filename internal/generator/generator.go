// Package generator maps per-category descriptor lists into container tree
// fragments. One generator exists per category; the set is closed, and the
// enabled subset is composed by iterating registration order.
package generator

import (
	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

// RuntimeImport is the module generated accessors take their value types
// from. Accessors returning these types record it as a used type so the
// emitter can compute the import list.
const RuntimeImport = "github.com/reskit/reskit/pkg/resource"

// Generator turns one category's descriptors into a tree fragment rooted at
// the category name. Implementations are pure: they never mutate the set and
// return an empty-but-present root for an empty descriptor list.
type Generator interface {
	Category() resource.Category
	Fragment(set *resource.Set) *tree.Node
}

var registry = map[resource.Category]Generator{
	resource.CategoryImage:    imageGenerator{},
	resource.CategoryString:   stringGenerator{},
	resource.CategoryColor:    colorGenerator{},
	resource.CategoryFont:     fontGenerator{},
	resource.CategoryLayout:   layoutGenerator{},
	resource.CategoryReuse:    reuseGenerator{},
	resource.CategoryFile:     fileGenerator{},
	resource.CategorySettings: settingsGenerator{},
}

// ForCategories returns the generators for the enabled categories, in
// registration order regardless of the order the caller lists them in.
func ForCategories(enabled []resource.Category) []Generator {
	want := make(map[resource.Category]bool, len(enabled))
	for _, c := range enabled {
		want[c] = true
	}
	var out []Generator
	for _, c := range resource.AllCategories() {
		if want[c] {
			out = append(out, registry[c])
		}
	}
	return out
}
