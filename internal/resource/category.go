// Package resource defines the descriptor model handed to the generation
// pipeline: the fixed category enumeration, the per-category descriptor
// types, the Collector interface, and the collection failure taxonomy.
package resource

import "fmt"

// Category enumerates the fixed set of resource categories. Declaration
// order is the registration order used for collision tie-breaks.
type Category int

const (
	CategoryImage Category = iota
	CategoryString
	CategoryColor
	CategoryFont
	CategoryLayout
	CategoryReuse
	CategoryFile
	CategorySettings
)

var categoryNames = [...]string{
	CategoryImage:    "image",
	CategoryString:   "string",
	CategoryColor:    "color",
	CategoryFont:     "font",
	CategoryLayout:   "layout",
	CategoryReuse:    "reuse",
	CategoryFile:     "file",
	CategorySettings: "settings",
}

// AllCategories returns every category in registration order.
func AllCategories() []Category {
	out := make([]Category, len(categoryNames))
	for i := range categoryNames {
		out[i] = Category(i)
	}
	return out
}

// String returns the category's configuration name.
func (c Category) String() string {
	if int(c) < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory maps a configuration name back to its Category.
func ParseCategory(name string) (Category, error) {
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource category %q", name)
}
