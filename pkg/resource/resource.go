// Package resource holds the value types referenced by reskit-generated
// accessor code. Generated files import this package; applications normally
// never construct these values themselves.
package resource

// Image identifies one image asset by name and on-disk path.
type Image struct {
	Name string
	Path string
}

// Color is a named color with its hex representation (e.g. "#FF8800").
type Color struct {
	Name string
	Hex  string
}

// Font identifies a font file by family name and path.
type Font struct {
	Name string
	Path string
}

// File is an opaque project resource exposed by name and extension.
type File struct {
	Name string
	Ext  string
	Path string
}

// Layout identifies one view-layout descriptor file.
type Layout struct {
	Name string
	Path string
}

// Transition is a named transition declared inside a layout.
type Transition struct {
	Name        string
	Destination string
}

// ReuseIdentifier is a reusable-cell identifier declared by a layout.
type ReuseIdentifier struct {
	Value string
}
