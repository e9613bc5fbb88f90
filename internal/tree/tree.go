// Package tree defines the container tree the pipeline is built around:
// namespace nodes, accessor functions, and the stored properties that back
// them. Category generators produce fragments of this tree, the aggregator
// mounts them under one root, and every later stage transforms whole trees
// without mutating its input.
package tree

import (
	"sort"

	"github.com/reskit/reskit/internal/resource"
)

// Param is one parameter of an accessor function.
type Param struct {
	Name     string
	Type     string
	Variadic bool
}

// Stored is one stored property carried by the internal tree. Value is a Go
// composite-literal or constant expression rendered verbatim.
type Stored struct {
	Name      string
	Type      string
	Value     string
	UsedTypes []string
}

// InternRef is the body placeholder an accessor may use to reference the
// internal node backing its container. The validator substitutes the final
// internal path expression after sanitization and collision resolution.
const InternRef = "{intern}"

// Root variable names of the three emitted trees. Accessor bodies built by
// the variant synthesizer reference PublicRootVar directly, so these are
// fixed here rather than in the emitter.
const (
	PublicRootVar   = "R"
	SynthRootVar    = "V"
	InternalRootVar = "intern"
)

// Accessor is one generated accessor function. Immutable once constructed.
//
// Exactly one of two body conventions applies: a nil Body with a non-nil
// Stored means the validator synthesizes a bridge returning the stored
// property; a non-nil Body is emitted as-is after InternRef substitution.
type Accessor struct {
	Name      string
	Doc       string
	Params    []Param
	Result    string
	Body      []string
	Stored    *Stored
	UsedTypes []string
}

// Node is one namespace level: child namespaces, accessor functions, and
// node-level stored properties shared by this node's accessors (e.g. one
// string table backing every key accessor of its container).
type Node struct {
	Name     string
	Category resource.Category
	Children []*Node
	Funcs    []Accessor
	Stored   []Stored
}

// NewNode returns an empty node for one category.
func NewNode(name string, cat resource.Category) *Node {
	return &Node{Name: name, Category: cat}
}

// EnsureChild returns the child with the given name, creating it with this
// node's category if absent.
func (n *Node) EnsureChild(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := NewNode(name, n.Category)
	n.Children = append(n.Children, c)
	return c
}

// SortedChildren returns the children ordered lexicographically by name.
// Collection order never leaks into emission order.
func (n *Node) SortedChildren() []*Node {
	out := make([]*Node, len(n.Children))
	copy(out, n.Children)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SortedFuncs returns the accessor functions ordered lexicographically by
// name.
func (n *Node) SortedFuncs() []Accessor {
	out := make([]Accessor, len(n.Funcs))
	copy(out, n.Funcs)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SortedStored returns the stored properties ordered lexicographically by
// name.
func (n *Node) SortedStored() []Stored {
	out := make([]Stored, len(n.Stored))
	copy(out, n.Stored)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UsedTypes returns the deduplicated, sorted union of every used-type module
// referenced below this node.
func (n *Node) UsedTypes() []string {
	set := make(map[string]struct{})
	n.collectUsedTypes(set)
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (n *Node) collectUsedTypes(set map[string]struct{}) {
	for _, f := range n.Funcs {
		for _, t := range f.UsedTypes {
			set[t] = struct{}{}
		}
		if f.Stored != nil {
			for _, t := range f.Stored.UsedTypes {
				set[t] = struct{}{}
			}
		}
	}
	for _, s := range n.Stored {
		for _, t := range s.UsedTypes {
			set[t] = struct{}{}
		}
	}
	for _, c := range n.Children {
		c.collectUsedTypes(set)
	}
}

// Empty reports whether the node holds no accessors, no stored properties,
// and no non-empty children.
func (n *Node) Empty() bool {
	if len(n.Funcs) > 0 || len(n.Stored) > 0 {
		return false
	}
	for _, c := range n.Children {
		if !c.Empty() {
			return false
		}
	}
	return true
}
