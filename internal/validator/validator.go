// Package validator turns the aggregated container tree into a validated
// pair of trees: a public tree of computed accessors and an internal tree of
// the stored properties those accessors bridge to. Along the way it
// sanitizes every raw name into a Go identifier and resolves same-scope
// collisions deterministically, reporting each resolution as a warning.
package validator

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/reskit/reskit/internal/tree"
)

// Access selects the identifier casing of the generated public surface.
type Access int

const (
	AccessPublic Access = iota
	AccessInternal
)

// ParseAccess maps a configuration value to an Access level.
func ParseAccess(s string) (Access, error) {
	switch s {
	case "public", "":
		return AccessPublic, nil
	case "internal":
		return AccessInternal, nil
	}
	return 0, fmt.Errorf("unknown access level %q (want public or internal)", s)
}

// Options configures validation.
type Options struct {
	Access Access
}

// Result is a validated tree pair. Every accessor reachable from Public has
// its implementation reachable from Internal; Internal is never emitted as
// part of the externally visible surface.
type Result struct {
	Public   *tree.Node
	Internal *tree.Node
	Warnings []string
}

// Validate walks the aggregated root depth-first, sanitizing and splitting
// every node. Collisions never fail the run.
func Validate(root *tree.Node, opts Options) *Result {
	v := &validator{public: opts.Access == AccessPublic}
	pub, intern := v.split(root, "intern", nil)
	pub.Name = ""
	intern.Name = ""
	return &Result{Public: pub, Internal: intern, Warnings: v.warnings}
}

type validator struct {
	public   bool
	warnings []string
}

// claim is one sibling entry competing for an identifier: either a child
// container or an accessor function.
type claim struct {
	raw      string
	catIndex int
	child    *tree.Node // nil for accessor claims
	fn       int        // index into Funcs for accessor claims
}

// split produces the public and internal forms of one node. internPath is
// the Go expression addressing this node's internal counterpart; rawPath is
// the ancestor raw-name chain used in warnings.
func (v *validator) split(n *tree.Node, internPath string, rawPath []string) (*tree.Node, *tree.Node) {
	pub := tree.NewNode(n.Name, n.Category)
	intern := tree.NewNode(n.Name, n.Category)

	// Children and accessors share one namespace per container. Claims are
	// resolved in (category registration index, raw name) order so the
	// earliest-registered category wins a contested identifier; resolution
	// never depends on collection order.
	claims := make([]claim, 0, len(n.Children)+len(n.Funcs))
	for _, c := range n.Children {
		claims = append(claims, claim{raw: c.Name, catIndex: int(c.Category), child: c})
	}
	for i := range n.Funcs {
		claims = append(claims, claim{raw: n.Funcs[i].Name, catIndex: int(n.Category), fn: i})
	}
	sort.SliceStable(claims, func(i, j int) bool {
		if claims[i].catIndex != claims[j].catIndex {
			return claims[i].catIndex < claims[j].catIndex
		}
		if claims[i].raw != claims[j].raw {
			return claims[i].raw < claims[j].raw
		}
		// A container and an accessor with the same raw name: the
		// container keeps the identifier.
		return claims[i].child != nil && claims[j].child == nil
	})

	taken := make(map[string]bool)
	finals := make(map[int]string, len(n.Funcs)) // func index -> final name

	// Internal field namespace: node-level stored properties claim first,
	// then child containers, then accessor-backing stored properties.
	internTaken := make(map[string]bool)
	internName := func(want string) string {
		name := want
		for i := 2; internTaken[name]; i++ {
			name = want + strconv.Itoa(i)
		}
		internTaken[name] = true
		return name
	}
	for _, s := range n.Stored {
		s.Name = internName(s.Name)
		intern.Stored = append(intern.Stored, s)
	}

	for _, cl := range claims {
		final := Sanitize(cl.raw, v.public)
		if taken[final] {
			base := final
			for i := 2; taken[final]; i++ {
				final = base + strconv.Itoa(i)
			}
			v.warnings = append(v.warnings, fmt.Sprintf(
				"naming collision at %q: %q renamed to %q",
				strings.Join(rawPath, "/"), cl.raw, final))
		}
		taken[final] = true

		if cl.child != nil {
			field := internName(lowerFirst(final))
			childPub, childIntern := v.split(cl.child,
				internPath+"."+field, append(rawPath, cl.raw))
			childPub.Name = final
			childIntern.Name = field
			pub.Children = append(pub.Children, childPub)
			intern.Children = append(intern.Children, childIntern)
			continue
		}
		finals[cl.fn] = final
	}

	for i, f := range n.Funcs {
		final := finals[i]
		out := f
		out.Name = final
		out.Stored = nil
		switch {
		case f.Body == nil && f.Stored != nil:
			stored := *f.Stored
			stored.Name = internName(lowerFirst(final))
			intern.Stored = append(intern.Stored, stored)
			out.Body = []string{"return " + internPath + "." + stored.Name}
		default:
			body := make([]string, len(f.Body))
			for j, line := range f.Body {
				body[j] = strings.ReplaceAll(line, tree.InternRef, internPath)
			}
			out.Body = body
		}
		pub.Funcs = append(pub.Funcs, out)
	}

	return pub, intern
}
