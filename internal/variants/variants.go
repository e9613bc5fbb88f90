// Package variants derives the parameterized convenience namespace from the
// validated public tree. Image accessors following the variant-tag naming
// convention collapse into one accessor per base name that dispatches on a
// caller-supplied code, and every string-table accessor gains a counterpart
// taking a preferred locale. Both fall back to an overridable resolver hook
// declared once at the top of the synthesized namespace.
package variants

import (
	"fmt"
	"strings"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

// Resolver hook names emitted into the generated namespace. Consumers of the
// generated code may reassign them at runtime; the generator only declares
// the defaults.
const (
	ThemeHook  = "ThemeResolver"
	LocaleHook = "LocaleResolver"
)

// Config lists the variant tags in priority order; the tag at index 0 is
// primary and anchors synthesis.
type Config struct {
	Tags []string
}

// Primary returns the primary tag, "" when no tags are configured.
func (c Config) Primary() string {
	if len(c.Tags) == 0 {
		return ""
	}
	return c.Tags[0]
}

func (c Config) secondary() []string {
	if len(c.Tags) < 2 {
		return nil
	}
	return c.Tags[1:]
}

// Synthesize scans the public tree's image and string subtrees and returns
// the derived namespace root plus any warnings raised while deriving it. The
// input tree is never mutated. Containers left without accessors after
// filtering are pruned.
func Synthesize(public *tree.Node, cfg Config) (*tree.Node, []string) {
	s := &synthesizer{cfg: cfg}
	root := tree.NewNode("", resource.Category(-1))
	for _, child := range public.Children {
		switch child.Category {
		case resource.CategoryImage:
			if out := s.synthImages(child, tree.PublicRootVar, nil); out != nil {
				root.Children = append(root.Children, out)
			}
		case resource.CategoryString:
			if out := synthStrings(child, tree.PublicRootVar); out != nil {
				root.Children = append(root.Children, out)
			}
		}
	}
	return root, s.warnings
}

type synthesizer struct {
	cfg      Config
	warnings []string
}

// synthImages mirrors one image container. path is the public navigation
// expression addressing the container (e.g. "R.Image().Assets()"); namePath
// is the identifier chain used in warnings.
func (s *synthesizer) synthImages(n *tree.Node, path string, namePath []string) *tree.Node {
	out := tree.NewNode(n.Name, n.Category)
	self := path + "." + n.Name + "()"
	if n.Name == "" {
		self = path
	}
	namePath = append(namePath[:len(namePath):len(namePath)], n.Name)

	// Base names the dispatching accessors will claim in this container. An
	// untagged accessor carrying such a name would collide with the
	// dispatcher, so the dispatcher wins and the plain forward is dropped.
	primary := s.cfg.Primary()
	dispatched := make(map[string]bool)
	if primary != "" {
		for _, f := range n.Funcs {
			if base := strings.TrimSuffix(f.Name, "_"+primary); base != f.Name && base != "" {
				dispatched[base] = true
			}
		}
	}

	for _, f := range n.Funcs {
		if tagOf(f.Name, s.cfg.secondary()) != "" {
			// Non-primary tagged accessors never appear here; they are
			// reachable only through the dispatching base accessor.
			continue
		}
		if primary != "" && strings.HasSuffix(f.Name, "_"+primary) && f.Name != "_"+primary {
			base := strings.TrimSuffix(f.Name, "_"+primary)
			out.Funcs = append(out.Funcs, dispatchAccessor(n, f, base, s.cfg, self))
			continue
		}
		if dispatched[f.Name] {
			s.warnings = append(s.warnings, fmt.Sprintf(
				"naming collision at %q: accessor %q is shadowed by the variant accessor of the same name",
				strings.Join(namePath, "/"), f.Name))
			continue
		}
		// Untagged accessors pass through as plain forwards. A name that is
		// nothing but the primary suffix has no base to collapse to and
		// passes through here as well.
		out.Funcs = append(out.Funcs, tree.Accessor{
			Name:      f.Name,
			Doc:       f.Doc,
			Result:    f.Result,
			Body:      []string{fmt.Sprintf("return %s.%s()", self, f.Name)},
			UsedTypes: f.UsedTypes,
		})
	}

	for _, c := range n.Children {
		if sub := s.synthImages(c, self, namePath); sub != nil {
			out.Children = append(out.Children, sub)
		}
	}
	if out.Empty() {
		return nil
	}
	return out
}

// dispatchAccessor builds the code-parameterized accessor collapsing one
// variant group. Sibling lookup reconstructs the tagged full name; tags
// whose sibling does not exist are omitted from the dispatch.
func dispatchAccessor(n *tree.Node, f tree.Accessor, base string, cfg Config, self string) tree.Accessor {
	body := []string{
		fmt.Sprintf("c := %s()", ThemeHook),
		"if len(code) > 0 {",
		"\tc = code[0]",
		"}",
		"switch c {",
	}
	for _, tag := range cfg.secondary() {
		sibling := base + "_" + tag
		if !hasFunc(n, sibling) {
			continue
		}
		body = append(body,
			fmt.Sprintf("case %q:", tag),
			fmt.Sprintf("\treturn %s.%s()", self, sibling))
	}
	body = append(body,
		"default:",
		fmt.Sprintf("\treturn %s.%s()", self, f.Name),
		"}")

	return tree.Accessor{
		Name:      base,
		Doc:       fmt.Sprintf("variant of %q selected by code, defaulting to %s", base, ThemeHook),
		Params:    []tree.Param{{Name: "code", Type: "string", Variadic: true}},
		Result:    f.Result,
		Body:      body,
		UsedTypes: f.UsedTypes,
	}
}

// synthStrings mirrors one string container; every accessor gets a
// locale-parameterized counterpart, no suffix gating.
func synthStrings(n *tree.Node, path string) *tree.Node {
	out := tree.NewNode(n.Name, n.Category)
	self := path + "." + n.Name + "()"
	if n.Name == "" {
		self = path
	}

	for _, f := range n.Funcs {
		out.Funcs = append(out.Funcs, tree.Accessor{
			Name:   f.Name,
			Doc:    f.Doc,
			Params: []tree.Param{{Name: "locale", Type: "string", Variadic: true}},
			Result: f.Result,
			Body: []string{
				fmt.Sprintf("l := %s()", LocaleHook),
				"if len(locale) > 0 {",
				"\tl = locale[0]",
				"}",
				fmt.Sprintf("return %s.%s(l)", self, f.Name),
			},
			UsedTypes: f.UsedTypes,
		})
	}
	for _, c := range n.Children {
		if sub := synthStrings(c, self); sub != nil {
			out.Children = append(out.Children, sub)
		}
	}
	if out.Empty() {
		return nil
	}
	return out
}

func tagOf(name string, tags []string) string {
	for _, t := range tags {
		if strings.HasSuffix(name, "_"+t) {
			return t
		}
	}
	return ""
}

func hasFunc(n *tree.Node, name string) bool {
	for _, f := range n.Funcs {
		if f.Name == name {
			return true
		}
	}
	return false
}
