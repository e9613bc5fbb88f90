// Package emitter renders the validated and synthesized trees into one
// deterministic Go source document. Sibling members are always written in
// lexicographic identifier order, sections are separated by one blank line,
// and the document ends in a single trailing newline, so unchanged input
// reproduces byte-identical text.
package emitter

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
	"github.com/reskit/reskit/internal/variants"
)

// Document is everything one rendering needs.
type Document struct {
	Package  string
	Synth    *tree.Node
	Public   *tree.Node
	Internal *tree.Node

	// OwnImport, when non-empty, is excluded from the computed import
	// list (a generated file never imports its own module).
	OwnImport string
}

// Emitter renders documents. Not safe for concurrent use; create one per
// rendering.
type Emitter struct {
	buf    *bytes.Buffer
	indent int
}

// New creates an empty emitter.
func New() *Emitter {
	return &Emitter{buf: &bytes.Buffer{}}
}

const header = "// Code generated by reskit; DO NOT EDIT.\n" +
	"//\n" +
	"// This file is rewritten by \"reskit generate\" whenever the project's\n" +
	"// declared resources change. Edit the resources, not this file.\n"

// Render produces the primary artifact: header, imports, synthesized
// namespace, public tree, internal tree.
func (e *Emitter) Render(doc Document) string {
	e.reset()
	e.writeLine(strings.TrimRight(header, "\n"))
	e.writeLine("")
	e.writeLine("package %s", doc.Package)

	imports := e.collectImports(doc)
	if len(imports) > 0 {
		e.writeLine("")
		e.writeImports(imports)
	}

	e.renderHooks()
	e.renderTree(doc.Synth, tree.SynthRootVar, "v",
		fmt.Sprintf("%s exposes variant-parameterized accessors derived from %s.",
			tree.SynthRootVar, tree.PublicRootVar))
	e.renderTree(doc.Public, tree.PublicRootVar, "r",
		fmt.Sprintf("%s exposes the project's typed resource accessors.", tree.PublicRootVar))
	e.renderInternal(doc.Internal)

	return e.buf.String()
}

// RenderReduced produces the secondary artifact: header plus the
// synthesized accessor-identifier namespace, restricted to the named
// category subtrees. No internal tree, no accessor bodies.
func (e *Emitter) RenderReduced(doc Document, categories []resource.Category) string {
	e.reset()
	e.writeLine(strings.TrimRight(header, "\n"))
	e.writeLine("")
	e.writeLine("package %s", doc.Package)

	enabled := make(map[resource.Category]bool, len(categories))
	for _, c := range categories {
		enabled[c] = true
	}

	var ids [][2]string
	if doc.Synth != nil {
		for _, child := range doc.Synth.SortedChildren() {
			if !enabled[child.Category] {
				continue
			}
			collectIdentifiers(child, nil, &ids)
		}
	}
	if len(ids) > 0 {
		e.writeLine("")
		e.writeLine("// Accessor identifiers of the synthesized namespace, for test-only")
		e.writeLine("// consumers.")
		e.writeLine("const (")
		e.indent++
		for _, id := range ids {
			e.writeLine("%s = %q", id[0], id[1])
		}
		e.indent--
		e.writeLine(")")
	}

	return e.buf.String()
}

func collectIdentifiers(n *tree.Node, path []string, out *[][2]string) {
	path = append(path, n.Name)
	for _, f := range n.SortedFuncs() {
		constName := tree.SynthRootVar
		for _, p := range path {
			constName += upperFirst(p)
		}
		constName += upperFirst(f.Name)
		*out = append(*out, [2]string{constName, strings.Join(append(path[:len(path):len(path)], f.Name), ".")})
	}
	for _, c := range n.SortedChildren() {
		collectIdentifiers(c, path, out)
	}
}

func (e *Emitter) reset() {
	e.buf.Reset()
	e.indent = 0
}

// writeLine writes one line at the current indent. Embedded tabs inside the
// format output survive, so pre-indented body lines nest correctly.
func (e *Emitter) writeLine(format string, args ...interface{}) {
	if format == "" {
		e.buf.WriteString("\n")
		return
	}
	for i := 0; i < e.indent; i++ {
		e.buf.WriteString("\t")
	}
	if len(args) > 0 {
		fmt.Fprintf(e.buf, format, args...)
	} else {
		e.buf.WriteString(format)
	}
	e.buf.WriteString("\n")
}

// collectImports unions the used-type sets of every emitted tree, excluding
// the generated file's own module.
func (e *Emitter) collectImports(doc Document) []string {
	set := make(map[string]struct{})
	for _, n := range []*tree.Node{doc.Synth, doc.Public, doc.Internal} {
		if n == nil {
			continue
		}
		for _, t := range n.UsedTypes() {
			if t != "" && t != doc.OwnImport {
				set[t] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sortStrings(out)
	return out
}

// writeImports writes the import block, stdlib paths first, a blank line,
// then external paths.
func (e *Emitter) writeImports(imports []string) {
	var stdlib, external []string
	for _, imp := range imports {
		if strings.Contains(imp, ".") {
			external = append(external, imp)
		} else {
			stdlib = append(stdlib, imp)
		}
	}

	e.writeLine("import (")
	e.indent++
	for _, imp := range stdlib {
		e.writeLine("%q", imp)
	}
	if len(stdlib) > 0 && len(external) > 0 {
		e.writeLine("")
	}
	for _, imp := range external {
		e.writeLine("%q", imp)
	}
	e.indent--
	e.writeLine(")")
}

func (e *Emitter) renderHooks() {
	e.writeLine("")
	e.writeLine("// %s reports the variant code consulted when a synthesized image", variants.ThemeHook)
	e.writeLine("// accessor is called without an explicit code. Applications may reassign")
	e.writeLine("// it at startup; the generator only declares the default.")
	e.writeLine("var %s = func() string { return \"\" }", variants.ThemeHook)
	e.writeLine("")
	e.writeLine("// %s reports the preferred locale consulted when a synthesized", variants.LocaleHook)
	e.writeLine("// string accessor is called without an explicit locale.")
	e.writeLine("var %s = func() string { return \"\" }", variants.LocaleHook)
}

// assignTypeNames gives every container below root one unique flattened type
// name. Flattening is not injective (the paths Assets/Sub and AssetsSub both
// flatten to AssetsSub), so a later claim of a taken name gains the smallest
// free numeric suffix. Assignment walks sorted children depth-first, so the
// same tree always yields the same names.
func assignTypeNames(root *tree.Node, rootType, prefix string) map[*tree.Node]string {
	names := map[*tree.Node]string{root: rootType}
	taken := map[string]bool{rootType: true}
	var walk func(n *tree.Node, path []string)
	walk = func(n *tree.Node, path []string) {
		for _, c := range n.SortedChildren() {
			sub := append(path[:len(path):len(path)], c.Name)
			name := prefix + joinCamel(sub)
			for i := 2; taken[name]; i++ {
				name = prefix + joinCamel(sub) + strconv.Itoa(i)
			}
			taken[name] = true
			names[c] = name
			walk(c, sub)
		}
	}
	walk(root, nil)
	return names
}

// renderTree writes one stateless accessor tree: the root var, then every
// container as an empty struct type with navigation and accessor methods,
// depth-first with children in lexicographic order.
func (e *Emitter) renderTree(root *tree.Node, varName, typePrefix, doc string) {
	if root == nil {
		root = &tree.Node{}
	}
	names := assignTypeNames(root, typePrefix+"Root", typePrefix)
	e.writeLine("")
	e.writeLine("// %s", doc)
	e.writeLine("var %s %s", varName, typePrefix+"Root")
	e.renderNode(root, names)
}

func (e *Emitter) renderNode(n *tree.Node, names map[*tree.Node]string) {
	typeName := names[n]
	e.writeLine("")
	e.writeLine("type %s struct{}", typeName)

	for _, c := range n.SortedChildren() {
		e.writeLine("")
		e.writeLine("func (%s) %s() %s {", typeName, c.Name, names[c])
		e.indent++
		e.writeLine("return %s{}", names[c])
		e.indent--
		e.writeLine("}")
	}

	for _, f := range n.SortedFuncs() {
		e.writeLine("")
		if f.Doc != "" {
			e.writeLine("// %s returns the %s.", f.Name, f.Doc)
		}
		e.writeLine("func (%s) %s(%s) %s {", typeName, f.Name, params(f.Params), f.Result)
		e.indent++
		for _, line := range f.Body {
			e.writeLine("%s", line)
		}
		e.indent--
		e.writeLine("}")
	}

	for _, c := range n.SortedChildren() {
		e.renderNode(c, names)
	}
}

// renderInternal writes the stored-property tree: nested struct types plus
// one composite-literal var. Containers with no stored content anywhere
// below them are pruned.
func (e *Emitter) renderInternal(root *tree.Node) {
	if root == nil || internalEmpty(root) {
		return
	}
	names := assignTypeNames(root, "internRoot", "intern")
	e.writeLine("")
	e.writeLine("// %s carries the stored implementations the %s accessors bridge to.",
		tree.InternalRootVar, tree.PublicRootVar)
	e.writeLine("// Never reference it directly.")
	e.writeLine("var %s = %s", tree.InternalRootVar, e.internalLiteral(root, names))

	e.renderInternalTypes(root, names)
}

func (e *Emitter) renderInternalTypes(n *tree.Node, names map[*tree.Node]string) {
	e.writeLine("")
	e.writeLine("type %s struct {", names[n])
	e.indent++
	for _, m := range internalMembers(n) {
		if m.child != nil {
			e.writeLine("%s %s", m.name, names[m.child])
		} else {
			e.writeLine("%s %s", m.name, m.stored.Type)
		}
	}
	e.indent--
	e.writeLine("}")

	for _, m := range internalMembers(n) {
		if m.child != nil {
			e.renderInternalTypes(m.child, names)
		}
	}
}

// internalLiteral renders the nested composite literal, indented one tab per
// nesting level below the current emitter indent.
func (e *Emitter) internalLiteral(n *tree.Node, names map[*tree.Node]string) string {
	var b strings.Builder
	e.literalInto(&b, n, names, e.indent)
	return b.String()
}

func (e *Emitter) literalInto(b *strings.Builder, n *tree.Node, names map[*tree.Node]string, depth int) {
	b.WriteString(names[n])
	b.WriteString("{\n")
	pad := strings.Repeat("\t", depth+1)
	for _, m := range internalMembers(n) {
		b.WriteString(pad)
		b.WriteString(m.name)
		b.WriteString(": ")
		if m.child != nil {
			e.literalInto(b, m.child, names, depth+1)
		} else {
			b.WriteString(m.stored.Value)
		}
		b.WriteString(",\n")
	}
	b.WriteString(strings.Repeat("\t", depth))
	b.WriteString("}")
}

type internalMember struct {
	name   string
	child  *tree.Node
	stored *tree.Stored
}

// internalMembers merges a node's non-empty children and stored properties
// into one lexicographically ordered field list.
func internalMembers(n *tree.Node) []internalMember {
	var out []internalMember
	for _, c := range n.SortedChildren() {
		if !internalEmpty(c) {
			out = append(out, internalMember{name: c.Name, child: c})
		}
	}
	stored := n.SortedStored()
	for i := range stored {
		out = append(out, internalMember{name: stored[i].Name, stored: &stored[i]})
	}
	sortMembers(out)
	return out
}

func sortMembers(ms []internalMember) {
	for i := 0; i < len(ms); i++ {
		for j := i + 1; j < len(ms); j++ {
			if ms[i].name > ms[j].name {
				ms[i], ms[j] = ms[j], ms[i]
			}
		}
	}
}

func internalEmpty(n *tree.Node) bool {
	if len(n.Stored) > 0 {
		return false
	}
	for _, c := range n.Children {
		if !internalEmpty(c) {
			return false
		}
	}
	return true
}

func params(ps []tree.Param) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		typ := p.Type
		if p.Variadic {
			typ = "..." + p.Type
		}
		parts[i] = p.Name + " " + typ
	}
	return strings.Join(parts, ", ")
}

func joinCamel(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(upperFirst(p))
	}
	return b.String()
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// sortStrings mirrors the simple in-place sort used elsewhere in emission.
func sortStrings(strs []string) {
	for i := 0; i < len(strs); i++ {
		for j := i + 1; j < len(strs); j++ {
			if strs[i] > strs[j] {
				strs[i], strs[j] = strs[j], strs[i]
			}
		}
	}
}
