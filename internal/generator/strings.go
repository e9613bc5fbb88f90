package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

type stringGenerator struct{}

func (stringGenerator) Category() resource.Category { return resource.CategoryString }

func (stringGenerator) Fragment(set *resource.Set) *tree.Node {
	root := tree.NewNode("string", resource.CategoryString)

	byTable := make(map[string][]resource.StringDescriptor)
	var tables []string
	for _, d := range set.Strings {
		if _, ok := byTable[d.Table]; !ok {
			tables = append(tables, d.Table)
		}
		byTable[d.Table] = append(byTable[d.Table], d)
	}
	sort.Strings(tables)

	for _, table := range tables {
		node := root.EnsureChild(table)
		node.Stored = append(node.Stored, tree.Stored{
			Name:      "table",
			Type:      "resource.StringTable",
			Value:     tableLiteral(table, byTable[table]),
			UsedTypes: []string{RuntimeImport},
		})
		for _, d := range byTable[table] {
			node.Funcs = append(node.Funcs, tree.Accessor{
				Name:      d.Key,
				Doc:       fmt.Sprintf("localized value for key %q in table %q", d.Key, table),
				Params:    []tree.Param{{Name: "locale", Type: "string", Variadic: true}},
				Result:    "string",
				Body:      []string{fmt.Sprintf("return %s.table.Resolve(%q, locale...)", tree.InternRef, d.Key)},
				UsedTypes: []string{RuntimeImport},
			})
		}
	}
	return root
}

// tableLiteral renders one resource.StringTable composite literal with keys
// and locales in sorted order so repeated runs emit identical text.
func tableLiteral(name string, descs []resource.StringDescriptor) string {
	keys := make([]string, 0, len(descs))
	byKey := make(map[string]map[string]string, len(descs))
	for _, d := range descs {
		if _, ok := byKey[d.Key]; !ok {
			keys = append(keys, d.Key)
		}
		byKey[d.Key] = d.Values
	}
	sort.Strings(keys)

	fallback := ""
	var b strings.Builder
	fmt.Fprintf(&b, "map[string]map[string]string{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		locales := make([]string, 0, len(byKey[k]))
		for l := range byKey[k] {
			locales = append(locales, l)
		}
		sort.Strings(locales)
		if fallback == "" && len(locales) > 0 {
			fallback = locales[0]
		}
		fmt.Fprintf(&b, "%q: {", k)
		for j, l := range locales {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%q: %q", l, byKey[k][l])
		}
		b.WriteString("}")
	}
	b.WriteString("}")

	return fmt.Sprintf("resource.StringTable{Name: %q, Fallback: %q, Entries: %s}",
		name, fallback, b.String())
}
