package variants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reskit/reskit/internal/resource"
	"github.com/reskit/reskit/internal/tree"
)

// publicImageTree builds a validated-shape public tree with one asset
// folder, the way the validator hands it to the synthesizer.
func publicImageTree(names ...string) *tree.Node {
	root := tree.NewNode("", resource.Category(-1))
	img := tree.NewNode("Image", resource.CategoryImage)
	folder := tree.NewNode("Assets", resource.CategoryImage)
	for _, n := range names {
		folder.Funcs = append(folder.Funcs, tree.Accessor{
			Name:   n,
			Result: "resource.Image",
			Body:   []string{"return intern.image.assets." + strings.ToLower(n)},
		})
	}
	img.Children = append(img.Children, folder)
	root.Children = append(root.Children, img)
	return root
}

func findFunc(n *tree.Node, name string) *tree.Accessor {
	for i := range n.Funcs {
		if n.Funcs[i].Name == name {
			return &n.Funcs[i]
		}
	}
	return nil
}

func TestSynthesizeCollapsesTaggedPair(t *testing.T) {
	public := publicImageTree("Icon_light", "Icon_dark")
	synth, _ := Synthesize(public, Config{Tags: []string{"light", "dark"}})

	require.Len(t, synth.Children, 1)
	assets := synth.Children[0].Children[0]

	icon := findFunc(assets, "Icon")
	require.NotNil(t, icon, "base accessor should be synthesized")
	require.Len(t, icon.Params, 1)
	assert.Equal(t, "code", icon.Params[0].Name)
	assert.True(t, icon.Params[0].Variadic)

	body := strings.Join(icon.Body, "\n")
	assert.Contains(t, body, ThemeHook+"()")
	assert.Contains(t, body, `case "dark":`)
	assert.Contains(t, body, "R.Image().Assets().Icon_dark()")
	assert.Contains(t, body, "R.Image().Assets().Icon_light()")

	// Non-primary tagged accessors never appear in the synthesized
	// namespace.
	assert.Nil(t, findFunc(assets, "Icon_dark"))
	assert.Nil(t, findFunc(assets, "Icon_light"))

	// The original public tree is untouched.
	orig := public.Children[0].Children[0]
	assert.NotNil(t, findFunc(orig, "Icon_light"))
	assert.NotNil(t, findFunc(orig, "Icon_dark"))
}

func TestSynthesizeDispatcherWinsContestedBaseName(t *testing.T) {
	// An untagged "Icon" next to "Icon_light" would claim the same name the
	// dispatcher collapses to. The dispatcher wins; the plain forward is
	// dropped with a warning so the emitted container stays well formed.
	public := publicImageTree("Icon", "Icon_light", "Icon_dark")
	synth, warnings := Synthesize(public, Config{Tags: []string{"light", "dark"}})

	assets := synth.Children[0].Children[0]
	var claimed int
	for _, f := range assets.Funcs {
		if f.Name == "Icon" {
			claimed++
		}
	}
	require.Equal(t, 1, claimed, "exactly one accessor may hold the base name")

	icon := findFunc(assets, "Icon")
	require.Len(t, icon.Params, 1, "the surviving accessor is the dispatcher")
	assert.True(t, icon.Params[0].Variadic)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `"Icon"`)
	assert.Contains(t, warnings[0], "Image/Assets")
}

func TestSynthesizeBareSuffixNamePassesThrough(t *testing.T) {
	// A name that is nothing but the primary suffix has no base to collapse
	// to; it forwards unchanged instead of vanishing.
	public := publicImageTree("_light")
	synth, warnings := Synthesize(public, Config{Tags: []string{"light", "dark"}})
	require.Empty(t, warnings)

	assets := synth.Children[0].Children[0]
	f := findFunc(assets, "_light")
	require.NotNil(t, f, "bare-suffix accessor should survive as a passthrough")
	assert.Empty(t, f.Params)
	assert.Equal(t, []string{"return R.Image().Assets()._light()"}, f.Body)
}

func TestSynthesizeUntaggedPassthrough(t *testing.T) {
	public := publicImageTree("Logo")
	synth, _ := Synthesize(public, Config{Tags: []string{"light", "dark"}})

	assets := synth.Children[0].Children[0]
	logo := findFunc(assets, "Logo")
	require.NotNil(t, logo)
	assert.Empty(t, logo.Params, "untagged accessors take no code parameter")
	assert.Equal(t, []string{"return R.Image().Assets().Logo()"}, logo.Body)
}

func TestSynthesizeOrphanDarkNeverSelects(t *testing.T) {
	// A dark-only asset has no primary anchor: nothing is synthesized for
	// it, and no selector appears.
	public := publicImageTree("Icon_dark")
	synth, _ := Synthesize(public, Config{Tags: []string{"light", "dark"}})
	assert.Empty(t, synth.Children, "orphan non-primary accessor should prune the whole subtree")
}

func TestSynthesizeMissingSiblingOmitsCase(t *testing.T) {
	public := publicImageTree("Icon_light")
	synth, _ := Synthesize(public, Config{Tags: []string{"light", "dark"}})

	assets := synth.Children[0].Children[0]
	icon := findFunc(assets, "Icon")
	require.NotNil(t, icon)
	body := strings.Join(icon.Body, "\n")
	assert.NotContains(t, body, `case "dark":`)
	assert.Contains(t, body, "R.Image().Assets().Icon_light()")
}

func TestSynthesizeStringsPassthroughAllKeys(t *testing.T) {
	root := tree.NewNode("", resource.Category(-1))
	str := tree.NewNode("String", resource.CategoryString)
	table := tree.NewNode("Main", resource.CategoryString)
	for _, key := range []string{"Greeting", "Farewell_dark"} {
		table.Funcs = append(table.Funcs, tree.Accessor{
			Name:   key,
			Params: []tree.Param{{Name: "locale", Type: "string", Variadic: true}},
			Result: "string",
			Body:   []string{"return \"\""},
		})
	}
	str.Children = append(str.Children, table)
	root.Children = append(root.Children, str)

	synth, _ := Synthesize(root, Config{Tags: []string{"light", "dark"}})
	require.Len(t, synth.Children, 1)
	main := synth.Children[0].Children[0]

	// Every key, unconditionally - no suffix gating for string tables.
	require.Len(t, main.Funcs, 2)
	for _, name := range []string{"Greeting", "Farewell_dark"} {
		f := findFunc(main, name)
		require.NotNil(t, f, "missing counterpart for %s", name)
		require.Len(t, f.Params, 1)
		assert.Equal(t, "locale", f.Params[0].Name)
		body := strings.Join(f.Body, "\n")
		assert.Contains(t, body, LocaleHook+"()")
		assert.Contains(t, body, "R.String().Main()."+name+"(l)")
	}
}

func TestSynthesizeNoTags(t *testing.T) {
	public := publicImageTree("Icon_light", "Logo")
	synth, _ := Synthesize(public, Config{})

	assets := synth.Children[0].Children[0]
	// Without tags everything is untagged passthrough.
	assert.NotNil(t, findFunc(assets, "Icon_light"))
	assert.NotNil(t, findFunc(assets, "Logo"))
	assert.Nil(t, findFunc(assets, "Icon"))
}
