package resource

// ImageDescriptor is one image asset. Name keeps any variant-tag suffix
// (e.g. "icon_light"); Folder is the asset folder path relative to the
// images root, "" for top-level assets.
type ImageDescriptor struct {
	Folder string
	Name   string
	Path   string
}

// StringDescriptor is one key of one localized text table. Values maps
// locale code to the localized value; non-localized tables use the ""
// locale.
type StringDescriptor struct {
	Table  string
	Key    string
	Values map[string]string
}

// ColorDescriptor is one named color.
type ColorDescriptor struct {
	Name string
	Hex  string
}

// FontDescriptor is one font file.
type FontDescriptor struct {
	Name string
	Path string
}

// TransitionDescriptor is one named transition inside a layout.
type TransitionDescriptor struct {
	Name        string
	Destination string
}

// LayoutDescriptor is one view-layout file with its named identifiers and
// transitions.
type LayoutDescriptor struct {
	Name        string
	Path        string
	Identifiers []string
	Transitions []TransitionDescriptor
}

// ReuseDescriptor is one reusable-cell identifier, attributed to the layout
// that declared it.
type ReuseDescriptor struct {
	Identifier string
	Layout     string
}

// FileDescriptor is one opaque resource file.
type FileDescriptor struct {
	Name string
	Ext  string
	Path string
}

// SettingsDescriptor is the whitelisted top-level settings of one build
// configuration.
type SettingsDescriptor struct {
	Configuration string
	Values        map[string]string
}

// Set is one complete descriptor snapshot, as produced by a Collector.
// Warnings carries non-fatal collection diagnostics (e.g. a build
// configuration whose settings file failed to parse and was omitted).
type Set struct {
	Images   []ImageDescriptor
	Strings  []StringDescriptor
	Colors   []ColorDescriptor
	Fonts    []FontDescriptor
	Layouts  []LayoutDescriptor
	Reuse    []ReuseDescriptor
	Files    []FileDescriptor
	Settings []SettingsDescriptor
	Warnings []string
}

// Collector produces one descriptor snapshot per invocation. Implementations
// must treat unsupported extensions and unparseable required inputs as fatal
// (returning UnsupportedExtensionError or ParseError) and must downgrade
// per-configuration settings failures to Set.Warnings.
type Collector interface {
	Collect() (*Set, error)
}
