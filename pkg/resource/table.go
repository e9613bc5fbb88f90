package resource

// StringTable is one localized text table. Entries maps key -> locale -> value;
// a table parsed from a non-localized source stores its values under the ""
// locale.
type StringTable struct {
	Name     string
	Fallback string
	Entries  map[string]map[string]string
}

// Resolve returns the value for key, preferring the first supplied locale,
// then the table's fallback locale, then the "" locale, then any locale in an
// unspecified order. Missing keys resolve to the key itself so that generated
// accessors never panic at runtime.
func (t StringTable) Resolve(key string, locale ...string) string {
	byLocale, ok := t.Entries[key]
	if !ok {
		return key
	}
	if len(locale) > 0 {
		if v, ok := byLocale[locale[0]]; ok {
			return v
		}
	}
	if v, ok := byLocale[t.Fallback]; ok {
		return v
	}
	if v, ok := byLocale[""]; ok {
		return v
	}
	for _, v := range byLocale {
		return v
	}
	return key
}
