package domain

// IsVisible reports whether a category is rendered. Only an explicit false
// hides it; a missing visibility block or entry means visible.
func IsVisible(doc *ConfigDocument, name string) bool {
	visible, ok := doc.Visibility[name]
	return !ok || visible
}
