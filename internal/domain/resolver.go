package domain

// Default placement for documents without layout metadata. Only names that
// exist in the document are used; any other category lands at the end of the
// top region in natural key order.
var (
	DefaultTopOrder    = []string{"일반", "회사", "자동차 자료 조사", "취미", "디자인", "AI"}
	DefaultBottomOrder = []string{"부트캠프"}
)

// ResolveLayout computes the effective region order of doc.
//
// A managed document keeps its layout, minus names with no category and
// minus repeats (a name is placed at its first occurrence, top before bottom).
// A legacy document gets the default placement. The document is not modified
// and the result is always non-nil in both regions.
func ResolveLayout(doc *ConfigDocument) Layout {
	kind := doc.Kind
	if kind == KindUnknown {
		kind = Classify(doc)
	}
	if kind == KindManaged && doc.Layout != nil {
		return resolveManaged(doc)
	}
	return resolveLegacy(doc)
}

func resolveManaged(doc *ConfigDocument) Layout {
	seen := make(map[string]bool, doc.Categories.Len())
	keep := func(names []string) []string {
		out := make([]string, 0, len(names))
		for _, name := range names {
			if seen[name] || !doc.Categories.Has(name) {
				continue
			}
			seen[name] = true
			out = append(out, name)
		}
		return out
	}

	top := keep(doc.Layout.Top)
	bottom := keep(doc.Layout.Bottom)
	return Layout{Top: top, Bottom: bottom}
}

func resolveLegacy(doc *ConfigDocument) Layout {
	placed := make(map[string]bool, len(DefaultTopOrder)+len(DefaultBottomOrder))
	pick := func(order []string) []string {
		out := make([]string, 0, len(order))
		for _, name := range order {
			if doc.Categories.Has(name) && !placed[name] {
				placed[name] = true
				out = append(out, name)
			}
		}
		return out
	}

	top := pick(DefaultTopOrder)
	bottom := pick(DefaultBottomOrder)
	for _, name := range doc.Categories.Names() {
		if !placed[name] {
			placed[name] = true
			top = append(top, name)
		}
	}
	return Layout{Top: top, Bottom: bottom}
}

// Placement returns the region of name in l, if it is placed at all.
func (l Layout) Placement(name string) (Region, bool) {
	for _, r := range Regions {
		for _, n := range l.Region(r) {
			if n == name {
				return r, true
			}
		}
	}
	return "", false
}

// Unplaced returns the categories of doc that appear in neither region of l,
// in natural key order. They are kept in the document but not displayed.
func Unplaced(doc *ConfigDocument, l Layout) []string {
	var out []string
	for _, name := range doc.Categories.Names() {
		if _, ok := l.Placement(name); !ok {
			out = append(out, name)
		}
	}
	return out
}
