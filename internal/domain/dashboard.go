package domain

// Folder is one rendered category card.
type Folder struct {
	Name    string          `json:"name"`
	Region  Region          `json:"region"`
	Entries []BookmarkEntry `json:"entries"`
	// Hidden counts entries cut off by the region capacity.
	Hidden int `json:"hidden,omitempty"`
}

// Dashboard is the render model of a document.
type Dashboard struct {
	Top           []Folder     `json:"top"`
	Bottom        []Folder     `json:"bottom"`
	Clocks        []ClockEntry `json:"clocks"`
	BackgroundURL string       `json:"backgroundUrl,omitempty"`
	// Migrated is set when the layout came from the default placement rather
	// than from the document.
	Migrated bool `json:"migrated"`
}

// BuildDashboard resolves the layout of doc and renders the visible
// categories. Each folder is cut to its region capacity, the same limit the
// category editor enforces.
func BuildDashboard(doc *ConfigDocument, caps Capacities) Dashboard {
	layout := ResolveLayout(doc)

	kind := doc.Kind
	if kind == KindUnknown {
		kind = Classify(doc)
	}

	d := Dashboard{
		Top:           folders(doc, layout.Top, RegionTop, caps.Top),
		Bottom:        folders(doc, layout.Bottom, RegionBottom, caps.Bottom),
		Clocks:        renderClocks(doc.Clocks),
		BackgroundURL: doc.BackgroundURL,
		Migrated:      kind != KindManaged,
	}
	return d
}

func folders(doc *ConfigDocument, names []string, region Region, capacity int) []Folder {
	out := make([]Folder, 0, len(names))
	for _, name := range names {
		if !IsVisible(doc, name) {
			continue
		}
		entries, _ := doc.Categories.Get(name)
		linkable := make([]BookmarkEntry, 0, len(entries))
		for _, e := range entries {
			if e.URL != "" {
				linkable = append(linkable, e)
			}
		}
		shown := Truncate(linkable, capacity)
		out = append(out, Folder{
			Name:    name,
			Region:  region,
			Entries: shown,
			Hidden:  len(linkable) - len(shown),
		})
	}
	return out
}

func renderClocks(clocks []ClockEntry) []ClockEntry {
	out := make([]ClockEntry, 0, len(clocks))
	for _, c := range clocks {
		if len(out) == MaxClocks {
			break
		}
		if c.Complete() {
			out = append(out, c)
		}
	}
	return out
}
