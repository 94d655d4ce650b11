package domain

import (
	"strings"
)

// MaxClocks is the number of world clocks a document may carry.
const MaxClocks = 8

// DocumentKind tells whether a document carries usable layout metadata.
// It is decided once, when the document is parsed or built.
type DocumentKind int

const (
	// KindUnknown is the zero value for documents assembled by hand;
	// ResolveLayout classifies them on the fly.
	KindUnknown DocumentKind = iota
	// KindLegacy documents have no layout block (or an empty one) and get the
	// default placement when rendered.
	KindLegacy
	// KindManaged documents have at least one non-empty layout region.
	KindManaged
)

func (k DocumentKind) String() string {
	switch k {
	case KindLegacy:
		return "legacy"
	case KindManaged:
		return "managed"
	default:
		return "unknown"
	}
}

// BookmarkEntry is a single link inside a category.
type BookmarkEntry struct {
	Name    string `json:"name"`
	URL     string `json:"url"`
	IconURL string `json:"iconUrl,omitempty"`
}

// Complete reports whether the entry has both a name and a URL.
// Incomplete entries are dropped when a document is saved.
func (e BookmarkEntry) Complete() bool {
	return strings.TrimSpace(e.Name) != "" && strings.TrimSpace(e.URL) != ""
}

// ClockEntry is one world clock: a display label and an IANA zone.
type ClockEntry struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

func (c ClockEntry) Complete() bool {
	return strings.TrimSpace(c.Name) != "" && strings.TrimSpace(c.Zone) != ""
}

// Layout lists category names per region, in display order.
type Layout struct {
	Top    []string `json:"top"`
	Bottom []string `json:"bottom"`
}

// Region returns the names placed in r.
func (l Layout) Region(r Region) []string {
	if r == RegionBottom {
		return l.Bottom
	}
	return l.Top
}

// IsEmpty reports whether neither region names a category.
func (l Layout) IsEmpty() bool {
	return len(l.Top) == 0 && len(l.Bottom) == 0
}

func (l Layout) clone() Layout {
	return Layout{
		Top:    append([]string{}, l.Top...),
		Bottom: append([]string{}, l.Bottom...),
	}
}

// ConfigDocument is the persisted bookmarks/settings document.
type ConfigDocument struct {
	Kind DocumentKind `json:"-"`

	Categories    Categories      `json:"categories"`
	Layout        *Layout         `json:"layout,omitempty"`
	Visibility    map[string]bool `json:"visibility,omitempty"`
	Clocks        []ClockEntry    `json:"clocks,omitempty"`
	BackgroundURL string          `json:"backgroundUrl,omitempty"`
}

// Classify derives the kind of doc from its layout block.
func Classify(doc *ConfigDocument) DocumentKind {
	if doc == nil || doc.Layout == nil || doc.Layout.IsEmpty() {
		return KindLegacy
	}
	return KindManaged
}

// Clone returns a deep copy of the document.
func (d *ConfigDocument) Clone() *ConfigDocument {
	out := &ConfigDocument{
		Kind:          d.Kind,
		Categories:    d.Categories.Clone(),
		BackgroundURL: d.BackgroundURL,
	}
	if d.Layout != nil {
		l := d.Layout.clone()
		out.Layout = &l
	}
	if d.Visibility != nil {
		out.Visibility = make(map[string]bool, len(d.Visibility))
		for k, v := range d.Visibility {
			out.Visibility[k] = v
		}
	}
	if d.Clocks != nil {
		out.Clocks = append([]ClockEntry{}, d.Clocks...)
	}
	return out
}

// Normalize returns the document as it will be persisted: incomplete bookmark
// entries dropped, clocks truncated to MaxClocks and a blank background
// omitted. The input is not modified.
func Normalize(doc *ConfigDocument) *ConfigDocument {
	out := doc.Clone()

	for _, name := range out.Categories.Names() {
		entries, _ := out.Categories.Get(name)
		out.Categories.Set(name, CompleteEntries(entries))
	}

	if len(out.Clocks) > MaxClocks {
		out.Clocks = out.Clocks[:MaxClocks]
	}

	out.BackgroundURL = strings.TrimSpace(out.BackgroundURL)
	out.Kind = Classify(out)
	return out
}

// CompleteEntries filters entries down to those with both a name and a URL.
func CompleteEntries(entries []BookmarkEntry) []BookmarkEntry {
	out := make([]BookmarkEntry, 0, len(entries))
	for _, e := range entries {
		if e.Complete() {
			out = append(out, e)
		}
	}
	return out
}
