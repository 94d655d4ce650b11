package settings

import (
	"strings"

	"github.com/MrSnakeDoc/startpage/internal/domain"
)

// Reconcile turns editor state back into a document.
//
// Top editors are visited before bottom editors, each region in slice order.
// An editor with a blank name is skipped and a repeated name keeps only its
// first editor. Incomplete entries are dropped and the rest cut to the editor
// capacity. Clocks keep complete entries up to domain.MaxClocks, and the
// background is omitted when blank.
//
// The result replaces the stored document: a category without an editor is
// not in it. Session.Build re-attaches categories that had no place in the
// layout.
func Reconcile(editors []*CategoryEditor, clocks []domain.ClockEntry, backgroundURL string) *domain.ConfigDocument {
	doc := &domain.ConfigDocument{
		Layout:     &domain.Layout{Top: []string{}, Bottom: []string{}},
		Visibility: map[string]bool{},
	}

	for _, region := range domain.Regions {
		for _, ed := range editors {
			if regionOf(ed) != region {
				continue
			}
			name := strings.TrimSpace(ed.Name)
			if name == "" || doc.Categories.Has(name) {
				continue
			}

			entries := domain.Truncate(domain.CompleteEntries(ed.Entries), ed.Capacity)
			doc.Categories.Set(name, entries)
			if region == domain.RegionBottom {
				doc.Layout.Bottom = append(doc.Layout.Bottom, name)
			} else {
				doc.Layout.Top = append(doc.Layout.Top, name)
			}
			doc.Visibility[name] = ed.Visible
		}
	}

	for _, c := range clocks {
		if len(doc.Clocks) == domain.MaxClocks {
			break
		}
		if c.Complete() {
			doc.Clocks = append(doc.Clocks, c)
		}
	}

	if bg := strings.TrimSpace(backgroundURL); bg != "" {
		doc.BackgroundURL = bg
	}

	doc.Kind = domain.Classify(doc)
	return doc
}

// regionOf places editors with an unknown region at the top.
func regionOf(ed *CategoryEditor) domain.Region {
	if ed.Region == domain.RegionBottom {
		return domain.RegionBottom
	}
	return domain.RegionTop
}
