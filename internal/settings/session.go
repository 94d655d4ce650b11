package settings

import (
	"fmt"
	"strings"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// Session is one settings editing pass over a private copy of the document.
//
// Every category of the resolved layout gets an editor, hidden ones included.
// Categories that are in the document but in neither region have no editor;
// the session keeps them aside and puts them back on Build, so leaving the
// settings form untouched can never delete a category. RemoveCategory is the
// only way a category leaves the document.
type Session struct {
	caps    domain.Capacities
	editors []*CategoryEditor

	unplaced           domain.Categories
	unplacedVisibility map[string]bool

	clocks        []domain.ClockEntry
	backgroundURL string
}

// View is the JSON shape of a session, served to the settings form.
type View struct {
	Editors       []*CategoryEditor   `json:"editors"`
	Unplaced      []string            `json:"unplaced"`
	Clocks        []domain.ClockEntry `json:"clocks"`
	BackgroundURL string              `json:"backgroundUrl"`
	Capacities    domain.Capacities   `json:"capacities"`
}

// OpenSession seeds a session from doc. doc itself is never modified.
func OpenSession(doc *domain.ConfigDocument, caps domain.Capacities) (*Session, error) {
	work := doc.Clone()
	layout := domain.ResolveLayout(work)

	s := &Session{
		caps:               caps,
		unplacedVisibility: map[string]bool{},
		clocks:             append([]domain.ClockEntry{}, work.Clocks...),
		backgroundURL:      work.BackgroundURL,
	}

	for _, region := range domain.Regions {
		for _, name := range layout.Region(region) {
			ed, err := FromDocument(work, name, region, caps.For(region))
			if err != nil {
				return nil, err
			}
			s.editors = append(s.editors, ed)
		}
	}

	for _, name := range domain.Unplaced(work, layout) {
		entries, _ := work.Categories.Get(name)
		s.unplaced.Set(name, entries)
		if v, ok := work.Visibility[name]; ok {
			s.unplacedVisibility[name] = v
		}
	}

	return s, nil
}

// Editors returns the open editors, top region first.
func (s *Session) Editors() []*CategoryEditor {
	return append([]*CategoryEditor{}, s.editors...)
}

// Editor returns the editor currently named name.
func (s *Session) Editor(name string) (*CategoryEditor, bool) {
	for _, ed := range s.editors {
		if ed.Name == name {
			return ed, true
		}
	}
	return nil, false
}

// Unplaced lists the categories kept aside because no region shows them.
func (s *Session) Unplaced() []string {
	return s.unplaced.Names()
}

// AddCategory opens an editor for a new, empty category at the end of region.
func (s *Session) AddCategory(name string, region domain.Region) (*CategoryEditor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewMalformedInputError("category name must not be empty")
	}
	if _, err := domain.ParseRegion(string(region)); err != nil {
		return nil, err
	}
	if s.exists(name) {
		return nil, errs.NewAlreadyExistsError(fmt.Sprintf("category %q already exists", name))
	}

	ed := NewCategoryEditor(name, region, s.caps.For(region))
	s.editors = append(s.editors, ed)
	return ed, nil
}

// RemoveCategory drops a category, whether it has an editor or was kept
// aside as unplaced.
func (s *Session) RemoveCategory(name string) error {
	for i, ed := range s.editors {
		if ed.Name == name {
			s.editors = append(s.editors[:i], s.editors[i+1:]...)
			return nil
		}
	}
	if s.unplaced.Delete(name) {
		delete(s.unplacedVisibility, name)
		return nil
	}
	return errs.NewNotFoundError(fmt.Sprintf("category %q does not exist", name))
}

// ReplaceEditors swaps in editor state submitted by a client. Each editor
// gets the capacity of its region, whatever the client sent.
func (s *Session) ReplaceEditors(editors []*CategoryEditor) error {
	out := make([]*CategoryEditor, 0, len(editors))
	for i, ed := range editors {
		if ed == nil {
			return errs.NewMalformedInputError(fmt.Sprintf("editor %d is null", i))
		}
		region, err := domain.ParseRegion(string(ed.Region))
		if err != nil {
			return err
		}
		cp := *ed
		cp.Region = region
		cp.Capacity = s.caps.For(region)
		cp.Entries = append([]domain.BookmarkEntry{}, ed.Entries...)
		out = append(out, &cp)
	}
	s.editors = out
	return nil
}

func (s *Session) SetClocks(clocks []domain.ClockEntry) {
	s.clocks = append([]domain.ClockEntry{}, clocks...)
}

func (s *Session) SetBackground(url string) {
	s.backgroundURL = url
}

// View snapshots the session for the settings form.
func (s *Session) View() View {
	return View{
		Editors:       s.Editors(),
		Unplaced:      s.Unplaced(),
		Clocks:        append([]domain.ClockEntry{}, s.clocks...),
		BackgroundURL: s.backgroundURL,
		Capacities:    s.caps,
	}
}

// Build reconciles the editors into a new document and re-attaches the
// unplaced categories. An editor wins over an unplaced category of the same
// name.
//
// With no editor left the layout is empty and the document reads as legacy,
// so the default placement would show the unplaced categories. They are
// marked hidden instead to keep them off the dashboard.
func (s *Session) Build() *domain.ConfigDocument {
	doc := Reconcile(s.editors, s.clocks, s.backgroundURL)
	hideUnplaced := doc.Layout.IsEmpty()

	for _, name := range s.unplaced.Names() {
		if doc.Categories.Has(name) {
			continue
		}
		entries, _ := s.unplaced.Get(name)
		doc.Categories.Set(name, domain.CompleteEntries(entries))
		if v, ok := s.unplacedVisibility[name]; ok {
			doc.Visibility[name] = v
		}
		if hideUnplaced {
			doc.Visibility[name] = false
		}
	}

	return doc
}

func (s *Session) exists(name string) bool {
	if _, ok := s.Editor(name); ok {
		return true
	}
	return s.unplaced.Has(name)
}
