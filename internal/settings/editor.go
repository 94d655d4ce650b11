package settings

import (
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// CategoryEditor is the editable form state of one category. It holds its
// own copy of the entries, so edits never reach the stored document until the
// session is built and saved.
type CategoryEditor struct {
	// OriginalName is the name the category had when the editor was seeded.
	// Empty for a category created during the session.
	OriginalName string                 `json:"originalName"`
	Name         string                 `json:"name"`
	Region       domain.Region          `json:"region"`
	Visible      bool                   `json:"visible"`
	Capacity     int                    `json:"capacity"`
	Entries      []domain.BookmarkEntry `json:"entries"`
}

// UnmarshalJSON reads editor state sent by a client. A missing "visible"
// means visible, as a missing visibility record does in the document.
func (e *CategoryEditor) UnmarshalJSON(data []byte) error {
	type plain CategoryEditor
	aux := struct {
		*plain
		Visible *bool `json:"visible"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	e.Visible = aux.Visible == nil || *aux.Visible
	return nil
}

// FromDocument seeds an editor for the category name of doc.
func FromDocument(doc *domain.ConfigDocument, name string, region domain.Region, capacity int) (*CategoryEditor, error) {
	entries, ok := doc.Categories.Get(name)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("category %q does not exist", name))
	}

	return &CategoryEditor{
		OriginalName: name,
		Name:         name,
		Region:       region,
		Visible:      domain.IsVisible(doc, name),
		Capacity:     capacity,
		Entries:      append([]domain.BookmarkEntry{}, entries...),
	}, nil
}

// NewCategoryEditor returns an empty, visible editor for a category that does
// not exist yet.
func NewCategoryEditor(name string, region domain.Region, capacity int) *CategoryEditor {
	return &CategoryEditor{
		Name:     name,
		Region:   region,
		Visible:  true,
		Capacity: capacity,
		Entries:  []domain.BookmarkEntry{},
	}
}

// IsFull reports whether another entry would exceed the capacity.
func (e *CategoryEditor) IsFull() bool {
	return e.Capacity > 0 && len(e.Entries) >= e.Capacity
}

// AddEntry appends entry. A full category rejects it with a
// CapacityExceededError and is left unchanged.
func (e *CategoryEditor) AddEntry(entry domain.BookmarkEntry) error {
	if e.IsFull() {
		return errs.NewCapacityExceededError(e.Name, e.Capacity)
	}
	e.Entries = append(e.Entries, entry)
	return nil
}

// MoveUp swaps entry i with the one before it. No-op for the first entry or
// an index out of range.
func (e *CategoryEditor) MoveUp(i int) {
	if i <= 0 || i >= len(e.Entries) {
		return
	}
	e.Entries[i-1], e.Entries[i] = e.Entries[i], e.Entries[i-1]
}

// MoveDown swaps entry i with the one after it. No-op for the last entry or
// an index out of range.
func (e *CategoryEditor) MoveDown(i int) {
	if i < 0 || i >= len(e.Entries)-1 {
		return
	}
	e.Entries[i], e.Entries[i+1] = e.Entries[i+1], e.Entries[i]
}

// RemoveEntry deletes entry i and reports whether i was in range.
func (e *CategoryEditor) RemoveEntry(i int) bool {
	if i < 0 || i >= len(e.Entries) {
		return false
	}
	e.Entries = append(e.Entries[:i], e.Entries[i+1:]...)
	return true
}

// Rename changes the display name only. Building the session stores the
// entries under the new name and the old name is gone from the document.
func (e *CategoryEditor) Rename(name string) {
	e.Name = name
}

// Renamed reports whether the editor no longer carries its seeded name.
func (e *CategoryEditor) Renamed() bool {
	return e.OriginalName != "" && e.OriginalName != e.Name
}
