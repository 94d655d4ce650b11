package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
)

func entry(name string) domain.BookmarkEntry {
	return domain.BookmarkEntry{Name: name, URL: "http://" + name}
}

func names(entries []domain.BookmarkEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

func TestFromDocument(t *testing.T) {
	doc := &domain.ConfigDocument{
		Categories: domain.NewCategories(domain.Category{Name: "A", Entries: []domain.BookmarkEntry{entry("x")}}),
		Visibility: map[string]bool{"A": false},
	}

	ed, err := FromDocument(doc, "A", domain.RegionBottom, 24)
	require.NoError(t, err)

	assert.Equal(t, "A", ed.OriginalName)
	assert.Equal(t, "A", ed.Name)
	assert.Equal(t, domain.RegionBottom, ed.Region)
	assert.False(t, ed.Visible)
	assert.Equal(t, 24, ed.Capacity)

	ed.Entries[0].Name = "changed"
	stored, _ := doc.Categories.Get("A")
	assert.Equal(t, "x", stored[0].Name, "editor entries must be a copy")

	_, err = FromDocument(doc, "missing", domain.RegionTop, 12)
	var notFound *errs.NotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestAddEntryRespectsCapacity(t *testing.T) {
	ed := NewCategoryEditor("A", domain.RegionTop, 2)
	require.NoError(t, ed.AddEntry(entry("a")))
	require.NoError(t, ed.AddEntry(entry("b")))
	assert.True(t, ed.IsFull())

	err := ed.AddEntry(entry("c"))

	var capErr *errs.CapacityExceededError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, "A", capErr.Category)
	assert.Equal(t, 2, capErr.Capacity)
	assert.Equal(t, []string{"a", "b"}, names(ed.Entries))
}

func TestAddEntryUnboundedCapacity(t *testing.T) {
	ed := NewCategoryEditor("A", domain.RegionTop, 0)
	for i := 0; i < 50; i++ {
		require.NoError(t, ed.AddEntry(entry("e")))
	}
	assert.False(t, ed.IsFull())
}

func TestMoveEntries(t *testing.T) {
	tests := []struct {
		name string
		move func(*CategoryEditor)
		want []string
	}{
		{"up", func(e *CategoryEditor) { e.MoveUp(1) }, []string{"b", "a", "c"}},
		{"down", func(e *CategoryEditor) { e.MoveDown(1) }, []string{"a", "c", "b"}},
		{"first cannot move up", func(e *CategoryEditor) { e.MoveUp(0) }, []string{"a", "b", "c"}},
		{"last cannot move down", func(e *CategoryEditor) { e.MoveDown(2) }, []string{"a", "b", "c"}},
		{"out of range", func(e *CategoryEditor) { e.MoveUp(7); e.MoveDown(-1) }, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := NewCategoryEditor("A", domain.RegionTop, 12)
			ed.Entries = []domain.BookmarkEntry{entry("a"), entry("b"), entry("c")}

			tt.move(ed)

			assert.Equal(t, tt.want, names(ed.Entries))
		})
	}
}

func TestRemoveEntry(t *testing.T) {
	ed := NewCategoryEditor("A", domain.RegionTop, 12)
	ed.Entries = []domain.BookmarkEntry{entry("a"), entry("b"), entry("c")}

	assert.True(t, ed.RemoveEntry(1))
	assert.Equal(t, []string{"a", "c"}, names(ed.Entries))
	assert.False(t, ed.RemoveEntry(2))
	assert.False(t, ed.RemoveEntry(-1))
}

func TestRename(t *testing.T) {
	doc := &domain.ConfigDocument{Categories: domain.NewCategories(domain.Category{Name: "Old"})}
	ed, err := FromDocument(doc, "Old", domain.RegionTop, 12)
	require.NoError(t, err)

	ed.Rename("New")

	assert.Equal(t, "New", ed.Name)
	assert.Equal(t, "Old", ed.OriginalName)
	assert.True(t, ed.Renamed())
	assert.False(t, NewCategoryEditor("Fresh", domain.RegionTop, 12).Renamed())
}

func TestEditorDecodeDefaultsToVisible(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"missing", `{"name": "A", "region": "top"}`, true},
		{"null", `{"name": "A", "region": "top", "visible": null}`, true},
		{"true", `{"name": "A", "region": "top", "visible": true}`, true},
		{"false", `{"name": "A", "region": "top", "visible": false}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ed CategoryEditor
			require.NoError(t, json.Unmarshal([]byte(tt.body), &ed))
			assert.Equal(t, tt.want, ed.Visible)
			assert.Equal(t, "A", ed.Name)
			assert.Equal(t, domain.RegionTop, ed.Region)
		})
	}
}
