package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

func TestParseDocument(t *testing.T) {
	t.Run("managed document keeps category order", func(t *testing.T) {
		input := `{
			"categories": {
				"Zeta": [{"name": "Z", "url": "http://z"}],
				"Alpha": [{"name": "A", "url": "http://a", "iconUrl": "http://a/icon.png"}]
			},
			"layout": {"top": ["Alpha"], "bottom": ["Zeta"]},
			"visibility": {"Zeta": false},
			"clocks": [{"name": "Seoul", "zone": "Asia/Seoul"}],
			"backgroundUrl": "http://bg"
		}`

		doc, err := ParseDocument([]byte(input))
		require.NoError(t, err)

		assert.Equal(t, KindManaged, doc.Kind)
		assert.Equal(t, []string{"Zeta", "Alpha"}, doc.Categories.Names())
		alpha, ok := doc.Categories.Get("Alpha")
		require.True(t, ok)
		assert.Equal(t, "http://a/icon.png", alpha[0].IconURL)
		assert.Equal(t, map[string]bool{"Zeta": false}, doc.Visibility)
		assert.Equal(t, []ClockEntry{{Name: "Seoul", Zone: "Asia/Seoul"}}, doc.Clocks)
		assert.Equal(t, "http://bg", doc.BackgroundURL)
	})

	t.Run("categories without layout is legacy", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"categories": {"A": []}}`))
		require.NoError(t, err)
		assert.Equal(t, KindLegacy, doc.Kind)
		assert.Nil(t, doc.Layout)
	})

	t.Run("empty layout is legacy", func(t *testing.T) {
		doc, err := ParseDocument([]byte(`{"categories": {"A": []}, "layout": {"top": [], "bottom": []}}`))
		require.NoError(t, err)
		assert.Equal(t, KindLegacy, doc.Kind)
	})

	t.Run("flat root is read as categories", func(t *testing.T) {
		input := `{
			"회사": [{"name": "Mail", "url": "http://mail"}],
			"일반": [{"name": "Search", "url": "http://search"}],
			"comment": "ignored"
		}`

		doc, err := ParseDocument([]byte(input))
		require.NoError(t, err)

		assert.Equal(t, KindLegacy, doc.Kind)
		assert.Equal(t, []string{"회사", "일반"}, doc.Categories.Names())
	})

	t.Run("flat root keys named like settings are categories", func(t *testing.T) {
		input := `{
			"clocks": [{"name": "Go", "url": "https://go.dev"}],
			"layout": [{"name": "Grid", "url": "https://grid.example.com"}],
			"visibility": [],
			"backgroundUrl": [{"name": "Wallpapers", "url": "https://walls.example.com"}],
			"AI": [{"name": "Chat", "url": "https://chat.example.com"}]
		}`

		doc, err := ParseDocument([]byte(input))
		require.NoError(t, err)

		assert.Equal(t, KindLegacy, doc.Kind)
		assert.Equal(t, []string{"clocks", "layout", "visibility", "backgroundUrl", "AI"}, doc.Categories.Names())
		clocks, _ := doc.Categories.Get("clocks")
		assert.Equal(t, []BookmarkEntry{{Name: "Go", URL: "https://go.dev"}}, clocks)
		assert.Empty(t, doc.Clocks)
		assert.Nil(t, doc.Layout)
		assert.Nil(t, doc.Visibility)
		assert.Empty(t, doc.BackgroundURL)

		// the re-encoded document is the managed shape and keeps every category
		encoded, err := EncodeDocument(doc, "  ")
		require.NoError(t, err)
		again, err := ParseDocument(encoded)
		require.NoError(t, err)
		assert.Equal(t, doc.Categories.Names(), again.Categories.Names())
	})

	t.Run("rejects non-object bodies", func(t *testing.T) {
		for _, input := range []string{`[]`, `"text"`, `42`, `null`, `{"a": [}`, `{} {}`, ``} {
			_, err := ParseDocument([]byte(input))
			var malformed *errs.MalformedInputError
			assert.True(t, errors.As(err, &malformed), "input %q: got %v", input, err)
		}
	})

	t.Run("rejects categories that are not an object", func(t *testing.T) {
		_, err := ParseDocument([]byte(`{"categories": ["A"]}`))
		var malformed *errs.MalformedInputError
		assert.True(t, errors.As(err, &malformed))
	})
}

func TestEncodeDocumentRoundTrip(t *testing.T) {
	doc := &ConfigDocument{
		Categories: NewCategories(
			Category{Name: "B", Entries: []BookmarkEntry{{Name: "Q", URL: "http://q?a=1&b=2"}}},
			Category{Name: "A", Entries: nil},
		),
		Layout:     &Layout{Top: []string{"B"}, Bottom: []string{"A"}},
		Visibility: map[string]bool{"A": true, "B": true},
	}

	data, err := EncodeDocument(doc, "    ")
	require.NoError(t, err)

	assert.Less(t, strings.Index(string(data), `"B"`), strings.Index(string(data), `"A"`))
	assert.Contains(t, string(data), "a=1&b=2")
	assert.Contains(t, string(data), `"A": []`)

	back, err := ParseDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc.Categories.Names(), back.Categories.Names())
	assert.Equal(t, *doc.Layout, *back.Layout)
	assert.Equal(t, KindManaged, back.Kind)
}

func TestNormalize(t *testing.T) {
	clocks := make([]ClockEntry, 10)
	for i := range clocks {
		clocks[i] = ClockEntry{Name: "c", Zone: "UTC"}
	}
	doc := &ConfigDocument{
		Categories: NewCategories(Category{Name: "A", Entries: []BookmarkEntry{
			{Name: "ok", URL: "http://ok"},
			{Name: "", URL: "http://no-name"},
			{Name: "no-url", URL: "  "},
		}}),
		Clocks:        clocks,
		BackgroundURL: "   ",
	}

	out := Normalize(doc)

	entries, _ := out.Categories.Get("A")
	assert.Equal(t, []BookmarkEntry{{Name: "ok", URL: "http://ok"}}, entries)
	assert.Len(t, out.Clocks, MaxClocks)
	assert.Empty(t, out.BackgroundURL)

	original, _ := doc.Categories.Get("A")
	assert.Len(t, original, 3, "Normalize must not touch its input")
	assert.Len(t, doc.Clocks, 10)
}

func TestCategoriesSetAndDelete(t *testing.T) {
	var c Categories
	c.Set("a", nil)
	c.Set("b", []BookmarkEntry{{Name: "x", URL: "y"}})
	c.Set("a", []BookmarkEntry{{Name: "z", URL: "w"}})

	assert.Equal(t, []string{"a", "b"}, c.Names())
	entries, _ := c.Get("a")
	assert.Len(t, entries, 1)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, []string{"b"}, c.Names())
	assert.False(t, c.Has("a"))
}
