package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/startpage/internal/domain"
)

func TestReconcile(t *testing.T) {
	editors := []*CategoryEditor{
		{Name: "Low", Region: domain.RegionBottom, Visible: true, Capacity: 5,
			Entries: []domain.BookmarkEntry{entry("l")}},
		{Name: "  ", Region: domain.RegionTop, Visible: true, Capacity: 5,
			Entries: []domain.BookmarkEntry{entry("lost")}},
		{Name: "High", Region: domain.RegionTop, Visible: false, Capacity: 2,
			Entries: []domain.BookmarkEntry{
				entry("h1"),
				{Name: "", URL: "http://nameless"},
				{Name: "no-url"},
				entry("h2"),
				entry("h3"),
			}},
		{Name: "High", Region: domain.RegionBottom, Visible: true, Capacity: 5,
			Entries: []domain.BookmarkEntry{entry("dup")}},
	}
	clocks := []domain.ClockEntry{
		{Name: "UTC", Zone: "UTC"},
		{Name: "", Zone: "Asia/Seoul"},
	}

	doc := Reconcile(editors, clocks, "  ")

	assert.Equal(t, []string{"High", "Low"}, doc.Categories.Names())
	assert.Equal(t, []string{"High"}, doc.Layout.Top)
	assert.Equal(t, []string{"Low"}, doc.Layout.Bottom)
	assert.Equal(t, map[string]bool{"High": false, "Low": true}, doc.Visibility)

	high, _ := doc.Categories.Get("High")
	assert.Equal(t, []string{"h1", "h2"}, names(high))

	assert.Equal(t, []domain.ClockEntry{{Name: "UTC", Zone: "UTC"}}, doc.Clocks)
	assert.Empty(t, doc.BackgroundURL)
	assert.Equal(t, domain.KindManaged, doc.Kind)
}

func TestReconcileTruncatesClocks(t *testing.T) {
	clocks := make([]domain.ClockEntry, 12)
	for i := range clocks {
		clocks[i] = domain.ClockEntry{Name: "c", Zone: "UTC"}
	}

	doc := Reconcile(nil, clocks, "http://bg")

	assert.Len(t, doc.Clocks, domain.MaxClocks)
	assert.Equal(t, "http://bg", doc.BackgroundURL)
	require.NotNil(t, doc.Layout)
	assert.Equal(t, []string{}, doc.Layout.Top)
	assert.Equal(t, []string{}, doc.Layout.Bottom)
	assert.Equal(t, domain.KindLegacy, doc.Kind)
}

func TestReconcileNeverPlacesANameTwice(t *testing.T) {
	editors := []*CategoryEditor{
		NewCategoryEditor("Same", domain.RegionTop, 5),
		NewCategoryEditor("Same", domain.RegionBottom, 5),
		NewCategoryEditor(" Same ", domain.RegionTop, 5),
	}

	doc := Reconcile(editors, nil, "")

	assert.Equal(t, []string{"Same"}, doc.Layout.Top)
	assert.Empty(t, doc.Layout.Bottom)
}
