package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDashboardSingleFolder(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		"categories": {"A": [{"name": "X", "url": "http://x"}]},
		"layout": {"top": ["A"], "bottom": []}
	}`))
	require.NoError(t, err)

	d := BuildDashboard(doc, DefaultCapacities)

	require.Len(t, d.Top, 1)
	assert.Empty(t, d.Bottom)
	assert.Equal(t, "A", d.Top[0].Name)
	assert.Equal(t, []BookmarkEntry{{Name: "X", URL: "http://x"}}, d.Top[0].Entries)
	assert.False(t, d.Migrated)
}

func TestBuildDashboardHidesAndTruncates(t *testing.T) {
	many := make([]BookmarkEntry, 5)
	for i := range many {
		many[i] = BookmarkEntry{Name: "n", URL: "http://n"}
	}
	doc := &ConfigDocument{
		Categories: NewCategories(
			category("Full", many...),
			category("Hidden", BookmarkEntry{Name: "h", URL: "http://h"}),
			category("Tall", many...),
		),
		Visibility: map[string]bool{"Hidden": false},
		Clocks: []ClockEntry{
			{Name: "Seoul", Zone: "Asia/Seoul"},
			{Name: "", Zone: "UTC"},
		},
	}
	doc.Layout = &Layout{Top: []string{"Full", "Hidden"}, Bottom: []string{"Tall"}}

	d := BuildDashboard(doc, Capacities{Top: 3, Bottom: 10})

	require.Len(t, d.Top, 1)
	assert.Equal(t, "Full", d.Top[0].Name)
	assert.Len(t, d.Top[0].Entries, 3)
	assert.Equal(t, 2, d.Top[0].Hidden)

	require.Len(t, d.Bottom, 1)
	assert.Len(t, d.Bottom[0].Entries, 5)
	assert.Zero(t, d.Bottom[0].Hidden)

	assert.Equal(t, []ClockEntry{{Name: "Seoul", Zone: "Asia/Seoul"}}, d.Clocks)
}

func TestBuildDashboardLegacy(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"부트캠프": [], "일반": [{"name": "G", "url": "http://g"}]}`))
	require.NoError(t, err)

	d := BuildDashboard(doc, DefaultCapacities)

	assert.True(t, d.Migrated)
	require.Len(t, d.Top, 1)
	assert.Equal(t, "일반", d.Top[0].Name)
	require.Len(t, d.Bottom, 1)
	assert.Equal(t, "부트캠프", d.Bottom[0].Name)
}
