package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

func TestOpenDayPadsToFiveRows(t *testing.T) {
	d := TodoDocument{"2026-10-15": {{Text: "buy milk"}, {Text: "call", Checked: true}}}

	rows := d.OpenDay("2026-10-15")

	assert.Len(t, rows, MaxTodoRows)
	assert.Equal(t, TodoRow{Text: "buy milk"}, rows[0])
	assert.Equal(t, TodoRow{Text: "call", Checked: true}, rows[1])
	for _, r := range rows[2:] {
		assert.True(t, r.IsEmpty())
	}

	assert.Equal(t, [MaxTodoRows]TodoRow{}, d.OpenDay("2000-01-01"))
}

func TestSaveDayPrunesEmptyDays(t *testing.T) {
	d := TodoDocument{"2026-10-15": {{Text: "old"}}}

	d.SaveDay("2026-10-15", make([]TodoRow, MaxTodoRows))

	_, ok := d["2026-10-15"]
	assert.False(t, ok, "an all-empty day must be removed")
	assert.Equal(t, [MaxTodoRows]TodoRow{}, d.OpenDay("2026-10-15"))
}

func TestSaveDayStoresRowsAsGiven(t *testing.T) {
	d := TodoDocument{}
	rows := []TodoRow{{Text: ""}, {Text: "x"}, {}, {}, {}, {Text: "sixth"}}

	d.SaveDay("2026-10-15", rows)

	assert.Equal(t, rows[:MaxTodoRows], d["2026-10-15"])

	d.SaveDay("2026-10-16", []TodoRow{{Text: "   ", Checked: true}})
	assert.Len(t, d["2026-10-16"], 1, "a checked row is not empty")
}

func TestPrune(t *testing.T) {
	d := TodoDocument{
		"2026-01-01": {{}, {Text: " "}},
		"2026-01-02": {{Text: "keep"}},
		"2026-01-03": nil,
	}

	d.Prune()

	assert.Equal(t, TodoDocument{"2026-01-02": {{Text: "keep"}}}, d)
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-10-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-15", got)

	for _, bad := range []string{"2026-13-01", "15-10-2026", "today", ""} {
		_, err := ParseDate(bad)
		var malformed *errs.MalformedInputError
		assert.True(t, errors.As(err, &malformed), bad)
	}
}

func TestParseNotesAndTodos(t *testing.T) {
	notes, err := ParseNotes([]byte(`{"notes": ["a", "", "c"]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, notes.Notes)

	for _, bad := range []string{`{"notes": "not-an-array"}`, `{}`, `[]`, `{"notes": [1]}`, `nope`} {
		_, err := ParseNotes([]byte(bad))
		var malformed *errs.MalformedInputError
		assert.True(t, errors.As(err, &malformed), bad)
	}

	todos, err := ParseTodos([]byte(`{"todos": {"2026-10-15": [{"text": "x", "checked": true}]}}`))
	require.NoError(t, err)
	assert.Equal(t, TodoDocument{"2026-10-15": {{Text: "x", Checked: true}}}, todos)

	for _, bad := range []string{`{"todos": []}`, `{"todos": null}`, `{}`, `{"todos": "x"}`} {
		_, err := ParseTodos([]byte(bad))
		var malformed *errs.MalformedInputError
		assert.True(t, errors.As(err, &malformed), bad)
	}

	assert.Equal(t, []string{"", "", ""}, DefaultNotes().Notes)
}
