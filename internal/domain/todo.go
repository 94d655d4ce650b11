package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// MaxTodoRows is the number of editable to-do rows per day.
const MaxTodoRows = 5

// DateLayout is the key format of a TodoDocument.
const DateLayout = "2006-01-02"

type TodoRow struct {
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// IsEmpty reports a row with blank text that is not checked.
func (r TodoRow) IsEmpty() bool {
	return strings.TrimSpace(r.Text) == "" && !r.Checked
}

// TodoDocument maps YYYY-MM-DD dates to their rows.
type TodoDocument map[string][]TodoRow

// ParseDate validates a YYYY-MM-DD date key.
func ParseDate(s string) (string, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", errs.NewMalformedInputError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", s))
	}
	return t.Format(DateLayout), nil
}

// OpenDay returns the rows stored for date padded with empty rows, so
// exactly MaxTodoRows are editable.
func (d TodoDocument) OpenDay(date string) [MaxTodoRows]TodoRow {
	var rows [MaxTodoRows]TodoRow
	copy(rows[:], d[date])
	return rows
}

// SaveDay stores rows for date, at most MaxTodoRows of them. When every row is
// empty the date is removed instead, so idle clicks leave no placeholders.
func (d TodoDocument) SaveDay(date string, rows []TodoRow) {
	if allEmpty(rows) {
		delete(d, date)
		return
	}
	if len(rows) > MaxTodoRows {
		rows = rows[:MaxTodoRows]
	}
	d[date] = append([]TodoRow{}, rows...)
}

// Prune applies the SaveDay rules to every date of the document.
func (d TodoDocument) Prune() {
	for date, rows := range d {
		d.SaveDay(date, rows)
	}
}

func allEmpty(rows []TodoRow) bool {
	for _, r := range rows {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}
