package domain

import (
	"encoding/json"
	"fmt"

	"github.com/MrSnakeDoc/startpage/internal/errs"
)

// NotepadCount is the number of notepads shown on the dashboard.
const NotepadCount = 3

// Notes is the persisted notepad text, one string per slot.
type Notes struct {
	Notes []string `json:"notes"`
}

// DefaultNotes is served when no notes were ever saved.
func DefaultNotes() Notes {
	return Notes{Notes: make([]string, NotepadCount)}
}

// ParseNotes decodes a {notes: [string]} body. A missing or non-array notes
// field is a MalformedInputError.
func ParseNotes(data []byte) (Notes, error) {
	var body struct {
		Notes *[]string `json:"notes"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return Notes{}, errs.NewMalformedInputError(fmt.Sprintf("notes: %v", err))
	}
	if body.Notes == nil {
		return Notes{}, errs.NewMalformedInputError("notes: \"notes\" must be an array of strings")
	}
	return Notes{Notes: *body.Notes}, nil
}

// ParseTodos decodes a {todos: {date: [rows]}} body. A missing or non-object
// todos field is a MalformedInputError.
func ParseTodos(data []byte) (TodoDocument, error) {
	var body struct {
		Todos *TodoDocument `json:"todos"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, errs.NewMalformedInputError(fmt.Sprintf("todos: %v", err))
	}
	if body.Todos == nil || *body.Todos == nil {
		return nil, errs.NewMalformedInputError("todos: \"todos\" must be an object keyed by date")
	}
	return *body.Todos, nil
}
