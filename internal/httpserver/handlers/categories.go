package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/errs"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
	"github.com/MrSnakeDoc/startpage/internal/settings"
)

type newCategoryRequest struct {
	Name   string        `json:"name"`
	Region domain.Region `json:"region"`
}

type moveRequest struct {
	Direction string `json:"direction"` // "up" | "down"
}

// editFunc applies one change to an open settings session.
type editFunc func(s *settings.Session) error

// editSettings runs edit against a session seeded from the stored document,
// saves the result and answers with the settings view of what was saved.
func editSettings(d deps.Deps, w http.ResponseWriter, r *http.Request, status int, edit editFunc) {
	current, err := d.Bookmarks.Load(r.Context())
	if err != nil {
		d.Response.HandleError(w, r, err)
		return
	}
	session, err := settings.OpenSession(current, d.Capacities)
	if err != nil {
		d.Response.HandleError(w, r, err)
		return
	}
	if err := edit(session); err != nil {
		d.Response.HandleError(w, r, err)
		return
	}

	saved, err := d.Bookmarks.Save(r.Context(), session.Build())
	if err != nil {
		d.Response.HandleError(w, r, err)
		return
	}
	view, err := settings.OpenSession(saved, d.Capacities)
	if err != nil {
		d.Response.HandleError(w, r, err)
		return
	}
	d.Response.WriteSuccess(w, status, view.View())
}

// PostCategory adds an empty category at the end of a region.
func PostCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req newCategoryRequest
		if err := decodeBody(w, r, d.MaxBodyBytes, &req); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		editSettings(d, w, r, http.StatusCreated, func(s *settings.Session) error {
			_, err := s.AddCategory(req.Name, req.Region)
			return err
		})
	}
}

// DeleteCategory removes a category, placed or not.
func DeleteCategory(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := categoryParam(r)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		editSettings(d, w, r, http.StatusOK, func(s *settings.Session) error {
			return s.RemoveCategory(name)
		})
	}
}

// PostEntry appends a bookmark to a category; 409 once the category is full.
func PostEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, err := categoryParam(r)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		var entry domain.BookmarkEntry
		if err := decodeBody(w, r, d.MaxBodyBytes, &entry); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		if !entry.Complete() {
			d.Response.HandleError(w, r, errs.NewMalformedInputError("bookmark needs a name and a url"))
			return
		}

		editSettings(d, w, r, http.StatusCreated, func(s *settings.Session) error {
			ed, err := editorOf(s, name)
			if err != nil {
				return err
			}
			return ed.AddEntry(entry)
		})
	}
}

// DeleteEntry removes the bookmark at {index}.
func DeleteEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, index, err := entryParams(r)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		editSettings(d, w, r, http.StatusOK, func(s *settings.Session) error {
			ed, err := editorOf(s, name)
			if err != nil {
				return err
			}
			if !ed.RemoveEntry(index) {
				return errs.NewNotFoundError(fmt.Sprintf("category %q has no bookmark %d", name, index))
			}
			return nil
		})
	}
}

// MoveEntry swaps the bookmark at {index} with its neighbour. Moving past
// either end leaves the order unchanged.
func MoveEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name, index, err := entryParams(r)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		var req moveRequest
		if err := decodeBody(w, r, d.MaxBodyBytes, &req); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		if req.Direction != "up" && req.Direction != "down" {
			d.Response.HandleError(w, r, errs.NewMalformedInputError(`direction must be "up" or "down"`))
			return
		}

		editSettings(d, w, r, http.StatusOK, func(s *settings.Session) error {
			ed, err := editorOf(s, name)
			if err != nil {
				return err
			}
			if index >= len(ed.Entries) {
				return errs.NewNotFoundError(fmt.Sprintf("category %q has no bookmark %d", name, index))
			}
			if req.Direction == "up" {
				ed.MoveUp(index)
			} else {
				ed.MoveDown(index)
			}
			return nil
		})
	}
}

func editorOf(s *settings.Session, name string) (*settings.CategoryEditor, error) {
	ed, ok := s.Editor(name)
	if !ok {
		return nil, errs.NewNotFoundError(fmt.Sprintf("category %q is not placed on the dashboard", name))
	}
	return ed, nil
}

// categoryParam returns the decoded {name} URL parameter. chi matches on the
// raw path when one is set (an escaped "/" in the name), and the parameter is
// then still escaped.
func categoryParam(r *http.Request) (string, error) {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		var err error
		if name, err = url.PathUnescape(name); err != nil {
			return "", errs.NewMalformedInputError("invalid category name in path")
		}
	}
	if name == "" {
		return "", errs.NewMalformedInputError("invalid category name in path")
	}
	return name, nil
}

func entryParams(r *http.Request) (string, int, error) {
	name, err := categoryParam(r)
	if err != nil {
		return "", 0, err
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		return "", 0, errs.NewMalformedInputError("bookmark index must be a non-negative integer")
	}
	return name, index, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v any) error {
	body, err := readBody(w, r, limit)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errs.NewMalformedInputError(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}
