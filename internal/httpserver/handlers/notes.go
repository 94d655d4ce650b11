package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/startpage/internal/domain"
	"github.com/MrSnakeDoc/startpage/internal/httpserver/deps"
)

func GetNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := d.Notes.Load(r.Context())
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteJSON(w, http.StatusOK, notes)
	}
}

// PostNotes replaces all notepads. The stored file is untouched unless the
// body is {"notes": [string...]}.
func PostNotes(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := readBody(w, r, d.MaxBodyBytes)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		notes, err := domain.ParseNotes(body)
		if err != nil {
			d.Response.HandleError(w, r, err)
			return
		}

		if err := d.Notes.Save(r.Context(), notes); err != nil {
			d.Response.HandleError(w, r, err)
			return
		}
		d.Response.WriteSuccess(w, http.StatusOK, nil)
	}
}
